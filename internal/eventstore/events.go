package eventstore

import "time"

// Event type names.
const (
	TypeRunStarted   = "RunStarted"
	TypePageWritten  = "PageWritten"
	TypePageSkipped  = "PageSkipped"
	TypePageFailed   = "PageFailed"
	TypeMasterSynced = "MasterSynced"
	TypeRunCompleted = "RunCompleted"
)

// RunStarted opens a run.
type RunStarted struct {
	Command string   `json:"command"`
	Targets []string `json:"targets,omitempty"`
	Version string   `json:"version,omitempty"`
}

// PageWritten records one generated document.
type PageWritten struct {
	Kind     string `json:"kind"`
	Target   string `json:"target"`
	Path     string `json:"path"`
	BackedUp bool   `json:"backed_up"`
}

// PageSkipped records a unit that produced nothing, e.g. a month without entries.
type PageSkipped struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
	Reason string `json:"reason"`
}

// PageFailed records a unit that could not be built or written.
type PageFailed struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
	Error  string `json:"error"`
}

// MasterSynced records a tag list synchronisation.
type MasterSynced struct {
	Path    string `json:"path"`
	Tags    int    `json:"tags"`
	Changed bool   `json:"changed"`
}

// RunCompleted closes a run.
type RunCompleted struct {
	Succeeded  int   `json:"succeeded"`
	Failed     int   `json:"failed"`
	DurationMS int64 `json:"duration_ms"`
}

// NewRunCompleted fills in the duration from d.
func NewRunCompleted(succeeded, failed int, d time.Duration) RunCompleted {
	return RunCompleted{Succeeded: succeeded, Failed: failed, DurationMS: d.Milliseconds()}
}

// typeOf maps a payload value to its event type name.
func typeOf(payload any) (string, bool) {
	switch payload.(type) {
	case RunStarted, *RunStarted:
		return TypeRunStarted, true
	case PageWritten, *PageWritten:
		return TypePageWritten, true
	case PageSkipped, *PageSkipped:
		return TypePageSkipped, true
	case PageFailed, *PageFailed:
		return TypePageFailed, true
	case MasterSynced, *MasterSynced:
		return TypeMasterSynced, true
	case RunCompleted, *RunCompleted:
		return TypeRunCompleted, true
	default:
		return "", false
	}
}
