package metrics

import "time"

// PageKind labels generated documents.
type PageKind string

const (
	PageMonth    PageKind = "month"
	PageYear     PageKind = "year"
	PageTag      PageKind = "tag"
	PageTagIndex PageKind = "tag_index"
	PageMaster   PageKind = "master"
)

// Outcome labels the result of one unit of work.
type Outcome string

const (
	OutcomeWritten   Outcome = "written"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Recorder receives build observations. Implementations must tolerate nil receivers.
type Recorder interface {
	IncPage(kind PageKind, outcome Outcome)
	ObservePreview(chars, elements int, passthrough bool)
	AddTaggedSections(n int)
	ObserveRunDuration(command string, d time.Duration)
}

// NoopRecorder discards everything. It is the default when metrics are not configured.
type NoopRecorder struct{}

func (NoopRecorder) IncPage(PageKind, Outcome)              {}
func (NoopRecorder) ObservePreview(int, int, bool)          {}
func (NoopRecorder) AddTaggedSections(int)                  {}
func (NoopRecorder) ObserveRunDuration(string, time.Duration) {}
