package eventstore

import (
	"context"
	"encoding/json"
	"time"
)

const (
	runStatusRunning   = "running"
	runStatusCompleted = "completed"
	runStatusFailed    = "failed"
)

// RunSummary is a read model of one run rebuilt from its events.
type RunSummary struct {
	RunID       string         `json:"run_id"`
	Command     string         `json:"command"`
	Status      string         `json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Written     map[string]int `json:"written"`
	Skipped     []string       `json:"skipped,omitempty"`
	Failures    []string       `json:"failures,omitempty"`
	MasterSync  *MasterSynced  `json:"master_sync,omitempty"`
	Duration    time.Duration  `json:"duration"`
}

// Summarize folds the events of runID into a RunSummary.
func Summarize(ctx context.Context, store Store, runID string) (*RunSummary, error) {
	events, err := store.ByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrRunNotFound
	}
	s := &RunSummary{RunID: runID, Status: runStatusRunning, Written: map[string]int{}}
	for _, e := range events {
		if err := s.apply(e); err != nil {
			return nil, wrap(ErrQueryFailed, err)
		}
	}
	return s, nil
}

func (s *RunSummary) apply(e Event) error {
	switch e.Type() {
	case TypeRunStarted:
		var p RunStarted
		if err := json.Unmarshal(e.Payload(), &p); err != nil {
			return err
		}
		s.Command = p.Command
		s.StartedAt = e.Timestamp()
	case TypePageWritten:
		var p PageWritten
		if err := json.Unmarshal(e.Payload(), &p); err != nil {
			return err
		}
		s.Written[p.Kind]++
	case TypePageSkipped:
		var p PageSkipped
		if err := json.Unmarshal(e.Payload(), &p); err != nil {
			return err
		}
		s.Skipped = append(s.Skipped, p.Target)
	case TypePageFailed:
		var p PageFailed
		if err := json.Unmarshal(e.Payload(), &p); err != nil {
			return err
		}
		s.Failures = append(s.Failures, p.Target+": "+p.Error)
	case TypeMasterSynced:
		var p MasterSynced
		if err := json.Unmarshal(e.Payload(), &p); err != nil {
			return err
		}
		s.MasterSync = &p
	case TypeRunCompleted:
		var p RunCompleted
		if err := json.Unmarshal(e.Payload(), &p); err != nil {
			return err
		}
		at := e.Timestamp()
		s.CompletedAt = &at
		s.Duration = time.Duration(p.DurationMS) * time.Millisecond
		s.Status = runStatusCompleted
		if p.Failed > 0 {
			s.Status = runStatusFailed
		}
	}
	return nil
}
