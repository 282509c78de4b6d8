// Package eventstore keeps an append-only journal of build runs in SQLite.
//
// The journal is history only: nothing reads it back to decide what to build.
package eventstore

import (
	"context"
	"time"
)

// Store persists and retrieves run events.
type Store interface {
	// Append adds an event to a run.
	Append(ctx context.Context, runID, eventType string, payload []byte, metadata map[string]string) error

	// ByRun returns the events of one run in append order.
	ByRun(ctx context.Context, runID string) ([]Event, error)

	// Range returns events recorded between start and end inclusive.
	Range(ctx context.Context, start, end time.Time) ([]Event, error)

	// RecentRuns returns up to limit run ids, newest first.
	RecentRuns(ctx context.Context, limit int) ([]string, error)

	Close() error
}
