package eventstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
)

// Journal records the events of one run. A Journal without a store drops
// everything, so callers never need to check whether journaling is enabled.
// Append failures are logged and never abort a build.
type Journal struct {
	store  Store
	runID  string
	logger *slog.Logger
}

// NewJournal binds store to runID. store may be nil.
func NewJournal(store Store, runID string, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{store: store, runID: runID, logger: logger}
}

// RunID returns the id every event is recorded under.
func (j *Journal) RunID() string {
	if j == nil {
		return ""
	}
	return j.runID
}

// Record appends payload, which must be one of the event payload types.
func (j *Journal) Record(ctx context.Context, payload any) {
	if j == nil || j.store == nil {
		return
	}
	eventType, ok := typeOf(payload)
	if !ok {
		j.logger.Warn("Unknown journal event", slog.String("type", fmt.Sprintf("%T", payload)))
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		j.logger.Warn("Cannot encode journal event", slog.String("type", eventType), logfields.Error(err))
		return
	}
	if err := j.store.Append(ctx, j.runID, eventType, data, nil); err != nil {
		j.logger.Warn("Cannot append journal event", slog.String("type", eventType), logfields.RunID(j.runID), logfields.Error(err))
	}
}
