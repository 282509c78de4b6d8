package period

import "git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"

var (
	// ErrMissingPeriod is returned when a month or year directory does not exist.
	ErrMissingPeriod = errors.NotFoundError("period directory not found").Build()
	// ErrNoEntries is returned when a period exists but holds no entry documents.
	ErrNoEntries = errors.NotFoundError("period has no entries").Build()
)
