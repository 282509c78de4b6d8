package eventstore

import (
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

var (
	// ErrOpenFailed indicates the SQLite database could not be opened or initialised.
	ErrOpenFailed = errors.JournalError("could not open run journal").Build()

	// ErrAppendFailed indicates an event could not be stored.
	ErrAppendFailed = errors.JournalError("failed to append event to run journal").Build()

	// ErrQueryFailed indicates events could not be read back.
	ErrQueryFailed = errors.JournalError("failed to query run journal").Build()

	// ErrRunNotFound indicates a run id with no events.
	ErrRunNotFound = errors.NotFoundError("run not found in journal").Build()
)

func wrap(sentinel *errors.ClassifiedError, cause error) error {
	return errors.WrapError(cause, sentinel.Category(), sentinel.Message()).Build()
}
