// Package errors provides the classified error type used across journalbuilder.
//
// Errors carry a category (config, not_found, filesystem, ...) that the CLI
// maps to an exit code, a severity, and key/value context for logging.
//
//	err := errors.WrapError(ioErr, errors.CategoryFileSystem, "write month page").
//		WithContext("path", out).
//		Build()
package errors
