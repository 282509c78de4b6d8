// Package foundation holds small generic building blocks shared by the domain packages.
package foundation

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

// Validator checks one aspect of a value.
type Validator[T any] func(T) ValidationResult

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("field '%s': %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// Combine merges two validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// ToError converts an invalid result into a classified error of the given category.
func (vr ValidationResult) ToError(category errors.ErrorCategory) error {
	if vr.Valid {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	fields := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		messages = append(messages, fe.Error())
		fields = append(fields, fe.Field)
	}
	return errors.NewError(category, strings.Join(messages, "; ")).
		Fatal().
		WithContext("fields", fields).
		Build()
}

// ValidatorChain runs validators in order and collects every failure.
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain.
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add appends a validator to the chain.
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain.
func (vc *ValidatorChain[T]) Validate(value T) ValidationResult {
	result := Valid()
	for _, validator := range vc.validators {
		result = result.Combine(validator(value))
	}
	return result
}

// NonNegative fails when the selected number is below zero.
func NonNegative[T any](field string, get func(T) int) Validator[T] {
	return func(v T) ValidationResult {
		if n := get(v); n < 0 {
			return Invalid(FieldError{Field: field, Code: "non_negative", Message: "must not be negative", Value: n})
		}
		return Valid()
	}
}

// NotEmpty fails when the selected string is empty.
func NotEmpty[T any](field string, get func(T) string) Validator[T] {
	return func(v T) ValidationResult {
		if get(v) == "" {
			return Invalid(FieldError{Field: field, Code: "required", Message: "must not be empty"})
		}
		return Valid()
	}
}

// Check fails with message when ok returns false.
func Check[T any](field, code, message string, ok func(T) bool) Validator[T] {
	return func(v T) ValidationResult {
		if !ok(v) {
			return Invalid(FieldError{Field: field, Code: code, Message: message})
		}
		return Valid()
	}
}
