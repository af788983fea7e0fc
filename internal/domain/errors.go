// Package domain holds the error taxonomy shared by every aggregate.
package domain

import (
	"errors"
	"strings"
)

// ErrInvalidTeamComposition is returned when a scrum team's role assignment
// breaks the composition rules.
var ErrInvalidTeamComposition = errors.New("invalid team composition")

// ErrAlreadyExists is returned when a single-instance record is created twice.
var ErrAlreadyExists = errors.New("already exists")

// ErrNotFound is returned when an edit, remove or disband targets an unknown id.
var ErrNotFound = errors.New("not found")

// ErrDanglingReference is returned when a role assignment points at an
// employee that has no record.
var ErrDanglingReference = errors.New("dangling employee reference")

// ValidationError reports malformed input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every field failure of one command.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Collect appends err to the list when it is a validation failure and reports
// whether it did. Any other non-nil error is left to the caller.
func (e *ValidationErrors) Collect(err error) bool {
	if err == nil {
		return true
	}
	var many ValidationErrors
	if errors.As(err, &many) {
		*e = append(*e, many...)
		return true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		*e = append(*e, one)
		return true
	}
	return false
}

// Err returns nil for an empty list so callers can return it directly.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsValidation extracts field failures from err, whether it is a single
// ValidationError or a ValidationErrors list.
func AsValidation(err error) (ValidationErrors, bool) {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many, true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}, true
	}
	return nil, false
}
