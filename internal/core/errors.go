package core

// errors.go defines the error taxonomy for the sync engine.
//
// The four cases map directly onto ledger outcomes:
//   - UnknownModelError: the batch never starts, ledger status invalid
//   - ValidationError:   one item violates a model rule, ledger status failed
//   - storage errors:    treated like validation errors by the orchestrator
//   - InvalidStateError: a retry was requested on a non-failed ledger entry
//
// ErrNotFound is the shared sentinel for lookups by id.

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a sync history entry or entity id is unknown.
var ErrNotFound = errors.New("not found")

// UnknownModelError indicates a model key outside the registered set.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("invalid model: %s", e.Model)
}

// ValidationError indicates one record's data violated a model rule.
type ValidationError struct {
	Field   string // Field name, if attributable to a single field
	Message string // Human-readable reason
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// validationErrorf builds a ValidationError with a formatted message.
func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InvalidStateError indicates an operation that is illegal for the record's
// current status, e.g. retrying a sync that did not fail.
type InvalidStateError struct {
	Op     string
	Status SyncStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in status %q", e.Op, e.Status)
}
