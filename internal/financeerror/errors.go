// Package financeerror defines the error taxonomy shared by the ledger, the
// plan and annotation stores and the persistence codec. Every error is
// recoverable: the caller reports it and the application stays usable.
package financeerror

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrDeserialization = errors.New("deserialization error")
)

// ValidationError reports invalid input on a mutating call. It is returned
// before any state changes.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a deletion or update that referenced an absent
// transaction id, savings target or list index.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DeserializationError reports malformed or structurally invalid persisted
// state. Import is aborted and the existing state preserved.
type DeserializationError struct {
	Reason string
	Err    error
}

func (e *DeserializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read finance data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot read finance data: %s", e.Reason)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDeserialization) true.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// Invalid is a shorthand constructor for ValidationError.
func Invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// Missing builds a NotFoundError.
func Missing(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}
