package daogen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for runtime operations.
var (
	// ErrNotFound is returned when no row matches the requested key.
	ErrNotFound = errors.New("daogen: record not found")

	// ErrMissingValue is returned when a record lacks a value bound by a statement.
	ErrMissingValue = errors.New("daogen: missing value")
)

// NotFoundError represents an error when a record is not found.
type NotFoundError struct {
	label string
	key   any // Optional: the key that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.key != nil {
		return fmt.Sprintf("daogen: %s not found (key=%v)", e.label, e.key)
	}
	return fmt.Sprintf("daogen: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the entity label.
func (e *NotFoundError) Label() string {
	return e.label
}

// Key returns the key that was searched for, if available.
func (e *NotFoundError) Key() any {
	return e.key
}

// NewNotFoundError returns a new NotFoundError for the given entity.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

// NewNotFoundErrorWithKey returns a new NotFoundError with the key that was searched for.
func NewNotFoundErrorWithKey(label string, key any) *NotFoundError {
	return &NotFoundError{label: label, key: key}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// ConstraintError represents a database constraint violation error.
type ConstraintError struct {
	msg  string
	wrap error
}

// Error returns the error string.
func (e ConstraintError) Error() string {
	return fmt.Sprintf("daogen: constraint failed: %s", e.msg)
}

// Unwrap returns the underlying error.
func (e ConstraintError) Unwrap() error {
	return e.wrap
}

// NewConstraintError returns a new ConstraintError with the given message.
func NewConstraintError(msg string, wrap error) error {
	return ConstraintError{msg: msg, wrap: wrap}
}

// IsConstraintError returns true if the error is a ConstraintError.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var e ConstraintError
	return errors.As(err, &e)
}

// MissingValueError is returned when a record passed to an operation has no
// value for a field the statement binds.
type MissingValueError struct {
	Entity string
	Field  string
}

// Error returns the error string.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("daogen: %s record has no value for field %q", e.Entity, e.Field)
}

// Is reports whether the target error matches ErrMissingValue.
func (e *MissingValueError) Is(err error) bool {
	return err == ErrMissingValue
}

// NewMissingValueError returns a new MissingValueError.
func NewMissingValueError(entity, field string) *MissingValueError {
	return &MissingValueError{Entity: entity, Field: field}
}

// IsMissingValueError returns true if the error is a MissingValueError.
func IsMissingValueError(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingValueError
	return errors.As(err, &e)
}

// QueryError wraps a query error with additional context.
type QueryError struct {
	Entity string // Entity being queried
	Op     string // Operation (e.g., "get", "list")
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *QueryError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("daogen: querying %s (%s): %v", e.Entity, e.Op, e.Err)
	}
	return fmt.Sprintf("daogen: querying %s: %v", e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError returns a new QueryError.
func NewQueryError(entity, op string, err error) *QueryError {
	return &QueryError{Entity: entity, Op: op, Err: err}
}

// IsQueryError returns true if the error is a QueryError.
func IsQueryError(err error) bool {
	if err == nil {
		return false
	}
	var e *QueryError
	return errors.As(err, &e)
}

// MutationError wraps a mutation error with additional context.
type MutationError struct {
	Entity string // Entity being mutated
	Op     string // Operation (e.g., "create", "insert", "update", "delete")
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *MutationError) Error() string {
	return fmt.Sprintf("daogen: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewMutationError returns a new MutationError.
func NewMutationError(entity, op string, err error) *MutationError {
	return &MutationError{Entity: entity, Op: op, Err: err}
}

// IsMutationError returns true if the error is a MutationError.
func IsMutationError(err error) bool {
	if err == nil {
		return false
	}
	var e *MutationError
	return errors.As(err, &e)
}
