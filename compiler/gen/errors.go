package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates an entity descriptor that cannot be mapped.
	ErrInvalidSchema = errors.New("daogen: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("daogen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("daogen: code generation failed")
)

// SchemaError represents a structural error in an entity descriptor that is
// not covered by one of the more specific error types below.
type SchemaError struct {
	Entity  string // Entity type name
	Field   string // Field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("daogen: schema error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(entity, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Entity:  entity,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// MissingColumnTypeError is returned when a field declares no column type.
type MissingColumnTypeError struct {
	Entity string
	Field  string
}

// Error implements the error interface.
func (e *MissingColumnTypeError) Error() string {
	return fmt.Sprintf("daogen: entity %s field %s: missing column type", e.Entity, e.Field)
}

// Is reports whether the target matches ErrInvalidSchema.
func (e *MissingColumnTypeError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// SizeConstraintError is returned when the declared size of a sizeable
// column type exceeds the maximum of the type.
type SizeConstraintError struct {
	Entity  string
	Field   string
	Type    string
	Size    int64
	MaxSize int64
}

// Error implements the error interface.
func (e *SizeConstraintError) Error() string {
	return fmt.Sprintf("daogen: entity %s field %s: size %d of %s exceeds max size %d",
		e.Entity, e.Field, e.Size, e.Type, e.MaxSize)
}

// Is reports whether the target matches ErrInvalidSchema.
func (e *SizeConstraintError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// MissingPrimaryKeyError is returned when no field is marked as primary key.
type MissingPrimaryKeyError struct {
	Entity string
}

// Error implements the error interface.
func (e *MissingPrimaryKeyError) Error() string {
	return fmt.Sprintf("daogen: entity %s: missing primary key", e.Entity)
}

// Is reports whether the target matches ErrInvalidSchema.
func (e *MissingPrimaryKeyError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// MultiplePrimaryKeyError is returned when more than one field is marked
// as primary key.
type MultiplePrimaryKeyError struct {
	Entity string
	Fields []string
}

// Error implements the error interface.
func (e *MultiplePrimaryKeyError) Error() string {
	return fmt.Sprintf("daogen: entity %s: multiple primary keys (%s)", e.Entity, strings.Join(e.Fields, ", "))
}

// Is reports whether the target matches ErrInvalidSchema.
func (e *MultiplePrimaryKeyError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("daogen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("daogen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "entity", "shared", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("daogen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError reports whether the error is a descriptor validation error
// of any kind.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}

// IsMissingColumnTypeError reports whether the error is a MissingColumnTypeError.
func IsMissingColumnTypeError(err error) bool {
	var e *MissingColumnTypeError
	return errors.As(err, &e)
}

// IsSizeConstraintError reports whether the error is a SizeConstraintError.
func IsSizeConstraintError(err error) bool {
	var e *SizeConstraintError
	return errors.As(err, &e)
}

// IsMissingPrimaryKeyError reports whether the error is a MissingPrimaryKeyError.
func IsMissingPrimaryKeyError(err error) bool {
	var e *MissingPrimaryKeyError
	return errors.As(err, &e)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// AggregateError collects the per-entity failures of one generation pass.
type AggregateError struct {
	Errors []error
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "daogen: no errors"
	case 1:
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("daogen: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As can
// inspect each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns an AggregateError holding the non-nil errors,
// or nil if there are none.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return &AggregateError{Errors: filtered}
}

// IsMultiplePrimaryKeyError reports whether the error is a MultiplePrimaryKeyError.
func IsMultiplePrimaryKeyError(err error) bool {
	var e *MultiplePrimaryKeyError
	return errors.As(err, &e)
}
