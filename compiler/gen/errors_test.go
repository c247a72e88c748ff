package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("User", "email", "invalid format", cause)

		assert.Contains(t, err.Error(), "daogen: schema error")
		assert.Contains(t, err.Error(), "entity User")
		assert.Contains(t, err.Error(), "field email")
		assert.Contains(t, err.Error(), "invalid format")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with entity only", func(t *testing.T) {
		err := &SchemaError{Entity: "User"}
		assert.Contains(t, err.Error(), "entity User")
		assert.NotContains(t, err.Error(), "field")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("User", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		err := NewSchemaError("User", "email", "test", nil)
		assert.True(t, IsSchemaError(err))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestMapperErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
		is   func(error) bool
	}{
		{
			name: "missing column type",
			err:  &MissingColumnTypeError{Entity: "User", Field: "meta"},
			msg:  "daogen: entity User field meta: missing column type",
			is:   IsMissingColumnTypeError,
		},
		{
			name: "size constraint",
			err:  &SizeConstraintError{Entity: "User", Field: "name", Type: "VARCHAR", Size: 100000, MaxSize: 65535},
			msg:  "daogen: entity User field name: size 100000 of VARCHAR exceeds max size 65535",
			is:   IsSizeConstraintError,
		},
		{
			name: "missing primary key",
			err:  &MissingPrimaryKeyError{Entity: "User"},
			msg:  "daogen: entity User: missing primary key",
			is:   IsMissingPrimaryKeyError,
		},
		{
			name: "multiple primary keys",
			err:  &MultiplePrimaryKeyError{Entity: "User", Fields: []string{"id", "uid"}},
			msg:  "daogen: entity User: multiple primary keys (id, uid)",
			is:   IsMultiplePrimaryKeyError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.True(t, tt.is(tt.err))
			assert.True(t, tt.is(fmt.Errorf("wrapped: %w", tt.err)))
			assert.True(t, IsSchemaError(tt.err))
			assert.True(t, errors.Is(tt.err, ErrInvalidSchema))
			assert.False(t, errors.Is(tt.err, ErrGenerationFailed))
		})
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "must be positive")

		assert.Contains(t, err.Error(), "daogen: config error")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewGenerationError("write", "user.go", "cannot write file", cause)

		assert.Contains(t, err.Error(), "daogen: generation error")
		assert.Contains(t, err.Error(), "phase write")
		assert.Contains(t, err.Error(), "user.go")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("format")
		err := NewGenerationError("entity", "", "", cause)

		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsGenerationError(err))
	})
}

func TestAggregateError(t *testing.T) {
	t.Run("nil when no errors", func(t *testing.T) {
		assert.NoError(t, NewAggregateError(nil, nil))
	})

	t.Run("single error keeps its message", func(t *testing.T) {
		inner := &MissingPrimaryKeyError{Entity: "User"}
		err := NewAggregateError(nil, inner)
		require.Error(t, err)

		var agg *AggregateError
		require.True(t, errors.As(err, &agg))
		assert.Len(t, agg.Errors, 1)
		assert.Equal(t, inner.Error(), err.Error())
	})

	t.Run("multiple errors are numbered", func(t *testing.T) {
		err := NewAggregateError(
			&MissingPrimaryKeyError{Entity: "User"},
			&MissingColumnTypeError{Entity: "Post", Field: "meta"},
		)
		assert.Contains(t, err.Error(), "daogen: multiple errors:")
		assert.Contains(t, err.Error(), "[1] daogen: entity User")
		assert.Contains(t, err.Error(), "[2] daogen: entity Post")
		assert.True(t, IsMissingPrimaryKeyError(err))
		assert.True(t, IsMissingColumnTypeError(err))
		assert.True(t, IsSchemaError(err))
	})

	t.Run("empty aggregate", func(t *testing.T) {
		assert.Equal(t, "daogen: no errors", (&AggregateError{}).Error())
	})
}
