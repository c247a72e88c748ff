package field

import (
	"fmt"

	"github.com/syssam/daogen/dialect/sqltype"
)

// Type is the declared value type of a field.
type Type uint8

// Value types.
const (
	TypeOther Type = iota
	TypeInteger
	TypeString
	TypeBoolean
	TypeFloat
	TypeDouble
	TypeLong
	TypeShort
	TypeTimestamp
	endTypes
)

var typeNames = [...]string{
	TypeOther:     "other",
	TypeInteger:   "integer",
	TypeString:    "string",
	TypeBoolean:   "boolean",
	TypeFloat:     "float",
	TypeDouble:    "double",
	TypeLong:      "long",
	TypeShort:     "short",
	TypeTimestamp: "timestamp",
}

// String returns the name of the value type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Valid reports if t is a known value type.
func (t Type) Valid() bool { return t < endTypes }

// ParseType returns the value type with the given name.
func ParseType(s string) (Type, error) {
	for t, n := range typeNames {
		if n == s {
			return Type(t), nil
		}
	}
	return TypeOther, fmt.Errorf("field: unknown value type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// GoType returns the Go type used for fields of this value type.
func (t Type) GoType() string {
	switch t {
	case TypeInteger:
		return "int"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "bool"
	case TypeFloat:
		return "float32"
	case TypeDouble:
		return "float64"
	case TypeLong:
		return "int64"
	case TypeShort:
		return "int16"
	case TypeTimestamp:
		return "time.Time"
	default:
		return "any"
	}
}

// Numeric reports if the value type is a number.
func (t Type) Numeric() bool {
	switch t {
	case TypeInteger, TypeFloat, TypeDouble, TypeLong, TypeShort:
		return true
	}
	return false
}

// SQLType returns the column type used when none is declared explicitly.
// TypeOther has no default.
func (t Type) SQLType() sqltype.Type {
	switch t {
	case TypeInteger:
		return sqltype.INT
	case TypeString:
		return sqltype.VARCHAR
	case TypeBoolean:
		return sqltype.BOOL
	case TypeFloat:
		return sqltype.FLOAT
	case TypeDouble:
		return sqltype.DECIMAL
	case TypeLong:
		return sqltype.BIGINT
	case TypeShort:
		return sqltype.SMALLINT
	case TypeTimestamp:
		return sqltype.TIMESTAMP
	default:
		return ""
	}
}
