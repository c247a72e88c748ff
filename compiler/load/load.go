// Package load discovers entity declarations and returns them as schema
// descriptors.
//
// Three front ends are supported:
//
//   - FromStruct reads `db` tags from a Go struct value using reflection.
//   - ReadFile and Decode read declarative YAML or JSON descriptor files.
//   - Packages loads Go packages and reads `db` tags from exported structs
//     whose doc comment carries the "daogen:entity" marker.
//
// The `db` tag has the form:
//
//	db:"column,type=VARCHAR,size=50,pk,unique,fk=users.id,ondelete=CASCADE,onupdate=CASCADE,comment=text"
//
// An empty column name defaults to the snake_case form of the Go field name,
// and the value type is derived from the Go type of the field. Fields
// tagged `db:"-"` and fields without a tag are skipped.
package load

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

// Marker is the doc comment directive of entity structs read by Packages.
const Marker = "daogen:entity"

// Option configures a struct front end.
type Option func(*options)

type options struct {
	name  string
	table string
}

// WithName overrides the entity name, which defaults to the Go type name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithTable overrides the table name.
func WithTable(table string) Option {
	return func(o *options) { o.table = table }
}

// structField is a struct field as seen by the struct front ends.
type structField struct {
	name   string // Go field name.
	goType string // qualified Go type, e.g. "time.Time".
	tag    string // raw `db` tag value.
}

// entity builds the descriptor of a tagged struct.
func entity(name string, fields []structField, opts ...Option) (*schema.Descriptor, error) {
	o := &options{name: name}
	for _, opt := range opts {
		opt(o)
	}
	b := schema.Entity(o.name).Table(o.table)
	for _, sf := range fields {
		if sf.tag == "" || sf.tag == "-" {
			continue
		}
		fb, err := parseTag(sf)
		if err != nil {
			return nil, fmt.Errorf("load: %s.%s: %w", name, sf.name, err)
		}
		b.Fields(fb)
	}
	return b.Descriptor(), nil
}

// parseTag builds a field from a `db` tag.
func parseTag(sf structField) (*field.Builder, error) {
	parts := strings.Split(sf.tag, ",")
	name := gen.Snake(sf.name)
	fb := fieldOf(name, goType(sf.goType))
	if col := strings.TrimSpace(parts[0]); col != "" && col != name {
		fb.Column(col)
	}
	var onDelete, onUpdate field.Action
	for _, p := range parts[1:] {
		k, v, _ := strings.Cut(p, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		switch k {
		case "":
		case "pk":
			fb.PrimaryKey()
		case "unique":
			fb.Unique()
		case "type":
			fb.SQLType(sqltype.Parse(v))
		case "size":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid size %q", v)
			}
			fb.Size(n)
		case "fk":
			table, column, ok := strings.Cut(v, ".")
			if !ok || table == "" || column == "" {
				return nil, fmt.Errorf("invalid foreign key %q, expect table.column", v)
			}
			fb.References(table, column)
		case "ondelete", "onupdate":
			a, err := field.ParseAction(v)
			if err != nil {
				return nil, err
			}
			if k == "ondelete" {
				onDelete = a
			} else {
				onUpdate = a
			}
		case "comment":
			fb.Comment(v)
		default:
			return nil, fmt.Errorf("unknown tag option %q", k)
		}
	}
	if onDelete != "" || onUpdate != "" {
		if fb.Descriptor().ForeignKey == nil {
			return nil, fmt.Errorf("referential action without fk")
		}
		fb.OnDelete(onDelete).OnUpdate(onUpdate)
	}
	return fb, nil
}

// goType returns the value type of a Go type name.
func goType(name string) field.Type {
	switch name {
	case "int", "int32", "uint32":
		return field.TypeInteger
	case "int64", "uint64", "uint":
		return field.TypeLong
	case "int16", "int8", "uint16", "uint8":
		return field.TypeShort
	case "string":
		return field.TypeString
	case "bool":
		return field.TypeBoolean
	case "float32":
		return field.TypeFloat
	case "float64":
		return field.TypeDouble
	case "time.Time":
		return field.TypeTimestamp
	default:
		return field.TypeOther
	}
}

// fieldOf returns a field builder of the given value type.
func fieldOf(name string, t field.Type) *field.Builder {
	switch t {
	case field.TypeInteger:
		return field.Int(name)
	case field.TypeLong:
		return field.Long(name)
	case field.TypeShort:
		return field.Short(name)
	case field.TypeString:
		return field.String(name)
	case field.TypeBoolean:
		return field.Bool(name)
	case field.TypeFloat:
		return field.Float(name)
	case field.TypeDouble:
		return field.Double(name)
	case field.TypeTimestamp:
		return field.Time(name)
	default:
		return field.Other(name)
	}
}
