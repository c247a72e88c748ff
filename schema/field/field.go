package field

import (
	"fmt"
	"strings"

	"github.com/syssam/daogen/dialect/sqltype"
)

// Action is a referential action of a foreign key.
type Action string

// Referential actions.
const (
	Cascade    Action = "CASCADE"
	SetNull    Action = "SET NULL"
	Restrict   Action = "RESTRICT"
	SetDefault Action = "SET DEFAULT"
	NoAction   Action = "NO ACTION"
)

// Valid reports if a is empty or one of the referential actions.
func (a Action) Valid() bool {
	switch a {
	case "", Cascade, SetNull, Restrict, SetDefault, NoAction:
		return true
	}
	return false
}

// ParseAction returns the referential action named by s, ignoring case and
// extra spaces. An empty s means no action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.Join(strings.Fields(strings.ToUpper(s)), " "))
	if !a.Valid() {
		return "", fmt.Errorf("field: unknown referential action %q", s)
	}
	return a, nil
}

// ForeignKey describes the column a field references.
type ForeignKey struct {
	Table    string
	Column   string
	OnDelete Action
	OnUpdate Action
}

// Descriptor holds the declaration of a single field.
type Descriptor struct {
	Name       string       // field name, used in parameter plans.
	Column     string       // column name, defaults to Name.
	Type       Type         // declared value type.
	SQLType    sqltype.Type // column type, empty if none was declared.
	Size       int64        // size qualifier for sizeable column types.
	PrimaryKey bool
	Unique     bool
	ForeignKey *ForeignKey
	Comment    string
}

// ColumnName returns the storage column of the field.
func (d *Descriptor) ColumnName() string {
	if d.Column != "" {
		return d.Column
	}
	return d.Name
}

// Builder is the fluent builder of a field descriptor.
type Builder struct {
	desc *Descriptor
}

func newBuilder(name string, t Type) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Type: t, SQLType: t.SQLType()}}
}

// Int returns a new integer field (INT).
func Int(name string) *Builder { return newBuilder(name, TypeInteger) }

// String returns a new string field (VARCHAR).
func String(name string) *Builder { return newBuilder(name, TypeString) }

// Bool returns a new boolean field (BOOL).
func Bool(name string) *Builder { return newBuilder(name, TypeBoolean) }

// Float returns a new float field (FLOAT).
func Float(name string) *Builder { return newBuilder(name, TypeFloat) }

// Double returns a new double field (DECIMAL).
func Double(name string) *Builder { return newBuilder(name, TypeDouble) }

// Long returns a new long field (BIGINT).
func Long(name string) *Builder { return newBuilder(name, TypeLong) }

// Short returns a new short field (SMALLINT).
func Short(name string) *Builder { return newBuilder(name, TypeShort) }

// Time returns a new timestamp field (TIMESTAMP).
func Time(name string) *Builder { return newBuilder(name, TypeTimestamp) }

// Other returns a field of an unspecified value type. Its column type must
// be set with SQLType.
func Other(name string) *Builder { return newBuilder(name, TypeOther) }

// Column sets the storage column name.
func (b *Builder) Column(name string) *Builder {
	b.desc.Column = name
	return b
}

// SQLType sets the column type.
func (b *Builder) SQLType(t sqltype.Type) *Builder {
	b.desc.SQLType = t
	return b
}

// Size sets the size qualifier of the column type.
func (b *Builder) Size(n int64) *Builder {
	b.desc.Size = n
	return b
}

// PrimaryKey marks the field as the primary key.
func (b *Builder) PrimaryKey() *Builder {
	b.desc.PrimaryKey = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	return b
}

// References adds a foreign key to table(column).
func (b *Builder) References(table, column string) *Builder {
	b.desc.ForeignKey = &ForeignKey{Table: table, Column: column}
	return b
}

// OnDelete sets the ON DELETE action of the foreign key.
// It has no effect before References.
func (b *Builder) OnDelete(a Action) *Builder {
	if b.desc.ForeignKey != nil {
		b.desc.ForeignKey.OnDelete = a
	}
	return b
}

// OnUpdate sets the ON UPDATE action of the foreign key.
// It has no effect before References.
func (b *Builder) OnUpdate(a Action) *Builder {
	if b.desc.ForeignKey != nil {
		b.desc.ForeignKey.OnUpdate = a
	}
	return b
}

// Comment sets the field comment, copied to the emitted struct field.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the schema.Field interface.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
