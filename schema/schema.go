package schema

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/daogen/schema/field"
)

// Field is implemented by field builders.
type Field interface {
	Descriptor() *field.Descriptor
}

// Mixin is a reusable group of fields. Mixed-in fields precede the fields
// of the entity.
type Mixin interface {
	Fields() []Field
}

// Descriptor describes one entity and the table it maps to.
type Descriptor struct {
	Name   string              // type name, e.g. "User".
	Table  string              // table name, defaults to the lowercase Name.
	Fields []*field.Descriptor // ordered fields.
}

var lower = cases.Lower(language.Und)

// TableName returns the table of the entity.
func (d *Descriptor) TableName() string {
	if d.Table != "" {
		return d.Table
	}
	return lower.String(d.Name)
}

// Builder builds an entity descriptor.
type Builder struct {
	name   string
	table  string
	mixins []Mixin
	fields []Field
}

// Entity starts the declaration of an entity.
func Entity(name string, fields ...Field) *Builder {
	return &Builder{name: name, fields: fields}
}

// Table overrides the table name.
func (b *Builder) Table(name string) *Builder {
	b.table = name
	return b
}

// Fields appends fields to the entity.
func (b *Builder) Fields(fields ...Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Mixin adds field groups to the entity.
func (b *Builder) Mixin(mixins ...Mixin) *Builder {
	b.mixins = append(b.mixins, mixins...)
	return b
}

// Descriptor returns the entity descriptor. Every call returns a new
// descriptor with copies of the field descriptors.
func (b *Builder) Descriptor() *Descriptor {
	d := &Descriptor{Name: b.name, Table: b.table}
	for _, m := range b.mixins {
		for _, f := range m.Fields() {
			d.Fields = append(d.Fields, copyField(f.Descriptor()))
		}
	}
	for _, f := range b.fields {
		d.Fields = append(d.Fields, copyField(f.Descriptor()))
	}
	return d
}

func copyField(fd *field.Descriptor) *field.Descriptor {
	c := *fd
	if fd.ForeignKey != nil {
		fk := *fd.ForeignKey
		c.ForeignKey = &fk
	}
	return &c
}
