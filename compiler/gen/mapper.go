package gen

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

// Constraint clauses of a column, in rendering order.
const (
	PrimaryKeyConstraint = "PRIMARY KEY"
	UniqueConstraint     = "UNIQUE"
)

// ForeignKey is the table-level reference clause derived from a field.
type ForeignKey struct {
	Column    string       `json:"column" yaml:"column"`
	RefTable  string       `json:"ref_table" yaml:"ref_table"`
	RefColumn string       `json:"ref_column" yaml:"ref_column"`
	OnDelete  field.Action `json:"on_delete,omitempty" yaml:"on_delete,omitempty"`
	OnUpdate  field.Action `json:"on_update,omitempty" yaml:"on_update,omitempty"`
}

// Clause renders the FOREIGN KEY clause.
func (fk *ForeignKey) Clause() string {
	var b strings.Builder
	b.WriteString("FOREIGN KEY (")
	b.WriteString(fk.Column)
	b.WriteString(") REFERENCES ")
	b.WriteString(fk.RefTable)
	b.WriteString("(")
	b.WriteString(fk.RefColumn)
	b.WriteString(")")
	if fk.OnDelete != "" {
		b.WriteString(" ON DELETE ")
		b.WriteString(string(fk.OnDelete))
	}
	if fk.OnUpdate != "" {
		b.WriteString(" ON UPDATE ")
		b.WriteString(string(fk.OnUpdate))
	}
	return b.String()
}

// Column is the validated column model of one field.
type Column struct {
	Name        string           `json:"name" yaml:"name"`
	Field       string           `json:"field" yaml:"field"`
	Type        field.Type       `json:"type" yaml:"type"`
	SQLType     sqltype.Type     `json:"sql_type" yaml:"sql_type"`
	Size        int64            `json:"size,omitempty" yaml:"size,omitempty"`
	TypeClause  string           `json:"type_clause" yaml:"type_clause"`
	Constraints []string         `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	ForeignKey  *ForeignKey      `json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	Accessor    sqltype.Accessor `json:"accessor" yaml:"accessor"`
	PrimaryKey  bool             `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	Unique      bool             `json:"unique,omitempty" yaml:"unique,omitempty"`
	Comment     string           `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ConstraintClause returns the constraints of the column joined by a space.
func (c *Column) ConstraintClause() string {
	return strings.Join(c.Constraints, " ")
}

// Definition returns the column definition used in CREATE TABLE.
func (c *Column) Definition() string {
	def := c.Name + " " + c.TypeClause
	if cc := c.ConstraintClause(); cc != "" {
		def += " " + cc
	}
	return def
}

// Table is the validated column model of one entity.
type Table struct {
	Name    string    `json:"name" yaml:"name"`
	Entity  string    `json:"entity" yaml:"entity"`
	Columns []*Column `json:"columns" yaml:"columns"`
	// PrimaryKey points into Columns. It is restored by link after decoding.
	PrimaryKey *Column `json:"-" yaml:"-" msgpack:"-"`
}

// link sets the PrimaryKey of a decoded table.
func (t *Table) link() {
	t.PrimaryKey = nil
	for _, c := range t.Columns {
		if c.PrimaryKey {
			t.PrimaryKey = c
			return
		}
	}
}

// ForeignKeys returns the foreign keys of the table in column order.
func (t *Table) ForeignKeys() []*ForeignKey {
	var fks []*ForeignKey
	for _, c := range t.Columns {
		if c.ForeignKey != nil {
			fks = append(fks, c.ForeignKey)
		}
	}
	return fks
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// CreateStatement returns the CREATE TABLE statement of the table.
func (t *Table) CreateStatement() string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		defs = append(defs, c.Definition())
	}
	for _, fk := range t.ForeignKeys() {
		defs = append(defs, fk.Clause())
	}
	return "CREATE TABLE IF NOT EXISTS " + t.Name + " (" + strings.Join(defs, ", ") + ")"
}

// MapEntity validates an entity descriptor and derives its column model.
// It stops at the first invalid field and never returns a partial table.
func MapEntity(d *schema.Descriptor) (*Table, error) {
	if d == nil {
		return nil, NewSchemaError("", "", "nil descriptor", nil)
	}
	t := &Table{Name: d.TableName(), Entity: d.Name}
	if t.Name == "" {
		return nil, NewSchemaError(d.Name, "", "empty table name", nil)
	}
	if !token.IsIdentifier(pascal(d.Name)) {
		return nil, NewSchemaError(d.Name, "", fmt.Sprintf("entity name %q is not a valid Go identifier", d.Name), nil)
	}
	if len(d.Fields) == 0 {
		return nil, NewSchemaError(d.Name, "", "entity has no fields", nil)
	}
	var (
		keys   []string
		seen   = make(map[string]struct{}, len(d.Fields))
		fields = make(map[string]string, len(d.Fields))
	)
	for _, fd := range d.Fields {
		c, err := mapField(d.Name, fd)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[c.Name]; ok {
			return nil, NewSchemaError(d.Name, fd.Name, "duplicate column "+c.Name, nil)
		}
		id := pascal(fd.Name)
		if !token.IsIdentifier(id) {
			return nil, NewSchemaError(d.Name, fd.Name, fmt.Sprintf("field name %q is not a valid Go identifier", fd.Name), nil)
		}
		if prev, ok := fields[id]; ok {
			if prev == fd.Name {
				return nil, NewSchemaError(d.Name, fd.Name, "duplicate field", nil)
			}
			return nil, NewSchemaError(d.Name, fd.Name, "Go name "+id+" already used by field "+prev, nil)
		}
		seen[c.Name] = struct{}{}
		fields[id] = fd.Name
		if c.PrimaryKey {
			keys = append(keys, fd.Name)
		}
		t.Columns = append(t.Columns, c)
	}
	switch {
	case len(keys) == 0:
		return nil, &MissingPrimaryKeyError{Entity: d.Name}
	case len(keys) > 1:
		return nil, &MultiplePrimaryKeyError{Entity: d.Name, Fields: keys}
	}
	t.link()
	return t, nil
}

func mapField(entity string, fd *field.Descriptor) (*Column, error) {
	if fd == nil || fd.Name == "" {
		return nil, NewSchemaError(entity, "", "empty field name", nil)
	}
	if !fd.SQLType.Valid() {
		return nil, &MissingColumnTypeError{Entity: entity, Field: fd.Name}
	}
	info, _ := sqltype.Lookup(fd.SQLType)
	if info.Sizeable && fd.Size > info.MaxSize {
		return nil, &SizeConstraintError{
			Entity:  entity,
			Field:   fd.Name,
			Type:    string(info.Type),
			Size:    fd.Size,
			MaxSize: info.MaxSize,
		}
	}
	c := &Column{
		Name:       fd.ColumnName(),
		Field:      fd.Name,
		Type:       fd.Type,
		SQLType:    info.Type,
		Size:       fd.Size,
		TypeClause: info.Clause(fd.Size),
		Accessor:   sqltype.AccessorOf(info.Type),
		PrimaryKey: fd.PrimaryKey,
		Unique:     fd.Unique,
		Comment:    fd.Comment,
	}
	if c.PrimaryKey {
		c.Constraints = append(c.Constraints, PrimaryKeyConstraint)
	}
	if c.Unique {
		c.Constraints = append(c.Constraints, UniqueConstraint)
	}
	if fk := fd.ForeignKey; fk != nil {
		if fk.Table == "" || fk.Column == "" {
			return nil, NewSchemaError(entity, fd.Name, "foreign key without target", nil)
		}
		for _, a := range []field.Action{fk.OnDelete, fk.OnUpdate} {
			if !a.Valid() {
				return nil, NewSchemaError(entity, fd.Name, fmt.Sprintf("unknown referential action %q", a), nil)
			}
		}
		c.ForeignKey = &ForeignKey{
			Column:    c.Name,
			RefTable:  fk.Table,
			RefColumn: fk.Column,
			OnDelete:  fk.OnDelete,
			OnUpdate:  fk.OnUpdate,
		}
	}
	return c, nil
}
