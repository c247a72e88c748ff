package gen

import (
	"strings"

	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema/field"
)

// Op identifies the operation of a statement.
type Op string

// Statement operations.
const (
	OpCreate Op = "create"
	OpInsert Op = "insert"
	OpSelect Op = "select"
	OpList   Op = "list"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Param binds one placeholder of a statement to a field.
// Index is 1-based and equals the position of the "?" in the query.
type Param struct {
	Index  int    `json:"index" yaml:"index"`
	Field  string `json:"field" yaml:"field"`
	Column string `json:"column" yaml:"column"`
	Key    bool   `json:"key,omitempty" yaml:"key,omitempty"`
}

// Decode reads one result column into a field.
type Decode struct {
	Column   string           `json:"column" yaml:"column"`
	Field    string           `json:"field" yaml:"field"`
	Type     field.Type       `json:"type" yaml:"type"`
	Accessor sqltype.Accessor `json:"accessor" yaml:"accessor"`
}

// Statement is a parameterised query with its positional binding plan.
type Statement struct {
	Op     Op      `json:"op" yaml:"op"`
	Query  string  `json:"query" yaml:"query"`
	Params []Param `json:"params,omitempty" yaml:"params,omitempty"`
}

// Statements holds the CRUD statements of a table.
type Statements struct {
	Create string     `json:"create" yaml:"create"`
	Insert *Statement `json:"insert" yaml:"insert"`
	Select *Statement `json:"select" yaml:"select"`
	List   *Statement `json:"list" yaml:"list"`
	// Update is nil when the table has no column besides its key.
	Update *Statement `json:"update,omitempty" yaml:"update,omitempty"`
	Delete *Statement `json:"delete" yaml:"delete"`
	// Decode is the result plan shared by Select and List.
	Decode []Decode `json:"decode" yaml:"decode"`
}

// All returns the non-nil statements in a fixed order.
func (s *Statements) All() []*Statement {
	all := make([]*Statement, 0, 5)
	for _, st := range []*Statement{s.Insert, s.Select, s.List, s.Update, s.Delete} {
		if st != nil {
			all = append(all, st)
		}
	}
	return all
}

// NewStatements derives the statements of a mapped table. It has no error
// path; t must come from MapEntity or a decoded plan.
func NewStatements(t *Table) *Statements {
	pk := t.PrimaryKey
	if pk == nil {
		t.link()
		pk = t.PrimaryKey
	}
	var (
		names    = make([]string, len(t.Columns))
		marks    = make([]string, len(t.Columns))
		insert   = make([]Param, len(t.Columns))
		decode   = make([]Decode, len(t.Columns))
		sets     []string
		update   []Param
		keyParam = Param{Index: 1, Field: pk.Field, Column: pk.Name, Key: true}
	)
	for i, c := range t.Columns {
		names[i] = c.Name
		marks[i] = "?"
		insert[i] = Param{Index: i + 1, Field: c.Field, Column: c.Name, Key: c.PrimaryKey}
		decode[i] = Decode{Column: c.Name, Field: c.Field, Type: c.Type, Accessor: c.Accessor}
		if c.PrimaryKey {
			continue
		}
		sets = append(sets, c.Name+"=?")
		update = append(update, Param{Index: len(update) + 1, Field: c.Field, Column: c.Name})
	}
	cols := strings.Join(names, ",")
	s := &Statements{
		Create: t.CreateStatement(),
		Insert: &Statement{
			Op:     OpInsert,
			Query:  "INSERT INTO " + t.Name + " (" + cols + ") VALUES (" + strings.Join(marks, ",") + ")",
			Params: insert,
		},
		Select: &Statement{
			Op:     OpSelect,
			Query:  "SELECT " + cols + " FROM " + t.Name + " WHERE " + pk.Name + " = ?",
			Params: []Param{keyParam},
		},
		List: &Statement{
			Op:    OpList,
			Query: "SELECT " + cols + " FROM " + t.Name,
		},
		Delete: &Statement{
			Op:     OpDelete,
			Query:  "DELETE FROM " + t.Name + " WHERE " + pk.Name + "=?",
			Params: []Param{keyParam},
		},
		Decode: decode,
	}
	if len(sets) > 0 {
		key := keyParam
		key.Index = len(update) + 1
		s.Update = &Statement{
			Op:     OpUpdate,
			Query:  "UPDATE " + t.Name + " SET " + strings.Join(sets, ",") + " WHERE " + pk.Name + "=?",
			Params: append(update, key),
		}
	}
	return s
}
