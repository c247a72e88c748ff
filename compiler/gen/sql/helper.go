package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema/field"
)

const (
	contextPkg = "context"
	sqlPkg     = "database/sql"
)

// ctxParam is the first parameter of every generated function.
func ctxParam() jen.Code {
	return jen.Id("ctx").Qual(contextPkg, "Context")
}

// dbParam is the database handle parameter of every generated function.
func dbParam() jen.Code {
	return jen.Id("db").Id("ExecQuerier")
}

// names holds the Go identifiers generated for one entity.
type names struct {
	typ    string            // struct name, e.g. "User".
	recv   string            // receiver name, e.g. "u".
	fields map[string]string // field name -> struct field name.
}

func newNames(r *gen.Result) *names {
	n := &names{
		typ:    r.Name(),
		recv:   r.Receiver(),
		fields: make(map[string]string, len(r.Table.Columns)),
	}
	for _, c := range r.Table.Columns {
		n.fields[c.Field] = gen.Pascal(c.Field)
	}
	return n
}

// ref returns the selector of a struct field on the receiver.
func (n *names) ref(fieldName string) *jen.Statement {
	return jen.Id(n.recv).Dot(n.fields[fieldName])
}

// has reports whether the struct declares a field with the given name.
func (n *names) has(id string) bool {
	for _, f := range n.fields {
		if f == id {
			return true
		}
	}
	return false
}

func (n *names) query(op gen.Op) string {
	return n.typ + gen.Pascal(string(op)) + "Query"
}

// bind returns the arguments of a statement in placeholder order.
func (n *names) bind(params []gen.Param, key jen.Code) []jen.Code {
	args := make([]jen.Code, 0, len(params))
	for _, p := range params {
		if key != nil && p.Key {
			args = append(args, key)
			continue
		}
		args = append(args, n.ref(p.Field))
	}
	return args
}

// numeric reports whether a holder value type converts to a numeric field.
func numeric(goType string) bool {
	switch goType {
	case "int32", "int64", "float64":
		return true
	}
	return false
}

// typeHolders are the scan holders derived from the field value type. They
// are used when the column accessor has no holder that converts to the field.
var typeHolders = map[field.Type]sqltype.Holder{
	field.TypeInteger:   {Type: "NullInt64", Field: "Int64", Go: "int64"},
	field.TypeString:    {Type: "NullString", Field: "String", Go: "string"},
	field.TypeBoolean:   {Type: "NullBool", Field: "Bool", Go: "bool"},
	field.TypeFloat:     {Type: "NullFloat64", Field: "Float64", Go: "float64"},
	field.TypeDouble:    {Type: "NullFloat64", Field: "Float64", Go: "float64"},
	field.TypeLong:      {Type: "NullInt64", Field: "Int64", Go: "int64"},
	field.TypeShort:     {Type: "NullInt16", Field: "Int16", Go: "int16"},
	field.TypeTimestamp: {Type: "NullTime", Field: "Time", Go: "time.Time"},
}

// holder returns the scan holder of a decoded column. Other fields without
// an accessor holder scan into the field directly, which accepts NULL.
func holder(d gen.Decode) sqltype.Holder {
	h := d.Accessor.Holder()
	goType := d.Type.GoType()
	if h.Type != "" && (h.Go == goType || d.Type == field.TypeOther || numeric(h.Go) && d.Type.Numeric()) {
		return h
	}
	return typeHolders[d.Type]
}

// decode returns the scan destination of a column and the statement that
// copies the holder value to the struct field, if any. Every column with a
// typed field is read through a database/sql Null holder, so NULL values
// decode to the zero value.
func (n *names) decode(d gen.Decode) (decl, dest, set jen.Code) {
	h := holder(d)
	if h.Type == "" {
		return nil, jen.Op("&").Add(n.ref(d.Field)), nil
	}
	goType := d.Type.GoType()
	v := "v" + n.fields[d.Field]
	val := jen.Id(v).Dot(h.Field)
	if h.Go != goType && d.Type != field.TypeOther {
		val = jen.Id(goType).Call(val)
	}
	return jen.Id(v).Qual(sqlPkg, h.Type), jen.Op("&").Id(v), n.ref(d.Field).Op("=").Add(val)
}
