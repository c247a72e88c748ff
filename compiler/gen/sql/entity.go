package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/daogen/compiler/gen"
)

// genEntity generates the entity file ({entity}.go).
func genEntity(r *gen.Result) *jen.File {
	f := r.Graph().NewFile()
	n := newNames(r)

	genEntityStruct(f, r, n)
	genConstants(f, r, n)
	genCreateTable(f, n)
	genInsert(f, r, n)
	genGet(f, r, n)
	genList(f, r, n)
	if r.Statements.Update != nil {
		genUpdate(f, r, n)
	}
	genDelete(f, r, n)
	genScan(f, r, n)
	genRecordMethods(f, r, n)
	return f
}

// genEntityStruct generates the entity struct.
func genEntityStruct(f *jen.File, r *gen.Result, n *names) {
	f.Commentf("%s is the data-access model of table %s.", n.typ, r.Table.Name)
	f.Type().Id(n.typ).StructFunc(func(group *jen.Group) {
		for _, c := range r.Table.Columns {
			fld := jen.Id(n.fields[c.Field]).Add(gen.GoType(c)).Tag(map[string]string{
				"json": c.Field,
				"db":   c.Name,
			})
			if c.Comment != "" {
				fld.Comment(c.Comment)
			}
			group.Add(fld)
		}
	})
}

// genConstants generates the table, column and query constants.
func genConstants(f *jen.File, r *gen.Result, n *names) {
	f.Const().DefsFunc(func(defs *jen.Group) {
		defs.Commentf("%sTable holds the table name of %s.", n.typ, n.typ)
		defs.Id(n.typ + "Table").Op("=").Lit(r.Table.Name)
		for _, c := range r.Table.Columns {
			defs.Id(n.typ + "Column" + n.fields[c.Field]).Op("=").Lit(c.Name)
		}
		defs.Line()
		defs.Commentf("%sCreateQuery creates the table of %s.", n.typ, n.typ)
		defs.Id(n.typ + "CreateQuery").Op("=").Lit(r.Statements.Create)
		for _, st := range r.Statements.All() {
			defs.Id(n.query(st.Op)).Op("=").Lit(st.Query)
		}
	})

	f.Commentf("%sColumns holds the columns of %s in statement order.", n.typ, n.typ)
	f.Var().Id(n.typ + "Columns").Op("=").Index().String().ValuesFunc(func(vals *jen.Group) {
		for _, c := range r.Table.Columns {
			vals.Id(n.typ + "Column" + n.fields[c.Field])
		}
	})
}

// genCreateTable generates Create{T}Table.
func genCreateTable(f *jen.File, n *names) {
	name := "Create" + n.typ + "Table"
	f.Commentf("%s creates the table of %s if it does not exist.", name, n.typ)
	f.Func().Id(name).Params(ctxParam(), dbParam()).Error().Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("db").Dot("ExecContext").Call(
			jen.Id("ctx"), jen.Id(n.typ+"CreateQuery"),
		),
		jen.Return(jen.Err()),
	)
}

// genInsert generates Insert{T}.
func genInsert(f *jen.File, r *gen.Result, n *names) {
	name := "Insert" + n.typ
	f.Commentf("%s inserts %s as a new row.", name, n.recv)
	f.Func().Id(name).Params(ctxParam(), dbParam(), jen.Id(n.recv).Op("*").Id(n.typ)).Error().Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("db").Dot("ExecContext").Call(
			append([]jen.Code{jen.Id("ctx"), jen.Id(n.query(gen.OpInsert))},
				n.bind(r.Statements.Insert.Params, nil)...)...,
		),
		jen.Return(jen.Err()),
	)
}

// genGet generates Get{T}.
func genGet(f *jen.File, r *gen.Result, n *names) {
	name := "Get" + n.typ
	pk := r.Table.PrimaryKey
	f.Commentf("%s returns the %s with the given key, or ErrNotFound.", name, n.typ)
	f.Func().Id(name).Params(ctxParam(), dbParam(), jen.Id("key").Add(gen.GoType(pk))).
		Params(jen.Op("*").Id(n.typ), jen.Error()).Block(
		jen.List(jen.Id("rows"), jen.Err()).Op(":=").Id("db").Dot("QueryContext").Call(
			append([]jen.Code{jen.Id("ctx"), jen.Id(n.query(gen.OpSelect))},
				n.bind(r.Statements.Select.Params, jen.Id("key"))...)...,
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Defer().Id("rows").Dot("Close").Call(),
		jen.If(jen.Op("!").Id("rows").Dot("Next").Call()).Block(
			jen.If(jen.Err().Op(":=").Id("rows").Dot("Err").Call(), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Err()),
			),
			jen.Return(jen.Nil(), jen.Id("ErrNotFound")),
		),
		jen.Id(n.recv).Op(":=").Op("&").Id(n.typ).Values(),
		jen.If(jen.Err().Op(":=").Id(n.recv).Dot("scan").Call(jen.Id("rows")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Id(n.recv), jen.Id("rows").Dot("Err").Call()),
	)
}

// genList generates List{Ts}.
func genList(f *jen.File, r *gen.Result, n *names) {
	name := "List" + gen.Plural(n.typ)
	f.Commentf("%s returns all rows of table %s.", name, r.Table.Name)
	f.Func().Id(name).Params(ctxParam(), dbParam()).
		Params(jen.Index().Op("*").Id(n.typ), jen.Error()).Block(
		jen.List(jen.Id("rows"), jen.Err()).Op(":=").Id("db").Dot("QueryContext").Call(
			jen.Id("ctx"), jen.Id(n.query(gen.OpList)),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Defer().Id("rows").Dot("Close").Call(),
		jen.Var().Id("list").Index().Op("*").Id(n.typ),
		jen.For(jen.Id("rows").Dot("Next").Call()).Block(
			jen.Id(n.recv).Op(":=").Op("&").Id(n.typ).Values(),
			jen.If(jen.Err().Op(":=").Id(n.recv).Dot("scan").Call(jen.Id("rows")), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Err()),
			),
			jen.Id("list").Op("=").Append(jen.Id("list"), jen.Id(n.recv)),
		),
		jen.Return(jen.Id("list"), jen.Id("rows").Dot("Err").Call()),
	)
}

// genUpdate generates Update{T}.
func genUpdate(f *jen.File, r *gen.Result, n *names) {
	name := "Update" + n.typ
	f.Commentf("%s updates the row of %s by key.", name, n.recv)
	f.Func().Id(name).Params(ctxParam(), dbParam(), jen.Id(n.recv).Op("*").Id(n.typ)).Error().Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("db").Dot("ExecContext").Call(
			append([]jen.Code{jen.Id("ctx"), jen.Id(n.query(gen.OpUpdate))},
				n.bind(r.Statements.Update.Params, nil)...)...,
		),
		jen.Return(jen.Err()),
	)
}

// genDelete generates Delete{T}.
func genDelete(f *jen.File, r *gen.Result, n *names) {
	name := "Delete" + n.typ
	pk := r.Table.PrimaryKey
	f.Commentf("%s deletes the %s with the given key, or returns ErrNotFound.", name, n.typ)
	f.Func().Id(name).Params(ctxParam(), dbParam(), jen.Id("key").Add(gen.GoType(pk))).Error().Block(
		jen.List(jen.Id("res"), jen.Err()).Op(":=").Id("db").Dot("ExecContext").Call(
			append([]jen.Code{jen.Id("ctx"), jen.Id(n.query(gen.OpDelete))},
				n.bind(r.Statements.Delete.Params, jen.Id("key"))...)...,
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.List(jen.Id("affected"), jen.Err()).Op(":=").Id("res").Dot("RowsAffected").Call(),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.If(jen.Id("affected").Op("==").Lit(0)).Block(jen.Return(jen.Id("ErrNotFound"))),
		jen.Return(jen.Nil()),
	)
}

// genScan generates the scan method that decodes one row into the receiver.
func genScan(f *jen.File, r *gen.Result, n *names) {
	var decls, dests, sets []jen.Code
	for _, d := range r.Statements.Decode {
		decl, dest, set := n.decode(d)
		if decl != nil {
			decls = append(decls, decl)
		}
		dests = append(dests, dest)
		if set != nil {
			sets = append(sets, set)
		}
	}
	f.Func().Params(jen.Id(n.recv).Op("*").Id(n.typ)).Id("scan").
		Params(jen.Id("rows").Op("*").Qual(sqlPkg, "Rows")).Error().BlockFunc(func(body *jen.Group) {
		if len(decls) > 0 {
			body.Var().Defs(decls...)
		}
		body.If(jen.Err().Op(":=").Id("rows").Dot("Scan").Call(dests...), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		)
		for _, s := range sets {
			body.Add(s)
		}
		body.Return(jen.Nil())
	})
}

// genRecordMethods generates the methods acting on the current record.
// A method is skipped when a struct field has the same name.
func genRecordMethods(f *jen.File, r *gen.Result, n *names) {
	method := func(name, doc string, call jen.Code) {
		if n.has(name) {
			return
		}
		f.Comment(doc)
		f.Func().Params(jen.Id(n.recv).Op("*").Id(n.typ)).Id(name).
			Params(ctxParam(), dbParam()).Error().Block(jen.Return(call))
	}
	method("Insert", "Insert inserts the record.",
		jen.Id("Insert"+n.typ).Call(jen.Id("ctx"), jen.Id("db"), jen.Id(n.recv)))
	if r.Statements.Update != nil {
		method("Update", "Update updates the record by key.",
			jen.Id("Update"+n.typ).Call(jen.Id("ctx"), jen.Id("db"), jen.Id(n.recv)))
	}
	method("Delete", "Delete deletes the record by key.",
		jen.Id("Delete"+n.typ).Call(jen.Id("ctx"), jen.Id("db"), n.ref(r.Table.PrimaryKey.Field)))
}
