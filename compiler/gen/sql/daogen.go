package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/daogen/compiler/gen"
)

// genShared generates the daogen.go file with the declarations shared by
// all entities.
func genShared(g *gen.Graph) *jen.File {
	f := g.NewFile()
	pkg := g.Output().Package

	f.Comment("ExecQuerier wraps the database/sql methods used by the generated code.")
	f.Comment("*sql.DB, *sql.Tx and *sql.Conn implement it.")
	f.Type().Id("ExecQuerier").Interface(
		jen.Id("ExecContext").Params(ctxParam(), jen.Id("query").String(), jen.Id("args").Op("...").Any()).
			Params(jen.Qual(sqlPkg, "Result"), jen.Error()),
		jen.Id("QueryContext").Params(ctxParam(), jen.Id("query").String(), jen.Id("args").Op("...").Any()).
			Params(jen.Op("*").Qual(sqlPkg, "Rows"), jen.Error()),
	)

	f.Comment("ErrNotFound is returned when no row matches the given key.")
	f.Var().Id("ErrNotFound").Op("=").Qual("errors", "New").Call(jen.Lit(pkg + ": not found"))

	order := g.CreateOrder()
	f.Comment("CreateTables creates the tables of all entities. Referenced tables are")
	f.Comment("created first.")
	f.Func().Id("CreateTables").Params(ctxParam(), dbParam()).Error().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("create")).Op(":=").Range().Index().Func().
			Params(jen.Qual(contextPkg, "Context"), jen.Id("ExecQuerier")).Error().
			ValuesFunc(func(vals *jen.Group) {
				for _, r := range order {
					vals.Id("Create" + r.Name() + "Table")
				}
			})).Block(
			jen.If(jen.Err().Op(":=").Id("create").Call(jen.Id("ctx"), jen.Id("db")), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Err()),
			),
		),
		jen.Return(jen.Nil()),
	)
	return f
}
