package sql

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/daogen/compiler/gen"
)

// Dialect renders data-access code for the MySQL-flavoured SQL dialect.
type Dialect struct{}

// NewDialect returns the SQL dialect generator.
func NewDialect() *Dialect {
	return &Dialect{}
}

// Verify Dialect implements gen.Generator at compile time.
var _ gen.Generator = (*Dialect)(nil)

// GenEntity implements gen.Generator.
func (*Dialect) GenEntity(r *gen.Result) *jen.File {
	if !r.OK() {
		return nil
	}
	return genEntity(r)
}

// GenShared implements gen.Generator.
func (*Dialect) GenShared(g *gen.Graph) *jen.File {
	return genShared(g)
}

// Generate is a convenience function to render the graph with the SQL
// dialect into sink.
//
// Example:
//
//	import "github.com/syssam/daogen/compiler/gen/sql"
//	err := sql.Generate(ctx, graph, gen.NewDirSink(graph.Target))
func Generate(ctx context.Context, g *gen.Graph, sink gen.Sink) error {
	return gen.NewJenniferGenerator(g, sink).WithDialect(NewDialect()).Generate(ctx)
}
