package gen

import (
	"bytes"
	"context"
	"runtime"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/daogen/schema/field"
)

// SharedFile is the name of the graph-level file.
const SharedFile = "daogen.go"

// Generator renders Go files for a generation pass. A nil file means the
// generator has nothing to emit.
type Generator interface {
	// GenEntity renders the data-access code of one mapped entity.
	GenEntity(r *Result) *jen.File
	// GenShared renders the declarations shared by all entities.
	GenShared(g *Graph) *jen.File
}

// JenniferGenerator renders the mapped entities of a graph in parallel and
// hands the files to a sink.
type JenniferGenerator struct {
	graph   *Graph
	sink    Sink
	workers int
	dialect Generator
}

// NewJenniferGenerator creates a generator for g writing to sink.
// You must call WithDialect() to set a dialect before calling Generate(),
// unless the graph config carries a Generator.
//
// Example:
//
//	import "github.com/syssam/daogen/compiler/gen/sql"
//
//	g := gen.NewGraph(cfg, descriptors...)
//	err := gen.NewJenniferGenerator(g, gen.NewDirSink("./dao")).
//		WithDialect(sql.NewDialect()).
//		Generate(ctx)
func NewJenniferGenerator(g *Graph, sink Sink) *JenniferGenerator {
	jg := &JenniferGenerator{
		graph:   g,
		sink:    sink,
		workers: runtime.GOMAXPROCS(0),
	}
	if g.Config != nil {
		jg.workers = g.workers()
		jg.dialect = g.Generator
	}
	return jg
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithDialect sets the generator that renders the files.
func (g *JenniferGenerator) WithDialect(d Generator) *JenniferGenerator {
	g.dialect = d
	return g
}

// Generate renders every mapped entity and the shared file.
//
// With FailFast set, nothing is emitted when any entity failed to map and
// the mapping error is returned. Otherwise the valid entities are emitted
// and the mapping error is returned afterwards.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Generator", nil, "no generator set: call WithDialect() before Generate()")
	}
	if g.sink == nil {
		return NewConfigError("Sink", nil, "sink cannot be nil")
	}
	log := g.graph.logger().WithField("pass", g.graph.Pass.String())
	mapErr := g.graph.Err()
	if mapErr != nil && g.graph.FailFast {
		log.WithError(mapErr).Error("generation aborted")
		return mapErr
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	nodes := g.graph.Nodes()
	for _, r := range nodes {
		errg.Go(func() error {
			return g.write(ctx, "entity", EntityFile(r), g.dialect.GenEntity(r))
		})
	}
	errg.Go(func() error {
		return g.write(ctx, "shared", SharedFile, g.dialect.GenShared(g.graph))
	})
	if err := errg.Wait(); err != nil {
		log.WithError(err).Error("generation failed")
		return err
	}
	log.WithField("entities", len(nodes)).Info("generation done")
	return mapErr
}

func (g *JenniferGenerator) write(ctx context.Context, phase, name string, f *jen.File) error {
	if f == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(phase, name, "render", err)
	}
	if err := g.sink.Write(ctx, name, buf.Bytes()); err != nil {
		return NewGenerationError(phase, name, "write", err)
	}
	return nil
}

// Generate renders the graph with the Generator of its config.
func Generate(ctx context.Context, g *Graph, sink Sink) error {
	if g.Config == nil || g.Generator == nil {
		return NewConfigError("Generator", nil, "missing generator in config")
	}
	return NewJenniferGenerator(g, sink).Generate(ctx)
}

// EntityFile returns the file name of an entity.
func EntityFile(r *Result) string {
	name := snake(r.Name()) + ".go"
	if name == SharedFile {
		name = snake(r.Name()) + "_entity.go"
	}
	return name
}

// NewFile creates a new Jennifer file of the generated package with the
// configured header comment.
func (g *Graph) NewFile() *jen.File {
	out := g.Output()
	f := jen.NewFile(out.Package)
	f.HeaderComment(strings.TrimPrefix(out.Header, "// "))
	return f
}

// GoType returns the Jennifer code of the Go type of a column.
func GoType(c *Column) jen.Code {
	switch c.Type {
	case field.TypeTimestamp:
		return jen.Qual("time", "Time")
	case field.TypeOther:
		return jen.Id("any")
	default:
		return jen.Id(c.Type.GoType())
	}
}
