// Package gen maps entity descriptors to tables and CRUD statements and
// drives the emission of data access code.
//
// # Architecture
//
// A generation pass follows this flow:
//
//	Entity descriptors (schema.Entity, load.ReadFile, load.FromStruct)
//	        ↓
//	   MapEntity (schema mapper, one Table per entity)
//	        ↓
//	   NewStatements (CREATE, INSERT, SELECT, LIST, UPDATE, DELETE)
//	        ↓
//	   Graph (results of the pass, creation order)
//	        ↓
//	   Generator (jennifer files) → Sink (directory or memory)
//
// # Key Types
//
//   - Table, Column, ForeignKey: the mapped relational model of an entity
//   - Statements, Statement, Param, Decode: statement texts with their
//     positional binding and result decoding plans
//   - Graph, Result: the outcome of mapping every entity of a pass
//   - PlanSet, Plan: the serialisable export of a pass (JSON, YAML, msgpack)
//   - Config: settings of a pass, built with functional options
//
// # Error Handling
//
// Mapping failures are reported per entity with structured error types:
//
//   - SchemaError: malformed declarations
//   - MissingColumnTypeError: a field without a resolvable column type
//   - SizeConstraintError: a size above the maximum of its column type
//   - MissingPrimaryKeyError, MultiplePrimaryKeyError: key cardinality
//   - ConfigError, GenerationError: invalid options and emission failures
//
// Failed entities do not stop the pass. Graph.Err aggregates them:
//
//	g := gen.NewGraph(cfg, descs...)
//	if err := g.Err(); err != nil {
//	    var agg *gen.AggregateError
//	    if errors.As(err, &agg) {
//	        for _, e := range agg.Errors { ... }
//	    }
//	}
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./dao"),
//	    gen.WithPackage("dao"),
//	    gen.WithWorkers(4),
//	    gen.WithLogger(logger),
//	)
//
// # Usage
//
// The SQL dialect lives in the sql subpackage:
//
//	import "github.com/syssam/daogen/compiler/gen/sql"
//
//	g := gen.NewGraph(cfg, descs...)
//	err := sql.Generate(ctx, g, gen.NewDirSink(cfg.Target))
//
// Or configure the generator manually:
//
//	err := gen.NewJenniferGenerator(g, gen.NewMemSink()).
//	    WithDialect(sql.NewDialect()).
//	    WithWorkers(4).
//	    Generate(ctx)
package gen
