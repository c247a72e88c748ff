// Package daogen holds the runtime error types shared by the generated
// data-access code executors.
//
// The generator itself lives in compiler/gen, entity descriptors in schema,
// and the database runtime in dialect/sql.
package daogen
