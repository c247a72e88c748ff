// Package dialect defines the driver interfaces used to execute generated
// statements.
//
// daogen emits a single MySQL-flavoured SQL dialect. Two database/sql driver
// names are accepted as execution targets:
//
//	dialect.MySQL  = "mysql"
//	dialect.SQLite = "sqlite"
//
// SQLite runs the same statement texts and serves local runs and tests.
//
// # Driver Interface
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Close() error
//	    Dialect() string
//	}
//
// # Usage
//
//	import (
//	    "github.com/syssam/daogen/dialect"
//	    "github.com/syssam/daogen/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.MySQL, "user:pass@tcp(localhost:3306)/app")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
package dialect
