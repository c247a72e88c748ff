package dialect

import "context"

// Dialect names of the supported execution targets.
const (
	MySQL  = "mysql"
	SQLite = "sqlite"
)

// Valid reports whether name is a supported dialect.
func Valid(name string) bool {
	return name == MySQL || name == SQLite
}

// ExecQuerier wraps the two database operations.
type ExecQuerier interface {
	// Exec executes a statement that returns no rows. v, if not nil, must
	// be a *sql.Result receiving the outcome.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows into v.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for executing
// generated statements.
type Driver interface {
	ExecQuerier
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}
