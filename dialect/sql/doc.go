// Package sql runs generated statements on database/sql.
//
// Driver wraps a *sql.DB and implements dialect.Driver. Open accepts the
// "mysql" and "sqlite" driver names; MySQL data source names are parsed and
// normalized to scan DATETIME columns into time.Time.
//
//	drv, err := sql.Open(dialect.MySQL, "root:pass@tcp(localhost:3306)/app")
//	if err != nil {
//		return err
//	}
//	defer drv.Close()
//
// # Executor
//
// An Executor runs the statements of one exported plan. Records are maps
// keyed by field name; arguments are bound following the placeholder plan
// of each statement and rows are decoded following the decode plan.
//
//	exec := sql.NewExecutor(drv, plan)
//	if err := exec.CreateTable(ctx); err != nil {
//		return err
//	}
//	err := exec.Insert(ctx, sql.Record{"id": 1, "name": "alice", "age": 30})
//	rec, err := exec.Get(ctx, 1)
//
// Missing rows are reported as *daogen.NotFoundError, constraint
// violations as daogen.ConstraintError and unbound fields as
// *daogen.MissingValueError.
//
// # Observability
//
// Debug logs every statement through logrus. NewStatsDriver counts
// statements and reports slow ones.
//
//	drv := sql.Debug(drv, logger)
//	sd := sql.NewStatsDriver(drv, sql.WithSlowQueryLog(logger))
package sql
