// Package sql implements the SQL dialect code generator of daogen.
//
// The dialect renders one Go file per mapped entity plus a shared file:
//
//	{target}/
//	├── daogen.go    # ExecQuerier, ErrNotFound, CreateTables
//	└── {entity}.go  # struct, table/column/query constants, CRUD functions
//
// Generated functions take the database handle explicitly:
//
//	err := dao.CreateTables(ctx, db)
//	u := &dao.User{ID: 1, Name: "a8m", Age: 30}
//	err = u.Insert(ctx, db)
//	u, err = dao.GetUser(ctx, db, 1)
//	users, err := dao.ListUsers(ctx, db)
//
// Query texts are the statements of the compiler/gen plan, bound
// positionally in plan order.
package sql
