package sql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("connection refused")},
		{
			name:   "mysql_duplicate",
			err:    &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a' for key 'name'"},
			unique: true,
		},
		{
			name:       "mysql_parent_row",
			err:        fmt.Errorf("dialect/sql: exec: %w", &mysql.MySQLError{Number: 1451}),
			foreignKey: true,
		},
		{
			name:       "mysql_child_row",
			err:        &mysql.MySQLError{Number: 1452},
			foreignKey: true,
		},
		{
			name: "mysql_other",
			err:  &mysql.MySQLError{Number: 1146, Message: "Table 'app.users' doesn't exist"},
		},
		{
			name:   "sqlite_unique",
			err:    errors.New("constraint failed: UNIQUE constraint failed: users.name (2067)"),
			unique: true,
		},
		{
			name:   "sqlite_primary_key",
			err:    errors.New("constraint failed: PRIMARY KEY constraint failed: users.id (1555)"),
			unique: true,
		},
		{
			name:       "sqlite_foreign_key",
			err:        errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			foreignKey: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueConstraintError(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyConstraintError(tt.err))
			assert.Equal(t, tt.unique || tt.foreignKey, IsConstraintError(tt.err))
		})
	}
}
