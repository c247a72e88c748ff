package sql

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/daogen"
	"github.com/syssam/daogen/dialect"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	drv, err := Open(dialect.SQLite, filepath.Join(t.TempDir(), "daogen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { drv.Close() })

	plan := newPlan(t, schema.Entity("Account",
		field.Long("id").PrimaryKey(),
		field.String("email").Size(120).Unique(),
		field.Bool("active"),
		field.Double("balance"),
		field.Time("created_at"),
	).Descriptor())
	exec := NewExecutor(drv, plan)
	require.NoError(t, exec.CreateTable(ctx))
	require.NoError(t, exec.CreateTable(ctx), "create is idempotent")

	created := time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)
	require.NoError(t, exec.Insert(ctx, Record{
		"id":         int64(1),
		"email":      "a@example.com",
		"active":     true,
		"balance":    12.5,
		"created_at": created,
	}))

	got, err := exec.Get(ctx, int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got["id"])
	assert.Equal(t, "a@example.com", got["email"])
	assert.Equal(t, true, got["active"])
	assert.Equal(t, 12.5, got["balance"])
	at, ok := got["created_at"].(time.Time)
	require.True(t, ok, "created_at is %T", got["created_at"])
	assert.True(t, created.Equal(at))

	got["active"] = false
	got["balance"] = 0.25
	require.NoError(t, exec.Update(ctx, got))

	require.NoError(t, exec.Insert(ctx, Record{
		"id":         int64(2),
		"email":      "b@example.com",
		"active":     true,
		"balance":    1.0,
		"created_at": created,
	}))
	err = exec.Insert(ctx, Record{
		"id":         int64(3),
		"email":      "b@example.com",
		"active":     true,
		"balance":    1.0,
		"created_at": created,
	})
	require.Error(t, err)
	assert.True(t, daogen.IsConstraintError(err))

	all, err := exec.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	byID := map[int64]Record{}
	for _, r := range all {
		byID[r["id"].(int64)] = r
	}
	assert.Equal(t, false, byID[1]["active"])
	assert.Equal(t, 0.25, byID[1]["balance"])

	require.NoError(t, exec.Delete(ctx, int64(1)))
	_, err = exec.Get(ctx, int64(1))
	assert.True(t, daogen.IsNotFound(err))
	assert.True(t, daogen.IsNotFound(exec.Delete(ctx, int64(1))))
}
