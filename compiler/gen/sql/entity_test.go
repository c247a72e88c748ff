package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

func TestGenEntity(t *testing.T) {
	r := newResult(usersEntity())
	code := NewDialect().GenEntity(r).GoString()

	t.Run("header and struct", func(t *testing.T) {
		assert.Contains(t, code, "// Code generated by daogen. DO NOT EDIT.")
		assert.Contains(t, code, "package dao")
		assert.Contains(t, code, "// User is the data-access model of table users.")
		assert.Contains(t, code, "type User struct")
		assert.Contains(t, code, "`db:\"name\" json:\"name\"`")
	})

	t.Run("statement constants", func(t *testing.T) {
		assert.Contains(t, code, `"users"`)
		assert.Contains(t, code, `"CREATE TABLE IF NOT EXISTS users (id INT(11) PRIMARY KEY, name VARCHAR(50) UNIQUE, age INT(11))"`)
		assert.Contains(t, code, `"INSERT INTO users (id,name,age) VALUES (?,?,?)"`)
		assert.Contains(t, code, `"SELECT id,name,age FROM users WHERE id = ?"`)
		assert.Contains(t, code, `"SELECT id,name,age FROM users"`)
		assert.Contains(t, code, `"UPDATE users SET name=?,age=? WHERE id=?"`)
		assert.Contains(t, code, `"DELETE FROM users WHERE id=?"`)
		assert.Contains(t, code, "var UserColumns = []string{UserColumnID, UserColumnName, UserColumnAge}")
	})

	t.Run("functions bind in placeholder order", func(t *testing.T) {
		assert.Contains(t, code, "func CreateUserTable(ctx context.Context, db ExecQuerier) error")
		assert.Contains(t, code, "func InsertUser(ctx context.Context, db ExecQuerier, u *User) error")
		assert.Contains(t, code, "db.ExecContext(ctx, UserInsertQuery, u.ID, u.Name, u.Age)")
		assert.Contains(t, code, "func GetUser(ctx context.Context, db ExecQuerier, key int) (*User, error)")
		assert.Contains(t, code, "db.QueryContext(ctx, UserSelectQuery, key)")
		assert.Contains(t, code, "return nil, ErrNotFound")
		assert.Contains(t, code, "func ListUsers(ctx context.Context, db ExecQuerier) ([]*User, error)")
		assert.Contains(t, code, "db.ExecContext(ctx, UserUpdateQuery, u.Name, u.Age, u.ID)")
		assert.Contains(t, code, "func DeleteUser(ctx context.Context, db ExecQuerier, key int) error")
		assert.Contains(t, code, "db.ExecContext(ctx, UserDeleteQuery, key)")
	})

	t.Run("decode through holders", func(t *testing.T) {
		assert.Contains(t, code, "func (u *User) scan(rows *sql.Rows) error")
		assert.Contains(t, code, "sql.NullInt32")
		assert.Contains(t, code, "sql.NullString")
		assert.Contains(t, code, "rows.Scan(&vID, &vName, &vAge)")
		assert.Contains(t, code, "u.ID = int(vID.Int32)")
		assert.Contains(t, code, "u.Name = vName.String")
		assert.Contains(t, code, "u.Age = int(vAge.Int32)")
	})

	t.Run("record methods", func(t *testing.T) {
		assert.Contains(t, code, "func (u *User) Insert(ctx context.Context, db ExecQuerier) error")
		assert.Contains(t, code, "return InsertUser(ctx, db, u)")
		assert.Contains(t, code, "return UpdateUser(ctx, db, u)")
		assert.Contains(t, code, "return DeleteUser(ctx, db, u.ID)")
	})
}

func TestGenEntityDecodeRules(t *testing.T) {
	d := schema.Entity("Flag",
		field.Long("id").PrimaryKey(),
		field.Bool("active").SQLType(sqltype.TINYINT).Size(1),
		field.Int("level").SQLType(sqltype.TINYINT).Size(1),
		field.Other("meta").SQLType(sqltype.JSON),
		field.String("notes").SQLType(sqltype.TEXT),
		field.Float("ratio"),
		field.Short("rank"),
		field.Time("seen_at"),
	).Descriptor()
	code := NewDialect().GenEntity(newResult(d)).GoString()

	assert.Contains(t, code, "f.ID = vID.Int64")
	assert.Contains(t, code, "f.Active = vActive.Bool")
	assert.Contains(t, code, "f.Level = int(vLevel.Int64)", "bool holder cannot fill an int field")
	assert.Contains(t, code, "f.Meta = vMeta.String", "any fields take the holder value")
	assert.Contains(t, code, "f.Notes = vNotes.String", "object accessor reads through the field type holder")
	assert.Contains(t, code, "f.Ratio = float32(vRatio.Float64)")
	assert.Contains(t, code, "sql.NullInt16")
	assert.Contains(t, code, "f.Rank = vRank.Int16")
	assert.NotContains(t, code, "&f.")
	assert.Contains(t, code, "f.SeenAt = vSeenAt.Time")
	assert.Contains(t, code, "SeenAt time.Time")
	assert.Contains(t, code, "Meta   any")
}

func TestGenEntityKeyOnly(t *testing.T) {
	d := schema.Entity("Marker", field.Long("id").PrimaryKey()).Descriptor()
	code := NewDialect().GenEntity(newResult(d)).GoString()

	assert.NotContains(t, code, "UpdateMarker")
	assert.NotContains(t, code, ") Update(")
	assert.Contains(t, code, "func DeleteMarker(")
	assert.Contains(t, code, "func ListMarkers(")
}

func TestGenEntityMethodCollision(t *testing.T) {
	d := schema.Entity("Job",
		field.Long("id").PrimaryKey(),
		field.Bool("delete"),
	).Descriptor()
	code := NewDialect().GenEntity(newResult(d)).GoString()

	assert.Contains(t, code, "Delete bool")
	assert.NotContains(t, code, "func (j *Job) Delete(")
	assert.Contains(t, code, "func (j *Job) Insert(")
	assert.Contains(t, code, "func DeleteJob(")
}

func TestGenEntityComments(t *testing.T) {
	code := NewDialect().GenEntity(newResult(postsEntity(), gen.WithPackage("store"))).GoString()

	assert.Contains(t, code, "package store")
	assert.Contains(t, code, "// Title of the post.")
	assert.Contains(t, code, "FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE")
	assert.Contains(t, code, "func ListPosts(")
	assert.Contains(t, code, `"time"`)
}

func TestGenEntityFailedResult(t *testing.T) {
	g := gen.NewGraph(nil, schema.Entity("Broken", field.String("name")).Descriptor())
	require.False(t, g.Results[0].OK())
	assert.Nil(t, NewDialect().GenEntity(g.Results[0]))
}
