package load

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

func usersEntity() *schema.Descriptor {
	return schema.Entity("User",
		field.Int("id").SQLType(sqltype.INT).Size(11).PrimaryKey(),
		field.String("name").SQLType(sqltype.VARCHAR).Size(50).Unique(),
		field.Int("age").SQLType(sqltype.INT).Size(11),
	).Table("users").Descriptor()
}

type User struct {
	ID       int    `db:"id,type=INT,size=11,pk"`
	Name     string `db:"name,type=varchar,size=50,unique"`
	Age      int    `db:"age,size=11"`
	Password string `db:"-"`
	Note     string
	secret   string
}

type Post struct {
	ID        int64     `db:",pk"`
	Title     string    `db:",size=200,comment=Post title."`
	UserID    int       `db:",size=11,fk=users.id,ondelete=cascade,onupdate=restrict"`
	Score     float64   `db:"score"`
	Ratio     float32   `db:"ratio"`
	Rank      int16     `db:"rank"`
	Draft     bool      `db:"draft"`
	CreatedAt time.Time `db:"created_at"`
	Meta      []byte    `db:"meta,type=JSON"`
}

func TestFromStruct(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		d, err := FromStruct(User{}, WithTable("users"))
		require.NoError(t, err)
		assert.Equal(t, usersEntity(), d)
	})

	t.Run("pointer_and_name", func(t *testing.T) {
		d, err := FromStruct(&User{}, WithName("Member"))
		require.NoError(t, err)
		assert.Equal(t, "Member", d.Name)
		assert.Equal(t, "member", d.TableName())
	})

	t.Run("types_and_defaults", func(t *testing.T) {
		d, err := FromStruct(Post{})
		require.NoError(t, err)
		assert.Equal(t, "post", d.TableName())
		byName := map[string]*field.Descriptor{}
		for _, fd := range d.Fields {
			byName[fd.Name] = fd
		}
		require.Len(t, byName, 9)
		assert.Equal(t, field.TypeLong, byName["id"].Type)
		assert.True(t, byName["id"].PrimaryKey)
		assert.Equal(t, "Post title.", byName["title"].Comment)
		assert.Equal(t, &field.ForeignKey{
			Table: "users", Column: "id", OnDelete: field.Cascade, OnUpdate: field.Restrict,
		}, byName["user_id"].ForeignKey)
		assert.Equal(t, field.TypeDouble, byName["score"].Type)
		assert.Equal(t, field.TypeFloat, byName["ratio"].Type)
		assert.Equal(t, field.TypeShort, byName["rank"].Type)
		assert.Equal(t, field.TypeBoolean, byName["draft"].Type)
		assert.Equal(t, field.TypeTimestamp, byName["created_at"].Type)
		assert.Equal(t, field.TypeOther, byName["meta"].Type)
		assert.Equal(t, sqltype.JSON, byName["meta"].SQLType)
	})

	t.Run("maps_to_statements", func(t *testing.T) {
		d, err := FromStruct(User{}, WithTable("users"))
		require.NoError(t, err)
		tbl, err := gen.MapEntity(d)
		require.NoError(t, err)
		s := gen.NewStatements(tbl)
		assert.Equal(t, "INSERT INTO users (id,name,age) VALUES (?,?,?)", s.Insert.Query)
	})

	t.Run("spaced_options", func(t *testing.T) {
		d, err := FromStruct(struct {
			ID      int `db:"id, pk"`
			OwnerID int `db:"owner_id, type= int ,fk=users.id, ondelete = set  null"`
		}{}, WithName("Pet"))
		require.NoError(t, err)
		require.Len(t, d.Fields, 2)
		assert.True(t, d.Fields[0].PrimaryKey)
		assert.Equal(t, sqltype.INT, d.Fields[1].SQLType)
		assert.Equal(t, field.SetNull, d.Fields[1].ForeignKey.OnDelete)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			v    any
			want string
		}{
			{"not_struct", 1, "expect struct"},
			{"bad_size", struct {
				ID int `db:"id,pk,size=x"`
			}{}, `invalid size "x"`},
			{"bad_fk", struct {
				ID int `db:"id,pk,fk=users"`
			}{}, "expect table.column"},
			{"action_without_fk", struct {
				ID int `db:"id,pk,ondelete=cascade"`
			}{}, "referential action without fk"},
			{"bad_action", struct {
				ID int `db:"id,pk,fk=users.id,ondelete=cascade) ; DROP TABLE x; --"`
			}{}, "unknown referential action"},
			{"unknown_option", struct {
				ID int `db:"id,primary"`
			}{}, `unknown tag option "primary"`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := FromStruct(tt.v)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}

func TestReadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		descs, err := ReadFile("testdata/users.yaml")
		require.NoError(t, err)
		require.Len(t, descs, 2)
		assert.Equal(t, usersEntity(), descs[0])
		posts := schema.Entity("Post",
			field.Long("id").PrimaryKey(),
			field.String("title").Size(200).Comment("Post title."),
			field.Int("user_id").Size(11).References("users", "id").OnDelete(field.Cascade),
		).Table("posts").Descriptor()
		assert.Equal(t, posts, descs[1])
	})

	t.Run("json", func(t *testing.T) {
		descs, err := ReadFile("testdata/users.json")
		require.NoError(t, err)
		require.Len(t, descs, 1)
		assert.Equal(t, usersEntity(), descs[0])
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadFile("testdata/missing.yaml")
		require.Error(t, err)
	})
}

func TestDecode(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		descs, err := Decode(strings.NewReader(""), YAML)
		require.NoError(t, err)
		assert.Empty(t, descs)
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Decode(strings.NewReader("entities:\n  - name: A\n    colour: red\n"), YAML)
		require.Error(t, err)
	})

	t.Run("unknown_type", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"entities":[{"name":"A","fields":[{"name":"id","type":"uuid"}]}]}`), JSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load: entity A: field id")
	})

	t.Run("unnamed_entity", func(t *testing.T) {
		_, err := Decode(strings.NewReader("entities:\n  - table: a\n"), YAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("referential_actions", func(t *testing.T) {
		const doc = `
entities:
  - name: Pet
    fields:
      - {name: id, type: long, pk: true}
      - name: owner_id
        type: integer
        sql_type: " int "
        references: {table: users, column: id, on_delete: "set null", on_update: %s}
`
		descs, err := Decode(strings.NewReader(fmt.Sprintf(doc, "no  action")), YAML)
		require.NoError(t, err)
		owner := descs[0].Fields[1]
		assert.Equal(t, sqltype.INT, owner.SQLType)
		assert.Equal(t, field.SetNull, owner.ForeignKey.OnDelete)
		assert.Equal(t, field.NoAction, owner.ForeignKey.OnUpdate)

		_, err = Decode(strings.NewReader(fmt.Sprintf(doc, `"cascade) ; DROP TABLE x; --"`)), YAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "on_update")
		assert.Contains(t, err.Error(), "unknown referential action")
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""), Format("toml"))
		require.Error(t, err)
	})

	assert.Equal(t, JSON, FormatOf("schema.JSON"))
	assert.Equal(t, YAML, FormatOf("schema.yml"))
}

func TestPackages(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	ctx := context.Background()

	t.Run("entities", func(t *testing.T) {
		descs, err := Packages(ctx, "./testdata/entities")
		require.NoError(t, err)
		require.Len(t, descs, 2)

		users := descs[0]
		assert.Equal(t, "User", users.Name)
		assert.Equal(t, "users", users.TableName())
		require.Len(t, users.Fields, 4)
		assert.Equal(t, usersEntity().Fields, users.Fields[:3])
		assert.Equal(t, field.TypeTimestamp, users.Fields[3].Type)
		assert.Equal(t, "created_at", users.Fields[3].Name)

		posts := descs[1]
		assert.Equal(t, "post", posts.TableName())
		require.Len(t, posts.Fields, 3)
		assert.Equal(t, "user_id", posts.Fields[2].Name)
		assert.Equal(t, field.Cascade, posts.Fields[2].ForeignKey.OnDelete)
	})

	t.Run("non_struct", func(t *testing.T) {
		_, err := Packages(ctx, "./testdata/broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "marker on non-struct type")
	})
}
