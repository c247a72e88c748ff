package sql

import (
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

func postsEntity() *schema.Descriptor {
	return schema.Entity("Post",
		field.Long("id").PrimaryKey(),
		field.String("title").Size(200).Comment("Title of the post."),
		field.Int("user_id").Size(11).References("users", "id").OnDelete(field.Cascade),
		field.Time("created_at"),
	).Table("posts").Descriptor()
}

// notesEntity has a column for every decode path that needs a holder
// derived from the field type.
func notesEntity() *schema.Descriptor {
	return schema.Entity("Note",
		field.Long("id").PrimaryKey(),
		field.String("code").SQLType(sqltype.CHAR).Size(8),
		field.String("body").SQLType(sqltype.TEXT),
		field.Int("level").SQLType(sqltype.TINYINT).Size(1),
		field.Short("priority"),
		field.Time("due").SQLType(sqltype.DATE),
		field.Other("payload").SQLType(sqltype.BLOB),
	).Table("notes").Descriptor()
}

// newResult maps a single entity in a fresh graph.
func newResult(d *schema.Descriptor, opts ...gen.Option) *gen.Result {
	g := gen.NewGraph(gen.MustNewConfig(opts...), d)
	r := g.Results[0]
	if r.Err != nil {
		panic(r.Err)
	}
	return r
}
