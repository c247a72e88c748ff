package gen

import (
	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

// usersEntity is the canonical users entity: id INT(11) key, name
// VARCHAR(50) unique, age INT(11).
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
		field.String("title").Size(200),
		field.Int("user_id").Size(11).References("users", "id").OnDelete(field.Cascade),
	).Table("posts").Descriptor()
}

func mustMap(d *schema.Descriptor) *Table {
	t, err := MapEntity(d)
	if err != nil {
		panic(err)
	}
	return t
}
