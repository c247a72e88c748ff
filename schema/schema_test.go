package schema_test

import (
	"testing"

	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
	"github.com/syssam/daogen/schema/mixin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity(t *testing.T) {
	d := schema.Entity("User",
		field.Int("id").Size(11).PrimaryKey(),
		field.String("name").Size(50).Unique(),
	).Fields(field.Int("age").Size(11)).Descriptor()

	assert.Equal(t, "User", d.Name)
	assert.Equal(t, "user", d.TableName())
	require.Len(t, d.Fields, 3)
	assert.Equal(t, []string{"id", "name", "age"}, []string{d.Fields[0].Name, d.Fields[1].Name, d.Fields[2].Name})
}

func TestEntityTable(t *testing.T) {
	d := schema.Entity("User").Table("users").Descriptor()
	assert.Equal(t, "users", d.TableName())
}

func TestEntityDescriptorIsolation(t *testing.T) {
	b := schema.Entity("Post", field.Int("user_id").References("users", "id"))
	d1 := b.Descriptor()
	d1.Fields[0].Name = "changed"
	d1.Fields[0].ForeignKey.Table = "changed"
	d2 := b.Descriptor()
	assert.Equal(t, "user_id", d2.Fields[0].Name)
	assert.Equal(t, "users", d2.Fields[0].ForeignKey.Table)
}

func TestEntityMixin(t *testing.T) {
	d := schema.Entity("Post", field.Int("id").PrimaryKey()).
		Mixin(mixin.Time{}).
		Descriptor()
	require.Len(t, d.Fields, 3)
	assert.Equal(t, "created_at", d.Fields[0].Name)
	assert.Equal(t, "updated_at", d.Fields[1].Name)
	assert.Equal(t, "id", d.Fields[2].Name)
}
