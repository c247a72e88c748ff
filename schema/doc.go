// Package schema describes the entities daogen maps to tables.
//
// An entity descriptor is a type name, an optional table name and an ordered
// list of fields. Field order is preserved end to end: it is the column order
// of CREATE TABLE and the placeholder order of every generated statement.
//
//	users := schema.Entity("User",
//	    field.Int("id").Size(11).PrimaryKey(),
//	    field.String("name").Size(50).Unique(),
//	    field.Int("age").Size(11),
//	).Table("users")
//
// Descriptors can also be read from struct tags, YAML/JSON files or Go
// packages; see the compiler/load package.
//
// Reusable field groups are declared as mixins:
//
//	schema.Entity("Post", field.Int("id").PrimaryKey()).Mixin(mixin.Time{})
package schema
