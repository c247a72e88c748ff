// Package mixin provides reusable field groups for entity descriptors.
//
// To create a custom mixin, embed Schema and override Fields:
//
//	type Audit struct {
//	    mixin.Schema
//	}
//
//	func (Audit) Fields() []schema.Field {
//	    return []schema.Field{
//	        field.String("created_by").Size(64),
//	        field.String("updated_by").Size(64),
//	    }
//	}
//
// Using mixins:
//
//	schema.Entity("User", field.Int("id").PrimaryKey()).Mixin(mixin.Time{}, Audit{})
package mixin

import (
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

// Schema is the default implementation for the schema.Mixin interface.
type Schema struct{}

// Fields returns the fields of the mixin.
func (Schema) Fields() []schema.Field { return nil }

var _ schema.Mixin = (*Schema)(nil)

// Time adds created_at and updated_at timestamp fields.
type Time struct{ Schema }

// Fields of the Time mixin.
func (Time) Fields() []schema.Field {
	return []schema.Field{
		field.Time("created_at"),
		field.Time("updated_at"),
	}
}

// CreateTime adds a created_at timestamp field.
type CreateTime struct{ Schema }

// Fields of the CreateTime mixin.
func (CreateTime) Fields() []schema.Field {
	return []schema.Field{
		field.Time("created_at"),
	}
}

// ID adds a BIGINT primary key named id.
type ID struct{ Schema }

// Fields of the ID mixin.
func (ID) Fields() []schema.Field {
	return []schema.Field{
		field.Long("id").PrimaryKey(),
	}
}

var (
	_ schema.Mixin = Time{}
	_ schema.Mixin = CreateTime{}
	_ schema.Mixin = ID{}
)
