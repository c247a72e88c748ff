package load

import (
	"fmt"
	"reflect"

	"github.com/syssam/daogen/schema"
)

// FromStruct returns the descriptor of the struct type of v. v may be a
// struct value or a pointer to one.
func FromStruct(v any, opts ...Option) (*schema.Descriptor, error) {
	t := indirect(reflect.TypeOf(v))
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("load: expect struct, got %T", v)
	}
	fields := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, structField{
			name:   f.Name,
			goType: f.Type.String(),
			tag:    f.Tag.Get("db"),
		})
	}
	return entity(t.Name(), fields, opts...)
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
