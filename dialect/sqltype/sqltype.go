// Package sqltype holds the static SQL type catalog of the generated dialect
// and the decode accessor dispatch table shared by the statement generator,
// the code emitter and the runtime executor.
package sqltype

import (
	"strconv"
	"strings"
)

// Type is the name of a SQL column type, e.g. "VARCHAR".
// The zero value means no column type was declared.
type Type string

// Column types known to the catalog.
const (
	INT       Type = "INT"
	TINYINT   Type = "TINYINT"
	SMALLINT  Type = "SMALLINT"
	BIGINT    Type = "BIGINT"
	FLOAT     Type = "FLOAT"
	DECIMAL   Type = "DECIMAL"
	BOOL      Type = "BOOL"
	CHAR      Type = "CHAR"
	VARCHAR   Type = "VARCHAR"
	TEXT      Type = "TEXT"
	JSON      Type = "JSON"
	DATE      Type = "DATE"
	TIMESTAMP Type = "TIMESTAMP"
	BLOB      Type = "BLOB"
)

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// Valid reports if a column type was declared.
func (t Type) Valid() bool { return t != "" }

// Parse normalizes a type name read from tags or files ("varchar" -> VARCHAR).
func Parse(s string) Type {
	return Type(strings.ToUpper(strings.TrimSpace(s)))
}

// Info describes a catalog entry.
type Info struct {
	Type        Type
	Sizeable    bool  // accepts a size qualifier, e.g. VARCHAR(50).
	MaxSize     int64 // upper bound for the size qualifier.
	DefaultSize int64 // rendered when no size is declared; zero renders the bare type.
}

// catalog is the fixed set of supported column types.
var catalog = []Info{
	{Type: INT, Sizeable: true, MaxSize: 255},
	{Type: TINYINT, Sizeable: true, MaxSize: 255},
	{Type: SMALLINT, Sizeable: true, MaxSize: 255},
	{Type: BIGINT, Sizeable: true, MaxSize: 255},
	{Type: FLOAT, Sizeable: true, MaxSize: 53},
	{Type: DECIMAL, Sizeable: true, MaxSize: 65},
	{Type: BOOL},
	{Type: CHAR, Sizeable: true, MaxSize: 255},
	{Type: VARCHAR, Sizeable: true, MaxSize: 65535, DefaultSize: 255},
	{Type: TEXT},
	{Type: JSON},
	{Type: DATE},
	{Type: TIMESTAMP, Sizeable: true, MaxSize: 6},
	{Type: BLOB},
}

var byType = func() map[Type]Info {
	m := make(map[Type]Info, len(catalog))
	for _, info := range catalog {
		m[info.Type] = info
	}
	return m
}()

// Lookup returns the catalog entry of t. Unknown types are reported as
// non-sizeable entries with ok set to false.
func Lookup(t Type) (info Info, ok bool) {
	if info, ok = byType[t]; ok {
		return info, true
	}
	return Info{Type: t}, false
}

// Catalog returns a copy of the catalog in declaration order.
func Catalog() []Info {
	return append([]Info(nil), catalog...)
}

// Clause renders the type clause of a column: "TYPE" or "TYPE(size)".
func (i Info) Clause(size int64) string {
	if size <= 0 {
		size = i.DefaultSize
	}
	if i.Sizeable && size > 0 {
		return string(i.Type) + "(" + strconv.FormatInt(size, 10) + ")"
	}
	return string(i.Type)
}
