package sqltype

// Accessor identifies how a column value is read back from a result set.
type Accessor uint8

// Decode accessors.
const (
	AccessorObject Accessor = iota // generic fallback.
	AccessorInteger
	AccessorString
	AccessorBoolean
	AccessorFloat
	AccessorLong
	AccessorTimestamp
	AccessorDouble
)

var accessorNames = [...]string{
	AccessorObject:    "object",
	AccessorInteger:   "integer",
	AccessorString:    "string",
	AccessorBoolean:   "boolean",
	AccessorFloat:     "float",
	AccessorLong:      "long",
	AccessorTimestamp: "timestamp",
	AccessorDouble:    "double",
}

// String returns the accessor name.
func (a Accessor) String() string {
	if int(a) < len(accessorNames) {
		return accessorNames[a]
	}
	return accessorNames[AccessorObject]
}

// ParseAccessor returns the accessor with the given name, or AccessorObject.
func ParseAccessor(name string) Accessor {
	for a, n := range accessorNames {
		if n == name {
			return Accessor(a)
		}
	}
	return AccessorObject
}

// accessors is the decode dispatch table. Types missing from it are decoded
// with AccessorObject.
var accessors = map[Type]Accessor{
	INT:       AccessorInteger,
	VARCHAR:   AccessorString,
	JSON:      AccessorString,
	BOOL:      AccessorBoolean,
	TINYINT:   AccessorBoolean,
	FLOAT:     AccessorFloat,
	BIGINT:    AccessorLong,
	TIMESTAMP: AccessorTimestamp,
	DECIMAL:   AccessorDouble,
}

// AccessorOf returns the decode accessor for t.
func AccessorOf(t Type) Accessor {
	if a, ok := accessors[t]; ok {
		return a
	}
	return AccessorObject
}

// Holder describes the database/sql scan destination of an accessor.
// Holder is empty for AccessorObject, which scans into the destination directly.
type Holder struct {
	Type  string // database/sql type name, e.g. "NullInt32".
	Field string // value field of the holder, e.g. "Int32".
	Go    string // Go type of the value field, e.g. "int32".
}

var holders = [...]Holder{
	AccessorObject:    {},
	AccessorInteger:   {Type: "NullInt32", Field: "Int32", Go: "int32"},
	AccessorString:    {Type: "NullString", Field: "String", Go: "string"},
	AccessorBoolean:   {Type: "NullBool", Field: "Bool", Go: "bool"},
	AccessorFloat:     {Type: "NullFloat64", Field: "Float64", Go: "float64"},
	AccessorLong:      {Type: "NullInt64", Field: "Int64", Go: "int64"},
	AccessorTimestamp: {Type: "NullTime", Field: "Time", Go: "time.Time"},
	AccessorDouble:    {Type: "NullFloat64", Field: "Float64", Go: "float64"},
}

// Holder returns the scan holder of the accessor.
func (a Accessor) Holder() Holder {
	if int(a) < len(holders) {
		return holders[a]
	}
	return Holder{}
}

// MarshalText implements encoding.TextMarshaler.
func (a Accessor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Accessor) UnmarshalText(text []byte) error {
	*a = ParseAccessor(string(text))
	return nil
}
