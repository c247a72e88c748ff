// Package field provides fluent builders for declaring entity fields.
//
// Each builder picks a default column type for its value type; the default
// can be replaced with SQLType:
//
//	field.Int("id").Size(11).PrimaryKey()            // INT(11) PRIMARY KEY
//	field.String("name").Size(50).Unique()           // VARCHAR(50) UNIQUE
//	field.String("payload").SQLType(sqltype.JSON)    // JSON
//	field.Int("user_id").References("users", "id").OnDelete(field.Cascade)
//
// # Value Types
//
// The declared value type decides the Go type of the emitted struct field:
//
//	integer   int        INT
//	string    string     VARCHAR
//	boolean   bool       BOOL
//	float     float32    FLOAT
//	double    float64    DECIMAL
//	long      int64      BIGINT
//	short     int16      SMALLINT
//	timestamp time.Time  TIMESTAMP
//	other     any        (must be declared)
package field
