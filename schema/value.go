package schema

import (
	"strconv"

	"github.com/google/uuid"
)

// Value is a typed table value: NULL, an integer, a string or a UUID.
// The zero Value is NULL. Values are comparable; equality is structural.
type Value struct {
	kind    DataType // empty for NULL
	integer int64
	text    string
	id      uuid.UUID
}

// Null returns the NULL value.
func Null() Value {
	return Value{}
}

// NewInteger returns an integer value.
func NewInteger(i int64) Value {
	return Value{kind: TypeInteger, integer: i}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{kind: TypeString, text: s}
}

// NewUUID returns a UUID value.
func NewUUID(id uuid.UUID) Value {
	return Value{kind: TypeUUID, id: id}
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.kind == ""
}

// Kind returns the data type of the value, or the empty string for NULL.
func (v Value) Kind() DataType {
	return v.kind
}

// Int returns the integer payload. It is only meaningful when Kind is
// TypeInteger.
func (v Value) Int() int64 {
	return v.integer
}

// Text returns the string payload. It is only meaningful when Kind is
// TypeString.
func (v Value) Text() string {
	return v.text
}

// UUID returns the UUID payload. It is only meaningful when Kind is
// TypeUUID.
func (v Value) UUID() uuid.UUID {
	return v.id
}

// String renders the value for display: NULL as *NULL*, integers in
// decimal, strings as raw text and UUIDs in canonical hyphenated form.
func (v Value) String() string {
	switch v.kind {
	case TypeInteger:
		return strconv.FormatInt(v.integer, 10)
	case TypeString:
		return v.text
	case TypeUUID:
		return v.id.String()
	default:
		return "*NULL*"
	}
}
