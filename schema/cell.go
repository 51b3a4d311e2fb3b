package schema

import "github.com/google/uuid"

// Cell pairs a value with its declared data type. A NULL value carries the
// declared type of the column it is intended for.
type Cell struct {
	Type  DataType
	Value Value
}

// IntegerCell returns an INTEGER cell holding i.
func IntegerCell(i int64) Cell {
	return Cell{Type: TypeInteger, Value: NewInteger(i)}
}

// StringCell returns a STRING cell holding s.
func StringCell(s string) Cell {
	return Cell{Type: TypeString, Value: NewString(s)}
}

// UUIDCell returns a UUID cell holding id.
func UUIDCell(id uuid.UUID) Cell {
	return Cell{Type: TypeUUID, Value: NewUUID(id)}
}

// NullCell returns a NULL cell typed for a column of the given data type.
func NullCell(dt DataType) Cell {
	return Cell{Type: dt, Value: Null()}
}
