package table

import (
	"fmt"

	"github.com/google/uuid"

	"vtable/schema"
)

// InvalidRowIndexError reports a cell access at a position no column holds.
// It indicates an internal consistency fault and should not occur as long
// as all mutation goes through the table.
type InvalidRowIndexError struct {
	Position int
}

func (e InvalidRowIndexError) Error() string {
	return fmt.Sprintf("unable to find row with specified index of %d", e.Position)
}

// InvalidDataTypeError reports a cell whose data type disagrees with the
// declared type of the column it was written into.
type InvalidDataTypeError struct {
	Column string
	Want   schema.DataType
	Got    schema.DataType
}

func (e InvalidDataTypeError) Error() string {
	return fmt.Sprintf("invalid data type for column %s: required is %s but %s was provided", e.Column, e.Want, e.Got)
}

// DuplicateColumnError reports a second cell for a column that already has
// one in the same row.
type DuplicateColumnError struct {
	Column string
}

func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("a cell for column %s is already in this row", e.Column)
}

// DuplicateKeyError reports a create targeting a primary key that already
// exists.
type DuplicateKeyError struct {
	Key uuid.UUID
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("can't create a new row with primary key %s since a row with this key already exists", e.Key)
}

// UnknownColumnError reports a reference to a column absent from the table
// schema.
type UnknownColumnError struct {
	Column string
}

func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("didn't find a column with name %s", e.Column)
}

// UnknownKeyError reports an update or lookup targeting a primary key with
// no row.
type UnknownKeyError struct {
	Key uuid.UUID
}

func (e UnknownKeyError) Error() string {
	return fmt.Sprintf("did not find a row with the primary key of %s", e.Key)
}

// NullValueError reports a NULL written to a non-nullable column.
type NullValueError struct {
	Column string
}

func (e NullValueError) Error() string {
	return fmt.Sprintf("column %s does not accept NULL values", e.Column)
}
