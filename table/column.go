package table

import "vtable/schema"

// Column is a homogeneous, densely packed ordered sequence of cells, one
// per row position. Cells are only reachable through their position, so a
// column value is effectively only accessible via the table, which owns the
// mapping between primary key and position.
//
// Mutation is unexported: the table is the sole point of invariant
// enforcement and no other component may write to a column directly.
type Column struct {
	identifier string
	dataType   schema.DataType
	nullable   bool
	cells      []schema.Cell
}

func newColumn(def schema.ColumnDefinition) *Column {
	return &Column{
		identifier: def.Identifier,
		dataType:   def.Type,
		nullable:   def.Nullable,
	}
}

// Identifier returns the column name, unique within its table.
func (c *Column) Identifier() string {
	return c.identifier
}

// DataType returns the data type enforced over the whole column.
func (c *Column) DataType() schema.DataType {
	return c.dataType
}

// Nullable reports whether cells of this column may hold NULL.
func (c *Column) Nullable() bool {
	return c.nullable
}

// Len returns the number of cells stored in the column.
func (c *Column) Len() int {
	return len(c.cells)
}

// ValueAt returns the value at the given row position. The second return
// value is false when the position is out of range.
func (c *Column) ValueAt(position int) (schema.Value, bool) {
	if position < 0 || position >= len(c.cells) {
		return schema.Value{}, false
	}
	return c.cells[position].Value, true
}

func (c *Column) cellAt(position int) (schema.Cell, bool) {
	if position < 0 || position >= len(c.cells) {
		return schema.Cell{}, false
	}
	return c.cells[position], true
}

// setCell writes cell at position, appending when position equals the
// current length and overwriting in place when it names an existing cell.
// On failure the column is left unmodified.
func (c *Column) setCell(position int, cell schema.Cell) error {
	if cell.Value.IsNull() {
		// NULL is a valid value for any nullable column, not a type
		// mismatch.
		if !c.nullable {
			return NullValueError{Column: c.identifier}
		}
	} else if cell.Type != c.dataType {
		return InvalidDataTypeError{Column: c.identifier, Want: c.dataType, Got: cell.Type}
	}

	switch {
	case position == len(c.cells):
		c.cells = append(c.cells, cell)
	case position >= 0 && position < len(c.cells):
		c.cells[position] = cell
	default:
		return InvalidRowIndexError{Position: position}
	}
	return nil
}

// restoreCell puts back a cell that was previously stored at position. It
// bypasses validation since the cell already passed it when first written.
func (c *Column) restoreCell(position int, cell schema.Cell) error {
	if position < 0 || position >= len(c.cells) {
		return InvalidRowIndexError{Position: position}
	}
	c.cells[position] = cell
	return nil
}

// destroyCell removes and returns the cell at position, shifting subsequent
// positions down by one. Rollback only ever destroys the highest position,
// so earlier rows stay aligned.
func (c *Column) destroyCell(position int) (schema.Cell, error) {
	if position < 0 || position >= len(c.cells) {
		return schema.Cell{}, InvalidRowIndexError{Position: position}
	}
	cell := c.cells[position]
	c.cells = append(c.cells[:position], c.cells[position+1:]...)
	return cell, nil
}
