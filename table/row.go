package table

import (
	"sort"

	"github.com/google/uuid"

	"vtable/schema"
)

// Row is a transient write intent: a primary key plus a mapping from column
// identifier to an optional cell. An unset cell means "write NULL" on
// create and "leave unchanged" on update. Rows carry no persistent
// identity; committed rows only exist as aligned column positions.
type Row struct {
	key   uuid.UUID
	cells map[string]*schema.Cell
}

// NewRow builds an empty row targeting the given primary key. Every column
// of the table is present but unset, except ID which is bound to the key.
func NewRow(t *Table, key uuid.UUID) Row {
	cells := make(map[string]*schema.Cell, len(t.columns))
	for _, col := range t.columns {
		if col.identifier == IDColumn {
			cell := schema.UUIDCell(key)
			cells[col.identifier] = &cell
			continue
		}
		cells[col.identifier] = nil
	}
	return Row{key: key, cells: cells}
}

// Key returns the primary key the row targets.
func (r Row) Key() uuid.UUID {
	return r.key
}

// SetCell assigns a cell to a column. A column can only be assigned once
// per row; since ID is bound at construction this also keeps the
// primary-key cell immutable.
func (r Row) SetCell(column string, cell schema.Cell) error {
	if existing, present := r.cells[column]; present && existing != nil {
		return DuplicateColumnError{Column: column}
	}
	c := cell
	r.cells[column] = &c
	return nil
}

// Cell returns the cell assigned to a column. The second return value is
// false when the column is unset or not part of the row.
func (r Row) Cell(column string) (schema.Cell, bool) {
	cell, present := r.cells[column]
	if !present || cell == nil {
		return schema.Cell{}, false
	}
	return *cell, true
}

// Value returns the value assigned to a column, NULL when unset.
func (r Row) Value(column string) schema.Value {
	cell, ok := r.Cell(column)
	if !ok {
		return schema.Null()
	}
	return cell.Value
}

// unknownColumns returns the identifiers the row references that name no
// column of t, sorted for deterministic error reporting.
func (r Row) unknownColumns(t *Table) []string {
	var unknown []string
	for identifier := range r.cells {
		if _, found := t.byName[identifier]; !found {
			unknown = append(unknown, identifier)
		}
	}
	sort.Strings(unknown)
	return unknown
}
