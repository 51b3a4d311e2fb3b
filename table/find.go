package table

import (
	"github.com/google/uuid"

	"vtable/schema"
)

// Projection describes which columns a lookup returns: all of them, or a
// named subset.
type Projection struct {
	columns []string // nil selects every column
}

// All returns a projection selecting every column.
func All() Projection {
	return Projection{}
}

// Columns returns a projection selecting the named columns only.
func Columns(identifiers ...string) Projection {
	return Projection{columns: identifiers}
}

// FindRow returns the logical row stored under key, filtered by the
// projection. The row is reconstructed by reading each selected column at
// the key's position; it is a read-only view and shares no state with the
// table.
func (t *Table) FindRow(key uuid.UUID, projection Projection) (Row, error) {
	position, found := t.keys.Lookup(key)
	if !found {
		return Row{}, UnknownKeyError{Key: key}
	}

	selected := t.columns
	if projection.columns != nil {
		selected = make([]*Column, 0, len(projection.columns))
		for _, identifier := range projection.columns {
			col, ok := t.byName[identifier]
			if !ok {
				return Row{}, UnknownColumnError{Column: identifier}
			}
			selected = append(selected, col)
		}
	}

	row := Row{key: key, cells: make(map[string]*schema.Cell, len(selected))}
	for _, col := range selected {
		cell, ok := col.cellAt(position)
		if !ok {
			return Row{}, InvalidRowIndexError{Position: position}
		}
		c := cell
		row.cells[col.identifier] = &c
	}

	return row, nil
}
