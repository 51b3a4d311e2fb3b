package table

import (
	"errors"

	"vtable/schema"
)

// CreateRow inserts a full row at a fresh position.
//
// The key is registered before any cell is written and unregistered again
// on failure. Every declared column receives exactly one write attempt:
// entries the row leaves unset are written as typed NULLs, never silently
// skipped, so a missing non-nullable field surfaces as a NullValueError
// instead of corrupting the column alignment. All per-column failures of
// one call are collected and returned joined; any failure rolls the whole
// row back, so no partial write is ever visible.
func (t *Table) CreateRow(row Row) error {
	if t.keys.Exists(row.key) {
		return errors.Join(DuplicateKeyError{Key: row.key})
	}

	position := t.keys.Reserve(row.key)

	var j journal
	var errs []error
	for _, col := range t.columns {
		cell, ok := row.Cell(col.identifier)
		if !ok {
			// create semantics: absent means an explicit NULL
			cell = schema.NullCell(col.dataType)
		}
		if err := col.setCell(position, cell); err != nil {
			errs = append(errs, err)
			continue
		}
		j.recordAppend(col, position)
	}

	for _, identifier := range row.unknownColumns(t) {
		errs = append(errs, UnknownColumnError{Column: identifier})
	}

	if len(errs) > 0 {
		errs = append(errs, j.rollback()...)
		t.keys.Release(row.key)
		return errors.Join(errs...)
	}

	return nil
}
