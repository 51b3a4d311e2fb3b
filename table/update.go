package table

import "errors"

// UpdateRow overwrites cells of an existing row in place. Unset entries are
// left unchanged (partial update); the row count never changes.
//
// Before each overwrite the prior cell is snapshotted in the undo journal.
// Destroying cells, as the create rollback does, would delete a row that
// already existed, so on any failure every overwritten cell is restored
// verbatim instead. All per-column failures of one call are returned
// joined.
func (t *Table) UpdateRow(row Row) error {
	position, found := t.keys.Lookup(row.key)
	if !found {
		return errors.Join(UnknownKeyError{Key: row.key})
	}

	var j journal
	var errs []error
	for _, col := range t.columns {
		cell, ok := row.Cell(col.identifier)
		if !ok {
			// update semantics: absent means leave unchanged
			continue
		}
		prior, ok := col.cellAt(position)
		if !ok {
			errs = append(errs, InvalidRowIndexError{Position: position})
			continue
		}
		if err := col.setCell(position, cell); err != nil {
			errs = append(errs, err)
			continue
		}
		j.recordOverwrite(col, position, prior)
	}

	for _, identifier := range row.unknownColumns(t) {
		if _, set := row.Cell(identifier); !set {
			continue
		}
		errs = append(errs, UnknownColumnError{Column: identifier})
	}

	if len(errs) > 0 {
		errs = append(errs, j.rollback()...)
		return errors.Join(errs...)
	}

	return nil
}
