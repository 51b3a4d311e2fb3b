package table

import "vtable/schema"

// journalEntry records a single successful cell write so it can be undone.
type journalEntry struct {
	column   *Column
	position int
	prior    schema.Cell
	appended bool // the write created the slot instead of overwriting one
}

// journal is an in-memory undo log for one mutation attempt. Writes are
// recorded in order and rolled back in reverse: appended cells are
// destroyed, overwritten cells are restored verbatim.
type journal struct {
	entries []journalEntry
}

func (j *journal) recordAppend(col *Column, position int) {
	j.entries = append(j.entries, journalEntry{
		column:   col,
		position: position,
		appended: true,
	})
}

func (j *journal) recordOverwrite(col *Column, position int, prior schema.Cell) {
	j.entries = append(j.entries, journalEntry{
		column:   col,
		position: position,
		prior:    prior,
	})
}

// rollback undoes every recorded write. Errors are collected rather than
// aborting so every column gets its undo attempt; a failure here means the
// table was mutated outside the engine.
func (j *journal) rollback() []error {
	var errs []error
	for i := len(j.entries) - 1; i >= 0; i-- {
		entry := j.entries[i]
		var err error
		if entry.appended {
			_, err = entry.column.destroyCell(entry.position)
		} else {
			err = entry.column.restoreCell(entry.position, entry.prior)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
