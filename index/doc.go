// Package index provides the primary-key index used by the table engine.
//
// The index maps UUID primary keys to dense row positions. Positions are
// arena slots: Reserve hands out the next position in insertion order, and
// Release only ever undoes the most recently reserved slot, which is the
// only reuse pattern rollback needs. Keys can be enumerated in position
// order for display purposes.
package index
