package table

import (
	"fmt"

	"github.com/google/uuid"

	"vtable/index"
	"vtable/schema"
)

// IDColumn is the identifier of the synthetic primary-key column prepended
// to every table.
const IDColumn = "ID"

// Table owns an ordered collection of columns plus a primary-key index
// mapping UUID keys to row positions shared by all columns.
type Table struct {
	identifier string
	columns    []*Column // declared order, ID first
	byName     map[string]*Column
	keys       *index.Primary
}

// New creates a table with the given columns, in the given order, prepended
// by the implicit non-nullable ID column holding each row's primary key.
// Column identifiers must be unique; definitions with unsupported data
// types or duplicate identifiers are rejected.
func New(identifier string, definitions []schema.ColumnDefinition) (*Table, error) {
	defs := make([]schema.ColumnDefinition, 0, len(definitions)+1)
	defs = append(defs, schema.ColumnDefinition{
		Identifier: IDColumn,
		Type:       schema.TypeUUID,
	})
	defs = append(defs, definitions...)

	t := &Table{
		identifier: identifier,
		columns:    make([]*Column, 0, len(defs)),
		byName:     make(map[string]*Column, len(defs)),
		keys:       index.NewPrimary(),
	}

	for _, def := range defs {
		if !def.Type.Valid() {
			return nil, fmt.Errorf("column %q has unsupported data type %q", def.Identifier, def.Type)
		}
		if _, exists := t.byName[def.Identifier]; exists {
			return nil, fmt.Errorf("duplicate column identifier %q", def.Identifier)
		}
		col := newColumn(def)
		t.columns = append(t.columns, col)
		t.byName[def.Identifier] = col
	}

	return t, nil
}

// Identifier returns the table name.
func (t *Table) Identifier() string {
	return t.identifier
}

// Columns returns the table's columns in declared order, ID first.
func (t *Table) Columns() []*Column {
	cols := make([]*Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Column returns the column with the given identifier.
func (t *Table) Column(identifier string) (*Column, bool) {
	col, found := t.byName[identifier]
	return col, found
}

// Len returns the number of committed rows.
func (t *Table) Len() int {
	return t.keys.Len()
}

// Keys returns all primary keys in row-position order.
func (t *Table) Keys() []uuid.UUID {
	return t.keys.Keys()
}
