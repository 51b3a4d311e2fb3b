// Package table provides the core table mutation engine.
//
// A Table owns an ordered collection of typed columns plus a primary-key
// index mapping UUID keys to dense row positions. Rows are transient write
// intents built by callers; the table fans a row's cells out to the matching
// columns and guarantees all-or-nothing semantics: if any cell write fails,
// every write performed for that call is undone before the call returns.
//
// Key Responsibilities:
//   - Enforcing the declared data type and nullability of every column
//   - Keeping all columns of a table at the same length at all times
//   - Keeping the key index and column contents mutually consistent
//   - Accumulating every per-column failure of a mutation into one error
//
// Operations:
//   - CreateRow: insert a full row at a fresh position; absent entries are
//     written as typed NULLs so every column receives exactly one cell
//   - UpdateRow: overwrite cells in place; absent entries are left unchanged
//   - FindRow: point lookup by primary key with optional column projection
//
// The engine is single-writer and synchronous. Callers that share a Table
// across goroutines must provide their own mutual exclusion.
//
// Usage Example:
//
//	t, err := table.New("user", []schema.ColumnDefinition{
//		{Identifier: "first_name", Type: schema.TypeString},
//		{Identifier: "age", Type: schema.TypeInteger, Nullable: true},
//	})
//
//	row := table.NewRow(t, key)
//	row.SetCell("first_name", schema.StringCell("first"))
//	row.SetCell("age", schema.IntegerCell(69))
//	err = t.CreateRow(row)
//
//	got, err := t.FindRow(key, table.All())
//
// Mutations report every problem with a rejected row at once: the returned
// error joins all per-column failures and individual failures can be tested
// with errors.Is.
package table
