// Package catalog provides an in-memory registry of tables.
//
// The catalog maps table identifiers to table instances, rejects duplicate
// table names and hands out tables for mutation and lookup. Registry access
// is guarded by a mutex; the tables themselves remain single-writer and the
// caller is responsible for serializing row operations on each table.
package catalog
