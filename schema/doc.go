// Package schema provides the type system shared by all table components.
//
// The schema package defines the closed set of supported data types, the
// tagged value union stored in table cells, and the column definitions used
// to create tables.
//
// Key Types:
//   - DataType: Supported data types (INTEGER, STRING, UUID)
//   - Value: Tagged union over NULL, integer, string and UUID values
//   - Cell: A Value paired with its declared DataType
//   - ColumnDefinition: Column identifier, type and nullability
//
// Values are comparable and equality is structural. The zero Value is NULL,
// and NULL is a valid value for any nullable column regardless of the
// column's declared type.
//
// Usage Example:
//
//	defs := []schema.ColumnDefinition{
//		{Identifier: "first_name", Type: schema.TypeString},
//		{Identifier: "age", Type: schema.TypeInteger, Nullable: true},
//	}
//	cell := schema.IntegerCell(69)
//
// The schema package is used by virtually all other packages in the module
// and has no dependencies on them.
package schema
