package schema

// DataType represents supported column data types
type DataType string

const (
	TypeInteger DataType = "INTEGER"
	TypeString  DataType = "STRING"
	TypeUUID    DataType = "UUID"
)

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	switch dt {
	case TypeInteger, TypeString, TypeUUID:
		return true
	}
	return false
}

// ColumnDefinition defines a table column: its unique identifier, the data
// type enforced over the whole column, and whether cells may hold NULL.
type ColumnDefinition struct {
	Identifier string   `yaml:"identifier"`
	Type       DataType `yaml:"type"`
	Nullable   bool     `yaml:"nullable"`
}
