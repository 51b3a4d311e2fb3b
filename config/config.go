package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"vtable/schema"
)

// Config describes the tables the demo binary should build.
type Config struct {
	Tables []TableConfig `yaml:"tables"`
}

// TableConfig describes one table: its schema and the rows to seed it with.
type TableConfig struct {
	Identifier string                    `yaml:"identifier"`
	Columns    []schema.ColumnDefinition `yaml:"columns"`
	Rows       []RowConfig               `yaml:"rows"`
}

// RowConfig describes one seed row: its primary key and the values per
// column. Columns left out of the values map are written as NULL.
type RowConfig struct {
	Key    string         `yaml:"key"`
	Values map[string]any `yaml:"values"`
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// CellFor converts a raw YAML value into a cell for the given column
// definition. nil becomes a typed NULL.
func CellFor(def schema.ColumnDefinition, raw any) (schema.Cell, error) {
	if raw == nil {
		return schema.NullCell(def.Type), nil
	}

	switch def.Type {
	case schema.TypeInteger:
		switch v := raw.(type) {
		case int:
			return schema.IntegerCell(int64(v)), nil
		case int64:
			return schema.IntegerCell(v), nil
		}
		return schema.Cell{}, fmt.Errorf("column '%s' expects an integer, got %T", def.Identifier, raw)

	case schema.TypeString:
		if v, ok := raw.(string); ok {
			return schema.StringCell(v), nil
		}
		return schema.Cell{}, fmt.Errorf("column '%s' expects a string, got %T", def.Identifier, raw)

	case schema.TypeUUID:
		v, ok := raw.(string)
		if !ok {
			return schema.Cell{}, fmt.Errorf("column '%s' expects a UUID string, got %T", def.Identifier, raw)
		}
		id, err := uuid.Parse(v)
		if err != nil {
			return schema.Cell{}, fmt.Errorf("column '%s': %w", def.Identifier, err)
		}
		return schema.UUIDCell(id), nil

	default:
		return schema.Cell{}, fmt.Errorf("column '%s' has unsupported data type %q", def.Identifier, def.Type)
	}
}
