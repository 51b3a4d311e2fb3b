package config

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"vtable/schema"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "tables.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(cfg.Tables))
	}

	tc := cfg.Tables[0]
	if tc.Identifier != "user" {
		t.Errorf("Expected table 'user', got %s", tc.Identifier)
	}
	if len(tc.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(tc.Columns))
	}
	if tc.Columns[0].Type != schema.TypeString || tc.Columns[0].Nullable {
		t.Errorf("Unexpected first column: %+v", tc.Columns[0])
	}
	if tc.Columns[2].Type != schema.TypeInteger || !tc.Columns[2].Nullable {
		t.Errorf("Unexpected age column: %+v", tc.Columns[2])
	}

	if len(tc.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(tc.Rows))
	}
	if tc.Rows[0].Key != "797724d9-491c-46ac-981c-566d6d65b199" {
		t.Errorf("Unexpected key: %s", tc.Rows[0].Key)
	}
	if tc.Rows[0].Values["age"] != 69 {
		t.Errorf("Expected age 69, got %v", tc.Rows[0].Values["age"])
	}
	if _, present := tc.Rows[1].Values["age"]; present {
		t.Error("Second row must leave age unset")
	}

	t.Log("✓ Config load test passed")
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}

	t.Log("✓ Missing file test passed")
}

func TestCellFor(t *testing.T) {
	intDef := schema.ColumnDefinition{Identifier: "age", Type: schema.TypeInteger, Nullable: true}
	strDef := schema.ColumnDefinition{Identifier: "name", Type: schema.TypeString}
	idDef := schema.ColumnDefinition{Identifier: "ref", Type: schema.TypeUUID}

	cell, err := CellFor(intDef, 69)
	if err != nil || cell != schema.IntegerCell(69) {
		t.Errorf("CellFor(int) = (%+v, %v)", cell, err)
	}

	cell, err = CellFor(strDef, "first")
	if err != nil || cell != schema.StringCell("first") {
		t.Errorf("CellFor(string) = (%+v, %v)", cell, err)
	}

	id := uuid.MustParse("797724d9-491c-46ac-981c-566d6d65b199")
	cell, err = CellFor(idDef, id.String())
	if err != nil || cell != schema.UUIDCell(id) {
		t.Errorf("CellFor(uuid) = (%+v, %v)", cell, err)
	}

	cell, err = CellFor(intDef, nil)
	if err != nil || cell != schema.NullCell(schema.TypeInteger) {
		t.Errorf("CellFor(nil) = (%+v, %v)", cell, err)
	}

	if _, err := CellFor(intDef, "not a number"); err == nil {
		t.Error("Expected error for string in integer column")
	}
	if _, err := CellFor(idDef, "not-a-uuid"); err == nil {
		t.Error("Expected error for malformed UUID")
	}

	t.Log("✓ Cell conversion test passed")
}
