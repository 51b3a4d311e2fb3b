package catalog

import (
	"testing"

	"vtable/schema"
)

func userColumns() []schema.ColumnDefinition {
	return []schema.ColumnDefinition{
		{Identifier: "name", Type: schema.TypeString},
		{Identifier: "age", Type: schema.TypeInteger, Nullable: true},
	}
}

func TestCreateAndGetTable(t *testing.T) {
	cat := New()

	created, err := cat.CreateTable("users", userColumns())
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	got, err := cat.Table("users")
	if err != nil {
		t.Fatalf("Failed to get table: %v", err)
	}
	if got != created {
		t.Error("Expected the registered table instance")
	}
	if !cat.TableExists("users") {
		t.Error("Expected users to exist")
	}
	if cat.TableExists("orders") {
		t.Error("orders must not exist")
	}

	t.Log("✓ Create and get table test passed")
}

func TestDuplicateTable(t *testing.T) {
	cat := New()

	if _, err := cat.CreateTable("users", userColumns()); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	if _, err := cat.CreateTable("users", userColumns()); err == nil {
		t.Fatal("Expected error for duplicate table")
	}

	t.Log("✓ Duplicate table test passed")
}

func TestInvalidDefinitionIsNotRegistered(t *testing.T) {
	cat := New()

	_, err := cat.CreateTable("users", []schema.ColumnDefinition{
		{Identifier: "name", Type: schema.DataType("FLOAT")},
	})
	if err == nil {
		t.Fatal("Expected error for unsupported data type")
	}
	if cat.TableExists("users") {
		t.Error("Rejected table must not be registered")
	}

	t.Log("✓ Invalid definition test passed")
}

func TestIdentifiersFollowCreationOrder(t *testing.T) {
	cat := New()

	for _, name := range []string{"users", "orders", "items"} {
		if _, err := cat.CreateTable(name, userColumns()); err != nil {
			t.Fatalf("Failed to create table %s: %v", name, err)
		}
	}

	got := cat.Identifiers()
	want := []string{"users", "orders", "items"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d identifiers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Identifier %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	t.Log("✓ Identifier order test passed")
}
