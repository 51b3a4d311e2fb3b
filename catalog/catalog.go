package catalog

import (
	"fmt"
	"sync"

	"vtable/schema"
	"vtable/table"
)

// Catalog manages tables by identifier.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
	order  []string // identifiers in creation order
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		tables: make(map[string]*table.Table),
	}
}

// CreateTable creates a new table and registers it under its identifier.
func (c *Catalog) CreateTable(identifier string, definitions []schema.ColumnDefinition) (*table.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tables[identifier]; exists {
		return nil, fmt.Errorf("table '%s' already exists", identifier)
	}

	t, err := table.New(identifier, definitions)
	if err != nil {
		return nil, err
	}

	c.tables[identifier] = t
	c.order = append(c.order, identifier)
	return t, nil
}

// Table retrieves a table by identifier.
func (c *Catalog) Table(identifier string) (*table.Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, exists := c.tables[identifier]
	if !exists {
		return nil, fmt.Errorf("table '%s' does not exist", identifier)
	}
	return t, nil
}

// TableExists checks if a table exists.
func (c *Catalog) TableExists(identifier string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.tables[identifier]
	return exists
}

// Identifiers returns all table identifiers in creation order.
func (c *Catalog) Identifiers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	identifiers := make([]string, len(c.order))
	copy(identifiers, c.order)
	return identifiers
}
