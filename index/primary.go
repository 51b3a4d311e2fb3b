package index

import "github.com/google/uuid"

// Primary is a hash-based primary-key index mapping UUID keys to dense row
// positions shared by all columns of a table.
type Primary struct {
	positions map[uuid.UUID]int
	order     []uuid.UUID // keys in position order
}

// NewPrimary creates an empty primary-key index.
func NewPrimary() *Primary {
	return &Primary{
		positions: make(map[uuid.UUID]int),
	}
}

// Lookup finds the row position for a key.
func (p *Primary) Lookup(key uuid.UUID) (int, bool) {
	pos, found := p.positions[key]
	return pos, found
}

// Exists checks if a key is present in the index.
func (p *Primary) Exists(key uuid.UUID) bool {
	_, found := p.positions[key]
	return found
}

// Reserve registers key at the next free position and returns it.
func (p *Primary) Reserve(key uuid.UUID) int {
	pos := len(p.order)
	p.positions[key] = pos
	p.order = append(p.order, key)
	return pos
}

// Release removes a key from the index. Rollback only ever releases the
// slot it just reserved, so the position is freed for reuse only when the
// key holds the highest position.
func (p *Primary) Release(key uuid.UUID) {
	pos, found := p.positions[key]
	if !found {
		return
	}
	delete(p.positions, key)
	if pos == len(p.order)-1 {
		p.order = p.order[:pos]
	}
}

// Len returns the number of indexed keys.
func (p *Primary) Len() int {
	return len(p.order)
}

// Keys returns all keys in position order.
func (p *Primary) Keys() []uuid.UUID {
	keys := make([]uuid.UUID, len(p.order))
	copy(keys, p.order)
	return keys
}
