package domain

import "github.com/google/uuid"

// Cart tracks prospective item quantities for one browsing session. It has
// no database identity: it is rebuilt from the session at the start of a
// request and its Contents snapshot is written back at the end.
type Cart struct {
	items map[uuid.UUID]int
}

func New() *Cart {
	return &Cart{items: make(map[uuid.UUID]int)}
}

// FromContents rebuilds a cart from a persisted snapshot. Entries with a
// non-positive quantity are dropped rather than carried forward.
func FromContents(contents map[uuid.UUID]int) *Cart {
	c := New()
	for id, qty := range contents {
		if qty > 0 {
			c.items[id] = qty
		}
	}
	return c
}

// AddItem increments the quantity for itemID, creating the entry at 1.
func (c *Cart) AddItem(itemID uuid.UUID) {
	c.items[itemID]++
}

// UpdateQuantity sets the entry to the given quantity. A quantity of zero
// or less removes the entry; the cart never holds non-positive quantities.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity int) {
	if quantity <= 0 {
		delete(c.items, itemID)
		return
	}
	c.items[itemID] = quantity
}

// RemoveItem deletes the entry if present; removing an absent item is a
// no-op.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	delete(c.items, itemID)
}

// Contents returns a copy of the cart suitable for session persistence.
func (c *Cart) Contents() map[uuid.UUID]int {
	contents := make(map[uuid.UUID]int, len(c.items))
	for id, qty := range c.items {
		contents[id] = qty
	}
	return contents
}
