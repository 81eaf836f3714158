package domain_test

import (
	"testing"

	"github.com/bidworks/marketengine/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddItemIncrements(t *testing.T) {
	cart := domain.New()
	itemID := uuid.New()

	cart.AddItem(itemID)
	cart.AddItem(itemID)

	assert.Equal(t, map[uuid.UUID]int{itemID: 2}, cart.Contents())
}

func TestUpdateQuantity(t *testing.T) {
	cart := domain.New()
	itemID := uuid.New()
	cart.AddItem(itemID)

	cart.UpdateQuantity(itemID, 5)
	assert.Equal(t, 5, cart.Contents()[itemID])

	// Zero and negative quantities remove the entry outright.
	cart.UpdateQuantity(itemID, 0)
	assert.NotContains(t, cart.Contents(), itemID)

	cart.AddItem(itemID)
	cart.UpdateQuantity(itemID, -3)
	assert.NotContains(t, cart.Contents(), itemID)
}

func TestRemoveItem(t *testing.T) {
	cart := domain.New()
	itemID := uuid.New()
	cart.AddItem(itemID)

	cart.RemoveItem(itemID)
	assert.Empty(t, cart.Contents())

	// Removing an absent item is a no-op.
	cart.RemoveItem(uuid.New())
	assert.Empty(t, cart.Contents())
}

func TestContentsIsASnapshot(t *testing.T) {
	cart := domain.New()
	itemID := uuid.New()
	cart.AddItem(itemID)

	contents := cart.Contents()
	contents[itemID] = 99

	assert.Equal(t, 1, cart.Contents()[itemID])
}

func TestFromContentsDropsNonPositiveEntries(t *testing.T) {
	keep, drop := uuid.New(), uuid.New()
	cart := domain.FromContents(map[uuid.UUID]int{
		keep: 2,
		drop: 0,
	})

	assert.Equal(t, map[uuid.UUID]int{keep: 2}, cart.Contents())
}
