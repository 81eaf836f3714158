package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid is a single entry in an item's append-only ledger. Bids are never
// updated or deleted once recorded.
type Bid struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Price     decimal.Decimal
	CreatedAt time.Time
}

func NewBid(id, itemID, userID uuid.UUID, price decimal.Decimal, createdAt time.Time) *Bid {
	return &Bid{
		ID:        id,
		ItemID:    itemID,
		UserID:    userID,
		Price:     price,
		CreatedAt: createdAt,
	}
}
