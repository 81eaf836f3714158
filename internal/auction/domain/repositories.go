package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository interface {
	// GetByID loads the item with its full bid ledger.
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// GetByIDForUpdate loads the item with its ledger inside tx, holding a
	// row lock so concurrent bid placements on the same item serialize.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*Item, error)
	// Save upserts the item row (not the ledger) inside tx.
	Save(ctx context.Context, tx pgx.Tx, item *Item) error
	// UpdateStatus persists a status transition outside a transaction;
	// closing is terminal so a lost race only repeats the same write.
	UpdateStatus(ctx context.Context, id uuid.UUID, status ItemStatus) error
	// ListExpiredOpen returns ids of open items whose end_time is strictly
	// before now.
	ListExpiredOpen(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	// ListByBidder returns the distinct items a user has bid on, each with
	// its full ledger loaded.
	ListByBidder(ctx context.Context, userID uuid.UUID) ([]*Item, error)
}

type BidRepository interface {
	// Save appends a ledger entry inside tx.
	Save(ctx context.Context, tx pgx.Tx, bid *Bid) error
	ListByItemID(ctx context.Context, itemID uuid.UUID) ([]*Bid, error)
}
