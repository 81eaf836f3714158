package postgres

import (
	"context"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository implements domain.BidRepository against Postgres.
type BidRepository struct {
	pool *pgxpool.Pool
}

func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the ledger can
// be read with or without an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadBids(ctx context.Context, q querier, itemID uuid.UUID) ([]*domain.Bid, error) {
	query := `
        SELECT id, item_id, user_id, price, created_at
        FROM bids
        WHERE item_id = $1
        ORDER BY created_at ASC
    `
	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []*domain.Bid
	for rows.Next() {
		bid := &domain.Bid{}
		err := rows.Scan(
			&bid.ID,
			&bid.ItemID,
			&bid.UserID,
			&bid.Price,
			&bid.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// Save appends one ledger entry. There is no update path: bids are
// immutable once written.
func (r *BidRepository) Save(ctx context.Context, tx pgx.Tx, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, item_id, user_id, price, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := tx.Exec(ctx, query,
		bid.ID,
		bid.ItemID,
		bid.UserID,
		bid.Price,
		bid.CreatedAt,
	)
	return err
}

func (r *BidRepository) ListByItemID(ctx context.Context, itemID uuid.UUID) ([]*domain.Bid, error) {
	return loadBids(ctx, r.pool, itemID)
}
