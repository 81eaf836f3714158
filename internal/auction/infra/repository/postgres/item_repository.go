package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = "id, business_id, name, description, price, end_time, status, created_at, updated_at"

// ItemRepository implements domain.ItemRepository against Postgres.
type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	item := &domain.Item{}
	err := row.Scan(
		&item.ID,
		&item.BusinessID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.EndTime,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	item.Bids, err = loadBids(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetByIDForUpdate locks the item row for the lifetime of tx. The ledger is
// read under that lock, so MinBid is computed against a ledger no racing
// placement can extend.
func (r *ItemRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	item, err := scanItem(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	item.Bids, err = loadBids(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) Save(ctx context.Context, tx pgx.Tx, item *domain.Item) error {
	query := `
        INSERT INTO items (id, business_id, name, description, price, end_time, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO UPDATE
        SET
            business_id = EXCLUDED.business_id,
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            price = EXCLUDED.price,
            end_time = EXCLUDED.end_time,
            status = EXCLUDED.status,
            updated_at = EXCLUDED.updated_at
    `
	_, err := tx.Exec(ctx, query,
		item.ID,
		item.BusinessID,
		item.Name,
		item.Description,
		item.Price,
		item.EndTime,
		item.Status,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	query := `UPDATE items SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) ListExpiredOpen(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `SELECT id FROM items WHERE status = $1 AND end_time < $2`
	rows, err := r.pool.Query(ctx, query, domain.StatusOpen, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ItemRepository) ListByBidder(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	query := `
        SELECT DISTINCT i.id, i.business_id, i.name, i.description, i.price, i.end_time, i.status, i.created_at, i.updated_at
        FROM items i
        JOIN bids b ON b.item_id = i.id
        WHERE b.user_id = $1
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Bids, err = loadBids(ctx, r.pool, item.ID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}
