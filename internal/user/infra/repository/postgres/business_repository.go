package postgres

import (
	"context"
	"errors"

	"github.com/bidworks/marketengine/internal/user/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BusinessRepository implements domain.BusinessRepository against Postgres.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

func (r *BusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	query := `
        INSERT INTO businesses (id, name, description, active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, query,
		business.ID,
		business.Name,
		business.Description,
		business.Active,
		business.CreatedAt,
		business.UpdatedAt,
	)
	return err
}

func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	query := `
        SELECT id, name, description, active, created_at, updated_at
        FROM businesses
        WHERE id = $1
    `
	business := &domain.Business{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&business.ID,
		&business.Name,
		&business.Description,
		&business.Active,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}
	return business, nil
}

func (r *BusinessRepository) AddAdmin(ctx context.Context, businessID, userID uuid.UUID) error {
	query := `
        INSERT INTO business_admins (business_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (business_id, user_id) DO NOTHING
    `
	_, err := r.pool.Exec(ctx, query, businessID, userID)
	return err
}

func (r *BusinessRepository) CountByAdmin(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(1) FROM business_admins WHERE user_id = $1`
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}
