package domain

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type BusinessRepository interface {
	Create(ctx context.Context, business *Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*Business, error)
	// AddAdmin records the user as an administrator of the business.
	AddAdmin(ctx context.Context, businessID, userID uuid.UUID) error
	// CountByAdmin returns how many businesses the user administers.
	CountByAdmin(ctx context.Context, userID uuid.UUID) (int, error)
}
