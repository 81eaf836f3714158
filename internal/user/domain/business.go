package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business is a seller on the platform. Active businesses are visible to
// shoppers; approval flips the flag.
type Business struct {
	ID          uuid.UUID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBusiness(id uuid.UUID, name, description string, now time.Time) (*Business, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return &Business{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
