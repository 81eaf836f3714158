package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBusinessNotFound = errors.New("business not found")
)

// ValidationError reports a single invalid field on account creation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// User is a registered account. PlatformAdmin is the stored permission
// flag; business-admin status is derived from the business_admins join.
type User struct {
	ID            uuid.UUID
	Username      string
	PasswordHash  string
	Email         string
	Name          string
	Address       string
	City          string
	State         string
	Zip           string
	PlatformAdmin bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser validates the required fields and stores the password as a bcrypt
// hash. Username uniqueness is enforced by the repository layer.
func NewUser(id uuid.UUID, username, password, email, name, address, city, state, zip string, now time.Time) (*User, error) {
	required := []struct {
		field string
		value string
	}{
		{"username", username},
		{"password", password},
		{"email", email},
		{"name", name},
		{"address", address},
		{"city", city},
		{"state", state},
		{"zip", zip},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, &ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Name:         name,
		Address:      address,
		City:         city,
		State:        state,
		Zip:          zip,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
