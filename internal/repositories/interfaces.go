package repositories

import (
	"context"

	"user-directory-api/internal/models"
)

// UserRepository defines the record-store contract for user records.
// Implementations own durability; callers never cache records across calls.
type UserRepository interface {
	// Create writes a complete user record with a single atomic put
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID. Returns ErrNotFound when no record
	// exists for the given ID.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// List performs a full scan and returns every stored record.
	// Ordering is whatever the store yields.
	List(ctx context.Context) ([]*models.User, error)
}
