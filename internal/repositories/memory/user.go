// Package memory provides an in-memory implementation of the record-store
// contract for tests and local development without AWS credentials.
package memory

import (
	"context"
	"fmt"
	"sync"

	"user-directory-api/internal/models"
	"user-directory-api/internal/repositories"
)

// UserRepository is a map-backed repositories.UserRepository
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

// Create stores a copy of the record
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return repositories.NewRepositoryError("create", "user", user.ID, fmt.Errorf("%w: %v", repositories.ErrValidation, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// GetByID returns a copy of the stored record
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.NewRepositoryError("get", "user", id, repositories.ErrNotFound)
	}

	found := *user
	return &found, nil
}

// List returns all stored records in map iteration order
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		found := *user
		users = append(users, &found)
	}
	return users, nil
}

// Ping always succeeds
func (r *UserRepository) Ping(ctx context.Context) error {
	return nil
}
