package services

import (
	"context"

	"user-directory-api/internal/models"
)

// CreateUserRequest represents the input for creating a user
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UserList represents the result of listing users
type UserList struct {
	Users []*models.User `json:"users"`
	Count int            `json:"count"`
}

// UserService defines user directory operations
type UserService interface {
	// CreateUser validates the request, generates ID and timestamp, and
	// persists the complete record
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*models.User, error)

	// ListUsers returns all users and their count
	ListUsers(ctx context.Context) (*UserList, error)
}
