package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"user-directory-api/internal/models"
	"user-directory-api/internal/repositories"
)

// userService implements the UserService interface
type userService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validate
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		validator: validator.New(),
	}
}

// CreateUser creates a new user record
func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if req == nil {
		return nil, &ValidationError{Message: "request body is required"}
	}

	// Trim before validating so whitespace-only fields are rejected
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field())
			return nil, &ValidationError{Field: field, Message: "is required"}
		}
		return nil, &ValidationError{Message: err.Error()}
	}

	user := models.NewUser(req.Name, req.Email)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
	}).Info("User created")

	return user, nil
}

// GetUser retrieves a user by ID. The ID is passed through to the store
// opaquely; no format check happens before the lookup.
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ListUsers performs a full scan and returns all users with their count
func (s *userService) ListUsers(ctx context.Context) (*UserList, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &UserList{
		Users: users,
		Count: len(users),
	}, nil
}
