package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"user-directory-api/internal/repositories"
	"user-directory-api/internal/services"
	"user-directory-api/pkg/lambda"
)

// UserHandler handles user-related requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// HandleCreate handles POST /users
func (h *UserHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var createReq services.CreateUserRequest
	if err := json.Unmarshal(req.Body, &createReq); err != nil {
		// Malformed JSON is not a client validation failure here; it goes
		// through the error boundary as a 500.
		return nil, fmt.Errorf("parse request body: %w", err)
	}

	user, err := h.userService.CreateUser(ctx, &createReq)
	if err != nil {
		if services.IsValidationError(err) {
			return Respond(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return nil, err
	}

	return Respond(http.StatusCreated, user)
}

// HandleGet handles GET /users/{id}
func (h *UserHandler) HandleGet(ctx context.Context, id string) (*lambda.Response, error) {
	user, err := h.userService.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return Respond(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		}
		return nil, err
	}

	return Respond(http.StatusOK, user)
}

// HandleList handles GET /users
func (h *UserHandler) HandleList(ctx context.Context) (*lambda.Response, error) {
	list, err := h.userService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return Respond(http.StatusOK, list)
}
