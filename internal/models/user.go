package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the directory
type User struct {
	ID        string `json:"id" dynamodbav:"id" validate:"required"`
	Name      string `json:"name" dynamodbav:"name" validate:"required"`
	Email     string `json:"email" dynamodbav:"email" validate:"required"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt" validate:"required"`
}

// NewUser creates a new user with a generated ID and creation timestamp
func NewUser(name, email string) *User {
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate validates the user record
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user ID is required")
	}

	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}

	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}

	if u.CreatedAt == "" {
		return fmt.Errorf("creation timestamp is required")
	}

	if _, err := time.Parse(time.RFC3339, u.CreatedAt); err != nil {
		return fmt.Errorf("invalid creation timestamp: %w", err)
	}

	return nil
}

// BucketDescriptor identifies the object-storage bucket attached to the service.
// It is populated once from configuration and never mutated.
type BucketDescriptor struct {
	BucketName string `json:"bucketName"`
	Region     string `json:"region"`
}
