package models

import (
	"testing"
	"time"
)

func TestNewUser(t *testing.T) {
	before := time.Now().UTC()
	user := NewUser("Alice", "alice@example.com")

	if user.ID == "" {
		t.Error("NewUser() should generate an ID")
	}

	if user.Name != "Alice" {
		t.Errorf("NewUser() name = %q, want %q", user.Name, "Alice")
	}

	if user.Email != "alice@example.com" {
		t.Errorf("NewUser() email = %q, want %q", user.Email, "alice@example.com")
	}

	createdAt, err := time.Parse(time.RFC3339, user.CreatedAt)
	if err != nil {
		t.Fatalf("NewUser() createdAt %q is not RFC3339: %v", user.CreatedAt, err)
	}

	if createdAt.Before(before.Truncate(time.Second)) {
		t.Errorf("NewUser() createdAt %v is earlier than call time %v", createdAt, before)
	}
}

func TestNewUser_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		user := NewUser("Bob", "bob@example.com")
		if seen[user.ID] {
			t.Fatalf("NewUser() generated duplicate ID %q", user.ID)
		}
		seen[user.ID] = true
	}
}

func TestUser_Validate(t *testing.T) {
	valid := NewUser("Alice", "alice@example.com")

	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{
			name:    "valid user",
			user:    valid,
			wantErr: false,
		},
		{
			name:    "missing ID",
			user:    &User{Name: "Alice", Email: "a@x.com", CreatedAt: valid.CreatedAt},
			wantErr: true,
		},
		{
			name:    "missing name",
			user:    &User{ID: "u1", Email: "a@x.com", CreatedAt: valid.CreatedAt},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			user:    &User{ID: "u1", Name: "   ", Email: "a@x.com", CreatedAt: valid.CreatedAt},
			wantErr: true,
		},
		{
			name:    "missing email",
			user:    &User{ID: "u1", Name: "Alice", CreatedAt: valid.CreatedAt},
			wantErr: true,
		},
		{
			name:    "missing timestamp",
			user:    &User{ID: "u1", Name: "Alice", Email: "a@x.com"},
			wantErr: true,
		},
		{
			name:    "malformed timestamp",
			user:    &User{ID: "u1", Name: "Alice", Email: "a@x.com", CreatedAt: "yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
