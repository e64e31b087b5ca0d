package handlers

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name    string
		rawPath string
		want    string
	}{
		{"stage only", "/dev", "/"},
		{"stage with trailing slash", "/dev/", "/"},
		{"root", "/", "/"},
		{"health route", "/dev/health", "/health"},
		{"bucket route", "/prod/bucket", "/bucket"},
		{"users collection", "/dev/users", "/users"},
		{"user by id", "/dev/users/abc-123", "/users/abc-123"},
		{"deep path", "/dev/users/abc/extra", "/users/abc/extra"},
		{"different stage name", "/staging/users", "/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.rawPath); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.rawPath, got, tt.want)
			}
		})
	}
}
