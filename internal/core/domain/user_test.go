package domain

import (
	"testing"
	"time"
)

func TestUserHasPassword(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		expected bool
	}{
		{"with hash", "$2a$10$abcdef", true},
		{"without hash", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User[string]{PasswordHash: tt.hash}
			if user.HasPassword() != tt.expected {
				t.Errorf("expected HasPassword() = %v", tt.expected)
			}
		})
	}
}

func TestUserIsLockedOut(t *testing.T) {
	now := time.Now()
	future := now.Add(5 * time.Minute)
	past := now.Add(-5 * time.Minute)

	tests := []struct {
		name       string
		lockoutEnd *time.Time
		expected   bool
	}{
		{"no lockout end", nil, false},
		{"future lockout end", &future, true},
		{"past lockout end", &past, false},
		{"lockout end equals now", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User[string]{LockoutEnabled: true, LockoutEnd: tt.lockoutEnd}
			if user.IsLockedOut(now) != tt.expected {
				t.Errorf("expected IsLockedOut() = %v", tt.expected)
			}
		})
	}
}
