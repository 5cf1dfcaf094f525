package services

import (
	"context"
	"testing"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven/mocks"
)

func seedUser(t *testing.T, store *mocks.MockUserStore[string], user *domain.User[string]) {
	t.Helper()
	user.NormalizedUserName = normalizeUpper(user.UserName)
	user.NormalizedEmail = normalizeUpper(user.Email)
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

// normalizeUpper mirrors the upper-invariant normalizer without
// importing it, keeping the services package free of adapter imports.
func normalizeUpper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out)
}

func TestUserValidator_Validate(t *testing.T) {
	store := mocks.NewMockUserStore[string]()
	seedUser(t, store, &domain.User[string]{ID: "u1", UserName: "alice", Email: "alice@example.com"})

	v := NewUserValidator(domain.DefaultUserOptions(), store, NewErrorDescriber())

	tests := []struct {
		name      string
		user      *domain.User[string]
		wantCodes []string
	}{
		{
			name: "valid user",
			user: &domain.User[string]{ID: "u2", UserName: "bob.smith@example.com"},
		},
		{
			name:      "empty name",
			user:      &domain.User[string]{ID: "u2", UserName: ""},
			wantCodes: []string{CodeInvalidUserName},
		},
		{
			name:      "disallowed character",
			user:      &domain.User[string]{ID: "u2", UserName: "bob smith"},
			wantCodes: []string{CodeInvalidUserName},
		},
		{
			name:      "duplicate name",
			user:      &domain.User[string]{ID: "u2", UserName: "alice"},
			wantCodes: []string{CodeDuplicateUserName},
		},
		{
			name:      "duplicate name differing only in case",
			user:      &domain.User[string]{ID: "u2", UserName: "ALICE"},
			wantCodes: []string{CodeDuplicateUserName},
		},
		{
			name: "same user revalidates cleanly",
			user: &domain.User[string]{ID: "u1", UserName: "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.user.NormalizedUserName = normalizeUpper(tt.user.UserName)
			tt.user.NormalizedEmail = normalizeUpper(tt.user.Email)

			result, err := v.Validate(context.Background(), tt.user)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(tt.wantCodes) == 0 {
				if !result.Succeeded {
					t.Fatalf("expected success, got %s", result)
				}
				return
			}
			if result.Succeeded {
				t.Fatal("expected failure")
			}
			for i, code := range tt.wantCodes {
				if result.Errors[i].Code != code {
					t.Errorf("error %d: expected code %s, got %s", i, code, result.Errors[i].Code)
				}
			}
		})
	}
}

func TestUserValidator_UniqueEmail(t *testing.T) {
	store := mocks.NewMockUserStore[string]()
	seedUser(t, store, &domain.User[string]{ID: "u1", UserName: "alice", Email: "alice@example.com"})

	opts := domain.DefaultUserOptions()
	opts.RequireUniqueEmail = true
	v := NewUserValidator(opts, store, NewErrorDescriber())

	dup := &domain.User[string]{
		ID:              "u2",
		UserName:        "bob",
		Email:           "Alice@Example.com",
		NormalizedEmail: normalizeUpper("Alice@Example.com"),
	}
	dup.NormalizedUserName = normalizeUpper(dup.UserName)

	result, err := v.Validate(context.Background(), dup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded {
		t.Fatal("expected duplicate email to fail")
	}
	if result.Errors[0].Code != CodeDuplicateEmail {
		t.Errorf("expected %s, got %s", CodeDuplicateEmail, result.Errors[0].Code)
	}

	// Without the policy the same user passes.
	v = NewUserValidator(domain.DefaultUserOptions(), store, NewErrorDescriber())
	result, err = v.Validate(context.Background(), dup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Succeeded {
		t.Errorf("expected success without unique-email policy, got %s", result)
	}
}
