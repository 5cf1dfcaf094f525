package hasher

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

func TestNewBcrypt(t *testing.T) {
	h := NewBcrypt[string]()
	if h == nil {
		t.Fatal("expected non-nil hasher")
	}
	if h.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, h.cost)
	}
}

func TestHash(t *testing.T) {
	h := NewBcryptWithCost[string](bcrypt.MinCost) // Low cost for faster tests
	user := &domain.User[string]{ID: "u1"}

	hash, err := h.Hash(user, "mypassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == "mypassword" {
		t.Error("hash should not equal plaintext password")
	}
}

func TestHash_DifferentHashesForSamePassword(t *testing.T) {
	h := NewBcryptWithCost[string](bcrypt.MinCost)
	user := &domain.User[string]{ID: "u1"}

	hash1, _ := h.Hash(user, "password123")
	hash2, _ := h.Hash(user, "password123")

	if hash1 == hash2 {
		t.Error("expected different hashes for same password (due to salt)")
	}
}

func TestVerify(t *testing.T) {
	h := NewBcryptWithCost[string](bcrypt.MinCost)
	user := &domain.User[string]{ID: "u1"}
	hash, err := h.Hash(user, "correct-horse")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		want     domain.PasswordVerificationResult
	}{
		{"correct password", hash, "correct-horse", domain.VerificationSuccess},
		{"wrong password", hash, "battery-staple", domain.VerificationFailed},
		{"empty password", hash, "", domain.VerificationFailed},
		{"malformed hash", "not-a-bcrypt-hash", "correct-horse", domain.VerificationFailed},
		{"empty hash", "", "correct-horse", domain.VerificationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Verify(user, tt.hash, tt.password)
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerify_RehashNeeded(t *testing.T) {
	low := NewBcryptWithCost[string](bcrypt.MinCost)
	user := &domain.User[string]{ID: "u1"}
	hash, err := low.Hash(user, "secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	// A hasher configured with a higher cost should accept the hash but
	// signal that it needs to be recomputed.
	high := NewBcryptWithCost[string](bcrypt.MinCost + 1)
	got := high.Verify(user, hash, "secret123")
	if got != domain.VerificationSuccessRehashNeeded {
		t.Errorf("Verify() = %v, want %v", got, domain.VerificationSuccessRehashNeeded)
	}

	// The wrong password never verifies, regardless of cost.
	if got := high.Verify(user, hash, "wrong"); got != domain.VerificationFailed {
		t.Errorf("Verify() = %v, want %v", got, domain.VerificationFailed)
	}
}
