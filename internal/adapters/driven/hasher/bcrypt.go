// Package hasher provides password hashing adapters.
package hasher

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.PasswordHasher[string] = (*Bcrypt[string])(nil)

// Bcrypt hashes passwords using the bcrypt algorithm.
type Bcrypt[K comparable] struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the default cost.
func NewBcrypt[K comparable]() *Bcrypt[K] {
	return &Bcrypt[K]{cost: bcrypt.DefaultCost}
}

// NewBcryptWithCost creates a Bcrypt hasher with a custom cost.
func NewBcryptWithCost[K comparable](cost int) *Bcrypt[K] {
	return &Bcrypt[K]{cost: cost}
}

// Hash generates a bcrypt hash from a plaintext password.
func (h *Bcrypt[K]) Hash(user *domain.User[K], password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks a password against a stored bcrypt hash. A hash produced
// with a lower cost than the hasher is configured with still verifies, but
// the result signals that it should be recomputed.
func (h *Bcrypt[K]) Verify(user *domain.User[K], hashedPassword, password string) domain.PasswordVerificationResult {
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return domain.VerificationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return domain.VerificationFailed
	}
	if cost < h.cost {
		return domain.VerificationSuccessRehashNeeded
	}
	return domain.VerificationSuccess
}
