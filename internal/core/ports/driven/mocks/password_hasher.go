package mocks

import (
	"github.com/veridian-labs/identity-core/internal/core/domain"
)

const mockHashPrefix = "hashed:"

// MockPasswordHasher is a plain-text hasher for tests. Verification
// succeeds when the stored value is the prefixed plaintext.
type MockPasswordHasher[K comparable] struct {
	// HashErr, when set, is returned from Hash.
	HashErr error

	// RehashNeeded makes successful verifications report that the
	// hash should be recomputed.
	RehashNeeded bool
}

// NewMockPasswordHasher creates a new MockPasswordHasher.
func NewMockPasswordHasher[K comparable]() *MockPasswordHasher[K] {
	return &MockPasswordHasher[K]{}
}

func (m *MockPasswordHasher[K]) Hash(user *domain.User[K], password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return mockHashPrefix + password, nil
}

func (m *MockPasswordHasher[K]) Verify(user *domain.User[K], hashedPassword, password string) domain.PasswordVerificationResult {
	if hashedPassword != mockHashPrefix+password {
		return domain.VerificationFailed
	}
	if m.RehashNeeded {
		return domain.VerificationSuccessRehashNeeded
	}
	return domain.VerificationSuccess
}
