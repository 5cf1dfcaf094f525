package driven

import "github.com/veridian-labs/identity-core/internal/core/domain"

// PasswordHasher produces and verifies one-way password hashes. The
// hash embeds its own parameters and salt, so verification needs no
// external state. The user is part of the contract to allow per-user
// salting schemes; implementations may ignore it.
type PasswordHasher[K comparable] interface {
	// Hash returns an opaque hash of the password.
	Hash(user *domain.User[K], password string) (string, error)

	// Verify compares a password against a stored hash. A malformed or
	// unrecognized hash verifies as failed, never as an error; the
	// comparison must not leak where a mismatch occurred through
	// timing.
	Verify(user *domain.User[K], hashedPassword, password string) domain.PasswordVerificationResult
}
