package driven

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// UserStore handles user persistence. Lookups by name and email take
// the normalized form; uniqueness of NormalizedUserName (and
// NormalizedEmail where configured) is enforced by the backing store,
// which is authoritative over any manager pre-check. Not-found is
// reported as domain.ErrNotFound, constraint violations as
// domain.ErrAlreadyExists.
type UserStore[K comparable] interface {
	// Create persists a new user.
	Create(ctx context.Context, user *domain.User[K]) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *domain.User[K]) error

	// Delete removes a user. Dependent claims and role links cascade
	// at the store level.
	Delete(ctx context.Context, id K) error

	// FindByID retrieves a user by identifier.
	FindByID(ctx context.Context, id K) (*domain.User[K], error)

	// FindByNormalizedName retrieves a user by normalized user name.
	FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.User[K], error)

	// FindByNormalizedEmail retrieves a user by normalized email.
	FindByNormalizedEmail(ctx context.Context, normalizedEmail string) (*domain.User[K], error)
}
