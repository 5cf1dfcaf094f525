package driven

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// UserClaimStore handles the claims attached to users. The store
// assigns row identifiers on Create.
type UserClaimStore[K comparable] interface {
	// Create persists a new claim row for a user.
	Create(ctx context.Context, claim *domain.UserClaim[K]) error

	// Delete removes every claim row of the user matching the given
	// (type, value) pair.
	Delete(ctx context.Context, userID K, claim domain.Claim) error

	// ListByUser retrieves all claim rows owned by a user.
	ListByUser(ctx context.Context, userID K) ([]domain.UserClaim[K], error)

	// ListUsersForClaim retrieves the identifiers of every user that
	// holds the given (type, value) pair.
	ListUsersForClaim(ctx context.Context, claim domain.Claim) ([]K, error)
}
