package driving

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// PrincipalFactory builds the authenticated-identity object for a
// user: identifier, name and email claims, one role claim per
// membership, the user's own claims and the claims of every role the
// user holds.
type PrincipalFactory[K comparable] interface {
	Create(ctx context.Context, user *domain.User[K]) (*domain.Principal, error)
}
