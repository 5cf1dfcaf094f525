package driven

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// RoleClaimStore handles the claims attached to roles. The store
// assigns row identifiers on Create.
type RoleClaimStore[K comparable] interface {
	Create(ctx context.Context, claim *domain.RoleClaim[K]) error
	Delete(ctx context.Context, roleID K, claim domain.Claim) error
	ListByRole(ctx context.Context, roleID K) ([]domain.RoleClaim[K], error)
}
