package driven

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// RoleStore handles role persistence. Same error conventions as
// UserStore: domain.ErrNotFound for absent records,
// domain.ErrAlreadyExists for uniqueness violations on NormalizedName.
type RoleStore[K comparable] interface {
	Create(ctx context.Context, role *domain.Role[K]) error
	Update(ctx context.Context, role *domain.Role[K]) error

	// Delete removes a role. Dependent role claims and user-role links
	// cascade at the store level.
	Delete(ctx context.Context, id K) error

	FindByID(ctx context.Context, id K) (*domain.Role[K], error)
	FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.Role[K], error)
}
