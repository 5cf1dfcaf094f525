package driving

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// RoleManager mirrors the user manager's CRUD and claim operations for
// roles. Same result/error and nil-argument conventions as UserManager.
type RoleManager[K comparable] interface {
	// Create validates the role and persists it.
	Create(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error)

	// Update re-normalizes and re-validates the role, then persists it.
	Update(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error)

	// Delete removes the role. Dependent claims and user-role links
	// cascade at the store level.
	Delete(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error)

	FindByID(ctx context.Context, id K) (*domain.Role[K], error)
	FindByName(ctx context.Context, name string) (*domain.Role[K], error)
	Exists(ctx context.Context, role *domain.Role[K]) (bool, error)

	GetClaims(ctx context.Context, role *domain.Role[K]) ([]domain.Claim, error)

	// AddClaim attaches a claim; duplicates are idempotent, as for
	// user claims.
	AddClaim(ctx context.Context, role *domain.Role[K], claim domain.Claim) (domain.IdentityResult, error)
	RemoveClaim(ctx context.Context, role *domain.Role[K], claim domain.Claim) (domain.IdentityResult, error)

	NormalizeName(name string) string
}
