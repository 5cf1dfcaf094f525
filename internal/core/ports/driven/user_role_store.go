package driven

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// UserRoleStore handles the user-role join. The (user, role) pair is
// unique; Create reports a duplicate pair as domain.ErrAlreadyExists
// and Delete reports an absent pair as domain.ErrNotFound.
type UserRoleStore[K comparable] interface {
	Create(ctx context.Context, link *domain.UserRole[K]) error
	Delete(ctx context.Context, userID, roleID K) error
	Exists(ctx context.Context, userID, roleID K) (bool, error)

	// ListRolesForUser retrieves the role identifiers the user is a
	// member of.
	ListRolesForUser(ctx context.Context, userID K) ([]K, error)

	// ListUsersInRole retrieves the user identifiers that are members
	// of the role.
	ListUsersInRole(ctx context.Context, roleID K) ([]K, error)
}
