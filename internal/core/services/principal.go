package services

import (
	"context"
	"fmt"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driving"
)

// Verify interface compliance
var _ driving.PrincipalFactory[string] = (*principalFactory[string])(nil)

// principalFactory implements the PrincipalFactory interface. The
// claim bag it builds contains the user's identifier, name and email
// claims, one role claim per membership, the user's own claims, and
// every claim attached to the roles the user holds.
type principalFactory[K comparable] struct {
	users driving.UserManager[K]
	roles driving.RoleManager[K]
	opts  domain.ClaimOptions
}

// NewPrincipalFactory creates a PrincipalFactory.
func NewPrincipalFactory[K comparable](
	users driving.UserManager[K],
	roles driving.RoleManager[K],
	opts domain.ClaimOptions,
) driving.PrincipalFactory[K] {
	return &principalFactory[K]{users: users, roles: roles, opts: opts}
}

func (f *principalFactory[K]) Create(ctx context.Context, user *domain.User[K]) (*domain.Principal, error) {
	mustUser(user)
	claims := []domain.Claim{
		{Type: f.opts.UserIDClaimType, Value: fmt.Sprintf("%v", user.ID)},
		{Type: f.opts.UserNameClaimType, Value: user.UserName},
	}
	if user.Email != "" {
		claims = append(claims, domain.Claim{Type: f.opts.EmailClaimType, Value: user.Email})
	}

	roles, err := f.users.GetRoles(ctx, user)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		claims = append(claims, domain.Claim{Type: f.opts.RoleClaimType, Value: role.Name})

		roleClaims, err := f.roles.GetClaims(ctx, role)
		if err != nil {
			return nil, err
		}
		claims = append(claims, roleClaims...)
	}

	userClaims, err := f.users.GetClaims(ctx, user)
	if err != nil {
		return nil, err
	}
	claims = append(claims, userClaims...)

	return domain.NewPrincipal(claims, f.opts.RoleClaimType), nil
}
