package services

import (
	"context"
	"errors"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// RoleValidator checks role records before they are persisted: minimum
// name length, character set and name uniqueness via the role store.
type RoleValidator[K comparable] struct {
	opts      domain.RoleOptions
	roles     driven.RoleStore[K]
	describer ErrorDescriber
}

// NewRoleValidator creates a role validator.
func NewRoleValidator[K comparable](opts domain.RoleOptions, roles driven.RoleStore[K], describer ErrorDescriber) *RoleValidator[K] {
	return &RoleValidator[K]{opts: opts, roles: roles, describer: describer}
}

// Validate checks the role and returns a result enumerating every
// violated rule. The role under validation is never mutated.
func (v *RoleValidator[K]) Validate(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error) {
	var errs []domain.IdentityError

	if len([]rune(role.Name)) < v.opts.RequiredRoleNameLength {
		errs = append(errs, v.describer.RoleNameTooShort(v.opts.RequiredRoleNameLength))
	}
	if !nameAllowed(role.Name, v.opts.AllowedRoleNameCharacters) {
		errs = append(errs, v.describer.InvalidRoleName(role.Name))
	}

	owner, err := v.roles.FindByNormalizedName(ctx, role.NormalizedName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.IdentityResult{}, err
	}
	if owner != nil && owner.ID != role.ID {
		errs = append(errs, v.describer.DuplicateRoleName(role.Name))
	}

	if len(errs) > 0 {
		return domain.Fail(errs...), nil
	}
	return domain.OK(), nil
}
