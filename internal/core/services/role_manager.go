package services

import (
	"context"
	"errors"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
	"github.com/veridian-labs/identity-core/internal/core/ports/driving"
)

// Verify interface compliance
var _ driving.RoleManager[string] = (*roleManager[string])(nil)

// roleManager implements the RoleManager interface.
type roleManager[K comparable] struct {
	roles      driven.RoleStore[K]
	claims     driven.RoleClaimStore[K]
	normalizer driven.LookupNormalizer
	describer  ErrorDescriber
	validator  *RoleValidator[K]
}

// NewRoleManager creates a RoleManager.
func NewRoleManager[K comparable](
	roles driven.RoleStore[K],
	claims driven.RoleClaimStore[K],
	normalizer driven.LookupNormalizer,
	describer ErrorDescriber,
	opts domain.Options,
) driving.RoleManager[K] {
	return &roleManager[K]{
		roles:      roles,
		claims:     claims,
		normalizer: normalizer,
		describer:  describer,
		validator:  NewRoleValidator(opts.Role, roles, describer),
	}
}

func (m *roleManager[K]) Create(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error) {
	mustRole(role)
	role.NormalizedName = m.NormalizeName(role.Name)

	if res, err := m.validator.Validate(ctx, role); err != nil || !res.Succeeded {
		return res, err
	}
	if err := m.roles.Create(ctx, role); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Fail(m.describer.DuplicateRoleName(role.Name)), nil
		}
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *roleManager[K]) Update(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error) {
	mustRole(role)
	role.NormalizedName = m.NormalizeName(role.Name)

	if res, err := m.validator.Validate(ctx, role); err != nil || !res.Succeeded {
		return res, err
	}
	if err := m.roles.Update(ctx, role); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Fail(m.describer.DuplicateRoleName(role.Name)), nil
		}
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *roleManager[K]) Delete(ctx context.Context, role *domain.Role[K]) (domain.IdentityResult, error) {
	mustRole(role)
	if err := m.roles.Delete(ctx, role.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(m.describer.StorageFailure()), nil
		}
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *roleManager[K]) FindByID(ctx context.Context, id K) (*domain.Role[K], error) {
	role, err := m.roles.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return role, err
}

func (m *roleManager[K]) FindByName(ctx context.Context, name string) (*domain.Role[K], error) {
	role, err := m.roles.FindByNormalizedName(ctx, m.NormalizeName(name))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return role, err
}

func (m *roleManager[K]) Exists(ctx context.Context, role *domain.Role[K]) (bool, error) {
	mustRole(role)
	found, err := m.FindByID(ctx, role.ID)
	if err != nil {
		return false, err
	}
	return found != nil, nil
}

func (m *roleManager[K]) GetClaims(ctx context.Context, role *domain.Role[K]) ([]domain.Claim, error) {
	mustRole(role)
	rows, err := m.claims.ListByRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	claims := make([]domain.Claim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, row.Claim())
	}
	return claims, nil
}

func (m *roleManager[K]) AddClaim(ctx context.Context, role *domain.Role[K], claim domain.Claim) (domain.IdentityResult, error) {
	mustRole(role)
	existing, err := m.claims.ListByRole(ctx, role.ID)
	if err != nil {
		return domain.IdentityResult{}, err
	}
	for _, row := range existing {
		if row.Claim() == claim {
			return domain.OK(), nil
		}
	}
	err = m.claims.Create(ctx, &domain.RoleClaim[K]{RoleID: role.ID, Type: claim.Type, Value: claim.Value})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *roleManager[K]) RemoveClaim(ctx context.Context, role *domain.Role[K], claim domain.Claim) (domain.IdentityResult, error) {
	mustRole(role)
	err := m.claims.Delete(ctx, role.ID, claim)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *roleManager[K]) NormalizeName(name string) string {
	return m.normalizer.Normalize(name)
}
