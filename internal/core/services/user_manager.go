package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
	"github.com/veridian-labs/identity-core/internal/core/ports/driving"
)

// Verify interface compliance
var _ driving.UserManager[string] = (*userManager[string])(nil)

// userManager implements the UserManager interface. It holds no entity
// state of its own; everything lives in the stores, so concurrent
// callers reduce to the stores' consistency guarantees.
type userManager[K comparable] struct {
	users      driven.UserStore[K]
	claims     driven.UserClaimStore[K]
	userRoles  driven.UserRoleStore[K]
	roles      driven.RoleStore[K]
	hasher     driven.PasswordHasher[K]
	normalizer driven.LookupNormalizer
	describer  ErrorDescriber

	userValidator     *UserValidator[K]
	passwordValidator *PasswordValidator
	lockout           domain.LockoutOptions

	// counter arbitrates concurrent failed-attempt increments when
	// configured; otherwise counting is a best-effort
	// read-modify-write through the user store.
	counter driven.LockoutCounter
	now     func() time.Time
}

// UserManagerOption customizes a UserManager.
type UserManagerOption[K comparable] func(*userManager[K])

// WithLockoutCounter wires an atomic access-failed counter, upgrading
// lockout counting from best-effort to race-free under concurrent
// failed attempts.
func WithLockoutCounter[K comparable](counter driven.LockoutCounter) UserManagerOption[K] {
	return func(m *userManager[K]) {
		m.counter = counter
	}
}

// WithClock overrides the manager's time source.
func WithClock[K comparable](now func() time.Time) UserManagerOption[K] {
	return func(m *userManager[K]) {
		m.now = now
	}
}

// NewUserManager creates a UserManager.
func NewUserManager[K comparable](
	users driven.UserStore[K],
	claims driven.UserClaimStore[K],
	userRoles driven.UserRoleStore[K],
	roles driven.RoleStore[K],
	hasher driven.PasswordHasher[K],
	normalizer driven.LookupNormalizer,
	describer ErrorDescriber,
	opts domain.Options,
	managerOpts ...UserManagerOption[K],
) driving.UserManager[K] {
	m := &userManager[K]{
		users:             users,
		claims:            claims,
		userRoles:         userRoles,
		roles:             roles,
		hasher:            hasher,
		normalizer:        normalizer,
		describer:         describer,
		userValidator:     NewUserValidator(opts.User, users, describer),
		passwordValidator: NewPasswordValidator(opts.Password, describer),
		lockout:           opts.Lockout,
		now:               time.Now,
	}
	for _, opt := range managerOpts {
		opt(m)
	}
	return m
}

func (m *userManager[K]) Create(ctx context.Context, user *domain.User[K], password string) (domain.IdentityResult, error) {
	mustUser(user)
	m.normalize(user)

	// Fail fast between stages, aggregate within each stage.
	if res, err := m.userValidator.Validate(ctx, user); err != nil || !res.Succeeded {
		return res, err
	}
	if res := m.passwordValidator.Validate(password); !res.Succeeded {
		return res, nil
	}

	hash, err := m.hasher.Hash(user, password)
	if err != nil {
		return domain.IdentityResult{}, err
	}
	user.PasswordHash = hash
	user.LockoutEnabled = m.lockout.AllowedForNewUsers

	if err := m.users.Create(ctx, user); err != nil {
		// The write is authoritative over the validator's pre-check.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Fail(m.describer.DuplicateUserName(user.UserName)), nil
		}
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) Update(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	mustUser(user)
	m.normalize(user)

	if res, err := m.userValidator.Validate(ctx, user); err != nil || !res.Succeeded {
		return res, err
	}
	return m.saveUser(ctx, user)
}

func (m *userManager[K]) Delete(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	mustUser(user)
	if err := m.users.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(m.describer.StorageFailure()), nil
		}
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) FindByID(ctx context.Context, id K) (*domain.User[K], error) {
	user, err := m.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

func (m *userManager[K]) FindByName(ctx context.Context, name string) (*domain.User[K], error) {
	user, err := m.users.FindByNormalizedName(ctx, m.NormalizeName(name))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

func (m *userManager[K]) Exists(ctx context.Context, user *domain.User[K]) (bool, error) {
	mustUser(user)
	found, err := m.FindByID(ctx, user.ID)
	if err != nil {
		return false, err
	}
	return found != nil, nil
}

func (m *userManager[K]) SetUserName(ctx context.Context, user *domain.User[K], userName string) (domain.IdentityResult, error) {
	mustUser(user)
	user.UserName = userName
	return m.Update(ctx, user)
}

func (m *userManager[K]) NormalizeName(name string) string {
	return m.normalizer.Normalize(name)
}

func (m *userManager[K]) HasPassword(user *domain.User[K]) bool {
	mustUser(user)
	return user.HasPassword()
}

func (m *userManager[K]) AddPassword(ctx context.Context, user *domain.User[K], password string) (domain.IdentityResult, error) {
	mustUser(user)
	if user.HasPassword() {
		return domain.Fail(m.describer.UserAlreadyHasPassword()), nil
	}
	return m.updatePasswordHash(ctx, user, password, true)
}

func (m *userManager[K]) ChangePassword(ctx context.Context, user *domain.User[K], currentPassword, newPassword string) (domain.IdentityResult, error) {
	mustUser(user)
	if !user.HasPassword() {
		return domain.Fail(m.describer.UserHasNoPassword()), nil
	}
	if m.VerifyPassword(user, currentPassword) == domain.VerificationFailed {
		return domain.Fail(m.describer.PasswordMismatch()), nil
	}
	return m.updatePasswordHash(ctx, user, newPassword, true)
}

func (m *userManager[K]) ResetPassword(ctx context.Context, user *domain.User[K], newPassword string) (domain.IdentityResult, error) {
	mustUser(user)
	return m.updatePasswordHash(ctx, user, newPassword, true)
}

func (m *userManager[K]) RemovePassword(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	mustUser(user)
	user.PasswordHash = ""
	return m.saveUser(ctx, user)
}

func (m *userManager[K]) CheckPassword(ctx context.Context, user *domain.User[K], password string) (bool, error) {
	mustUser(user)
	switch m.VerifyPassword(user, password) {
	case domain.VerificationFailed:
		return false, nil
	case domain.VerificationSuccessRehashNeeded:
		// The password is known good here; recompute the hash under
		// the current parameters without re-validating it.
		if _, err := m.updatePasswordHash(ctx, user, password, false); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (m *userManager[K]) VerifyPassword(user *domain.User[K], password string) domain.PasswordVerificationResult {
	mustUser(user)
	if !user.HasPassword() {
		return domain.VerificationFailed
	}
	return m.hasher.Verify(user, user.PasswordHash, password)
}

func (m *userManager[K]) ValidatePassword(user *domain.User[K], password string) domain.IdentityResult {
	mustUser(user)
	return m.passwordValidator.Validate(password)
}

func (m *userManager[K]) ValidateUser(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	mustUser(user)
	m.normalize(user)
	return m.userValidator.Validate(ctx, user)
}

func (m *userManager[K]) GetClaims(ctx context.Context, user *domain.User[K]) ([]domain.Claim, error) {
	mustUser(user)
	rows, err := m.claims.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	claims := make([]domain.Claim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, row.Claim())
	}
	return claims, nil
}

func (m *userManager[K]) AddClaim(ctx context.Context, user *domain.User[K], claim domain.Claim) (domain.IdentityResult, error) {
	mustUser(user)
	existing, err := m.claims.ListByUser(ctx, user.ID)
	if err != nil {
		return domain.IdentityResult{}, err
	}
	for _, row := range existing {
		if row.Claim() == claim {
			return domain.OK(), nil
		}
	}
	err = m.claims.Create(ctx, &domain.UserClaim[K]{UserID: user.ID, Type: claim.Type, Value: claim.Value})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) AddClaims(ctx context.Context, user *domain.User[K], claims []domain.Claim) (domain.IdentityResult, error) {
	res := domain.OK()
	for _, claim := range claims {
		r, err := m.AddClaim(ctx, user, claim)
		if err != nil {
			return domain.IdentityResult{}, err
		}
		res = res.Combine(r)
	}
	return res, nil
}

func (m *userManager[K]) RemoveClaim(ctx context.Context, user *domain.User[K], claim domain.Claim) (domain.IdentityResult, error) {
	mustUser(user)
	err := m.claims.Delete(ctx, user.ID, claim)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) RemoveClaims(ctx context.Context, user *domain.User[K], claims []domain.Claim) (domain.IdentityResult, error) {
	res := domain.OK()
	for _, claim := range claims {
		r, err := m.RemoveClaim(ctx, user, claim)
		if err != nil {
			return domain.IdentityResult{}, err
		}
		res = res.Combine(r)
	}
	return res, nil
}

func (m *userManager[K]) GetUsersForClaim(ctx context.Context, claim domain.Claim) ([]*domain.User[K], error) {
	ids, err := m.claims.ListUsersForClaim(ctx, claim)
	if err != nil {
		return nil, err
	}
	return m.findUsers(ctx, ids)
}

func (m *userManager[K]) GetRoles(ctx context.Context, user *domain.User[K]) ([]*domain.Role[K], error) {
	mustUser(user)
	ids, err := m.userRoles.ListRolesForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	roles := make([]*domain.Role[K], 0, len(ids))
	for _, id := range ids {
		role, err := m.roles.FindByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (m *userManager[K]) AddToRole(ctx context.Context, user *domain.User[K], role *domain.Role[K]) (domain.IdentityResult, error) {
	mustUser(user)
	mustRole(role)
	held, err := m.userRoles.Exists(ctx, user.ID, role.ID)
	if err != nil {
		return domain.IdentityResult{}, err
	}
	if held {
		return domain.OK(), nil
	}
	err = m.userRoles.Create(ctx, &domain.UserRole[K]{UserID: user.ID, RoleID: role.ID})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) AddToRoles(ctx context.Context, user *domain.User[K], roles []*domain.Role[K]) (domain.IdentityResult, error) {
	res := domain.OK()
	for _, role := range roles {
		r, err := m.AddToRole(ctx, user, role)
		if err != nil {
			return domain.IdentityResult{}, err
		}
		res = res.Combine(r)
	}
	return res, nil
}

func (m *userManager[K]) RemoveFromRole(ctx context.Context, user *domain.User[K], role *domain.Role[K]) (domain.IdentityResult, error) {
	mustUser(user)
	mustRole(role)
	err := m.userRoles.Delete(ctx, user.ID, role.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Fail(m.describer.UserNotInRole(role.Name)), nil
	}
	if err != nil {
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) RemoveFromRoles(ctx context.Context, user *domain.User[K], roles []*domain.Role[K]) (domain.IdentityResult, error) {
	res := domain.OK()
	for _, role := range roles {
		r, err := m.RemoveFromRole(ctx, user, role)
		if err != nil {
			return domain.IdentityResult{}, err
		}
		res = res.Combine(r)
	}
	return res, nil
}

func (m *userManager[K]) IsInRole(ctx context.Context, user *domain.User[K], role *domain.Role[K]) (bool, error) {
	mustUser(user)
	mustRole(role)
	return m.userRoles.Exists(ctx, user.ID, role.ID)
}

func (m *userManager[K]) GetUsersInRole(ctx context.Context, role *domain.Role[K]) ([]*domain.User[K], error) {
	mustRole(role)
	ids, err := m.userRoles.ListUsersInRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	return m.findUsers(ctx, ids)
}

func (m *userManager[K]) GetLockoutEnabled(user *domain.User[K]) bool {
	mustUser(user)
	return user.LockoutEnabled
}

func (m *userManager[K]) SetLockoutEnabled(ctx context.Context, user *domain.User[K], enabled bool) (domain.IdentityResult, error) {
	mustUser(user)
	// The access-failed counter deliberately survives this toggle:
	// failures accumulated while lockout was disabled still count once
	// it is re-enabled.
	user.LockoutEnabled = enabled
	return m.saveUser(ctx, user)
}

func (m *userManager[K]) GetLockoutEnd(user *domain.User[K]) *time.Time {
	mustUser(user)
	return user.LockoutEnd
}

func (m *userManager[K]) SetLockoutEnd(ctx context.Context, user *domain.User[K], lockoutEnd *time.Time) (domain.IdentityResult, error) {
	mustUser(user)
	if !user.LockoutEnabled {
		return domain.Fail(m.describer.LockoutNotEnabled()), nil
	}
	user.LockoutEnd = lockoutEnd
	return m.saveUser(ctx, user)
}

func (m *userManager[K]) GetAccessFailedCount(user *domain.User[K]) int {
	mustUser(user)
	return user.AccessFailedCount
}

func (m *userManager[K]) AccessFailed(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	mustUser(user)

	count := user.AccessFailedCount + 1
	if m.counter != nil {
		// Fall back to the local count if the counter is unreachable;
		// counting degrades to best-effort rather than failing the
		// whole attempt.
		if n, err := m.counter.Increment(ctx, m.counterKey(user)); err == nil {
			count = n
		}
	}

	if user.LockoutEnabled && count >= m.lockout.MaxFailedAttempts {
		// The lockout transition and the counter reset are one step:
		// an expired lockout starts counting from zero again.
		end := m.now().Add(m.lockout.Duration)
		user.LockoutEnd = &end
		user.AccessFailedCount = 0
		if m.counter != nil {
			_ = m.counter.Reset(ctx, m.counterKey(user))
		}
	} else {
		user.AccessFailedCount = count
	}
	return m.saveUser(ctx, user)
}

func (m *userManager[K]) ResetAccessFailedCount(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	mustUser(user)
	if m.counter != nil {
		_ = m.counter.Reset(ctx, m.counterKey(user))
	}
	if user.AccessFailedCount == 0 {
		return domain.OK(), nil
	}
	user.AccessFailedCount = 0
	return m.saveUser(ctx, user)
}

func (m *userManager[K]) IsLockedOut(user *domain.User[K]) bool {
	mustUser(user)
	return user.LockoutEnabled && user.IsLockedOut(m.now())
}

// normalize recomputes the derived lookup fields from the raw ones.
func (m *userManager[K]) normalize(user *domain.User[K]) {
	user.NormalizedUserName = m.normalizer.Normalize(user.UserName)
	user.NormalizedEmail = m.normalizer.Normalize(user.Email)
}

// updatePasswordHash validates (optionally), hashes and persists a new
// password for the user.
func (m *userManager[K]) updatePasswordHash(ctx context.Context, user *domain.User[K], newPassword string, validate bool) (domain.IdentityResult, error) {
	if validate {
		if res := m.passwordValidator.Validate(newPassword); !res.Succeeded {
			return res, nil
		}
	}
	hash, err := m.hasher.Hash(user, newPassword)
	if err != nil {
		return domain.IdentityResult{}, err
	}
	user.PasswordHash = hash
	return m.saveUser(ctx, user)
}

// saveUser persists the user, translating constraint violations into a
// result failure.
func (m *userManager[K]) saveUser(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	if err := m.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Fail(m.describer.DuplicateUserName(user.UserName)), nil
		}
		return domain.IdentityResult{}, err
	}
	return domain.OK(), nil
}

func (m *userManager[K]) findUsers(ctx context.Context, ids []K) ([]*domain.User[K], error) {
	users := make([]*domain.User[K], 0, len(ids))
	for _, id := range ids {
		user, err := m.users.FindByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (m *userManager[K]) counterKey(user *domain.User[K]) string {
	return fmt.Sprintf("%v", user.ID)
}

// mustUser guards against nil users: passing one is a programmer
// error, not a recoverable input failure.
func mustUser[K comparable](user *domain.User[K]) {
	if user == nil {
		panic("identity: nil user")
	}
}

func mustRole[K comparable](role *domain.Role[K]) {
	if role == nil {
		panic("identity: nil role")
	}
}
