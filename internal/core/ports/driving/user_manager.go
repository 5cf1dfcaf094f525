package driving

import (
	"context"
	"time"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// UserManager is the application-facing surface for user records:
// CRUD, password lifecycle, claims, role membership and lockout.
//
// Mutating operations return (domain.IdentityResult, error): validation
// and constraint outcomes travel in the result, the error carries only
// infrastructure failures (cancellation, connectivity). Find operations
// report an absent user as (nil, nil). Passing a nil user is a
// programmer error and panics.
type UserManager[K comparable] interface {
	// Create validates the user and password, hashes the password and
	// persists the user. The normalized name and email fields are
	// recomputed before validation.
	Create(ctx context.Context, user *domain.User[K], password string) (domain.IdentityResult, error)

	// Update re-normalizes and re-validates the user, then persists it.
	Update(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error)

	// Delete removes the user. Dependent claims and role links cascade
	// at the store level.
	Delete(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error)

	FindByID(ctx context.Context, id K) (*domain.User[K], error)
	FindByName(ctx context.Context, name string) (*domain.User[K], error)

	// Exists reports whether the user's record is present in the store.
	Exists(ctx context.Context, user *domain.User[K]) (bool, error)

	// SetUserName changes the user name, recomputing the normalized
	// form and re-validating before persisting.
	SetUserName(ctx context.Context, user *domain.User[K], userName string) (domain.IdentityResult, error)

	// NormalizeName exposes the manager's lookup normalization.
	NormalizeName(name string) string

	// HasPassword reports whether a password hash is set.
	HasPassword(user *domain.User[K]) bool

	// AddPassword sets a password only if none is set; it never
	// silently overwrites an existing hash.
	AddPassword(ctx context.Context, user *domain.User[K], password string) (domain.IdentityResult, error)

	// ChangePassword verifies the current password before setting the
	// new one.
	ChangePassword(ctx context.Context, user *domain.User[K], currentPassword, newPassword string) (domain.IdentityResult, error)

	// ResetPassword sets a new password without checking the current
	// one. Intended for administrative and recovery flows.
	ResetPassword(ctx context.Context, user *domain.User[K], newPassword string) (domain.IdentityResult, error)

	RemovePassword(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error)

	// CheckPassword collapses verification to a boolean: true for
	// success, with or without a rehash being needed. When the hasher
	// signals a needed rehash, the stored hash is recomputed in place.
	CheckPassword(ctx context.Context, user *domain.User[K], password string) (bool, error)

	// VerifyPassword surfaces the hasher's full tri-state result.
	VerifyPassword(user *domain.User[K], password string) domain.PasswordVerificationResult

	// ValidatePassword runs the password validator without touching
	// the user.
	ValidatePassword(user *domain.User[K], password string) domain.IdentityResult

	// ValidateUser runs the user validator (character set and
	// uniqueness checks) without persisting anything.
	ValidateUser(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error)

	GetClaims(ctx context.Context, user *domain.User[K]) ([]domain.Claim, error)

	// AddClaim attaches a claim; adding an exact (type, value)
	// duplicate for the same user is idempotent.
	AddClaim(ctx context.Context, user *domain.User[K], claim domain.Claim) (domain.IdentityResult, error)
	AddClaims(ctx context.Context, user *domain.User[K], claims []domain.Claim) (domain.IdentityResult, error)
	RemoveClaim(ctx context.Context, user *domain.User[K], claim domain.Claim) (domain.IdentityResult, error)
	RemoveClaims(ctx context.Context, user *domain.User[K], claims []domain.Claim) (domain.IdentityResult, error)

	// GetUsersForClaim retrieves every user holding the given claim.
	GetUsersForClaim(ctx context.Context, claim domain.Claim) ([]*domain.User[K], error)

	GetRoles(ctx context.Context, user *domain.User[K]) ([]*domain.Role[K], error)

	// AddToRole adds the user to a role; adding a user to a role they
	// already hold is a no-op success.
	AddToRole(ctx context.Context, user *domain.User[K], role *domain.Role[K]) (domain.IdentityResult, error)
	AddToRoles(ctx context.Context, user *domain.User[K], roles []*domain.Role[K]) (domain.IdentityResult, error)
	RemoveFromRole(ctx context.Context, user *domain.User[K], role *domain.Role[K]) (domain.IdentityResult, error)
	RemoveFromRoles(ctx context.Context, user *domain.User[K], roles []*domain.Role[K]) (domain.IdentityResult, error)
	IsInRole(ctx context.Context, user *domain.User[K], role *domain.Role[K]) (bool, error)
	GetUsersInRole(ctx context.Context, role *domain.Role[K]) ([]*domain.User[K], error)

	GetLockoutEnabled(user *domain.User[K]) bool

	// SetLockoutEnabled toggles whether the user can be locked out. It
	// never touches the access-failed counter: failures accumulated
	// while lockout was disabled still count once it is re-enabled.
	SetLockoutEnabled(ctx context.Context, user *domain.User[K], enabled bool) (domain.IdentityResult, error)

	GetLockoutEnd(user *domain.User[K]) *time.Time

	// SetLockoutEnd locks the user out until the given instant. A past
	// instant (or nil) immediately unlocks the user.
	SetLockoutEnd(ctx context.Context, user *domain.User[K], lockoutEnd *time.Time) (domain.IdentityResult, error)

	GetAccessFailedCount(user *domain.User[K]) int

	// AccessFailed records a failed access attempt. If lockout is
	// enabled for the user and the new count reaches the configured
	// maximum, the user transitions to locked out and the counter
	// resets to zero as part of the same transition.
	AccessFailed(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error)

	ResetAccessFailedCount(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error)

	// IsLockedOut reports whether the user is currently locked out.
	IsLockedOut(user *domain.User[K]) bool
}
