package driving

import (
	"context"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// SignInManager orchestrates credential verification, the lockout
// transition and result classification.
type SignInManager interface {
	// PasswordSignIn attempts to sign in the given user name and
	// password combination. Lockout triggered by this very attempt is
	// reported as locked out in the same call. The error carries only
	// infrastructure failures.
	PasswordSignIn(ctx context.Context, userName, password string) (domain.SignInResult, error)

	// SignOut ends the current authentication context. The core holds
	// no session state; any session-level context lives with the
	// caller.
	SignOut(ctx context.Context) error
}
