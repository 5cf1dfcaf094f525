package services

import (
	"context"
	"log/slog"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driving"
)

// Verify interface compliance
var _ driving.SignInManager = (*signInManager[string])(nil)

// SignInCheck decides whether a user who passed credential
// verification is allowed to sign in at all. Returning false yields
// SignInNotAllowed. This is the extension point for policies such as
// unconfirmed accounts.
type SignInCheck[K comparable] func(ctx context.Context, user *domain.User[K]) bool

// signInManager implements the SignInManager interface on top of a
// UserManager. It owns no session state.
type signInManager[K comparable] struct {
	users  driving.UserManager[K]
	check  SignInCheck[K]
	logger *slog.Logger
}

// SignInOption customizes a SignInManager.
type SignInOption[K comparable] func(*signInManager[K])

// WithSignInCheck installs a pre-sign-in policy check.
func WithSignInCheck[K comparable](check SignInCheck[K]) SignInOption[K] {
	return func(s *signInManager[K]) {
		s.check = check
	}
}

// WithSignInLogger overrides the sign-in manager's logger.
func WithSignInLogger[K comparable](logger *slog.Logger) SignInOption[K] {
	return func(s *signInManager[K]) {
		s.logger = logger
	}
}

// NewSignInManager creates a SignInManager.
func NewSignInManager[K comparable](users driving.UserManager[K], opts ...SignInOption[K]) driving.SignInManager {
	s := &signInManager[K]{
		users:  users,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PasswordSignIn classifies a sign-in attempt. Unknown user names and
// invalid credentials flow through the same result channel so callers
// cannot accidentally leak account existence through divergent error
// handling.
func (s *signInManager[K]) PasswordSignIn(ctx context.Context, userName, password string) (domain.SignInResult, error) {
	user, err := s.users.FindByName(ctx, userName)
	if err != nil {
		return domain.SignInFailed, err
	}
	if user == nil {
		return domain.SignInFailed, nil
	}

	// A locked-out user never reaches password verification: no hash
	// work is spent, and lockout state is not distinguishable from a
	// wrong password by response time.
	if s.users.IsLockedOut(user) {
		s.logger.Info("sign-in rejected, user locked out", "user", user.UserName)
		return domain.SignInLockedOut, nil
	}

	if s.check != nil && !s.check(ctx, user) {
		s.logger.Info("sign-in rejected by policy", "user", user.UserName)
		return domain.SignInNotAllowed, nil
	}

	if s.users.VerifyPassword(user, password) == domain.VerificationFailed {
		if _, err := s.users.AccessFailed(ctx, user); err != nil {
			return domain.SignInFailed, err
		}
		// The attempt that crosses the threshold reports the lockout
		// itself, not on the next call.
		if s.users.IsLockedOut(user) {
			s.logger.Info("sign-in attempt triggered lockout", "user", user.UserName)
			return domain.SignInLockedOut, nil
		}
		return domain.SignInInvalidCredential, nil
	}

	if _, err := s.users.ResetAccessFailedCount(ctx, user); err != nil {
		return domain.SignInFailed, err
	}
	return domain.SignInSucceeded, nil
}

// SignOut ends the caller's authentication context. The core holds no
// session state, so there is nothing to clear here.
func (s *signInManager[K]) SignOut(ctx context.Context) error {
	s.logger.Debug("sign-out")
	return nil
}
