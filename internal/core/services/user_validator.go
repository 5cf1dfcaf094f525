package services

import (
	"context"
	"errors"
	"strings"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// UserValidator checks user records before they are persisted: user
// name character set, user name uniqueness and, when configured,
// email uniqueness. Uniqueness checks query the user store, so they
// are a best-effort pre-check; the store's constraints remain
// authoritative at write time.
type UserValidator[K comparable] struct {
	opts      domain.UserOptions
	users     driven.UserStore[K]
	describer ErrorDescriber
}

// NewUserValidator creates a user validator.
func NewUserValidator[K comparable](opts domain.UserOptions, users driven.UserStore[K], describer ErrorDescriber) *UserValidator[K] {
	return &UserValidator[K]{opts: opts, users: users, describer: describer}
}

// Validate checks the user and returns a result enumerating every
// violated rule. The user under validation is never mutated; its
// normalized fields must already be set by the calling manager.
func (v *UserValidator[K]) Validate(ctx context.Context, user *domain.User[K]) (domain.IdentityResult, error) {
	var errs []domain.IdentityError

	if !nameAllowed(user.UserName, v.opts.AllowedUserNameCharacters) {
		errs = append(errs, v.describer.InvalidUserName(user.UserName))
	}

	owner, err := v.users.FindByNormalizedName(ctx, user.NormalizedUserName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.IdentityResult{}, err
	}
	if owner != nil && owner.ID != user.ID {
		errs = append(errs, v.describer.DuplicateUserName(user.UserName))
	}

	if v.opts.RequireUniqueEmail && user.NormalizedEmail != "" {
		owner, err := v.users.FindByNormalizedEmail(ctx, user.NormalizedEmail)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.IdentityResult{}, err
		}
		if owner != nil && owner.ID != user.ID {
			errs = append(errs, v.describer.DuplicateEmail(user.Email))
		}
	}

	if len(errs) > 0 {
		return domain.Fail(errs...), nil
	}
	return domain.OK(), nil
}

// nameAllowed reports whether name is non-blank and consists only of
// runes from allowed. A blank name never passes; the allowed set never
// implicitly includes whitespace it does not name.
func nameAllowed(name, allowed string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}
