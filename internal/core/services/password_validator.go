package services

import (
	"unicode"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// PasswordValidator checks candidate passwords against the configured
// policy. Every violated rule is reported, not just the first, so
// callers can render all feedback at once.
type PasswordValidator struct {
	opts      domain.PasswordOptions
	describer ErrorDescriber
}

// NewPasswordValidator creates a password validator.
func NewPasswordValidator(opts domain.PasswordOptions, describer ErrorDescriber) *PasswordValidator {
	return &PasswordValidator{opts: opts, describer: describer}
}

// Validate checks the password and returns a result enumerating every
// violated rule. Validation never mutates anything.
func (v *PasswordValidator) Validate(password string) domain.IdentityResult {
	var errs []domain.IdentityError

	if len([]rune(password)) < v.opts.RequiredLength {
		errs = append(errs, v.describer.PasswordTooShort(v.opts.RequiredLength))
	}

	var hasDigit, hasLower, hasUpper, hasNonAlnum bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			hasNonAlnum = true
		}
	}

	if v.opts.RequireDigit && !hasDigit {
		errs = append(errs, v.describer.PasswordRequiresDigit())
	}
	if v.opts.RequireLowercase && !hasLower {
		errs = append(errs, v.describer.PasswordRequiresLower())
	}
	if v.opts.RequireUppercase && !hasUpper {
		errs = append(errs, v.describer.PasswordRequiresUpper())
	}
	if v.opts.RequireNonAlphanumeric && !hasNonAlnum {
		errs = append(errs, v.describer.PasswordRequiresNonAlphanumeric())
	}

	if len(errs) > 0 {
		return domain.Fail(errs...)
	}
	return domain.OK()
}
