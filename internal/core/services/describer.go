package services

import (
	"fmt"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// Error codes carried by IdentityError values. Callers branch on the
// code; the description is presentation only.
const (
	CodeDefaultError                    = "DefaultError"
	CodePasswordTooShort                = "PasswordTooShort"
	CodePasswordRequiresDigit           = "PasswordRequiresDigit"
	CodePasswordRequiresLower           = "PasswordRequiresLower"
	CodePasswordRequiresUpper           = "PasswordRequiresUpper"
	CodePasswordRequiresNonAlphanumeric = "PasswordRequiresNonAlphanumeric"
	CodePasswordMismatch                = "PasswordMismatch"
	CodeInvalidUserName                 = "InvalidUserName"
	CodeDuplicateUserName               = "DuplicateUserName"
	CodeDuplicateEmail                  = "DuplicateEmail"
	CodeInvalidRoleName                 = "InvalidRoleName"
	CodeRoleNameTooShort                = "RoleNameTooShort"
	CodeDuplicateRoleName               = "DuplicateRoleName"
	CodeUserAlreadyHasPassword          = "UserAlreadyHasPassword"
	CodeUserHasNoPassword               = "UserHasNoPassword"
	CodeUserNotInRole                   = "UserNotInRole"
	CodeLockoutNotEnabled               = "UserLockoutNotEnabled"
	CodeStorageFailure                  = "StorageFailure"
)

// ErrorDescriber maps error kinds to user-facing IdentityError values.
// Swap it to localize or rephrase descriptions; the codes are fixed.
type ErrorDescriber interface {
	DefaultError() domain.IdentityError
	PasswordTooShort(requiredLength int) domain.IdentityError
	PasswordRequiresDigit() domain.IdentityError
	PasswordRequiresLower() domain.IdentityError
	PasswordRequiresUpper() domain.IdentityError
	PasswordRequiresNonAlphanumeric() domain.IdentityError
	PasswordMismatch() domain.IdentityError
	InvalidUserName(userName string) domain.IdentityError
	DuplicateUserName(userName string) domain.IdentityError
	DuplicateEmail(email string) domain.IdentityError
	InvalidRoleName(roleName string) domain.IdentityError
	RoleNameTooShort(requiredLength int) domain.IdentityError
	DuplicateRoleName(roleName string) domain.IdentityError
	UserAlreadyHasPassword() domain.IdentityError
	UserHasNoPassword() domain.IdentityError
	UserNotInRole(roleName string) domain.IdentityError
	LockoutNotEnabled() domain.IdentityError
	StorageFailure() domain.IdentityError
}

// Verify interface compliance
var _ ErrorDescriber = (*EnglishDescriber)(nil)

// EnglishDescriber is the default describer with English descriptions.
type EnglishDescriber struct{}

// NewErrorDescriber creates the default describer.
func NewErrorDescriber() *EnglishDescriber {
	return &EnglishDescriber{}
}

func (EnglishDescriber) DefaultError() domain.IdentityError {
	return domain.IdentityError{Code: CodeDefaultError, Description: "An unknown failure has occurred."}
}

func (EnglishDescriber) PasswordTooShort(requiredLength int) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodePasswordTooShort,
		Description: fmt.Sprintf("Passwords must be at least %d characters.", requiredLength),
	}
}

func (EnglishDescriber) PasswordRequiresDigit() domain.IdentityError {
	return domain.IdentityError{Code: CodePasswordRequiresDigit, Description: "Passwords must have at least one digit ('0'-'9')."}
}

func (EnglishDescriber) PasswordRequiresLower() domain.IdentityError {
	return domain.IdentityError{Code: CodePasswordRequiresLower, Description: "Passwords must have at least one lowercase character ('a'-'z')."}
}

func (EnglishDescriber) PasswordRequiresUpper() domain.IdentityError {
	return domain.IdentityError{Code: CodePasswordRequiresUpper, Description: "Passwords must have at least one uppercase character ('A'-'Z')."}
}

func (EnglishDescriber) PasswordRequiresNonAlphanumeric() domain.IdentityError {
	return domain.IdentityError{Code: CodePasswordRequiresNonAlphanumeric, Description: "Passwords must have at least one non alphanumeric character."}
}

func (EnglishDescriber) PasswordMismatch() domain.IdentityError {
	return domain.IdentityError{Code: CodePasswordMismatch, Description: "Incorrect password."}
}

func (EnglishDescriber) InvalidUserName(userName string) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeInvalidUserName,
		Description: fmt.Sprintf("User name '%s' is invalid, can only contain allowed characters.", userName),
	}
}

func (EnglishDescriber) DuplicateUserName(userName string) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeDuplicateUserName,
		Description: fmt.Sprintf("User name '%s' is already taken.", userName),
	}
}

func (EnglishDescriber) DuplicateEmail(email string) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeDuplicateEmail,
		Description: fmt.Sprintf("Email '%s' is already taken.", email),
	}
}

func (EnglishDescriber) InvalidRoleName(roleName string) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeInvalidRoleName,
		Description: fmt.Sprintf("Role name '%s' is invalid, can only contain allowed characters.", roleName),
	}
}

func (EnglishDescriber) RoleNameTooShort(requiredLength int) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeRoleNameTooShort,
		Description: fmt.Sprintf("Role names must be at least %d characters.", requiredLength),
	}
}

func (EnglishDescriber) DuplicateRoleName(roleName string) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeDuplicateRoleName,
		Description: fmt.Sprintf("Role name '%s' is already taken.", roleName),
	}
}

func (EnglishDescriber) UserAlreadyHasPassword() domain.IdentityError {
	return domain.IdentityError{Code: CodeUserAlreadyHasPassword, Description: "User already has a password set."}
}

func (EnglishDescriber) UserHasNoPassword() domain.IdentityError {
	return domain.IdentityError{Code: CodeUserHasNoPassword, Description: "User does not have a password set."}
}

func (EnglishDescriber) UserNotInRole(roleName string) domain.IdentityError {
	return domain.IdentityError{
		Code:        CodeUserNotInRole,
		Description: fmt.Sprintf("User is not in role '%s'.", roleName),
	}
}

func (EnglishDescriber) LockoutNotEnabled() domain.IdentityError {
	return domain.IdentityError{Code: CodeLockoutNotEnabled, Description: "Lockout is not enabled for this user."}
}

func (EnglishDescriber) StorageFailure() domain.IdentityError {
	return domain.IdentityError{Code: CodeStorageFailure, Description: "A storage failure has occurred."}
}
