package domain

import "time"

// PasswordOptions configures the password validator. Each character
// class requirement toggles independently.
type PasswordOptions struct {
	RequiredLength         int
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
}

// DefaultPasswordOptions returns the default password policy.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		RequiredLength:         6,
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
	}
}

// UserOptions configures user validation.
type UserOptions struct {
	// AllowedUserNameCharacters is the set of characters a user name
	// may consist of. The empty name never passes.
	AllowedUserNameCharacters string
	// RequireUniqueEmail requires that no two users share a normalized
	// email.
	RequireUniqueEmail bool
}

// DefaultUserOptions returns the default user policy.
func DefaultUserOptions() UserOptions {
	return UserOptions{
		AllowedUserNameCharacters: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+",
		RequireUniqueEmail:        false,
	}
}

// RoleOptions configures role validation.
type RoleOptions struct {
	AllowedRoleNameCharacters string
	RequiredRoleNameLength    int
}

// DefaultRoleOptions returns the default role policy.
func DefaultRoleOptions() RoleOptions {
	return RoleOptions{
		AllowedRoleNameCharacters: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_ ",
		RequiredRoleNameLength:    6,
	}
}

// LockoutOptions configures the lockout state machine.
type LockoutOptions struct {
	// MaxFailedAttempts is the number of consecutive failures at which
	// a lockout-enabled user transitions to locked out.
	MaxFailedAttempts int
	// Duration is how long a lockout lasts once triggered.
	Duration time.Duration
	// AllowedForNewUsers sets the lockout-enabled flag on users at
	// creation time.
	AllowedForNewUsers bool
}

// DefaultLockoutOptions returns the default lockout policy.
func DefaultLockoutOptions() LockoutOptions {
	return LockoutOptions{
		MaxFailedAttempts:  5,
		Duration:           5 * time.Minute,
		AllowedForNewUsers: true,
	}
}

// ClaimOptions names the claim types the principal factory emits for
// the user identifier, user name, email and role memberships, so the
// core can interoperate with differently-labeled claim schemes.
type ClaimOptions struct {
	UserIDClaimType   string
	UserNameClaimType string
	EmailClaimType    string
	RoleClaimType     string
}

// DefaultClaimOptions returns the default claim type identifiers.
func DefaultClaimOptions() ClaimOptions {
	return ClaimOptions{
		UserIDClaimType:   "sub",
		UserNameClaimType: "name",
		EmailClaimType:    "email",
		RoleClaimType:     "role",
	}
}

// Options bundles every policy knob the identity core reads. Construct
// with DefaultOptions and override fields before wiring the managers;
// the managers copy what they need and never consult a global source.
type Options struct {
	Password PasswordOptions
	User     UserOptions
	Role     RoleOptions
	Lockout  LockoutOptions
	Claims   ClaimOptions
}

// DefaultOptions returns the defaults for every section.
func DefaultOptions() Options {
	return Options{
		Password: DefaultPasswordOptions(),
		User:     DefaultUserOptions(),
		Role:     DefaultRoleOptions(),
		Lockout:  DefaultLockoutOptions(),
		Claims:   DefaultClaimOptions(),
	}
}
