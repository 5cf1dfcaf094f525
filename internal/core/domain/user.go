package domain

import "time"

// User represents an identity account. The key type K is any comparable
// value so backends can choose their own identifier representation
// (UUIDs, sequential integers, ...).
//
// NormalizedUserName and NormalizedEmail are derived values: they are
// always the lookup normalizer's output of the corresponding raw field
// and are recomputed by the managers on every raw-field mutation. Code
// outside the core must never set them directly.
type User[K comparable] struct {
	ID                 K          `json:"id"`
	UserName           string     `json:"user_name"`
	NormalizedUserName string     `json:"normalized_user_name"`
	Email              string     `json:"email,omitempty"`
	NormalizedEmail    string     `json:"normalized_email,omitempty"`
	PasswordHash       string     `json:"-"` // Never serialize
	LockoutEnabled     bool       `json:"lockout_enabled"`
	LockoutEnd         *time.Time `json:"lockout_end,omitempty"`
	AccessFailedCount  int        `json:"access_failed_count"`
}

// HasPassword reports whether a password hash is set for the user.
func (u *User[K]) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsLockedOut reports whether the user is locked out at the given
// instant. A nil LockoutEnd or one in the past means unlocked.
func (u *User[K]) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}
