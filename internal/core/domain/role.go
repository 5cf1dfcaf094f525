package domain

// Role represents a named group that users can be members of.
// NormalizedName carries the same derived-field invariant as the
// normalized fields on User.
type Role[K comparable] struct {
	ID             K      `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalized_name"`
}
