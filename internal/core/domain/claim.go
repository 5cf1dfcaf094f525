package domain

// Claim is a (type, value) string pair asserting a fact about a user
// or role.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// UserClaim is a claim owned by a user. The owning user is a foreign
// reference, not ownership: deleting a user cascades to its claims at
// the store level.
type UserClaim[K comparable] struct {
	ID     K      `json:"id"`
	UserID K      `json:"user_id"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

// Claim returns the plain claim carried by the row.
func (c UserClaim[K]) Claim() Claim {
	return Claim{Type: c.Type, Value: c.Value}
}

// RoleClaim is a claim owned by a role.
type RoleClaim[K comparable] struct {
	ID     K      `json:"id"`
	RoleID K      `json:"role_id"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

// Claim returns the plain claim carried by the row.
func (c RoleClaim[K]) Claim() Claim {
	return Claim{Type: c.Type, Value: c.Value}
}

// UserRole links a user to a role. A given (user, role) pair appears
// at most once; the stores enforce this.
type UserRole[K comparable] struct {
	UserID K `json:"user_id"`
	RoleID K `json:"role_id"`
}
