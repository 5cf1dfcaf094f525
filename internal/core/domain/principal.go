package domain

// Principal is the aggregated, queryable identity produced for an
// authenticated user: the full claim bag plus role memberships
// expressed as role claims. It is immutable once built.
type Principal struct {
	claims        []Claim
	roleClaimType string
}

// NewPrincipal builds a principal from a claim bag. roleClaimType names
// the claim type that carries role memberships.
func NewPrincipal(claims []Claim, roleClaimType string) *Principal {
	return &Principal{
		claims:        append([]Claim(nil), claims...),
		roleClaimType: roleClaimType,
	}
}

// Claims returns a copy of the principal's claim bag.
func (p *Principal) Claims() []Claim {
	return append([]Claim(nil), p.claims...)
}

// IsInRole reports whether the principal carries a role claim with the
// given value.
func (p *Principal) IsInRole(name string) bool {
	for _, c := range p.claims {
		if c.Type == p.roleClaimType && c.Value == name {
			return true
		}
	}
	return false
}

// HasClaim reports whether any claim in the bag satisfies match.
func (p *Principal) HasClaim(match func(Claim) bool) bool {
	for _, c := range p.claims {
		if match(c) {
			return true
		}
	}
	return false
}

// FindFirst returns the value of the first claim of the given type.
func (p *Principal) FindFirst(claimType string) (string, bool) {
	for _, c := range p.claims {
		if c.Type == claimType {
			return c.Value, true
		}
	}
	return "", false
}
