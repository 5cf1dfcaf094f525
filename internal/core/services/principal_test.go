package services

import (
	"context"
	"testing"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driving"
)

func newTestPrincipalFactory(t *testing.T) (*userManagerFixture, *roleManagerFixture, driving.PrincipalFactory[string]) {
	t.Helper()
	uf := newTestUserManager(t, domain.DefaultOptions())
	rf := newTestRoleManager(t)

	// Share the role store so memberships resolve to real roles.
	uf2 := &userManagerFixture{
		users:     uf.users,
		claims:    uf.claims,
		userRoles: uf.userRoles,
		roles:     rf.roles,
		hasher:    uf.hasher,
		clock:     uf.clock,
	}
	uf2.manager = NewUserManager[string](
		uf2.users, uf2.claims, uf2.userRoles, uf2.roles,
		uf2.hasher, upperNormalizer{}, NewErrorDescriber(), domain.DefaultOptions(),
	)

	factory := NewPrincipalFactory(uf2.manager, rf.manager, domain.DefaultClaimOptions())
	return uf2, rf, factory
}

func TestPrincipalFactory_Create(t *testing.T) {
	uf, rf, factory := newTestPrincipalFactory(t)
	ctx := context.Background()

	bob := uf.createUser(t, "u1", "bob", "Sekret1!")
	bob.Email = "bob@example.com"
	if result, err := uf.manager.Update(ctx, bob); err != nil || !result.Succeeded {
		t.Fatalf("failed to set email: %v %s", err, result)
	}

	admin := rf.createRole(t, "r1", "Administrator")
	if result, err := rf.manager.AddClaim(ctx, admin, domain.Claim{Type: "permission", Value: "users.write"}); err != nil || !result.Succeeded {
		t.Fatalf("failed to add role claim: %v %s", err, result)
	}
	if result, err := uf.manager.AddToRole(ctx, bob, admin); err != nil || !result.Succeeded {
		t.Fatalf("failed to add to role: %v %s", err, result)
	}
	if result, err := uf.manager.AddClaim(ctx, bob, domain.Claim{Type: "department", Value: "engineering"}); err != nil || !result.Succeeded {
		t.Fatalf("failed to add user claim: %v %s", err, result)
	}

	principal, err := factory.Create(ctx, bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value, ok := principal.FindFirst("sub"); !ok || value != "u1" {
		t.Errorf("expected sub claim u1, got %q", value)
	}
	if value, ok := principal.FindFirst("name"); !ok || value != "bob" {
		t.Errorf("expected name claim bob, got %q", value)
	}
	if value, ok := principal.FindFirst("email"); !ok || value != "bob@example.com" {
		t.Errorf("expected email claim, got %q", value)
	}
	if !principal.IsInRole("Administrator") {
		t.Error("expected principal in Administrator role")
	}
	if !principal.HasClaim(func(c domain.Claim) bool {
		return c.Type == "permission" && c.Value == "users.write"
	}) {
		t.Error("expected role claim to flow into the principal")
	}
	if !principal.HasClaim(func(c domain.Claim) bool {
		return c.Type == "department" && c.Value == "engineering"
	}) {
		t.Error("expected user claim in the principal")
	}
}

func TestPrincipalFactory_Create_NoEmailNoRoles(t *testing.T) {
	uf, _, factory := newTestPrincipalFactory(t)
	ctx := context.Background()

	alice := uf.createUser(t, "u1", "alice", "Sekret1!")

	principal, err := factory.Create(ctx, alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No email claim is emitted for an empty email.
	if _, ok := principal.FindFirst("email"); ok {
		t.Error("expected no email claim")
	}
	if len(principal.Claims()) != 2 {
		t.Errorf("expected only sub and name claims, got %v", principal.Claims())
	}
	if principal.IsInRole("Administrator") {
		t.Error("expected no role memberships")
	}
}

func TestPrincipalFactory_Create_NilUserPanics(t *testing.T) {
	_, _, factory := newTestPrincipalFactory(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil user")
		}
	}()
	factory.Create(context.Background(), nil)
}
