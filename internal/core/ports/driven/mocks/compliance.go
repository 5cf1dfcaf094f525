package mocks

import (
	"github.com/veridian-labs/identity-core/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.UserStore[string]      = (*MockUserStore[string])(nil)
	_ driven.RoleStore[string]      = (*MockRoleStore[string])(nil)
	_ driven.UserClaimStore[string] = (*MockUserClaimStore[string])(nil)
	_ driven.RoleClaimStore[string] = (*MockRoleClaimStore[string])(nil)
	_ driven.UserRoleStore[string]  = (*MockUserRoleStore[string])(nil)
	_ driven.PasswordHasher[string] = (*MockPasswordHasher[string])(nil)
	_ driven.LockoutCounter         = (*MockLockoutCounter)(nil)
)
