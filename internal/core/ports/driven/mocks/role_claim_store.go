package mocks

import (
	"context"
	"sync"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// MockRoleClaimStore is an in-memory implementation of RoleClaimStore.
type MockRoleClaimStore[K comparable] struct {
	mu     sync.RWMutex
	rows   []domain.RoleClaim[K]
	newKey func() K
}

// NewMockRoleClaimStore creates a new MockRoleClaimStore.
func NewMockRoleClaimStore[K comparable](newKey func() K) *MockRoleClaimStore[K] {
	return &MockRoleClaimStore[K]{newKey: newKey}
}

func (m *MockRoleClaimStore[K]) Create(ctx context.Context, claim *domain.RoleClaim[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.RoleID == claim.RoleID && row.Claim() == claim.Claim() {
			return domain.ErrAlreadyExists
		}
	}
	claim.ID = m.newKey()
	m.rows = append(m.rows, *claim)
	return nil
}

func (m *MockRoleClaimStore[K]) Delete(ctx context.Context, roleID K, claim domain.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	deleted := false
	for _, row := range m.rows {
		if row.RoleID == roleID && row.Claim() == claim {
			deleted = true
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MockRoleClaimStore[K]) ListByRole(ctx context.Context, roleID K) ([]domain.RoleClaim[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []domain.RoleClaim[K]
	for _, row := range m.rows {
		if row.RoleID == roleID {
			result = append(result, row)
		}
	}
	return result, nil
}
