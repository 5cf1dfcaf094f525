package mocks

import (
	"context"
	"sync"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// MockRoleStore is an in-memory implementation of RoleStore.
type MockRoleStore[K comparable] struct {
	mu    sync.RWMutex
	roles map[K]domain.Role[K]
}

// NewMockRoleStore creates a new MockRoleStore.
func NewMockRoleStore[K comparable]() *MockRoleStore[K] {
	return &MockRoleStore[K]{roles: make(map[K]domain.Role[K])}
}

func (m *MockRoleStore[K]) Create(ctx context.Context, role *domain.Role[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[role.ID]; ok {
		return domain.ErrAlreadyExists
	}
	for _, r := range m.roles {
		if r.NormalizedName == role.NormalizedName {
			return domain.ErrAlreadyExists
		}
	}
	m.roles[role.ID] = *role
	return nil
}

func (m *MockRoleStore[K]) Update(ctx context.Context, role *domain.Role[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[role.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, r := range m.roles {
		if id != role.ID && r.NormalizedName == role.NormalizedName {
			return domain.ErrAlreadyExists
		}
	}
	m.roles[role.ID] = *role
	return nil
}

func (m *MockRoleStore[K]) Delete(ctx context.Context, id K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.roles, id)
	return nil
}

func (m *MockRoleStore[K]) FindByID(ctx context.Context, id K) (*domain.Role[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	role, ok := m.roles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &role, nil
}

func (m *MockRoleStore[K]) FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.Role[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, role := range m.roles {
		if role.NormalizedName == normalizedName {
			r := role
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}
