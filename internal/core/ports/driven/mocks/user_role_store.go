package mocks

import (
	"context"
	"sync"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// MockUserRoleStore is an in-memory implementation of UserRoleStore.
type MockUserRoleStore[K comparable] struct {
	mu   sync.RWMutex
	rows []domain.UserRole[K]
}

// NewMockUserRoleStore creates a new MockUserRoleStore.
func NewMockUserRoleStore[K comparable]() *MockUserRoleStore[K] {
	return &MockUserRoleStore[K]{}
}

func (m *MockUserRoleStore[K]) Create(ctx context.Context, membership *domain.UserRole[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.UserID == membership.UserID && row.RoleID == membership.RoleID {
			return domain.ErrAlreadyExists
		}
	}
	m.rows = append(m.rows, *membership)
	return nil
}

func (m *MockUserRoleStore[K]) Delete(ctx context.Context, userID, roleID K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.UserID == userID && row.RoleID == roleID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockUserRoleStore[K]) Exists(ctx context.Context, userID, roleID K) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, row := range m.rows {
		if row.UserID == userID && row.RoleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRoleStore[K]) ListRolesForUser(ctx context.Context, userID K) ([]K, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []K
	for _, row := range m.rows {
		if row.UserID == userID {
			result = append(result, row.RoleID)
		}
	}
	return result, nil
}

func (m *MockUserRoleStore[K]) ListUsersInRole(ctx context.Context, roleID K) ([]K, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []K
	for _, row := range m.rows {
		if row.RoleID == roleID {
			result = append(result, row.UserID)
		}
	}
	return result, nil
}
