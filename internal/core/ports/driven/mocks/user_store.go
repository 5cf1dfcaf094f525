// Package mocks provides in-memory store implementations for testing.
// They mirror the stores' error conventions, including uniqueness
// enforcement on normalized names, so manager tests exercise the same
// contract the SQL adapters honor.
package mocks

import (
	"context"
	"sync"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// MockUserStore is an in-memory implementation of UserStore.
type MockUserStore[K comparable] struct {
	mu    sync.RWMutex
	users map[K]domain.User[K]
}

// NewMockUserStore creates a new MockUserStore.
func NewMockUserStore[K comparable]() *MockUserStore[K] {
	return &MockUserStore[K]{users: make(map[K]domain.User[K])}
}

func (m *MockUserStore[K]) Create(ctx context.Context, user *domain.User[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; ok {
		return domain.ErrAlreadyExists
	}
	for _, u := range m.users {
		if u.NormalizedUserName == user.NormalizedUserName {
			return domain.ErrAlreadyExists
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *MockUserStore[K]) Update(ctx context.Context, user *domain.User[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, u := range m.users {
		if id != user.ID && u.NormalizedUserName == user.NormalizedUserName {
			return domain.ErrAlreadyExists
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *MockUserStore[K]) Delete(ctx context.Context, id K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserStore[K]) FindByID(ctx context.Context, id K) (*domain.User[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (m *MockUserStore[K]) FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.User[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.NormalizedUserName == normalizedName {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserStore[K]) FindByNormalizedEmail(ctx context.Context, normalizedEmail string) (*domain.User[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.NormalizedEmail != "" && user.NormalizedEmail == normalizedEmail {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
