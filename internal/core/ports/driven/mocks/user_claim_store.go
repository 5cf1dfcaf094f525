package mocks

import (
	"context"
	"sync"

	"github.com/veridian-labs/identity-core/internal/core/domain"
)

// MockUserClaimStore is an in-memory implementation of UserClaimStore.
// newKey mints row identifiers, which the real stores assign
// themselves.
type MockUserClaimStore[K comparable] struct {
	mu     sync.RWMutex
	rows   []domain.UserClaim[K]
	newKey func() K
}

// NewMockUserClaimStore creates a new MockUserClaimStore.
func NewMockUserClaimStore[K comparable](newKey func() K) *MockUserClaimStore[K] {
	return &MockUserClaimStore[K]{newKey: newKey}
}

func (m *MockUserClaimStore[K]) Create(ctx context.Context, claim *domain.UserClaim[K]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.UserID == claim.UserID && row.Claim() == claim.Claim() {
			return domain.ErrAlreadyExists
		}
	}
	claim.ID = m.newKey()
	m.rows = append(m.rows, *claim)
	return nil
}

func (m *MockUserClaimStore[K]) Delete(ctx context.Context, userID K, claim domain.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	deleted := false
	for _, row := range m.rows {
		if row.UserID == userID && row.Claim() == claim {
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

func (m *MockUserClaimStore[K]) ListByUser(ctx context.Context, userID K) ([]domain.UserClaim[K], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []domain.UserClaim[K]
	for _, row := range m.rows {
		if row.UserID == userID {
			result = append(result, row)
		}
	}
	return result, nil
}

func (m *MockUserClaimStore[K]) ListUsersForClaim(ctx context.Context, claim domain.Claim) ([]K, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []K
	for _, row := range m.rows {
		if row.Claim() == claim {
			ids = append(ids, row.UserID)
		}
	}
	return ids, nil
}
