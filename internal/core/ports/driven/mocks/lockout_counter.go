package mocks

import (
	"context"
	"sync"
)

// MockLockoutCounter is an in-memory implementation of LockoutCounter.
type MockLockoutCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMockLockoutCounter creates a new MockLockoutCounter.
func NewMockLockoutCounter() *MockLockoutCounter {
	return &MockLockoutCounter{counts: make(map[string]int)}
}

func (m *MockLockoutCounter) Increment(ctx context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

func (m *MockLockoutCounter) Reset(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.counts, key)
	return nil
}

// Count returns the current count for key. Test helper.
func (m *MockLockoutCounter) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}
