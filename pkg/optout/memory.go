package optout

import (
	"context"
	"sync"
)

// Memory is an in-process Store backed by a plain map. Safe for concurrent
// use; suited to tests and single-process deployments.
type Memory struct {
	emails map[string]struct{}
	mu     sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{emails: make(map[string]struct{})}
}

// IsUnsubscribed implements Store.
func (m *Memory) IsUnsubscribed(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.emails[Normalize(email)]
	return ok, nil
}

// Add implements Store.
func (m *Memory) Add(_ context.Context, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails[Normalize(email)] = struct{}{}
	return nil
}

// Remove implements Store.
func (m *Memory) Remove(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.emails, Normalize(email))
	return nil
}
