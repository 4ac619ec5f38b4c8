package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/courier/pkg/compose"
)

// Memory is an in-process EntityStore for tests and single-node embedding.
// The zero value is not usable; call NewMemory.
type Memory struct {
	mu         sync.RWMutex
	renditions []*compose.Rendition
	templates  []*compose.Template
	users      map[string]*compose.Recipient
	groups     map[string]*compose.Recipient
}

// NewMemory creates an empty in-memory entity store.
func NewMemory() *Memory {
	return &Memory{
		users:  make(map[string]*compose.Recipient),
		groups: make(map[string]*compose.Recipient),
	}
}

// AddRendition registers a rendition record.
func (m *Memory) AddRendition(r *compose.Rendition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renditions = append(m.renditions, r)
}

// AddTemplate registers a template record.
func (m *Memory) AddTemplate(t *compose.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates = append(m.templates, t)
}

// AddUser registers an individual identity keyed by its lowercased email.
func (m *Memory) AddUser(r *compose.Recipient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[strings.ToLower(r.Email)] = r
}

// AddGroup registers a group identity keyed by its lowercased email.
func (m *Memory) AddGroup(r *compose.Recipient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[strings.ToLower(r.Email)] = r
}

func (m *Memory) FindRenditions(_ context.Context, definitionID string, enabledOnly bool) ([]*compose.Rendition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*compose.Rendition
	for _, r := range m.renditions {
		if r.DefinitionID != definitionID {
			continue
		}
		if enabledOnly && !r.Enabled {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) FindTemplates(_ context.Context, enabledOnly bool) ([]*compose.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*compose.Template
	for _, t := range m.templates {
		if enabledOnly && !t.Enabled {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*compose.Recipient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[strings.ToLower(email)], nil
}

func (m *Memory) FindGroupByEmail(_ context.Context, email string) (*compose.Recipient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.groups[strings.ToLower(email)], nil
}
