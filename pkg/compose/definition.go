package compose

import (
	"fmt"
	"sync"
)

// Meta describes a message definition: its display name, whether composing
// requires an explicit recipient, whether opt-out filtering applies, and the
// macros it declares (name to human description).
type Meta struct {
	Macros           map[string]string
	Name             string
	Description      string
	ExpectsRecipient bool
	OptOut           bool
}

// Definition is a registered message type. Implementations provide the
// default subject and HTML body used when no rendition overrides them, and
// resolve the macros declared in Meta.
type Definition interface {
	// Meta returns the static descriptor for this definition.
	Meta() Meta

	// Subject returns the default subject line.
	Subject() string

	// HTML returns the default HTML body content.
	HTML() string

	// Macro resolves a declared macro by name. Undeclared names return "".
	Macro(name string) string
}

// Registry is a name-keyed table of definitions, populated once at process
// start and read by the composer on every send.
type Registry struct {
	defs map[string]Definition
	mu   sync.RWMutex
}

// NewRegistry creates an empty definition registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a definition under the given id.
func (r *Registry) Register(id string, def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[id]; ok {
		return fmt.Errorf("%w: %s", ErrDefinitionExists, id)
	}
	r.defs[id] = def
	return nil
}

// MustRegister adds a definition or panics on a duplicate id. Use from
// package init during startup wiring.
func (r *Registry) MustRegister(id string, def Definition) {
	if err := r.Register(id, def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, id)
	}
	return def, nil
}

// IDs returns the registered definition ids, for admin listings.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	return ids
}
