package ecs

import "sort"

// Registry owns one component store per registered name. It chooses SoA
// storage when every field in a schema is primitive and the schema does
// not request AoS, otherwise AoS.
type Registry struct {
	stores map[string]Store
	order  []string // registration order, for deterministic iteration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]Store)}
}

// Register creates and installs a store for schema.Name. Duplicate
// registration is a fatal error at registration time.
func (r *Registry) Register(schema ComponentSchema) error {
	if _, exists := r.stores[schema.Name]; exists {
		return &DuplicateComponentError{Name: schema.Name}
	}
	var store Store
	if !schema.UseAoS && schema.allPrimitive() {
		store = NewSoAStore(schema)
	} else {
		store = NewAoSStore(schema.Name)
	}
	r.stores[schema.Name] = store
	r.order = append(r.order, schema.Name)
	return nil
}

// Store returns the named component store.
func (r *Registry) Store(name string) (Store, bool) {
	s, ok := r.stores[name]
	return s, ok
}

// MustStore returns the named store or panics with a MissingStoreError,
// for call sites where an absent store is a programming mistake rather
// than a recoverable condition.
func (r *Registry) MustStore(name string) Store {
	s, ok := r.stores[name]
	if !ok {
		panic(&MissingStoreError{Name: name})
	}
	return s
}

// Names returns every registered component name in registration order,
// used by despawn (to remove a dying entity from every store) and
// serialization (to enumerate what to save).
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// SortedNames returns every registered component name sorted
// lexicographically.
func (r *Registry) SortedNames() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}

// RemoveAll removes slot from every registered store, returning the names
// of stores that actually held a component for it (used to invalidate
// exactly the affected queries on despawn).
func (r *Registry) RemoveAll(slot uint32) []string {
	var touched []string
	for _, name := range r.order {
		if r.stores[name].Remove(slot) {
			touched = append(touched, name)
		}
	}
	return touched
}
