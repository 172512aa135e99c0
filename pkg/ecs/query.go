package ecs

import (
	"sort"
	"strings"
)

// Descriptor is a query's component filter: must-have and must-not-have
// component name sets.
type Descriptor struct {
	With    []string
	Without []string
}

// key returns the cache key for this descriptor: sorted concatenation of
// both sets, with a separator so {With:[a,b]} and {With:[a],Without:[b]}
// never collide.
func (d Descriptor) key() string {
	with := append([]string(nil), d.With...)
	without := append([]string(nil), d.Without...)
	sort.Strings(with)
	sort.Strings(without)
	return strings.Join(with, ",") + "|" + strings.Join(without, ",")
}

// queryEntry is the cache's bookkeeping for one registered descriptor.
type queryEntry struct {
	desc   Descriptor
	result []Entity
	dirty  bool
}

// QueryCache executes descriptors against a registry and entity manager,
// caching results per descriptor key and invalidating them precisely when
// a relevant component store changes.
type QueryCache struct {
	registry *Registry
	entities *EntityManager

	entries map[string]*queryEntry
	// inverse maps a component name to the set of query keys that
	// reference it, so invalidateByComponents only dirties affected
	// queries instead of the whole cache.
	inverse map[string]map[string]bool
}

// NewQueryCache builds a cache bound to registry and entities.
func NewQueryCache(registry *Registry, entities *EntityManager) *QueryCache {
	return &QueryCache{
		registry: registry,
		entities: entities,
		entries:  make(map[string]*queryEntry),
		inverse:  make(map[string]map[string]bool),
	}
}

func (c *QueryCache) register(desc Descriptor) *queryEntry {
	key := desc.key()
	if e, ok := c.entries[key]; ok {
		return e
	}
	e := &queryEntry{desc: desc, dirty: true}
	c.entries[key] = e
	for _, name := range append(append([]string{}, desc.With...), desc.Without...) {
		if c.inverse[name] == nil {
			c.inverse[name] = make(map[string]bool)
		}
		c.inverse[name][key] = true
	}
	return e
}

// Execute returns the descriptor's matching entities, recomputing only if
// the cache entry is dirty. Results are stable across repeated calls until
// invalidated.
func (c *QueryCache) Execute(desc Descriptor) []Entity {
	e := c.register(desc)
	if e.dirty {
		e.result = c.evaluate(desc)
		e.dirty = false
	}
	return e.result
}

// evaluate finds the smallest With store, iterates its dense slot array,
// and for each entity checks the remaining With stores and the Without
// stores, filtering stale entities along the way.
func (c *QueryCache) evaluate(desc Descriptor) []Entity {
	if len(desc.With) == 0 {
		return nil
	}

	smallest, ok := c.registry.Store(desc.With[0])
	if !ok {
		return nil
	}
	for _, name := range desc.With[1:] {
		s, ok := c.registry.Store(name)
		if !ok {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var out []Entity
	for _, slot := range smallest.Slots() {
		matched := true
		for _, name := range desc.With {
			s, ok := c.registry.Store(name)
			if !ok || !s.Has(slot) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		for _, name := range desc.Without {
			if s, ok := c.registry.Store(name); ok && s.Has(slot) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		gen := c.entities.generationOf(slot)
		e := NewEntity(slot, gen)
		if !c.entities.IsAlive(e) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InvalidateByComponents marks dirty exactly the queries referencing any
// of the given component names.
func (c *QueryCache) InvalidateByComponents(names []string) {
	for _, name := range names {
		for key := range c.inverse[name] {
			if e, ok := c.entries[key]; ok {
				e.dirty = true
			}
		}
	}
}

// InvalidateAll marks every cached query dirty, used for whole-world
// structural changes that don't carry component detail.
func (c *QueryCache) InvalidateAll() {
	for _, e := range c.entries {
		e.dirty = true
	}
}

// Query is a bound, re-executable handle on a descriptor.
type Query struct {
	cache *QueryCache
	desc  Descriptor
}

// NewQuery binds desc to cache for repeated execution.
func NewQuery(cache *QueryCache, desc Descriptor) *Query {
	return &Query{cache: cache, desc: desc}
}

// Execute returns the query's current matching entities.
func (q *Query) Execute() []Entity { return q.cache.Execute(q.desc) }

// Count returns the number of matching entities.
func (q *Query) Count() int { return len(q.Execute()) }

// ForEach calls fn for every matching entity in result order.
func (q *Query) ForEach(fn func(Entity)) {
	for _, e := range q.Execute() {
		fn(e)
	}
}
