package ecs

import "go.uber.org/zap"

// World is the aggregate ECS container: entities, components, systems,
// resources, and events.
// One goroutine owns one World at a time; nothing here is
// internally synchronized.
type World struct {
	logger *zap.Logger

	entities  *EntityManager
	registry  *Registry
	queries   *QueryCache
	commands  *CommandBuffer
	scheduler *Scheduler
	events    *EventQueue
	hierarchy *Hierarchy

	resources map[string]any
	tick      uint64
}

// NewWorld constructs an empty world. logger may be nil.
func NewWorld(logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	entities := NewEntityManager()
	registry := NewRegistry()
	w := &World{
		logger:    logger,
		entities:  entities,
		registry:  registry,
		queries:   NewQueryCache(registry, entities),
		commands:  NewCommandBuffer(),
		scheduler: NewScheduler(logger),
		events:    NewEventQueue(logger),
		resources: make(map[string]any),
	}
	w.hierarchy = NewHierarchy(w)
	return w
}

// --- Entity operations ---

// Spawn allocates a new entity with no components.
func (w *World) Spawn() (Entity, error) {
	return w.entities.Spawn()
}

// SpawnWith allocates a new entity and immediately attaches the given
// components.
func (w *World) SpawnWith(components map[string]ComponentData) (Entity, error) {
	e, err := w.entities.Spawn()
	if err != nil {
		return 0, err
	}
	for name, data := range components {
		w.AddComponent(e, name, data)
	}
	return e, nil
}

// Despawn removes e and every component attached to it, invalidating all
// queries: structural changes invalidate every cached query result, not
// just ones touching the affected component.
func (w *World) Despawn(e Entity) {
	w.despawnInternal(e)
}

func (w *World) despawnInternal(e Entity) {
	if !w.entities.IsAlive(e) {
		return
	}
	w.registry.RemoveAll(uint32(e.Slot()))
	w.entities.Despawn(e)
	w.queries.InvalidateAll()
}

// IsAlive reports whether e refers to a currently-live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.IsAlive(e)
}

// AllAlive returns every currently-live entity. Used by serialization and
// diagnostics; not cached, since it runs rarely relative to queries.
func (w *World) AllAlive() []Entity {
	var out []Entity
	for slot := uint32(0); slot < MaxEntities; slot++ {
		e := NewEntity(uint16(slot), w.entities.generationOf(slot))
		if w.entities.IsAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// --- Component operations ---

// RegisterComponent installs a new component store.
func (w *World) RegisterComponent(schema ComponentSchema) error {
	return w.registry.Register(schema)
}

// AddComponent attaches data to e under name, invalidating queries that
// reference name. A no-op if e is not alive.
func (w *World) AddComponent(e Entity, name string, data ComponentData) {
	if !w.entities.IsAlive(e) {
		return
	}
	store := w.registry.MustStore(name)
	store.Add(uint32(e.Slot()), e.Generation(), data)
	w.queries.InvalidateByComponents([]string{name})
}

// SetComponent is add-or-replace: it attaches data if e lacks the
// component, or overwrites it if present.
func (w *World) SetComponent(e Entity, name string, data ComponentData) {
	w.AddComponent(e, name, data)
}

// RemoveComponent detaches name from e, invalidating queries that
// reference it.
func (w *World) RemoveComponent(e Entity, name string) {
	if !w.entities.IsAlive(e) {
		return
	}
	store, ok := w.registry.Store(name)
	if !ok {
		return
	}
	if store.Remove(uint32(e.Slot())) {
		w.queries.InvalidateByComponents([]string{name})
	}
}

// GetComponent returns e's data for name, or (nil, false) if e is stale or
// the component is absent. A stale handle returns absent rather than
// panicking.
func (w *World) GetComponent(e Entity, name string) (ComponentData, bool) {
	if !w.entities.IsAlive(e) {
		return nil, false
	}
	store, ok := w.registry.Store(name)
	if !ok {
		return nil, false
	}
	return store.Get(uint32(e.Slot()))
}

// HasComponent reports whether e is alive and carries name.
func (w *World) HasComponent(e Entity, name string) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	store, ok := w.registry.Store(name)
	return ok && store.Has(uint32(e.Slot()))
}

// --- Query operations ---

// Query binds desc to this world's query cache.
func (w *World) Query(desc Descriptor) *Query {
	return NewQuery(w.queries, desc)
}

// --- Tick operations ---

// Initialize runs the Init phase once.
func (w *World) Initialize() error {
	return w.scheduler.RunInit(w)
}

// Tick runs PreUpdate through LateUpdate, then flushes the command buffer
// and processes pending events("The command buffer
// flushes at the end of each tick after all phases complete").
func (w *World) Tick() error {
	if err := w.scheduler.RunAll(w); err != nil {
		return err
	}
	w.commands.Flush(w)
	w.events.Process()
	w.tick++
	return nil
}

// GetCurrentTick returns the number of completed ticks.
func (w *World) GetCurrentTick() uint64 { return w.tick }

// Reset clears entities and the tick counter but keeps registered
// component schemas and systems, matching a re-playable world instance.
func (w *World) Reset() {
	for _, e := range w.AllAlive() {
		w.registry.RemoveAll(uint32(e.Slot()))
	}
	w.entities.Reset()
	w.queries = NewQueryCache(w.registry, w.entities)
	w.commands = NewCommandBuffer()
	w.tick = 0
}

// Clear removes all resources in addition to what Reset clears.
func (w *World) Clear() {
	w.Reset()
	w.resources = make(map[string]any)
}

// --- Resources, systems, events, hierarchy accessors ---

// SetResource installs a named resource, accessed by callers with
// caller-asserted types.
func (w *World) SetResource(name string, value any) { w.resources[name] = value }

// Resource returns the named resource.
func (w *World) Resource(name string) (any, bool) {
	v, ok := w.resources[name]
	return v, ok
}

// Commands returns the world's command buffer for queuing structural
// mutations from inside a system.
func (w *World) Commands() *CommandBuffer { return w.commands }

// Scheduler returns the world's system scheduler.
func (w *World) Scheduler() *Scheduler { return w.scheduler }

// Events returns the world's event queue.
func (w *World) Events() *EventQueue { return w.events }

// Hierarchy returns the world's parent/child hierarchy manager.
func (w *World) Hierarchy() *Hierarchy { return w.hierarchy }

// Registry returns the world's component registry, for callers (bridge,
// serialization) that need to enumerate schemas directly.
func (w *World) Registry() *Registry { return w.registry }
