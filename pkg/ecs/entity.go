package ecs

import (
	"fmt"

	"github.com/dshills/rogueforge/pkg/geom"
)

// MaxEntities is the hard capacity of a world: a 16-bit slot index paired
// with a 16-bit generation counter.
const MaxEntities = 1 << 16

const generationMask = 0xFFFF

// Entity is a 32-bit value combining a slot index (low 16 bits) and a
// generation counter (high 16 bits). The zero value is never returned by
// Spawn and is conventionally used as "no entity".
type Entity uint32

// NewEntity packs a slot and generation into an Entity. Exported for
// serialization's second pass, which must reconstruct entities with
// specific slot/generation pairs.
func NewEntity(slot, generation uint16) Entity {
	return Entity(uint32(generation)<<16 | uint32(slot))
}

// Slot returns the entity's slot index.
func (e Entity) Slot() uint16 { return uint16(e) }

// Generation returns the entity's generation counter.
func (e Entity) Generation() uint16 { return uint16(e >> 16) }

func (e Entity) String() string {
	return fmt.Sprintf("Entity(slot=%d,gen=%d)", e.Slot(), e.Generation())
}

// EntityManager owns a dense bitmap of alive slots, generation counters,
// and the free list of recycled slots. The alive bitmap
// reuses geom.BitGrid's word-packed storage as a flat MaxEntities x 1
// bitset, the same packing idiom the terrain grid uses for boolean grids.
type EntityManager struct {
	alive      *geom.BitGrid
	generation []uint16
	freeList   []uint16
	highWater  uint32
}

// NewEntityManager returns an empty manager sized for MaxEntities.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		alive:      geom.NewBitGrid(MaxEntities, 1),
		generation: make([]uint16, MaxEntities),
	}
}

// Spawn allocates a new entity, popping from the free list when one is
// available and otherwise advancing the high-water mark. Returns
// ErrCapacity once MaxEntities live entities exist.
func (m *EntityManager) Spawn() (Entity, error) {
	var slot uint16
	if n := len(m.freeList); n > 0 {
		slot = m.freeList[n-1]
		m.freeList = m.freeList[:n-1]
	} else {
		if m.highWater >= MaxEntities {
			return 0, ErrCapacity
		}
		slot = uint16(m.highWater)
		m.highWater++
	}
	m.alive.Set(int(slot), 0)
	if slot == 0 && m.generation[slot] == 0 {
		// Slot 0 never carries generation 0, so Entity(0) stays free as
		// the "no entity" value.
		m.generation[slot] = 1
	}
	return NewEntity(slot, m.generation[slot]), nil
}

// SpawnBatch allocates n entities, preserving the single-entity contract
// for each. On capacity exhaustion partway through, the
// entities already allocated remain alive; the error reports how many of
// the n requested were produced via the returned slice's length.
func (m *EntityManager) SpawnBatch(n int) ([]Entity, error) {
	out := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		e, err := m.Spawn()
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Despawn marks the entity's slot dead, bumps its generation modulo the
// generation mask, and pushes the slot back onto the free list. Despawning
// an already-dead or stale entity is a silent no-op.
func (m *EntityManager) Despawn(e Entity) {
	slot := e.Slot()
	if !m.alive.Get(int(slot), 0) || m.generation[slot] != e.Generation() {
		return
	}
	m.alive.Clear(int(slot), 0)
	m.generation[slot] = (m.generation[slot] + 1) & generationMask
	m.freeList = append(m.freeList, slot)
}

// DespawnBatch despawns every entity in es.
func (m *EntityManager) DespawnBatch(es []Entity) {
	for _, e := range es {
		m.Despawn(e)
	}
}

// IsAlive reports whether e refers to a currently-live entity: its slot
// must be marked alive and its generation must match the manager's current
// generation for that slot. Stale or out-of-range handles return false
// rather than panicking.
func (m *EntityManager) IsAlive(e Entity) bool {
	slot := e.Slot()
	return m.alive.Get(int(slot), 0) && m.generation[slot] == e.Generation()
}

// Count returns the number of currently-live entities.
func (m *EntityManager) Count() int {
	return m.alive.Count()
}

// generationOf returns the manager's current generation counter for slot,
// used by the query system to reconstruct a live Entity handle from a bare
// slot index found in a component store's dense array.
func (m *EntityManager) generationOf(slot uint32) uint16 {
	return m.generation[slot]
}

// Reset clears all entities back to the empty-world state.
func (m *EntityManager) Reset() {
	m.alive.ClearAll()
	for i := range m.generation {
		m.generation[i] = 0
	}
	m.freeList = m.freeList[:0]
	m.highWater = 0
}
