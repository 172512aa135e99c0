package ecs

// PendingHandle is an opaque token returned by the command buffer for an
// entity that does not exist yet. It resolves to a real Entity on flush.
type PendingHandle int

type commandKind int

const (
	cmdSpawn commandKind = iota
	cmdDespawn
	cmdAddComponent
	cmdRemoveComponent
	cmdSetComponent
)

// target names either a real Entity or a PendingHandle allocated earlier
// in the same buffer.
type target struct {
	pending bool
	handle  PendingHandle
	entity  Entity
}

type command struct {
	kind      commandKind
	target    target
	component string
	data      ComponentData
}

// CommandBuffer queues structural mutations issued during system
// execution so they can be applied outside of query iteration, per the
// concurrency model's rule that direct mutation during iteration is
// undefined behavior.
type CommandBuffer struct {
	commands []command
	nextPend PendingHandle
}

// NewCommandBuffer returns an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Spawn queues an empty-entity spawn and returns a pending handle for use
// by later commands in this buffer (e.g. AddComponent).
func (b *CommandBuffer) Spawn() PendingHandle {
	h := b.nextPend
	b.nextPend++
	b.commands = append(b.commands, command{kind: cmdSpawn, target: target{pending: true, handle: h}})
	return h
}

// SpawnWith queues a spawn plus an initial set of components, returning a
// pending handle.
func (b *CommandBuffer) SpawnWith(components map[string]ComponentData) PendingHandle {
	h := b.Spawn()
	for name, data := range components {
		b.AddComponentToPending(h, name, data)
	}
	return h
}

// Despawn queues a despawn of a real entity.
func (b *CommandBuffer) Despawn(e Entity) {
	b.commands = append(b.commands, command{kind: cmdDespawn, target: target{entity: e}})
}

// AddComponent queues an add on a real entity.
func (b *CommandBuffer) AddComponent(e Entity, name string, data ComponentData) {
	b.commands = append(b.commands, command{kind: cmdAddComponent, target: target{entity: e}, component: name, data: data})
}

// AddComponentToPending queues an add on an entity that will be created
// earlier in this same buffer.
func (b *CommandBuffer) AddComponentToPending(h PendingHandle, name string, data ComponentData) {
	b.commands = append(b.commands, command{kind: cmdAddComponent, target: target{pending: true, handle: h}, component: name, data: data})
}

// RemoveComponent queues a remove on a real entity.
func (b *CommandBuffer) RemoveComponent(e Entity, name string) {
	b.commands = append(b.commands, command{kind: cmdRemoveComponent, target: target{entity: e}, component: name})
}

// SetComponent queues a set (add-or-replace) on a real entity.
func (b *CommandBuffer) SetComponent(e Entity, name string, data ComponentData) {
	b.commands = append(b.commands, command{kind: cmdSetComponent, target: target{entity: e}, component: name, data: data})
}

// Len returns the number of queued commands.
func (b *CommandBuffer) Len() int { return len(b.commands) }

// Flush executes the queue against w in FIFO order, resolving pending
// handles as their entities are created, and returns the handle-to-entity
// mapping. Spawns always precede any command referencing their handle
// because commands execute in enqueue order and a handle can only be
// referenced after Spawn/SpawnWith returned it. The buffer is cleared on
// return.
func (b *CommandBuffer) Flush(w *World) map[PendingHandle]Entity {
	resolved := make(map[PendingHandle]Entity, b.nextPend)
	touched := make(map[string]bool)

	resolve := func(t target) (Entity, bool) {
		if !t.pending {
			return t.entity, true
		}
		e, ok := resolved[t.handle]
		return e, ok
	}

	for _, cmd := range b.commands {
		switch cmd.kind {
		case cmdSpawn:
			e, err := w.entities.Spawn()
			if err != nil {
				continue
			}
			resolved[cmd.target.handle] = e
		case cmdDespawn:
			e, ok := resolve(cmd.target)
			if !ok {
				continue
			}
			w.despawnInternal(e)
		case cmdAddComponent, cmdSetComponent:
			e, ok := resolve(cmd.target)
			if !ok {
				continue
			}
			store := w.registry.MustStore(cmd.component)
			store.Add(uint32(e.Slot()), e.Generation(), cmd.data)
			touched[cmd.component] = true
		case cmdRemoveComponent:
			e, ok := resolve(cmd.target)
			if !ok {
				continue
			}
			if store, ok := w.registry.Store(cmd.component); ok {
				store.Remove(uint32(e.Slot()))
				touched[cmd.component] = true
			}
		}
	}

	names := make([]string, 0, len(touched))
	for name := range touched {
		names = append(names, name)
	}
	w.queries.InvalidateByComponents(names)

	b.commands = b.commands[:0]
	b.nextPend = 0
	return resolved
}
