package systems

import (
	"github.com/dshills/rogueforge/pkg/bridge"
	"github.com/dshills/rogueforge/pkg/ecs"
)

// InteractionSystemName is the name InteractionSystem registers under.
const InteractionSystemName = "interaction"

// DoorEvent is the door.opened / door.closed / door.locked event payload.
type DoorEvent struct {
	Actor ecs.Entity
	Door  ecs.Entity
}

// StairsEvent is the stairs.used event payload.
type StairsEvent struct {
	Actor    ecs.Entity
	Stairs   ecs.Entity
	Descends bool
}

// ContainerEvent is the container.looted event payload. Dropped lists the
// items that did not fit in the actor's inventory.
type ContainerEvent struct {
	Actor     ecs.Entity
	Container ecs.Entity
	Dropped   []string
}

// GenericInteractEvent is emitted for a target with none of the recognized
// interactable components.
type GenericInteractEvent struct {
	Actor  ecs.Entity
	Target ecs.Entity
}

// InteractionSystem returns the scheduler registration for interaction
// handling: resolve the request's explicit target, or the
// adjacent cell in the requested direction, then dispatch door > stairs >
// container > generic, in that priority order.
func InteractionSystem() ecs.System {
	return ecs.System{
		Name:    InteractionSystemName,
		Phase:   ecs.PhaseUpdate,
		Query:   &ecs.Descriptor{With: []string{bridge.CInteractRequest}},
		Enabled: true,
		Run:     runInteraction,
	}
}

func runInteraction(w *ecs.World, actors []ecs.Entity) error {
	for _, actor := range actors {
		req, ok := w.GetComponent(actor, bridge.CInteractRequest)
		if !ok {
			continue
		}

		target, _ := req["target"].(ecs.Entity)
		if target == 0 || !w.IsAlive(target) {
			dir, _ := req["direction"].(string)
			target = findAdjacentInteractable(w, actor, dir)
		}

		if target != 0 {
			switch {
			case w.HasComponent(target, bridge.CDoor):
				handleDoor(w, actor, target)
			case w.HasComponent(target, bridge.CStairs):
				handleStairs(w, actor, target)
			case w.HasComponent(target, bridge.CContainer):
				handleContainer(w, actor, target)
			default:
				w.Events().Emit("interact.generic", GenericInteractEvent{Actor: actor, Target: target})
			}
		}

		w.RemoveComponent(actor, bridge.CInteractRequest)
	}
	return nil
}

// findAdjacentInteractable looks up the cell one step from actor in
// direction and returns the interactable there, preferring door, then
// stairs, then container, then any other occupant.
func findAdjacentInteractable(w *ecs.World, actor ecs.Entity, direction string) ecs.Entity {
	pos, ok := w.GetComponent(actor, bridge.CPosition)
	if !ok {
		return 0
	}
	dx, dy := directionOffset(direction)
	tx := floatField(pos, "x") + dx
	ty := floatField(pos, "y") + dy

	for _, name := range []string{bridge.CDoor, bridge.CStairs, bridge.CContainer} {
		if e := entityAt(w, ecs.Descriptor{With: []string{name, bridge.CPosition}}, tx, ty); e != 0 {
			return e
		}
	}
	return entityAt(w, ecs.Descriptor{With: []string{bridge.CPosition}, Without: []string{bridge.CDoor, bridge.CStairs, bridge.CContainer}}, tx, ty)
}

func entityAt(w *ecs.World, desc ecs.Descriptor, x, y float64) ecs.Entity {
	var found ecs.Entity
	w.Query(desc).ForEach(func(e ecs.Entity) {
		if found != 0 {
			return
		}
		p, ok := w.GetComponent(e, bridge.CPosition)
		if ok && floatField(p, "x") == x && floatField(p, "y") == y {
			found = e
		}
	})
	return found
}

func directionOffset(direction string) (float64, float64) {
	switch direction {
	case "north":
		return 0, -1
	case "south":
		return 0, 1
	case "east":
		return 1, 0
	case "west":
		return -1, 0
	default:
		return 0, 0
	}
}

// handleDoor verifies locks, consumes a key from the actor's inventory when
// the door's key requires it, toggles the open state, and updates blocking.
func handleDoor(w *ecs.World, actor, door ecs.Entity) {
	data, ok := w.GetComponent(door, bridge.CDoor)
	if !ok {
		return
	}

	if boolField(data, "locked") {
		key := stringField(data, "keyTemplate")
		if key == "" || !inventoryHas(w, actor, key) {
			w.Events().Emit("door.locked", DoorEvent{Actor: actor, Door: door})
			return
		}
		if boolField(data, "consumeOnUse") {
			removeFromInventory(w, actor, key)
		}
		data["locked"] = false
	}

	open := !boolField(data, "open")
	data["open"] = open
	data["blocking"] = !open
	w.SetComponent(door, bridge.CDoor, data)

	if open {
		w.Events().Emit("door.opened", DoorEvent{Actor: actor, Door: door})
	} else {
		w.Events().Emit("door.closed", DoorEvent{Actor: actor, Door: door})
	}
}

func handleStairs(w *ecs.World, actor, stairs ecs.Entity) {
	data, _ := w.GetComponent(stairs, bridge.CStairs)
	w.Events().Emit("stairs.used", StairsEvent{Actor: actor, Stairs: stairs, Descends: boolField(data, "descends")})
}

// handleContainer transfers items into the actor's inventory up to
// capacity; anything that doesn't fit is dropped, modeled here as simply
// not entering any inventory since there is no ground-item layer in this
// component set.
func handleContainer(w *ecs.World, actor, container ecs.Entity) {
	data, ok := w.GetComponent(container, bridge.CContainer)
	if !ok || boolField(data, "looted") {
		return
	}

	items, _ := data["items"].([]string)
	inv, hasInv := w.GetComponent(actor, bridge.CInventory)
	if !hasInv {
		inv = ecs.ComponentData{"items": []string{}, "capacity": 0}
	}
	invItems, _ := inv["items"].([]string)
	capacity := intField(inv, "capacity")

	var dropped []string
	for _, item := range items {
		if len(invItems) < capacity {
			invItems = append(invItems, item)
		} else {
			dropped = append(dropped, item)
		}
	}

	inv["items"] = invItems
	w.SetComponent(actor, bridge.CInventory, inv)

	data["items"] = []string{}
	data["looted"] = true
	w.SetComponent(container, bridge.CContainer, data)

	w.Events().Emit("container.looted", ContainerEvent{Actor: actor, Container: container, Dropped: dropped})
}

func inventoryHas(w *ecs.World, actor ecs.Entity, itemTemplate string) bool {
	inv, ok := w.GetComponent(actor, bridge.CInventory)
	if !ok {
		return false
	}
	items, _ := inv["items"].([]string)
	for _, it := range items {
		if it == itemTemplate {
			return true
		}
	}
	return false
}

func removeFromInventory(w *ecs.World, actor ecs.Entity, itemTemplate string) {
	inv, ok := w.GetComponent(actor, bridge.CInventory)
	if !ok {
		return
	}
	items, _ := inv["items"].([]string)
	for i, it := range items {
		if it == itemTemplate {
			inv["items"] = append(items[:i], items[i+1:]...)
			w.SetComponent(actor, bridge.CInventory, inv)
			return
		}
	}
}

func floatField(data ecs.ComponentData, field string) float64 {
	if data == nil {
		return 0
	}
	switch v := data[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func boolField(data ecs.ComponentData, field string) bool {
	if data == nil {
		return false
	}
	v, _ := data[field].(bool)
	return v
}

func stringField(data ecs.ComponentData, field string) string {
	if data == nil {
		return ""
	}
	v, _ := data[field].(string)
	return v
}
