package systems

import (
	"testing"

	"github.com/dshills/rogueforge/pkg/bridge"
	"github.com/dshills/rogueforge/pkg/ecs"
)

func newInteractionWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld(nil)
	if err := bridge.RegisterStandardComponents(w); err != nil {
		t.Fatalf("RegisterStandardComponents() error = %v", err)
	}
	if err := w.Scheduler().Register(InteractionSystem()); err != nil {
		t.Fatalf("Register(InteractionSystem) error = %v", err)
	}
	return w
}

func TestInteraction_OpensUnlockedDoor(t *testing.T) {
	w := newInteractionWorld(t)

	actor, _ := w.Spawn()
	w.AddComponent(actor, bridge.CPosition, ecs.ComponentData{"x": 0.0, "y": 0.0})

	door, _ := w.Spawn()
	w.AddComponent(door, bridge.CDoor, ecs.ComponentData{"locked": false, "open": false, "blocking": true})
	w.AddComponent(actor, bridge.CInteractRequest, ecs.ComponentData{"target": door})

	var opened []DoorEvent
	w.Events().Subscribe("door.opened", func(e ecs.Event) { opened = append(opened, e.Data.(DoorEvent)) })

	if err := w.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if len(opened) != 1 {
		t.Fatalf("door.opened events = %d, want 1", len(opened))
	}
	data, _ := w.GetComponent(door, bridge.CDoor)
	if !boolField(data, "open") || boolField(data, "blocking") {
		t.Errorf("door state = %v, want open=true blocking=false", data)
	}
}

func TestInteraction_LockedDoorWithoutKeyEmitsLocked(t *testing.T) {
	w := newInteractionWorld(t)

	actor, _ := w.Spawn()
	door, _ := w.Spawn()
	w.AddComponent(door, bridge.CDoor, ecs.ComponentData{"locked": true, "open": false, "keyTemplate": "brass-key"})
	w.AddComponent(actor, bridge.CInteractRequest, ecs.ComponentData{"target": door})

	var locked []DoorEvent
	w.Events().Subscribe("door.locked", func(e ecs.Event) { locked = append(locked, e.Data.(DoorEvent)) })

	if err := w.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if len(locked) != 1 {
		t.Fatalf("door.locked events = %d, want 1", len(locked))
	}
	data, _ := w.GetComponent(door, bridge.CDoor)
	if boolField(data, "open") {
		t.Error("expected door to remain closed")
	}
}

func TestInteraction_KeyConsumedWhenConsumeOnUseSet(t *testing.T) {
	w := newInteractionWorld(t)

	actor, _ := w.Spawn()
	w.AddComponent(actor, bridge.CInventory, ecs.ComponentData{"items": []string{"brass-key"}, "capacity": 5})
	door, _ := w.Spawn()
	w.AddComponent(door, bridge.CDoor, ecs.ComponentData{"locked": true, "open": false, "keyTemplate": "brass-key", "consumeOnUse": true})
	w.AddComponent(actor, bridge.CInteractRequest, ecs.ComponentData{"target": door})

	var opened []DoorEvent
	w.Events().Subscribe("door.opened", func(e ecs.Event) { opened = append(opened, e.Data.(DoorEvent)) })

	if err := w.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if len(opened) != 1 {
		t.Fatalf("door.opened events = %d, want 1", len(opened))
	}
	inv, _ := w.GetComponent(actor, bridge.CInventory)
	items, _ := inv["items"].([]string)
	if len(items) != 0 {
		t.Errorf("inventory items = %v, want empty after key consumed", items)
	}
}

func TestInteraction_ContainerLootRespectsCapacityAndDropsOverflow(t *testing.T) {
	w := newInteractionWorld(t)

	actor, _ := w.Spawn()
	w.AddComponent(actor, bridge.CInventory, ecs.ComponentData{"items": []string{}, "capacity": 1})
	chest, _ := w.Spawn()
	w.AddComponent(chest, bridge.CContainer, ecs.ComponentData{"items": []string{"potion", "scroll"}, "looted": false})
	w.AddComponent(actor, bridge.CInteractRequest, ecs.ComponentData{"target": chest})

	var got ContainerEvent
	w.Events().Subscribe("container.looted", func(e ecs.Event) { got = e.Data.(ContainerEvent) })

	if err := w.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	inv, _ := w.GetComponent(actor, bridge.CInventory)
	items, _ := inv["items"].([]string)
	if len(items) != 1 || items[0] != "potion" {
		t.Errorf("inventory = %v, want [potion]", items)
	}
	if len(got.Dropped) != 1 || got.Dropped[0] != "scroll" {
		t.Errorf("dropped = %v, want [scroll]", got.Dropped)
	}
	data, _ := w.GetComponent(chest, bridge.CContainer)
	if !boolField(data, "looted") {
		t.Error("expected container to be marked looted")
	}
}

func TestInteraction_LootingAlreadyLootedContainerIsNoop(t *testing.T) {
	w := newInteractionWorld(t)

	actor, _ := w.Spawn()
	chest, _ := w.Spawn()
	w.AddComponent(chest, bridge.CContainer, ecs.ComponentData{"items": []string{"potion"}, "looted": true})
	w.AddComponent(actor, bridge.CInteractRequest, ecs.ComponentData{"target": chest})

	fired := false
	w.Events().Subscribe("container.looted", func(ecs.Event) { fired = true })

	if err := w.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if fired {
		t.Error("expected no container.looted event for an already-looted container")
	}
}

func TestInteraction_DirectionalLookupFindsAdjacentDoor(t *testing.T) {
	w := newInteractionWorld(t)

	actor, _ := w.Spawn()
	w.AddComponent(actor, bridge.CPosition, ecs.ComponentData{"x": 2.0, "y": 2.0})
	door, _ := w.Spawn()
	w.AddComponent(door, bridge.CPosition, ecs.ComponentData{"x": 2.0, "y": 1.0})
	w.AddComponent(door, bridge.CDoor, ecs.ComponentData{"locked": false, "open": false})
	w.AddComponent(actor, bridge.CInteractRequest, ecs.ComponentData{"direction": "north"})

	var opened []DoorEvent
	w.Events().Subscribe("door.opened", func(e ecs.Event) { opened = append(opened, e.Data.(DoorEvent)) })

	if err := w.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if len(opened) != 1 || opened[0].Door != door {
		t.Fatalf("door.opened events = %v, want one for the adjacent door", opened)
	}
}
