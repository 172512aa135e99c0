package ecs

import "testing"

// TestHierarchy_CycleRejection verifies that given A, B, C with
// setParent(B,A) and setParent(C,B), setParent(A,C) fails with
// CYCLE_DETECTED and leaves all parent links unchanged.
func TestHierarchy_CycleRejection(t *testing.T) {
	w := NewWorld(nil)
	a, _ := w.Spawn()
	b, _ := w.Spawn()
	c, _ := w.Spawn()
	h := w.Hierarchy()

	if err := h.SetParent(b, a); err != nil {
		t.Fatalf("SetParent(b,a) error = %v", err)
	}
	if err := h.SetParent(c, b); err != nil {
		t.Fatalf("SetParent(c,b) error = %v", err)
	}

	err := h.SetParent(a, c)
	if err == nil {
		t.Fatal("expected SetParent(a,c) to fail with a cycle")
	}
	hierr, ok := err.(*HierarchyError)
	if !ok || hierr.Code != CodeCycleDetected {
		t.Fatalf("error = %v, want CodeCycleDetected", err)
	}

	if p, _ := h.Parent(a); p != 0 {
		t.Errorf("expected a to remain rootless, got parent %v", p)
	}
	if p, _ := h.Parent(b); p != a {
		t.Errorf("expected b's parent to remain a, got %v", p)
	}
	if p, _ := h.Parent(c); p != b {
		t.Errorf("expected c's parent to remain b, got %v", p)
	}
}

func TestHierarchy_SelfParentRejected(t *testing.T) {
	w := NewWorld(nil)
	a, _ := w.Spawn()
	h := w.Hierarchy()

	err := h.SetParent(a, a)
	hierr, ok := err.(*HierarchyError)
	if !ok || hierr.Code != CodeSelfParent {
		t.Fatalf("error = %v, want CodeSelfParent", err)
	}
}

func TestHierarchy_DepthExceeded(t *testing.T) {
	w := NewWorld(nil)
	h := w.Hierarchy()
	h.SetMaxDepth(2)

	a, _ := w.Spawn()
	b, _ := w.Spawn()
	c, _ := w.Spawn()

	if err := h.SetParent(b, a); err != nil {
		t.Fatalf("SetParent(b,a) error = %v", err)
	}
	if err := h.SetParent(c, b); err != nil {
		t.Fatalf("SetParent(c,b) error = %v", err)
	}

	d, _ := w.Spawn()
	err := h.SetParent(d, c)
	hierr, ok := err.(*HierarchyError)
	if !ok || hierr.Code != CodeDepthExceeded {
		t.Fatalf("error = %v, want CodeDepthExceeded", err)
	}
}

func TestHierarchy_DespawnRecursiveDespawnsDescendants(t *testing.T) {
	w := NewWorld(nil)
	h := w.Hierarchy()

	parent, _ := w.Spawn()
	child, _ := w.Spawn()
	grandchild, _ := w.Spawn()
	_ = h.SetParent(child, parent)
	_ = h.SetParent(grandchild, child)

	h.DespawnRecursive(parent)

	for _, e := range []Entity{parent, child, grandchild} {
		if w.IsAlive(e) {
			t.Errorf("expected %v to be despawned", e)
		}
	}
}

func TestHierarchy_StaleParentPurgedOnRead(t *testing.T) {
	w := NewWorld(nil)
	h := w.Hierarchy()

	parent, _ := w.Spawn()
	child, _ := w.Spawn()
	_ = h.SetParent(child, parent)

	w.Despawn(parent)

	if _, ok := h.Parent(child); ok {
		t.Error("expected stale parent reference to be purged on read")
	}
}
