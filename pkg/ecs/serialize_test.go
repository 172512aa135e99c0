package ecs

import "testing"

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	w := NewWorld(nil)
	_ = w.RegisterComponent(positionSchema())

	a, _ := w.Spawn()
	w.AddComponent(a, "Position", ComponentData{"x": 3.0, "y": 4.0})
	w.SetResource("turn", 7)

	snap := Serialize(w, nil, nil, 1000)

	w2 := NewWorld(nil)
	_ = w2.RegisterComponent(positionSchema())
	idMap, err := Deserialize(snap, nil, w2)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}

	newA := idMap[a]
	data, ok := w2.GetComponent(newA, "Position")
	if !ok {
		t.Fatal("expected Position to survive round-trip")
	}
	if data["x"] != 3.0 || data["y"] != 4.0 {
		t.Errorf("Position = %v, want x=3 y=4", data)
	}
	if v, _ := w2.Resource("turn"); v != 7 {
		t.Errorf("resource turn = %v, want 7", v)
	}
}

func TestSerialize_DeltaEncodesAgainstTemplate(t *testing.T) {
	w := NewWorld(nil)
	_ = w.RegisterComponent(positionSchema())

	a, _ := w.Spawn()
	w.AddComponent(a, "Position", ComponentData{"x": 0.0, "y": 5.0})

	templates := TemplateSet{
		"goblin": {Name: "goblin", Components: map[string]ComponentData{
			"Position": {"x": 0.0, "y": 0.0},
		}},
	}
	snap := Serialize(w, map[Entity]string{a: "goblin"}, templates, 0)

	if len(snap.Entities) != 1 {
		t.Fatalf("Entities = %d, want 1", len(snap.Entities))
	}
	delta := snap.Entities[0].Components["Position"]
	if _, hasX := delta["x"]; hasX {
		t.Error("expected x (unchanged from template) to be omitted from the delta")
	}
	if delta["y"] != 5.0 {
		t.Errorf("delta[y] = %v, want 5.0", delta["y"])
	}
}

func TestDeserialize_RejectsVersionMismatch(t *testing.T) {
	w := NewWorld(nil)
	snap := Snapshot{Version: "0.9"}
	if _, err := Deserialize(snap, nil, w); err == nil {
		t.Fatal("expected a version mismatch to fail")
	}
}

func TestDeserialize_ResolvesEntityTypedFieldsThroughIDMap(t *testing.T) {
	w := NewWorld(nil)
	_ = w.RegisterComponent(ComponentSchema{Name: "Owner", Fields: []FieldSchema{
		{Name: "of", Kind: FieldEntity},
	}})

	owner, _ := w.Spawn()
	owned, _ := w.Spawn()
	w.AddComponent(owned, "Owner", ComponentData{"of": owner})

	snap := Serialize(w, nil, nil, 0)

	w2 := NewWorld(nil)
	_ = w2.RegisterComponent(ComponentSchema{Name: "Owner", Fields: []FieldSchema{
		{Name: "of", Kind: FieldEntity},
	}})
	idMap, err := Deserialize(snap, nil, w2)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}

	newOwned := idMap[owned]
	data, _ := w2.GetComponent(newOwned, "Owner")
	if data["of"] != idMap[owner] {
		t.Errorf("Owner.of = %v, want %v", data["of"], idMap[owner])
	}
}
