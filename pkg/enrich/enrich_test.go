package enrich

import (
	"testing"

	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

func twoRoomDungeon() *model.Dungeon {
	rooms := []model.Room{
		{ID: 0, Bounds: geom.Rect{X: 0, Y: 0, Width: 6, Height: 6}, Type: model.RoomEntrance},
		{ID: 1, Bounds: geom.Rect{X: 10, Y: 0, Width: 6, Height: 6}, Type: model.RoomBoss},
	}
	conns := []model.Connection{{From: 0, To: 1}}
	spawns := []model.SpawnDescriptor{
		{Position: geom.Point{X: 2, Y: 2}, RoomID: 0, Type: model.SpawnGeneric, Weight: 1},
		{Position: geom.Point{X: 12, Y: 2}, RoomID: 1, Type: model.SpawnGeneric, Weight: 1,
			Tags: map[string]string{"role": "boss"}},
		{Position: geom.Point{X: 13, Y: 3}, RoomID: 1, Type: model.SpawnGeneric, Weight: 1,
			Tags: map[string]string{"item": "true"}},
	}
	return &model.Dungeon{Width: 20, Height: 10, Rooms: rooms, Connections: conns, Spawns: spawns}
}

func testCatalog() Catalog {
	return Catalog{Templates: []Template{
		{Name: "rat", Tags: []string{"minion"}, Difficulty: 0.1, BaseGold: 5, BaseExperience: 5,
			PreferredRoles: map[string]float64{"minion": 1.0}},
		{Name: "dragon", Tags: []string{"boss"}, Difficulty: 0.9, BaseGold: 200, BaseExperience: 500,
			PreferredRoles: map[string]float64{"boss": 1.0}},
		{Name: "coin-pouch", Tags: nil, Difficulty: 0.2, BaseGold: 10},
	}}
}

func TestEnrich_SplitsEntitiesAndItems(t *testing.T) {
	d := twoRoomDungeon()
	stream := randstream.NewStream("enrich-test", 1)
	res := Enrich(d, testCatalog(), testCatalog(), DefaultConfig(), stream)

	if len(res.Entities) != 2 {
		t.Fatalf("Entities = %d, want 2", len(res.Entities))
	}
	if len(res.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(res.Items))
	}
}

func TestEnrich_TaggedRoleWins(t *testing.T) {
	d := twoRoomDungeon()
	stream := randstream.NewStream("enrich-test", 2)
	res := Enrich(d, testCatalog(), testCatalog(), DefaultConfig(), stream)

	var boss *SemanticEntity
	for _, e := range res.Entities {
		if e.RoomID == 1 {
			boss = e
		}
	}
	if boss == nil {
		t.Fatal("expected an entity in the boss room")
	}
	if boss.Role != "boss" {
		t.Errorf("Role = %q, want boss", boss.Role)
	}
	if boss.HopDistance != 1 {
		t.Errorf("HopDistance = %d, want 1", boss.HopDistance)
	}
}

func TestEnrich_GuardianGuardsTaggedTarget(t *testing.T) {
	d := twoRoomDungeon()
	d.Spawns = append(d.Spawns, model.SpawnDescriptor{
		Position: geom.Point{X: 14, Y: 4}, RoomID: 1, Type: model.SpawnGeneric, Weight: 1,
		Tags: map[string]string{"guards": "vault-1"},
	})
	stream := randstream.NewStream("enrich-test", 3)
	res := Enrich(d, testCatalog(), testCatalog(), DefaultConfig(), stream)

	var guardian *SemanticEntity
	for _, e := range res.Entities {
		if e.Role == "guardian" {
			guardian = e
		}
	}
	if guardian == nil {
		t.Fatal("expected a guardian entity")
	}
	if guardian.GuardsTarget != "vault-1" {
		t.Errorf("GuardsTarget = %q, want vault-1", guardian.GuardsTarget)
	}
	found := false
	for _, rel := range guardian.Relationships {
		if rel.Kind == "guards" && rel.TargetID == "vault-1" {
			found = true
		}
	}
	if !found {
		t.Error("expected a guards relationship targeting vault-1")
	}
}

func TestEnrich_BossCommandsMinionsInSameRoom(t *testing.T) {
	d := twoRoomDungeon()
	d.Spawns = append(d.Spawns, model.SpawnDescriptor{
		Position: geom.Point{X: 15, Y: 5}, RoomID: 1, Type: model.SpawnGeneric, Weight: 1,
		Tags: map[string]string{"role": "minion"},
	})
	stream := randstream.NewStream("enrich-test", 4)
	res := Enrich(d, testCatalog(), testCatalog(), DefaultConfig(), stream)

	var boss *SemanticEntity
	for _, e := range res.Entities {
		if e.Role == "boss" {
			boss = e
		}
	}
	if boss == nil {
		t.Fatal("expected a boss entity")
	}
	commands := 0
	for _, rel := range boss.Relationships {
		if rel.Kind == "commands" {
			commands++
		}
	}
	if commands == 0 {
		t.Error("expected the boss to command at least one minion")
	}
}
