package bridge

import (
	"testing"

	"github.com/dshills/rogueforge/pkg/ecs"
	"github.com/dshills/rogueforge/pkg/enrich"
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

func testDungeon() *model.Dungeon {
	return &model.Dungeon{
		Width:  10,
		Height: 10,
		Rooms: []model.Room{
			{ID: 0, Type: model.RoomEntrance, Bounds: geom.Rect{X: 1, Y: 1, Width: 3, Height: 3}},
		},
		Spawns: []model.SpawnDescriptor{
			{RoomID: 0, Type: model.SpawnEntrance, Position: geom.Point{X: 2, Y: 2}},
		},
	}
}

func testTemplates() ecs.TemplateSet {
	return ecs.TemplateSet{
		PlayerTemplate: {Name: PlayerTemplate, Components: map[string]ecs.ComponentData{
			CHealth:      {"current": 10, "max": 10},
			CCombatStats: {"attack": 3, "defense": 1},
		}},
		"rat": {Name: "rat", Components: map[string]ecs.ComponentData{
			CHealth: {"current": 4, "max": 4},
		}},
	}
}

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld(nil)
	if err := RegisterStandardComponents(w); err != nil {
		t.Fatalf("RegisterStandardComponents() error = %v", err)
	}
	return w
}

func TestValidateForLoad_MissingPlayerTemplate(t *testing.T) {
	w := newTestWorld(t)
	d := testDungeon()
	errs := ValidateForLoad(w, d, enrich.Result{}, ecs.TemplateSet{})
	if len(errs) == 0 {
		t.Fatal("expected a missing-player-template error")
	}
}

func TestValidateForLoad_MissingEntityTemplate(t *testing.T) {
	w := newTestWorld(t)
	d := testDungeon()
	result := enrich.Result{Entities: []*enrich.SemanticEntity{{ID: "entity-0", TemplateName: "ghost"}}}
	errs := ValidateForLoad(w, d, result, testTemplates())
	if len(errs) == 0 {
		t.Fatal("expected a missing-entity-template error")
	}
}

func TestLoadDungeon_SpawnsPlayerAtEntrance(t *testing.T) {
	w := newTestWorld(t)
	d := testDungeon()

	player, err := LoadDungeon(w, d, enrich.Result{}, testTemplates(), nil)
	if err != nil {
		t.Fatalf("LoadDungeon() error = %v", err)
	}
	if !w.IsAlive(player) {
		t.Fatal("expected player entity to be alive")
	}
	pos, ok := w.GetComponent(player, CPosition)
	if !ok {
		t.Fatal("expected player to carry a Position component")
	}
	if pos["x"] != 2.0 || pos["y"] != 2.0 {
		t.Errorf("player Position = %v, want x=2 y=2", pos)
	}
}

func TestLoadDungeon_SetsGameMapResourceAliasingTerrain(t *testing.T) {
	w := newTestWorld(t)
	d := testDungeon()
	d.Terrain = []byte{1, 2, 3}

	if _, err := LoadDungeon(w, d, enrich.Result{}, testTemplates(), nil); err != nil {
		t.Fatalf("LoadDungeon() error = %v", err)
	}
	v, ok := w.Resource(GameMapResource)
	if !ok {
		t.Fatal("expected GameMap resource to be set")
	}
	gm := v.(*GameMap)
	if &gm.Terrain[0] != &d.Terrain[0] {
		t.Error("expected GameMap.Terrain to alias the dungeon's terrain buffer, not copy it")
	}
}

func TestLoadDungeon_SkipsBadEntityWithoutAborting(t *testing.T) {
	w := newTestWorld(t)
	d := testDungeon()
	result := enrich.Result{
		Entities: []*enrich.SemanticEntity{
			{ID: "entity-0", TemplateName: "rat", Position: geom.Point{X: 5, Y: 5}},
			{ID: "entity-1", TemplateName: "nonexistent", Position: geom.Point{X: 6, Y: 6}},
		},
	}

	player, err := LoadDungeon(w, d, result, testTemplates(), nil)
	if err != nil {
		t.Fatalf("LoadDungeon() error = %v", err)
	}
	if !w.IsAlive(player) {
		t.Fatal("expected player to still be spawned")
	}
	if w.Query(ecs.Descriptor{With: []string{CHealth}}).Count() != 2 {
		t.Errorf("expected player + rat to carry Health, got %d", w.Query(ecs.Descriptor{With: []string{CHealth}}).Count())
	}
}
