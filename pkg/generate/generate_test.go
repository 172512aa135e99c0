package generate

import (
	"testing"

	"github.com/dshills/rogueforge/pkg/connect"
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
	"github.com/dshills/rogueforge/pkg/randstream"
)

func TestConfig_ValidateCatchesMultipleViolations(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Algorithm: "nonsense"}
	errs := cfg.Validate()
	if len(errs) < 3 {
		t.Fatalf("expected at least 3 violations, got %v", errs)
	}
}

func TestConfig_DefaultIsValid(t *testing.T) {
	cfg := DefaultConfig(40, 30)
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Fatalf("DefaultConfig should validate cleanly, got %v", errs)
	}
}

func TestBSPPipeline_ProducesConnectedDungeonDeterministically(t *testing.T) {
	cfg := DefaultConfig(40, 30)

	makeCtx := func() *Context {
		return pgen.NewContext(randstream.NewSeedBundle(12345), cfg, nil, nil, false, true)
	}

	pipeline := BSPPipeline()
	r1 := pgen.Execute(pipeline, cfg, makeCtx())
	r2 := pgen.Execute(pipeline, cfg, makeCtx())

	if r1.Err != nil {
		t.Fatalf("unexpected error: %v", r1.Err)
	}
	if r1.Artifact.Checksum != r2.Artifact.Checksum {
		t.Fatalf("checksums differ across identical-seed runs: %s vs %s", r1.Artifact.Checksum, r2.Artifact.Checksum)
	}
	if len(r1.Artifact.Rooms) < 3 {
		t.Fatalf("expected >= 3 rooms, got %d", len(r1.Artifact.Rooms))
	}
	d := r1.Artifact
	entrance, ok := d.EntranceRoom()
	ids := make([]int, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		ids = append(ids, r.ID)
	}
	if !ok || !connect.IsFullyConnected(d.AdjacencyGraph(), entrance.ID, ids) {
		t.Fatal("BSP dungeon is not fully connected")
	}
}

func TestCellularPipeline_Runs(t *testing.T) {
	cfg := DefaultConfig(40, 30)
	cfg.Algorithm = AlgorithmCellular
	ctx := pgen.NewContext(randstream.NewSeedBundle(7), cfg, nil, nil, false, false)

	result := pgen.Execute(CellularPipeline(), cfg, ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Artifact.Width != 40 || result.Artifact.Height != 30 {
		t.Fatalf("unexpected dimensions: %dx%d", result.Artifact.Width, result.Artifact.Height)
	}
}

func TestHybridPipeline_Runs(t *testing.T) {
	cfg := DefaultConfig(50, 40)
	cfg.Algorithm = AlgorithmHybrid
	ctx := pgen.NewContext(randstream.NewSeedBundle(99), cfg, nil, nil, false, false)

	result := pgen.Execute(HybridPipeline(), cfg, ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Artifact.Checksum == "" {
		t.Fatal("expected a non-empty checksum")
	}
}

func TestRevalidateSpawns_RelocatesOffFloorSpawn(t *testing.T) {
	grid := geom.NewGrid(10, 10)
	grid.FillRect(0, 0, 10, 10, geom.TileWall)
	grid.SetCell(5, 5, geom.TileFloor)

	spawns := []model.SpawnDescriptor{
		{Position: geom.Point{X: 0, Y: 0}, RoomID: 0, Type: model.SpawnGeneric},
	}
	out := RevalidateSpawns(grid, spawns, 10)
	if len(out) != 1 {
		t.Fatalf("expected the spawn to be relocated, not dropped, got %d spawns", len(out))
	}
	if grid.GetCell(out[0].Position.X, out[0].Position.Y) != geom.TileFloor {
		t.Fatal("relocated spawn is not on a floor tile")
	}
}

func TestRevalidateSpawns_DropsWhenNoFloorInRadius(t *testing.T) {
	grid := geom.NewGrid(10, 10)
	grid.FillRect(0, 0, 10, 10, geom.TileWall)

	spawns := []model.SpawnDescriptor{
		{Position: geom.Point{X: 5, Y: 5}, RoomID: 0, Type: model.SpawnGeneric},
	}
	out := RevalidateSpawns(grid, spawns, 2)
	if len(out) != 0 {
		t.Fatalf("expected spawn to be dropped, got %d", len(out))
	}
}

func TestBSPPipeline_RejectsWhenWhenFalseIdentityHolds(t *testing.T) {
	cfg := DefaultConfig(30, 30)
	ctx := pgen.NewContext(randstream.NewSeedBundle(1), cfg, nil, nil, false, false)

	noop := pgen.Pass[*State, *State]{ID: "noop", Run: func(in *State, c *Context) (*State, error) {
		return in.clone(), nil
	}}

	base := pgen.Pipe(pgen.NewPipeline[Config]("test"), pgen.Pass[Config, *State]{
		ID:  "initialize-state",
		Run: func(in Config, c *Context) (*State, error) { return InitState(in), nil },
	})
	withSkip := pgen.When(base, func(s *State) bool { return false }, noop)

	before := pgen.Execute(base, cfg, ctx)
	after := pgen.Execute(withSkip, cfg, pgen.NewContext(randstream.NewSeedBundle(1), cfg, nil, nil, false, false))

	if before.Artifact.Grid.Width != after.Artifact.Grid.Width {
		t.Fatal("when(false, noop) should leave the artifact identical")
	}
}
