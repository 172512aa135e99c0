// Package integration exercises the full generation pipeline end to end:
// generate, enrich, simulate, validate, and load into an ECS world.
package integration

import (
	"context"
	"testing"

	"github.com/dshills/rogueforge/pkg/bridge"
	"github.com/dshills/rogueforge/pkg/ecs"
	"github.com/dshills/rogueforge/pkg/enrich"
	"github.com/dshills/rogueforge/pkg/generate"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
	"github.com/dshills/rogueforge/pkg/randstream"
	"github.com/dshills/rogueforge/pkg/simulate"
	"github.com/dshills/rogueforge/pkg/trace"
	"github.com/dshills/rogueforge/pkg/validation"
	"go.uber.org/zap"
)

func generateForTest(t *testing.T, cfg generate.Config, primarySeed uint64) *pgen.Result[*model.Dungeon] {
	t.Helper()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("invalid config: %v", errs)
	}
	seed := randstream.NewSeedBundle(primarySeed)
	pctx := pgen.NewContext(seed, cfg, trace.NoopCollector{}, zap.NewNop(), false, true)
	res := pgen.Execute(generate.BSPPipeline(), cfg, pctx)
	if res.Err != nil {
		t.Fatalf("generation failed: %v", res.Err)
	}
	return res
}

// TestIntegration_CompletePipeline verifies that every stage from layout
// generation through ECS load produces a consistent, non-empty result.
func TestIntegration_CompletePipeline(t *testing.T) {
	cfg := generate.DefaultConfig(80, 60)
	res := generateForTest(t, cfg, 0xC0FFEE)
	d := res.Artifact

	if len(d.Rooms) == 0 {
		t.Fatal("generation produced no rooms")
	}
	t.Logf("stage 1: layout generated with %d rooms", len(d.Rooms))

	if len(d.Connections) == 0 {
		t.Error("graph has no connections - rooms must be connected")
	}

	if len(d.Terrain) != d.Width*d.Height {
		t.Errorf("terrain size %d does not match %dx%d", len(d.Terrain), d.Width, d.Height)
	}
	t.Logf("stage 2: terrain carved %dx%d", d.Width, d.Height)

	report, err := validation.NewValidator().Validate(context.Background(), d, cfg)
	if err != nil {
		t.Fatalf("validation failed: %v", err)
	}
	if !report.Passed {
		t.Errorf("validation failed: %v", report.Errors)
	}
	t.Logf("stage 3: validated (branching=%.2f, pathLen=%d, cycles=%d)",
		report.Metrics.BranchingFactor, report.Metrics.PathLength, report.Metrics.CycleCount)

	result := enrich.Enrich(d, enrich.Catalog{}, enrich.Catalog{}, enrich.DefaultConfig(), randstream.NewStreams(d.Seed).Details)
	t.Logf("stage 4: enrichment produced %d spawns", len(d.Spawns))

	simCfg := simulate.DefaultConfig()
	tr := simulate.Run(d, simCfg)
	if len(tr.Visits) == 0 {
		t.Error("playthrough simulation produced no visits")
	}
	t.Logf("stage 5: simulated playthrough with %d visits, halted on %q", len(tr.Visits), tr.HaltReason)

	w := ecs.NewWorld(zap.NewNop())
	if err := bridge.RegisterStandardComponents(w); err != nil {
		t.Fatalf("RegisterStandardComponents failed: %v", err)
	}
	templates := ecs.TemplateSet{
		bridge.PlayerTemplate: {
			Name: bridge.PlayerTemplate,
			Components: map[string]ecs.ComponentData{
				bridge.CHealth: {"current": 100, "max": 100},
			},
		},
	}
	if errs := bridge.ValidateForLoad(w, d, result, templates); len(errs) > 0 {
		t.Logf("load preconditions reported %d issue(s): %v", len(errs), errs)
	}
	if _, err := bridge.LoadDungeon(w, d, result, templates, zap.NewNop()); err != nil {
		t.Fatalf("LoadDungeon failed: %v", err)
	}
	if len(w.AllAlive()) == 0 {
		t.Error("expected at least the player entity to be alive after load")
	}
	t.Log("stage 6: ECS world loaded successfully")
}

// TestGolden_Determinism verifies that the same seed produces identical
// room and connection counts across repeated runs.
func TestGolden_Determinism(t *testing.T) {
	cfg := generate.DefaultConfig(60, 40)

	res1 := generateForTest(t, cfg, 42)
	res2 := generateForTest(t, cfg, 42)

	if len(res1.Artifact.Rooms) != len(res2.Artifact.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(res1.Artifact.Rooms), len(res2.Artifact.Rooms))
	}
	if len(res1.Artifact.Connections) != len(res2.Artifact.Connections) {
		t.Fatalf("connection counts differ: %d vs %d", len(res1.Artifact.Connections), len(res2.Artifact.Connections))
	}
	if res1.Artifact.ComputeChecksum() != res2.Artifact.ComputeChecksum() {
		t.Fatal("checksums differ for identical seed and config")
	}
	t.Log("same seed produced identical output")
}

// TestIntegration_SmallDungeon is a regression test ensuring a near-minimum
// sized dungeon still produces a fully connected, validated layout.
func TestIntegration_SmallDungeon(t *testing.T) {
	cfg := generate.DefaultConfig(20, 20)
	res := generateForTest(t, cfg, 7)
	d := res.Artifact

	if len(d.Rooms) == 0 {
		t.Fatal("expected at least one room in a minimum-sized dungeon")
	}

	report, err := validation.NewValidator().Validate(context.Background(), d, cfg)
	if err != nil {
		t.Fatalf("validation failed: %v", err)
	}
	if connResult := report.HardConstraintResults; len(connResult) == 0 || !connResult[0].Satisfied {
		t.Error("expected the small dungeon to be fully connected")
	}
	t.Logf("small dungeon handled successfully: %d rooms", len(d.Rooms))
}
