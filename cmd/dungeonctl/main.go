// Command dungeonctl drives the generation pipeline end to end: build a
// dungeon, enrich it with semantic spawns, optionally simulate a
// playthrough and load it into an ECS world, then write the results to
// disk.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/rogueforge/pkg/bridge"
	"github.com/dshills/rogueforge/pkg/debugviz"
	"github.com/dshills/rogueforge/pkg/ecs"
	"github.com/dshills/rogueforge/pkg/enrich"
	"github.com/dshills/rogueforge/pkg/generate"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
	"github.com/dshills/rogueforge/pkg/randstream"
	"github.com/dshills/rogueforge/pkg/simulate"
	"github.com/dshills/rogueforge/pkg/systems"
	"github.com/dshills/rogueforge/pkg/telemetry"
	"github.com/dshills/rogueforge/pkg/trace"
	"github.com/dshills/rogueforge/pkg/validation"
	"go.uber.org/zap"
)

const version = "1.0.0"

var (
	algorithm    = flag.String("algorithm", "bsp", "Generator algorithm: bsp, cellular, or hybrid")
	width        = flag.Int("width", 60, "Dungeon width in tiles")
	height       = flag.Int("height", 40, "Dungeon height in tiles")
	seedFlag     = flag.Uint64("seed", 0, "Primary seed (0 = derived from current time)")
	outputDir    = flag.String("output", ".", "Output directory for generated files")
	format       = flag.String("format", "json", "Export format: json, svg, or all")
	enemyCatalog = flag.String("enemy-catalog", "", "Path to a YAML enemy catalog (optional)")
	itemCatalog  = flag.String("item-catalog", "", "Path to a YAML item catalog (optional)")
	runSimulate  = flag.Bool("simulate", false, "Run a surrogate playthrough and report pacing")
	loadECS      = flag.Bool("ecs", false, "Load the dungeon into an ECS world and tick it a few times")
	metricsAddr  = flag.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090) until the run completes")
	runValidate  = flag.Bool("validate", false, "Run dungeon-level validation after generation and print a report")
	verbose      = flag.Bool("verbose", false, "Enable verbose structured logging")
	versionF     = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeonctl version %s\n", version)
		os.Exit(0)
	}

	if *metricsAddr != "" {
		go func() {
			_ = http.ListenAndServe(*metricsAddr, telemetry.Handler())
		}()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := telemetry.NewLogger(*verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := generate.DefaultConfig(*width, *height)
	switch *algorithm {
	case "bsp":
		cfg.Algorithm = generate.AlgorithmBSP
	case "cellular":
		cfg.Algorithm = generate.AlgorithmCellular
	case "hybrid":
		cfg.Algorithm = generate.AlgorithmHybrid
	default:
		return fmt.Errorf("unknown algorithm %q, must be bsp, cellular, or hybrid", *algorithm)
	}

	if cfgReport := validation.ValidateConfig(cfg); !cfgReport.Passed {
		fmt.Fprint(os.Stderr, validation.Summary(cfgReport))
		return fmt.Errorf("invalid configuration (%d violations)", len(cfgReport.Violations))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	primary := *seedFlag
	if primary == 0 {
		primary = uint64(time.Now().UnixNano())
	}
	seed := randstream.NewSeedBundle(primary)

	collector := trace.NoopCollector{}
	pctx := pgen.NewContext(seed, cfg, collector, logger, false, true)

	if *verbose {
		logger.Info("generating dungeon",
			zap.String("algorithm", string(cfg.Algorithm)),
			zap.Int("width", cfg.Width), zap.Int("height", cfg.Height),
			zap.Uint64("seed", primary))
	}

	start := time.Now()
	d, passMetrics, err := generateDungeon(cfg, pctx)
	elapsed := time.Since(start)
	telemetry.RecordRun(string(cfg.Algorithm), elapsed, err)
	for _, m := range passMetrics {
		telemetry.RecordPass(string(cfg.Algorithm), m.PassID, time.Duration(m.DurationMs)*time.Millisecond, nil)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if *verbose {
		logger.Info("generation complete",
			zap.Duration("duration", elapsed), zap.Int("rooms", len(d.Rooms)),
			zap.Int("connections", len(d.Connections)))
	}

	enemyCat, err := loadCatalogOrEmpty(*enemyCatalog)
	if err != nil {
		return err
	}
	itemCat, err := loadCatalogOrEmpty(*itemCatalog)
	if err != nil {
		return err
	}
	result := enrich.Enrich(d, enemyCat, itemCat, enrich.DefaultConfig(), pctx.Streams.Details)

	if *runValidate {
		report, err := validation.NewValidator().Validate(context.Background(), d, cfg)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Print(validation.Summary(report))
	}

	if *runSimulate {
		runPlaythroughReport(d, logger)
	}

	if *loadECS {
		if err := loadAndTick(d, result, logger); err != nil {
			return fmt.Errorf("ecs load failed: %w", err)
		}
	}

	baseName := fmt.Sprintf("dungeon_%d", primary)
	if *format == "json" || *format == "all" {
		if err := exportJSON(d, result, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(d, result, primary, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Generated dungeon (seed=%d, algorithm=%s) in %v\n", primary, cfg.Algorithm, elapsed)
	return nil
}

func generateDungeon(cfg generate.Config, pctx *pgen.Context) (*model.Dungeon, []pgen.PassMetrics, error) {
	switch cfg.Algorithm {
	case generate.AlgorithmCellular:
		res := pgen.Execute(generate.CellularPipeline(), cfg, pctx)
		return res.Artifact, res.Metrics, res.Err
	case generate.AlgorithmHybrid:
		res := pgen.Execute(generate.HybridPipeline(), cfg, pctx)
		return res.Artifact, res.Metrics, res.Err
	default:
		res := pgen.Execute(generate.BSPPipeline(), cfg, pctx)
		return res.Artifact, res.Metrics, res.Err
	}
}

func loadCatalogOrEmpty(path string) (enrich.Catalog, error) {
	if path == "" {
		return enrich.Catalog{}, nil
	}
	cat, err := enrich.LoadCatalog(path)
	if err != nil {
		return enrich.Catalog{}, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

func runPlaythroughReport(d *model.Dungeon, logger *zap.Logger) {
	simCfg := simulate.DefaultConfig()
	tr := simulate.Run(d, simCfg)
	report := simulate.Analyze(tr, simCfg, 0.3)

	fmt.Printf("\nPlaythrough: %d visits, halted on %q, final health %.1f, treasure %d\n",
		len(tr.Visits), tr.HaltReason, tr.FinalHealth, tr.FinalTreasure)
	if len(report.Spikes) > 0 {
		fmt.Printf("  %d difficulty spike(s) detected\n", len(report.Spikes))
	}
	for _, issue := range report.Issues {
		fmt.Printf("  issue: room %d: %s (%s)\n", issue.RoomID, issue.Message, issue.Recommendation)
	}
	logger.Info("playthrough analyzed",
		zap.Int("visits", len(tr.Visits)), zap.Int("spikes", len(report.Spikes)))
}

// builtinPlayerTemplate is the minimal template used when the caller
// supplies no richer one, so -ecs works without external template files.
func builtinPlayerTemplate() ecs.Template {
	return ecs.Template{
		Name: bridge.PlayerTemplate,
		Components: map[string]ecs.ComponentData{
			bridge.CPosition:    {"x": 0.0, "y": 0.0},
			bridge.CHealth:      {"current": 100, "max": 100},
			bridge.CCombatStats: {"attack": 10, "defense": 3},
			bridge.CInventory:   {"items": []string{}, "capacity": 10},
		},
	}
}

func loadAndTick(d *model.Dungeon, result enrich.Result, logger *zap.Logger) error {
	w := ecs.NewWorld(logger)
	if err := bridge.RegisterStandardComponents(w); err != nil {
		return err
	}

	templates := ecs.TemplateSet{bridge.PlayerTemplate: builtinPlayerTemplate()}
	if errs := bridge.ValidateForLoad(w, d, result, templates); len(errs) > 0 {
		for _, e := range errs {
			logger.Warn("load precondition failed", zap.Error(e))
		}
	}

	if _, err := bridge.LoadDungeon(w, d, result, templates, logger); err != nil {
		return err
	}

	sched := w.Scheduler()
	if err := sched.Register(systems.CombatSystem()); err != nil {
		return err
	}
	if err := sched.Register(systems.InteractionSystem()); err != nil {
		return err
	}

	const demoTicks = 5
	for i := 0; i < demoTicks; i++ {
		tickStart := time.Now()
		if err := w.Tick(); err != nil {
			return err
		}
		telemetry.RecordTick(time.Since(tickStart), len(w.AllAlive()), w.Events().Len())
	}

	logger.Info("ecs demo run complete",
		zap.Int("ticks", demoTicks), zap.Int("alive_entities", len(w.AllAlive())))
	return nil
}

func exportJSON(d *model.Dungeon, result enrich.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	payload := struct {
		Dungeon *model.Dungeon `json:"dungeon"`
		Enrich  enrich.Result  `json:"enrichment"`
	}{Dungeon: d, Enrich: result}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dungeon: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote %s (%d bytes)\n", filename, len(data))
	}
	return nil
}

func exportSVG(d *model.Dungeon, result enrich.Result, seed uint64, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	opts := debugviz.DefaultOptions()
	opts.Title = fmt.Sprintf("Dungeon (seed=%d)", seed)
	if err := debugviz.SaveToFile(d, &result, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote %s\n", filename)
	}
	return nil
}
