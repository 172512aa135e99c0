package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/rogueforge/pkg/ecs"
	"github.com/dshills/rogueforge/pkg/enrich"
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

// PlayerTemplate is the template name LoadDungeon instantiates the player
// from.
const PlayerTemplate = "player"

// ValidateForLoad checks the preconditions that must hold before a load
// may proceed: if w already carries a GameMap resource, its
// dimensions must match d; templates must define "player"; and every
// template a semantic entity or item references must exist. It returns one
// error per violation, mirroring pkg/validation's hard-constraint report
// style (a flat list of failures rather than a single first-error abort).
func ValidateForLoad(w *ecs.World, d *model.Dungeon, result enrich.Result, templates ecs.TemplateSet) []error {
	var errs []error

	if v, ok := w.Resource(GameMapResource); ok {
		if gm, ok := v.(*GameMap); ok {
			if gm.Width != d.Width || gm.Height != d.Height {
				errs = append(errs, fmt.Errorf("bridge: existing GameMap resource is %dx%d, dungeon is %dx%d", gm.Width, gm.Height, d.Width, d.Height))
			}
		}
	}

	if _, ok := templates[PlayerTemplate]; !ok {
		errs = append(errs, fmt.Errorf("bridge: no %q template registered", PlayerTemplate))
	}

	seen := map[string]bool{}
	for _, e := range result.Entities {
		if seen[e.TemplateName] {
			continue
		}
		seen[e.TemplateName] = true
		if _, ok := templates[e.TemplateName]; !ok {
			errs = append(errs, fmt.Errorf("bridge: entity template %q not found", e.TemplateName))
		}
	}
	for _, it := range result.Items {
		if seen[it.TemplateName] {
			continue
		}
		seen[it.TemplateName] = true
		if _, ok := templates[it.TemplateName]; !ok {
			errs = append(errs, fmt.Errorf("bridge: item template %q not found", it.TemplateName))
		}
	}

	return errs
}

// LoadDungeon transfers d's terrain into a GameMap resource on w (aliased,
// not copied), spawns the player at the player-spawn position via the
// "player" template, then spawns every semantic entity and item from
// result via its own template with a position override. A per-entity
// instantiation failure is logged and skipped; it does not abort the load.
// Returns the player entity. Callers that want the
// upfront all-templates-present guarantee should call ValidateForLoad
// first; LoadDungeon itself only aborts if the player can't be spawned.
func LoadDungeon(w *ecs.World, d *model.Dungeon, result enrich.Result, templates ecs.TemplateSet, logger *zap.Logger) (ecs.Entity, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	w.SetResource(GameMapResource, newGameMap(d))

	player, err := instantiate(w, templates, PlayerTemplate, playerSpawnPosition(d))
	if err != nil {
		return 0, fmt.Errorf("bridge: player instantiation failed: %w", err)
	}

	for _, e := range result.Entities {
		if _, err := instantiate(w, templates, e.TemplateName, e.Position); err != nil {
			logger.Warn("bridge: entity instantiation failed",
				zap.String("id", e.ID), zap.String("template", e.TemplateName), zap.Error(err))
			continue
		}
	}
	for _, it := range result.Items {
		if _, err := instantiate(w, templates, it.TemplateName, it.Position); err != nil {
			logger.Warn("bridge: item instantiation failed",
				zap.String("id", it.ID), zap.String("template", it.TemplateName), zap.Error(err))
			continue
		}
	}

	return player, nil
}

// playerSpawnPosition finds the dungeon's entrance spawn, falling back to
// the entrance room's centroid if no explicit entrance spawn descriptor
// exists.
func playerSpawnPosition(d *model.Dungeon) geom.Point {
	for _, s := range d.Spawns {
		if s.Type == model.SpawnEntrance {
			return s.Position
		}
	}
	if r, ok := d.EntranceRoom(); ok {
		return r.Centroid()
	}
	return geom.Point{}
}

// instantiate spawns an entity from templates[name], overriding its
// Position component with pos.
func instantiate(w *ecs.World, templates ecs.TemplateSet, name string, pos geom.Point) (ecs.Entity, error) {
	tmpl, ok := templates[name]
	if !ok {
		return 0, fmt.Errorf("template %q not found", name)
	}

	components := make(map[string]ecs.ComponentData, len(tmpl.Components)+1)
	for k, v := range tmpl.Components {
		components[k] = v
	}
	components[CPosition] = ecs.ComponentData{"x": float64(pos.X), "y": float64(pos.Y)}

	e, err := w.SpawnWith(components)
	if err != nil {
		return 0, err
	}
	return e, nil
}
