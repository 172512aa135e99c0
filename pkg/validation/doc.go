// Package validation checks a generation Config before a run and a
// finished model.Dungeon after one, reporting every violation found rather
// than stopping at the first.
//
// # Hard and soft constraints
//
// Hard constraints must hold for a dungeon to be considered valid:
//
//   - Connectivity: every room must be reachable from the entrance
//   - No Overlaps: room bounds must not intersect
//   - Path Bounds: an entrance-to-exit path must exist and be no longer than the room count
//
// Soft constraints are optimization targets that do not fail validation:
//
//   - Branching Factor: average connections per room should track the target
//
// Pacing deviation is reported as a metric rather than a constraint;
// Validate adds a warning when it exceeds 0.3.
//
// # Usage
//
//	report := validation.ValidateConfig(cfg)
//	if !report.Passed {
//	    log.Fatal(validation.Summary(report))
//	}
//	report, err := validation.NewValidator().Validate(ctx, d, cfg)
//
// Key reachability (a locks/keys traversal concept) is deliberately out of
// scope here — that belongs to the ECS door system at load time, not to
// generation-time validation — so path-bounds and branching-factor are
// computed directly from model.Dungeon's room graph instead.
package validation
