// Package simulate runs a deterministic surrogate playthrough over a
// generated dungeon's room graph and analyzes the resulting difficulty
// pacing.
package simulate
