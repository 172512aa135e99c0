// Package pgen implements the generation pipeline framework: passes,
// pipelines, contexts, results, snapshots, and metrics.
//
// A Pass is a pure function from one artifact to another. A Pipeline is a
// typed linear composition of passes built with a Builder, supporting
// unconditional Pipe and conditional When steps. Execution produces a
// Result carrying the final artifact (or error), duration, trace events,
// optional snapshots, and per-pass metrics.
//
// This package generalizes a fixed orchestrated-stages-with-ctx.Done()-
// checks-between-them shape into a reusable, composable builder, so a
// pipeline's stage sequence is expressed as a type-checked chain rather
// than a hand-written loop over a stage list.
package pgen
