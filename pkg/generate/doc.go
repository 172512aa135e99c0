// Package generate implements the three concrete dungeon generators — BSP,
// cellular, and hybrid — as pass libraries over pkg/pgen's pipeline
// framework. Grid rasterization helpers are adapted from the
// teacher's pkg/carving tile-drawing routines; the partition and automaton
// algorithms themselves have no teacher analog and are written fresh.
package generate
