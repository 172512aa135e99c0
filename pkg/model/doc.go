// Package model defines the terminal data types produced by the generation
// pipeline: rooms, connections, the dungeon artifact itself, and spawn
// descriptors. These types are immutable once the pipeline finishes a run.
package model
