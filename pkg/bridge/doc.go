// Package bridge connects the generation pipeline's output (pkg/model,
// pkg/enrich) to an ECS world (pkg/ecs): it declares the standard game
// component schemas, loads a dungeon's terrain and semantic spawns into a
// fresh world, and validates that a world is ready to receive a load.
//
// It follows a small, named, one-direction conversion-function idiom
// between two packages' types rather than a generic mapping framework.
package bridge
