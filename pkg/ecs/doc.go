// Package ecs implements the entity-component-system runtime: entity
// lifecycle, component storage, queries, command buffering, system
// scheduling, events, hierarchy, and serialization.
//
// It follows the rest of the module's idiom: exported errors as sentinel
// values or small typed structs, zap for logging, explicit error returns
// everywhere a caller can reasonably recover. Duplicate registration and
// scheduler cycles come back as typed errors (DuplicateComponentError,
// SchedulerCycleError); the one panic is a missing store looked up through
// Registry.MustStore.
package ecs
