// Package randstream provides the seed bundle and isolated per-stage PRNG
// streams used throughout generation.
//
// A SeedBundle holds one primary 64-bit seed plus four derived sub-seeds
// (layout, rooms, connections, details). When only the primary seed is
// supplied, sub-seeds are derived deterministically via splitmix64 with
// distinct constants per stream, so two runs with the same primary seed
// always produce identical streams.
//
// Stream wraps math/rand.Rand with the convenience methods the generation
// passes need (IntRange, WeightedChoice, ...).
package randstream
