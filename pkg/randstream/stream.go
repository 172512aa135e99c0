package randstream

import "math/rand"

// Stream is a single deterministic pseudo-random sequence bound to one
// pipeline stage. All methods are deterministic given the stream's seed.
type Stream struct {
	seed  uint64
	name  string
	draws uint64
	rnd   *rand.Rand
}

// NewStream constructs a named stream from a derived seed.
func NewStream(name string, seed uint64) *Stream {
	return &Stream{seed: seed, name: name, rnd: rand.New(rand.NewSource(int64(seed)))}
}

// Seed returns the seed this stream was constructed from.
func (s *Stream) Seed() uint64 { return s.seed }

// Name returns the stage name this stream is bound to.
func (s *Stream) Name() string { return s.name }

// Draws returns the number of random values consumed so far. Tests use this
// to enforce the RNG discipline of fixed draws per entity: the draw count
// for a given input must be independent of which branch random values took.
func (s *Stream) Draws() uint64 { return s.draws }

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (s *Stream) Uint64() uint64 {
	s.draws++
	return s.rnd.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("randstream: Intn argument must be positive")
	}
	s.draws++
	return s.rnd.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	s.draws++
	return s.rnd.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.draws++
	s.rnd.Shuffle(n, swap)
}

// Bool returns a pseudo-random boolean.
func (s *Stream) Bool() bool {
	return s.Intn(2) == 1
}

// IntRange returns a pseudo-random integer in [min, max]. Panics if min > max.
func (s *Stream) IntRange(min, max int) int {
	if min > max {
		panic("randstream: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Float64Range returns a pseudo-random float64 in [min, max). Panics if
// min >= max.
func (s *Stream) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("randstream: Float64Range min must be < max")
	}
	return min + s.Float64()*(max-min)
}

// Chance returns true with probability p (p in [0, 1]); a single Bernoulli
// draw regardless of outcome, preserving the fixed-draws-per-entity
// discipline.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if all weights are
// zero or weights is empty.
func (s *Stream) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("randstream: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	roll := s.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
