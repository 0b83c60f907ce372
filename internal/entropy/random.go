// Package entropy provides the seedable randomness source threaded through
// the simulation. Every stochastic draw in the core goes through a Source so
// a day can be replayed deterministically under test.
package entropy

import (
	"math/rand"
)

// Source wraps a seeded PRNG. It is not safe for concurrent use; the
// simulation is single-threaded and owns exactly one Source.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded with the given value.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a uniform float64 in [min, max).
func (s *Source) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Between returns a uniform int in [min, max], inclusive on both ends.
func (s *Source) Between(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Shuffle randomizes the order of n elements using the swap function.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
