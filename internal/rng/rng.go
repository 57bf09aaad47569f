// Package rng provides the random number source used for weight
// initialization and shuffled sample selection.
//
// The Source interface decouples the network core from math/rand so tests
// can substitute a fixed-seed or scripted source.
package rng

import "math/rand"

// Source supplies the randomness the trainer consumes.
//
// Float64 must return values uniformly distributed in [0, 1); Intn must
// return values uniformly distributed in [0, n). *rand.Rand satisfies
// Source.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// New returns a deterministic Source seeded with seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // weight init, not security-critical
}
