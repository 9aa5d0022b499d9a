// SPDX-License-Identifier: MIT
// Package: stimulus
//
// options.go — functional options for Source.
//
// Contract (strict):
//   • Options are functional (type Option func(*sourceConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Drawing itself never panics.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package stimulus

import (
	"math"
	"math/rand"
)

// Option customizes a Source before any matrix is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*sourceConfig)

// WithSeed creates a new *rand.Rand seeded with seed (deterministic).
// Use this in tests and vector generation to lock outcomes.
func WithSeed(seed uint32) Option {
	return func(c *sourceConfig) {
		c.rng = rand.New(rand.NewSource(int64(seed)))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stimulus: WithRand(nil)")
	}
	return func(c *sourceConfig) {
		c.rng = r
	}
}

// WithIntRange sets the inclusive range of random integer entries.
// Panics if lo > hi. Values outside the element domain are saturated by the
// pipeline, not here.
func WithIntRange(lo, hi int32) Option {
	if lo > hi {
		panic("stimulus: WithIntRange(lo>hi)")
	}
	return func(c *sourceConfig) {
		c.intLo, c.intHi, c.intRangeSet = lo, hi, true
	}
}

// WithFloatRange sets the half-open range [lo, hi) of random float entries.
// Panics if the bounds are non-finite or lo >= hi.
func WithFloatRange(lo, hi float32) Option {
	if !finite(lo) || !finite(hi) || lo >= hi {
		panic("stimulus: WithFloatRange(invalid bounds)")
	}
	return func(c *sourceConfig) {
		c.floatLo, c.floatHi = lo, hi
	}
}

// WithDiagonalOffsets shifts the diagonal of FloatPattern for A and B.
// The vector generator uses (0, 1) so that A and B differ.
// Panics on non-finite offsets.
func WithDiagonalOffsets(a, b float32) Option {
	if !finite(a) || !finite(b) {
		panic("stimulus: WithDiagonalOffsets(non-finite)")
	}
	return func(c *sourceConfig) {
		c.offsetA, c.offsetB = a, b
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
