// SPDX-License-Identifier: MIT
// Package: stimulus
//
// source.go — fixed patterns and the seeded operand source.
//
// Deterministic defaults (no surprises):
//   • rng          = nil             (patterns, no randomness)
//   • int range    = [IntMin/4, IntMax/4] of the configured element width
//   • float range  = [-50, 50)
//   • offsets      = 0 for A and B

package stimulus

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/matrix"
)

// Float range of random draws.
const (
	DefaultFloatLo float32 = -50
	DefaultFloatHi float32 = 50
)

// sourceConfig aggregates all knobs; resolved once by New.
type sourceConfig struct {
	rng *rand.Rand

	intLo, intHi int32
	intRangeSet  bool

	floatLo, floatHi float32
	offsetA, offsetB float32
}

// Source produces operand pairs for one run. It owns the only RNG of the
// model and is not safe for concurrent use.
type Source struct {
	n   int
	cfg sourceConfig
}

// New resolves opts against cfg.
// Errors: accel.ErrInvalidConfig (wrapped) when cfg is invalid.
// Complexity: O(len(opts)).
func New(cfg accel.Config, opts ...Option) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stimulus.New: %w", err)
	}
	sc := sourceConfig{
		floatLo: DefaultFloatLo,
		floatHi: DefaultFloatHi,
	}
	for _, opt := range opts {
		opt(&sc)
	}
	if !sc.intRangeSet {
		sc.intLo, sc.intHi = cfg.IntMin()/4, cfg.IntMax()/4
	}

	return &Source{n: cfg.ArraySize, cfg: sc}, nil
}

// Random reports whether the source draws from an RNG.
func (s *Source) Random() bool { return s.cfg.rng != nil }

// Ints returns the integer operand pair: IntPattern twice without an RNG,
// otherwise A then B drawn uniformly from the integer range.
// Complexity: O(n²).
func (s *Source) Ints() (a, b matrix.Square[int32]) {
	if s.cfg.rng == nil {
		return IntPattern(s.n), IntPattern(s.n)
	}
	return s.drawInt(), s.drawInt()
}

// Floats returns the float operand pair: FloatPattern with the configured
// diagonal offsets without an RNG, otherwise A then B drawn uniformly.
// Complexity: O(n²).
func (s *Source) Floats() (a, b matrix.Square[float32]) {
	if s.cfg.rng == nil {
		return FloatPattern(s.n, s.cfg.offsetA), FloatPattern(s.n, s.cfg.offsetB)
	}
	return s.drawFloat(), s.drawFloat()
}

func (s *Source) drawInt() matrix.Square[int32] {
	span := int(s.cfg.intHi) - int(s.cfg.intLo) + 1
	return fill(s.n, func(_, _ int) int32 {
		return s.cfg.intLo + int32(s.cfg.rng.Intn(span))
	})
}

func (s *Source) drawFloat() matrix.Square[float32] {
	span := s.cfg.floatHi - s.cfg.floatLo
	return fill(s.n, func(_, _ int) float32 {
		return s.cfg.floatLo + s.cfg.rng.Float32()*span
	})
}

// IntPattern is the deterministic integer stimulus:
// m[r][c] = r+1 on the diagonal, c-r above it, -(r-c) below it.
// Panics if n <= 0.
func IntPattern(n int) matrix.Square[int32] {
	return fill(n, func(r, c int) int32 {
		switch {
		case r == c:
			return int32(r + 1)
		case r < c:
			return int32(c - r)
		default:
			return -int32(r - c)
		}
	})
}

// FloatPattern is the deterministic float stimulus:
// m[r][c] = r+1.5+offset on the diagonal, c-r+0.5 above it, -(r-c+0.25) below it.
// Panics if n <= 0.
func FloatPattern(n int, offset float32) matrix.Square[float32] {
	return fill(n, func(r, c int) float32 {
		switch {
		case r == c:
			return float32(r) + 1.5 + offset
		case r < c:
			return float32(c-r) + 0.5
		default:
			return -(float32(r-c) + 0.25)
		}
	})
}

// fill builds an n×n matrix row-major from f. n must be positive; callers
// pass a validated array size.
func fill[T matrix.Scalar](n int, f func(r, c int) T) matrix.Square[T] {
	m, err := matrix.NewSquare[T](n)
	if err != nil {
		panic(fmt.Sprintf("stimulus: fill(%d): %v", n, err))
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			_ = m.Set(r, c, f(r, c))
		}
	}

	return m
}
