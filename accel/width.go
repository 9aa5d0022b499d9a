// SPDX-License-Identifier: MIT
// Package: accel
//
// width.go — accumulator width calculator and width-bounded integer helpers.

package accel

import "math"

// AccumulatorWidth pairs the minimum overflow-free accumulator width with the
// configured width (minimum plus caller-chosen guard bits).
// Invariant: Configured >= Required.
type AccumulatorWidth struct {
	Required   int // 2*w + ceil(log2(N))
	Configured int // Required + ExtraBits
}

// MinAccWidth returns the minimum accumulator width, in bits, that holds the
// worst-case sum of arraySize products of two elementWidth-bit signed values.
//
//	multiplicand bits = 2*elementWidth
//	guard bits        = number of halvings of arraySize-1 down to 0
//
// MinAccWidth(8, 4) == 18, MinAccWidth(8, 1) == 16.
// Complexity: O(log arraySize).
func MinAccWidth(elementWidth, arraySize int) int {
	multiplicand := 2 * elementWidth
	guard := 0
	for partial := arraySize - 1; partial > 0; partial >>= 1 {
		guard++
	}

	return multiplicand + guard
}

// AccWidth returns the required and configured accumulator widths for c.
func (c Config) AccWidth() AccumulatorWidth {
	req := MinAccWidth(c.ElementWidth, c.ArraySize)
	return AccumulatorWidth{Required: req, Configured: req + c.ExtraBits}
}

// AccBounds returns the inclusive signed range of the configured accumulator.
func (c Config) AccBounds() (lo, hi int64) {
	return signedBounds(c.AccWidth().Configured)
}

// FitsAcc reports whether v is representable in the configured accumulator.
func (c Config) FitsAcc(v int64) bool {
	lo, hi := c.AccBounds()
	return v >= lo && v <= hi
}

// WrapAcc reduces v two's-complement into the configured accumulator width,
// the way an under-provisioned hardware register would.
func (c Config) WrapAcc(v int64) int64 {
	w := c.AccWidth().Configured
	if w >= 64 {
		return v
	}
	shift := uint(64 - w)
	// Shift the sign bit of the narrow field into bit 63, then back.
	return (v << shift) >> shift
}

// SaturateAcc clamps v into the configured accumulator range.
func (c Config) SaturateAcc(v int64) int64 {
	lo, hi := c.AccBounds()
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func signedBounds(bits int) (lo, hi int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	hi = int64(1)<<(bits-1) - 1
	return -hi - 1, hi
}
