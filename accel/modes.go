// SPDX-License-Identifier: MIT
// Package: accel
//
// modes.go — enumerations for the two hardware-parity knobs: how a scaled
// float is rounded into the integer domain, and whether the configured
// accumulator width is enforced.

package accel

import (
	"math"
	"strings"
)

// Rounding selects how value/scale is rounded before saturation.
type Rounding int

const (
	// RoundHalfAwayFromZero rounds ties away from zero (C's round()). Default.
	RoundHalfAwayFromZero Rounding = iota
	// RoundHalfToEven rounds ties to the nearest even integer (banker's rounding).
	RoundHalfToEven
	// RoundTowardZero truncates the fractional part.
	RoundTowardZero
)

var roundingNames = [...]string{
	RoundHalfAwayFromZero: "half-away",
	RoundHalfToEven:       "half-even",
	RoundTowardZero:       "toward-zero",
}

// String returns the canonical flag spelling of r.
func (r Rounding) String() string {
	if r < 0 || int(r) >= len(roundingNames) {
		return "Rounding(?)"
	}
	return roundingNames[r]
}

// Valid reports whether r is one of the declared modes.
func (r Rounding) Valid() bool {
	return r >= 0 && int(r) < len(roundingNames)
}

// Apply rounds x according to r.
// Complexity: O(1).
func (r Rounding) Apply(x float64) float64 {
	switch r {
	case RoundHalfToEven:
		return math.RoundToEven(x)
	case RoundTowardZero:
		return math.Trunc(x)
	default:
		return math.Round(x)
	}
}

// ParseRounding maps a flag spelling (case-insensitive) onto a Rounding.
func ParseRounding(s string) (Rounding, error) {
	for i, name := range roundingNames {
		if strings.EqualFold(s, name) {
			return Rounding(i), nil
		}
	}
	return 0, accelErrorf("ParseRounding", ErrUnknownRounding, "%q", s)
}

// AccPolicy selects how GEMM treats the configured accumulator width.
type AccPolicy int

const (
	// AccAdvisory computes in a wide native integer; the width is only reported.
	AccAdvisory AccPolicy = iota
	// AccWrap wraps every partial sum two's-complement into the configured width.
	AccWrap
	// AccSaturate clamps every partial sum to the configured width bounds.
	AccSaturate
	// AccStrict fails the multiply on the first partial sum that does not fit.
	AccStrict
)

var accPolicyNames = [...]string{
	AccAdvisory: "advisory",
	AccWrap:     "wrap",
	AccSaturate: "saturate",
	AccStrict:   "strict",
}

// String returns the canonical flag spelling of p.
func (p AccPolicy) String() string {
	if p < 0 || int(p) >= len(accPolicyNames) {
		return "AccPolicy(?)"
	}
	return accPolicyNames[p]
}

// Valid reports whether p is one of the declared policies.
func (p AccPolicy) Valid() bool {
	return p >= 0 && int(p) < len(accPolicyNames)
}

// ParseAccPolicy maps a flag spelling (case-insensitive) onto an AccPolicy.
func ParseAccPolicy(s string) (AccPolicy, error) {
	for i, name := range accPolicyNames {
		if strings.EqualFold(s, name) {
			return AccPolicy(i), nil
		}
	}
	return 0, accelErrorf("ParseAccPolicy", ErrUnknownAccPolicy, "%q", s)
}

// RoundingNames lists the accepted Rounding spellings in declaration order.
func RoundingNames() []string { return append([]string(nil), roundingNames[:]...) }

// AccPolicyNames lists the accepted AccPolicy spellings in declaration order.
func AccPolicyNames() []string { return append([]string(nil), accPolicyNames[:]...) }
