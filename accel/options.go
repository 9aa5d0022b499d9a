// SPDX-License-Identifier: MIT
// Package: accel
//
// options.go — functional options for Config.
//
// Contract:
//   • Options are functional (type Option func(*Config)), applied in order,
//     last one wins.
//   • Enum options (rounding, accumulator policy) PANIC on undeclared values:
//     those can only come from programmer error, flags are parsed first.
//   • Numeric options only record the value; New validates the resolved
//     Config as a whole and reports ErrInvalidConfig, since widths and sizes
//     usually come straight from user input.

package accel

// Reference geometry (single source of truth for defaults).
const (
	// DefaultElementWidth is the signed element width in bits.
	DefaultElementWidth = 8
	// DefaultArraySize is the systolic array dimension N.
	DefaultArraySize = 4
	// DefaultExtraBits is the headroom added on top of the minimum accumulator width.
	DefaultExtraBits = 4
	// DefaultRounding matches C's round(): ties away from zero.
	DefaultRounding = RoundHalfAwayFromZero
	// DefaultAccPolicy keeps the accumulator width advisory.
	DefaultAccPolicy = AccAdvisory
)

// Accepted ranges.
const (
	// MinElementWidth keeps the width formula meaningful (one sign bit + one magnitude bit).
	MinElementWidth = 2
	// MaxElementWidth keeps elements inside int32 storage and products inside int64.
	MaxElementWidth = 16
	// MinArraySize is the smallest array dimension.
	MinArraySize = 1
	// MaxAccWidth is the widest accumulator the int64 engine can model.
	MaxAccWidth = 64
)

const (
	panicRoundingInvalid  = "accel: WithRounding: undeclared rounding mode"
	panicAccPolicyInvalid = "accel: WithAccPolicy: undeclared accumulator policy"
)

// Option mutates a Config before validation.
type Option func(*Config)

// WithElementWidth sets the signed element width in bits.
func WithElementWidth(bits int) Option {
	return func(c *Config) { c.ElementWidth = bits }
}

// WithArraySize sets the array dimension N.
func WithArraySize(n int) Option {
	return func(c *Config) { c.ArraySize = n }
}

// WithExtraBits sets the guard bits added to the required accumulator width.
func WithExtraBits(bits int) Option {
	return func(c *Config) { c.ExtraBits = bits }
}

// WithRounding sets the float→int rounding mode. Panics on undeclared modes.
func WithRounding(r Rounding) Option {
	if !r.Valid() {
		panic(panicRoundingInvalid)
	}
	return func(c *Config) { c.Rounding = r }
}

// WithAccPolicy sets the accumulator enforcement policy. Panics on undeclared policies.
func WithAccPolicy(p AccPolicy) Option {
	if !p.Valid() {
		panic(panicAccPolicyInvalid)
	}
	return func(c *Config) { c.AccPolicy = p }
}
