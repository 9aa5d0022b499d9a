// SPDX-License-Identifier: MIT
// Package: accel
//
// config.go — the resolved accelerator geometry.
//
// Design:
//   • Config is a small value type passed by value to every stage; there are
//     no package-level knobs.
//   • Default() is the default geometry; New(opts...) starts from it,
//     applies options in order and validates the result.

package accel

// Config is the resolved geometry of the modelled accelerator.
type Config struct {
	ElementWidth int       // signed element width in bits, [MinElementWidth, MaxElementWidth]
	ArraySize    int       // array dimension N, >= MinArraySize
	ExtraBits    int       // guard bits on top of MinAccWidth, >= 0
	Rounding     Rounding  // float→int rounding
	AccPolicy    AccPolicy // accumulator width enforcement
}

// Default returns the default geometry: 8-bit elements, 4×4 array,
// 4 extra accumulator bits, round-half-away-from-zero, advisory accumulator.
func Default() Config {
	return Config{
		ElementWidth: DefaultElementWidth,
		ArraySize:    DefaultArraySize,
		ExtraBits:    DefaultExtraBits,
		Rounding:     DefaultRounding,
		AccPolicy:    DefaultAccPolicy,
	}
}

// New resolves opts on top of Default and validates the result.
// Complexity: O(len(opts)).
func New(opts ...Option) (Config, error) {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every documented range. Order: element width → array size
// → extra bits → enums → resulting accumulator width.
func (c Config) Validate() error {
	if c.ElementWidth < MinElementWidth || c.ElementWidth > MaxElementWidth {
		return accelErrorf("Validate", ErrInvalidConfig,
			"element width %d outside [%d,%d]", c.ElementWidth, MinElementWidth, MaxElementWidth)
	}
	if c.ArraySize < MinArraySize {
		return accelErrorf("Validate", ErrInvalidConfig, "array size %d < %d", c.ArraySize, MinArraySize)
	}
	if c.ExtraBits < 0 {
		return accelErrorf("Validate", ErrInvalidConfig, "extra bits %d < 0", c.ExtraBits)
	}
	if !c.Rounding.Valid() {
		return accelErrorf("Validate", ErrUnknownRounding, "%d", int(c.Rounding))
	}
	if !c.AccPolicy.Valid() {
		return accelErrorf("Validate", ErrUnknownAccPolicy, "%d", int(c.AccPolicy))
	}
	if w := c.AccWidth().Configured; w > MaxAccWidth {
		return accelErrorf("Validate", ErrInvalidConfig, "configured accumulator width %d > %d", w, MaxAccWidth)
	}

	return nil
}

// IntMax is the largest representable element, 2^(w-1)-1.
func (c Config) IntMax() int32 {
	return int32(1)<<(c.ElementWidth-1) - 1
}

// IntMin is the smallest representable element, -2^(w-1).
func (c Config) IntMin() int32 {
	return -(int32(1) << (c.ElementWidth - 1))
}

// ElementMask keeps the low ElementWidth bits of a two's-complement element.
func (c Config) ElementMask() uint32 {
	return uint32(1)<<c.ElementWidth - 1
}

// Elements returns the number of cells in one N×N matrix.
func (c Config) Elements() int {
	return c.ArraySize * c.ArraySize
}
