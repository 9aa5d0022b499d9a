// SPDX-License-Identifier: MIT
// Package: quant
//
// scalar.go — single-value quantizer and dequantizer.

package quant

import (
	"math"

	"github.com/katalvlaran/systolic/accel"
)

// Quantize maps v into the signed cfg.ElementWidth-bit domain:
//
//	q = saturate(round(v / p.Scale) + p.ZeroPoint, IntMin, IntMax)
//
// The division is done in float32, as single-precision hardware does, and the
// rounding follows cfg.Rounding. Out-of-range values clamp to IntMin/IntMax,
// ±Inf saturate, NaN maps to ZeroPoint. Never fails.
// Complexity: O(1).
func Quantize(cfg accel.Config, v float32, p Params) int32 {
	scaled := float64(v / p.Scale)
	if math.IsNaN(scaled) {
		return saturate(cfg, float64(p.ZeroPoint))
	}

	return saturate(cfg, cfg.Rounding.Apply(scaled)+float64(p.ZeroPoint))
}

// Dequantize maps an element back to float32: (q - ZeroPoint) * Scale.
// Complexity: O(1).
func Dequantize(q int32, p Params) float32 {
	return float32(q-p.ZeroPoint) * p.Scale
}

// Saturate clamps an integer into [IntMin, IntMax] for cfg.
func Saturate(cfg accel.Config, v int64) int32 {
	lo, hi := int64(cfg.IntMin()), int64(cfg.IntMax())
	switch {
	case v < lo:
		return int32(lo)
	case v > hi:
		return int32(hi)
	}
	return int32(v)
}

// saturate clamps in float64 before narrowing, so the conversion is always
// in range (±Inf included).
func saturate(cfg accel.Config, r float64) int32 {
	lo, hi := float64(cfg.IntMin()), float64(cfg.IntMax())
	switch {
	case r < lo:
		return cfg.IntMin()
	case r > hi:
		return cfg.IntMax()
	}
	return int32(r)
}
