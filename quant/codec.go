// SPDX-License-Identifier: MIT
// Package: quant
//
// codec.go — element-wise matrix codec over matrix.Square.

package quant

import (
	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/matrix"
)

// QuantizeMatrix quantizes every element of m with p. Shape-preserving.
// Time: O(n²).
func QuantizeMatrix(cfg accel.Config, m matrix.Square[float32], p Params) matrix.Square[int32] {
	return matrix.Map(m, func(v float32) int32 { return Quantize(cfg, v, p) })
}

// DequantizeMatrix maps every element of m back to float32 with p.
// Time: O(n²).
func DequantizeMatrix(m matrix.Square[int32], p Params) matrix.Square[float32] {
	return matrix.Map(m, func(q int32) float32 { return Dequantize(q, p) })
}

// CalibrateMatrix runs the range finder over m and calibrates on the result.
// Time: O(n²).
func CalibrateMatrix(cfg accel.Config, m matrix.Square[float32]) Params {
	lo, hi := matrix.Range(m)
	return Calibrate(cfg, lo, hi)
}

// SaturateMatrix clamps an integer matrix into the element domain of cfg,
// used when integer stimuli bypass calibration.
// Time: O(n²).
func SaturateMatrix[T ~int8 | ~int16 | ~int32 | ~int64](cfg accel.Config, m matrix.Square[T]) matrix.Square[int32] {
	return matrix.Map(m, func(v T) int32 { return Saturate(cfg, int64(v)) })
}
