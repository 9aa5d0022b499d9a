// SPDX-License-Identifier: MIT

// Package quant implements symmetric linear quantization between float32
// tensors and the accelerator's signed fixed-point element domain.
//
// # Calibration
//
// Calibrate derives Params from an observed range:
//
//	absMax = max(|min|, |max|)
//	scale  = absMax / IntMax        (scale = 1 when absMax < 1e-8)
//	zero   = 0                      (always; no affine calibration)
//
// # Quantization
//
//	q = saturate(round(v / scale) + zero, IntMin, IntMax)
//	v' = float32(q - zero) * scale
//
// Saturation is silent and total: every float32 input, including ±Inf and
// NaN, maps to a representable element. Rounding follows cfg.Rounding
// (round-half-away-from-zero by default).
//
// # Matrix codec
//
// QuantizeMatrix, DequantizeMatrix and CalibrateMatrix apply the scalar
// functions element-wise over matrix.Square values.
package quant
