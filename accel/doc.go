// SPDX-License-Identifier: MIT

// Package accel describes the geometry of the modelled systolic array: the
// signed element bit width, the array dimension N, the guard bits added on
// top of the minimum accumulator width, the float→int rounding mode and the
// accumulator enforcement policy.
//
// Every numeric package (quant, gemm, vectors, stimulus) takes a Config by
// value instead of reading package constants, so the model can be
// re-parametrized for other accelerator geometries at run time.
//
// Accumulator sizing:
//
//	required   = 2*ElementWidth + ceil(log2(ArraySize))
//	configured = required + ExtraBits
//
// For the default geometry (8-bit elements, 4×4 array) required is 18
// bits; with the default 4 extra bits the configured width is 22.
package accel
