// SPDX-License-Identifier: MIT

// Package systolic is the software golden model of a small systolic-array
// matrix-multiply accelerator with int8 (or any 2..16 bit) symmetric
// quantization.
//
// 🚀 What is in the box?
//
//	• accel      - geometry: element width, array size N, guard bits, rounding
//	               mode, accumulator policy and the accumulator width calculator
//	• matrix     - generic N×N row-major Square[T], range finder, stream order
//	• quant      - symmetric calibration, quantize/dequantize, saturation
//	• gemm       - width-aware integer GEMM and the float reference
//	• activation - ReLU for integer and float matrices
//	• stream     - the column-by-column feed the array consumes
//	• stimulus   - fixed patterns and seeded random operands
//	• vectors    - hex test-vector writer/reader for the RTL testbench
//	• pipeline   - calibrate → quantize → multiply → activate → stream
//	• report     - human-readable tables of every intermediate
//	• selfcheck  - the quantization verification testbench
//
// The cmd/systolic binary wires them together (demo, vectors, quantcheck,
// hostinfo).
//
// ✨ Guarantees
//
//   - Bit-exact: integer products never round; every run with the same seed
//     yields the same vectors.
//   - Total numeric core: saturation instead of overflow, NaN maps to 0;
//     only shape preconditions and the strict accumulator policy return errors.
//   - Value semantics: stages never modify their inputs.
//
// Quick start:
//
//	cfg := accel.Default()
//	res, err := pipeline.RunFloat(cfg, stimulus.FloatPattern(4, 0), stimulus.FloatPattern(4, 1))
//	if err != nil { … }
//	_ = vectors.WriteFile(vectors.DefaultPath, cfg, res.A, res.B, res.Raw)
package systolic
