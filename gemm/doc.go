// SPDX-License-Identifier: MIT

// Package gemm is the fixed-point matrix-multiply engine of the golden model:
// the bit-exact software analogue of the systolic array's multiply-accumulate.
//
//	C[i][j] = Σ_k A[i][k] * B[k][j]
//
// Partial sums are accumulated in k order, never rounded, in an int64
// register. What happens at the configured accumulator width is selected by
// accel.AccPolicy:
//
//   - AccAdvisory: nothing; the width is only reported.
//   - AccWrap:     each partial sum wraps two's-complement to the width.
//   - AccSaturate: each partial sum clamps to the width bounds.
//   - AccStrict:   the first partial sum that does not fit fails the call
//     with ErrAccumulatorOverflow.
//
// MulFloat is the float32 reference path used only for comparison.
package gemm
