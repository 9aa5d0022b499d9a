// SPDX-License-Identifier: MIT

// Package activation implements the post-accumulation activation stage of the
// accelerator pipeline.
package activation

import "github.com/katalvlaran/systolic/matrix"

// ReLU returns out[i,j] = max(0, m[i,j]). Only the lower bound is clipped;
// values above zero pass through unchanged at whatever magnitude the
// accumulator holds. Applies equally to int64 products and float32
// references. Idempotent: ReLU(ReLU(m)) == ReLU(m).
// Time: O(n²).
func ReLU[T matrix.Scalar](m matrix.Square[T]) matrix.Square[T] {
	return matrix.Map(m, relu[T])
}

func relu[T matrix.Scalar](v T) T {
	if v < 0 {
		return 0
	}
	return v
}
