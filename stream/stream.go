// SPDX-License-Identifier: MIT

// Package stream models how operands are presented to the systolic array.
//
// The array consumes one beat per cycle: on cycle k the testbench drives
// column k of A on a_stream and row k of B on b_stream. After N beats every
// processing element (i,j) has accumulated Σ_k A[i][k]*B[k][j].
//
// The row-major linearization used by vector files lives in
// matrix.StreamOrder; this package derives the per-cycle feed from it.
package stream

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/systolic/matrix"
)

// Beat is the pair of lane vectors driven on one cycle.
type Beat[T matrix.Scalar] struct {
	Cycle int
	A     []T // A(:,Cycle), top to bottom
	B     []T // B(Cycle,:), left to right
}

// Schedule returns the N beats that feed a×b into the array, in cycle order.
// Errors: shape sentinels from the matrix package when a and b differ in N.
// Complexity: O(n²).
func Schedule[T matrix.Scalar](a, b matrix.Square[T]) ([]Beat[T], error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Schedule: %w", err)
	}

	// Column k of A is row k of Aᵀ; both operands are read out of their
	// row-major stream so the beat contents match the vector files exactly.
	n := a.N()
	aRows := lo.Chunk(matrix.StreamOrder(a), n)
	bRows := lo.Chunk(matrix.StreamOrder(b), n)

	return lo.Times(n, func(k int) Beat[T] {
		col := lo.Map(aRows, func(row []T, _ int) T { return row[k] })
		return Beat[T]{Cycle: k, A: col, B: bRows[k]}
	}), nil
}

// Accumulate replays beats through an ideal N×N array of accumulators
// (wide, no width policy) and returns the resulting product. It is the
// outer-product formulation of the same GEMM and is used to check that a
// schedule is complete and correctly ordered.
// Complexity: O(n³).
func Accumulate[T matrix.Scalar](beats []Beat[T]) (matrix.Square[T], error) {
	n := len(beats)
	out, err := matrix.NewSquare[T](n)
	if err != nil {
		return matrix.Square[T]{}, fmt.Errorf("Accumulate: %w", err)
	}
	acc := make([]T, n*n)
	for _, beat := range beats {
		if len(beat.A) != n || len(beat.B) != n {
			return matrix.Square[T]{}, fmt.Errorf("Accumulate: cycle %d: %w", beat.Cycle, matrix.ErrDimensionMismatch)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				acc[i*n+j] += beat.A[i] * beat.B[j]
			}
		}
	}
	for idx, v := range acc {
		_ = out.Set(idx/n, idx%n, v)
	}

	return out, nil
}
