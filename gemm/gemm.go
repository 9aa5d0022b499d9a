// SPDX-License-Identifier: MIT
// Package: gemm
//
// gemm.go — integer and float reference matrix products.
//
// Determinism:
//   - Fixed i→j→k loop order; each C[i][j] is one chain of partial sums,
//     exactly what one processing element accumulates.

package gemm

import (
	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/matrix"
)

// Cell identifies an output element whose accumulation left the configured
// accumulator range, with the first offending partial sum.
type Cell struct {
	Row, Col int
	Step     int   // k at which the partial sum first left the range
	Partial  int64 // that partial sum, computed at full precision
}

// Mul computes the exact integer product C = A × B.
// Stage 1 (Validate): both operands are cfg.ArraySize × cfg.ArraySize.
// Stage 2 (Execute): i→j→k multiply-accumulate with the cfg.AccPolicy
// applied after every partial sum.
// Errors: matrix.ErrDimensionMismatch / ErrInvalidDimensions for bad shapes;
// ErrAccumulatorOverflow under AccStrict.
// Complexity: O(n³) time, O(n²) space.
func Mul(cfg accel.Config, a, b matrix.Square[int32]) (matrix.Square[int64], error) {
	if err := validateOperands(cfg, a, b); err != nil {
		return matrix.Square[int64]{}, gemmErrorf("Mul", err)
	}

	n := cfg.ArraySize
	out, err := matrix.NewSquare[int64](n)
	if err != nil {
		return matrix.Square[int64]{}, gemmErrorf("Mul", err)
	}
	ar, br := a.Rows(), b.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc int64
			for k := 0; k < n; k++ {
				acc += int64(ar[i][k]) * int64(br[k][j])
				switch cfg.AccPolicy {
				case accel.AccWrap:
					acc = cfg.WrapAcc(acc)
				case accel.AccSaturate:
					acc = cfg.SaturateAcc(acc)
				case accel.AccStrict:
					if !cfg.FitsAcc(acc) {
						return matrix.Square[int64]{}, cellErrorf("Mul", i, j, k, ErrAccumulatorOverflow)
					}
				}
			}
			_ = out.Set(i, j, acc)
		}
	}

	return out, nil
}

// Overflows reports, in row-major order, every output cell whose
// full-precision partial sums leave the configured accumulator range. It is
// the diagnostic behind the advisory policy: an empty result means the
// configured width is sufficient for these operands.
// Complexity: O(n³).
func Overflows(cfg accel.Config, a, b matrix.Square[int32]) ([]Cell, error) {
	if err := validateOperands(cfg, a, b); err != nil {
		return nil, gemmErrorf("Overflows", err)
	}

	n := cfg.ArraySize
	ar, br := a.Rows(), b.Rows()
	var cells []Cell
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc int64
			for k := 0; k < n; k++ {
				acc += int64(ar[i][k]) * int64(br[k][j])
				if !cfg.FitsAcc(acc) {
					cells = append(cells, Cell{Row: i, Col: j, Step: k, Partial: acc})
					break
				}
			}
		}
	}

	return cells, nil
}

// MulFloat computes the float32 reference product, accumulating in k order.
// Errors: shape sentinels from the matrix package.
// Complexity: O(n³).
func MulFloat(a, b matrix.Square[float32]) (matrix.Square[float32], error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return matrix.Square[float32]{}, gemmErrorf("MulFloat", err)
	}

	n := a.N()
	out, err := matrix.NewSquare[float32](n)
	if err != nil {
		return matrix.Square[float32]{}, gemmErrorf("MulFloat", err)
	}
	ar, br := a.Rows(), b.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for k := 0; k < n; k++ {
				sum += ar[i][k] * br[k][j]
			}
			_ = out.Set(i, j, sum)
		}
	}

	return out, nil
}

// validateOperands checks both operands against the configured array size.
func validateOperands(cfg accel.Config, a, b matrix.Square[int32]) error {
	if err := matrix.ValidateSize(a, cfg.ArraySize); err != nil {
		return err
	}
	return matrix.ValidateSize(b, cfg.ArraySize)
}
