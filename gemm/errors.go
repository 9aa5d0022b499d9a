// SPDX-License-Identifier: MIT
// Package: gemm
//
// errors.go — sentinel errors for the GEMM engine.

package gemm

import (
	"errors"
	"fmt"
)

// ErrAccumulatorOverflow indicates that a partial sum exceeded the configured
// accumulator width under accel.AccStrict.
var ErrAccumulatorOverflow = errors.New("gemm: accumulator overflow")

// gemmErrorf wraps err with the method tag.
func gemmErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// cellErrorf wraps err with the output cell and partial-sum step.
func cellErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("%s: C[%d][%d] after k=%d: %w", method, i, j, k, err)
}
