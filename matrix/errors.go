// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels wrapped with method context and
// tests check them via errors.Is. No function panics on caller-supplied shapes.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Context is attached with matrixErrorf / squareErrorf; callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested dimension is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different N, or a matrix whose
	// N differs from the configured array size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals row slices that do not form an N×N grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)

// matrixErrorf wraps err with a function tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// squareErrorf wraps an error with Square method context and callsite indices.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}
