// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating dimension guards here.
//
// Note:
//  - Validators are pure, allocate nothing and return wrapped sentinels.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b are both N×N for the same N > 0.
// Complexity: O(1).
func ValidateSameShape[T, U Scalar](a Square[T], b Square[U]) error {
	if a.n == 0 || b.n == 0 {
		return validatorErrorf("ValidateSameShape", ErrInvalidDimensions)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSize ensures m is exactly n×n (n is usually the configured array size).
// Complexity: O(1).
func ValidateSize[T Scalar](m Square[T], n int) error {
	if m.n == 0 {
		return validatorErrorf("ValidateSize", ErrInvalidDimensions)
	}
	if m.n != n {
		return validatorErrorf(fmt.Sprintf("ValidateSize: got %d, want %d", m.n, n), ErrDimensionMismatch)
	}

	return nil
}
