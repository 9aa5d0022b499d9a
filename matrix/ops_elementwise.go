// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels shared by the quantization codec and activation
//     stage, plus the range finder and the row-major stream order.
//
// Determinism & Performance:
//   - Fixed loop order: flat 0..n²-1, which is row-major i→j.
//   - Each kernel allocates exactly one output; inputs are never written.

package matrix

// Map returns out[i,j] = f(m[i,j]) with the same dimension.
// Time: O(n²). Space: O(n²).
func Map[T, U Scalar](m Square[T], f func(T) U) Square[U] {
	out := Square[U]{n: m.n, data: make([]U, len(m.data))}
	for i, v := range m.data {
		out.data[i] = f(v)
	}

	return out
}

// Range scans every element and returns the minimum and maximum, both
// initialized from m[0,0]. The zero-value Square yields (0, 0).
// Time: O(n²). Space: O(1).
func Range[T Scalar](m Square[T]) (lo, hi T) {
	if len(m.data) == 0 {
		return lo, hi
	}
	lo, hi = m.data[0], m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// StreamOrder flattens m in row-major order: row 0 left to right, then row 1,
// and so on. Element k*N+j is m[k,j]. This is the exact order a hardware
// testbench replays, so it must never change.
// The returned slice is freshly allocated.
// Time: O(n²). Space: O(n²).
func StreamOrder[T Scalar](m Square[T]) []T {
	out := make([]T, 0, len(m.data))
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for j := 0; j < m.n; j++ {
			out = append(out, m.data[base+j])
		}
	}

	return out
}

// Column returns a copy of column j (top to bottom).
// Errors: ErrOutOfRange.
func Column[T Scalar](m Square[T], j int) ([]T, error) {
	if j < 0 || j >= m.n {
		return nil, squareErrorf("Column", 0, j, ErrOutOfRange)
	}
	out := make([]T, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.data[i*m.n+j]
	}

	return out, nil
}

// Row returns a copy of row i (left to right).
// Errors: ErrOutOfRange.
func Row[T Scalar](m Square[T], i int) ([]T, error) {
	if i < 0 || i >= m.n {
		return nil, squareErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}
