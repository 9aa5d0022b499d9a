// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly N×N row-major buffer with the index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed so every derived sequence is deterministic.
//
// Value semantics:
//   - Square is a small struct holding a slice; pipeline stages never write
//     into their inputs. They allocate a new Square (or Clone one) and return it.
//
// Complexity quicksheet:
//   - NewSquare: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Rows: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Scalar is the element constraint: bounded signed integers or floats.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Square is an N×N row-major matrix.
//   - n holds the dimension.
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Square[T Scalar] struct {
	n    int
	data []T
}

// NewSquare allocates a zeroed n×n matrix.
// Stage 1 (Validate): n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewSquare[T Scalar](n int) (Square[T], error) {
	if n <= 0 {
		return Square[T]{}, matrixErrorf("NewSquare", ErrInvalidDimensions)
	}

	return Square[T]{n: n, data: make([]T, n*n)}, nil
}

// FromRows copies a [][]T grid into a new Square.
// Errors: ErrInvalidDimensions for an empty grid, ErrNonSquare when any row
// length differs from the number of rows.
// Complexity: O(n²).
func FromRows[T Scalar](rows [][]T) (Square[T], error) {
	n := len(rows)
	if n == 0 {
		return Square[T]{}, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	if _, bad := lo.Find(rows, func(r []T) bool { return len(r) != n }); bad {
		return Square[T]{}, matrixErrorf("FromRows", ErrNonSquare)
	}

	return Square[T]{n: n, data: lo.Flatten(rows)}, nil
}

// MustFromRows is FromRows for literals in tests and fixtures; it panics on
// a malformed grid.
func MustFromRows[T Scalar](rows [][]T) Square[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity[T Scalar](n int) (Square[T], error) {
	m, err := NewSquare[T](n)
	if err != nil {
		return Square[T]{}, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// N returns the dimension of the matrix (0 for the zero value).
func (m Square[T]) N() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m Square[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, squareErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m Square[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). Used by constructors and fixtures; pipeline
// stages write into their own freshly allocated outputs only.
// Complexity: O(1).
func (m Square[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n²).
func (m Square[T]) Clone() Square[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return Square[T]{n: m.n, data: cp}
}

// Rows returns a copy of the matrix as a [][]T grid.
// Complexity: O(n²).
func (m Square[T]) Rows() [][]T {
	if m.n == 0 {
		return nil
	}
	return lo.Chunk(m.Clone().data, m.n)
}

// Equal reports whether a and b have the same dimension and elements.
func (m Square[T]) Equal(o Square[T]) bool {
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
// Complexity: O(n²).
func (m Square[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.n
		for j := 0; j < m.n; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
