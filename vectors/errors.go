// SPDX-License-Identifier: MIT
// Package: vectors
//
// errors.go — sentinel errors for the vector sink and reader.

package vectors

import (
	"errors"
	"fmt"
)

var (
	// ErrSinkOpen indicates that the output file (or its parent directory)
	// could not be created.
	ErrSinkOpen = errors.New("vectors: cannot open vector sink")

	// ErrMalformedVector indicates a line that is not a hex value of the
	// expected width, or a file with the wrong number of values.
	ErrMalformedVector = errors.New("vectors: malformed vector file")
)

// vectorsErrorf wraps err with the method tag.
func vectorsErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// lineErrorf wraps ErrMalformedVector with the 1-based line number.
func lineErrorf(method string, line int, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", method, line, fmt.Sprintf(format, args...), ErrMalformedVector)
}
