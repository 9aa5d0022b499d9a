// SPDX-License-Identifier: MIT
// Package: accel
//
// errors.go — sentinel errors for geometry configuration.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with accelErrorf at the call site, never baked
//     into the sentinel text.

package accel

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a geometry value outside its documented range
// (element width, array size, extra bits or the resulting accumulator width).
var ErrInvalidConfig = errors.New("accel: invalid configuration")

// ErrUnknownRounding indicates an unrecognized rounding mode name.
var ErrUnknownRounding = errors.New("accel: unknown rounding mode")

// ErrUnknownAccPolicy indicates an unrecognized accumulator policy name.
var ErrUnknownAccPolicy = errors.New("accel: unknown accumulator policy")

// accelErrorf wraps err with the method context and a formatted detail.
func accelErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
