// SPDX-License-Identifier: MIT

// Package vectors writes and reads the hex test-vector file consumed by the
// hardware testbench.
//
// File layout (one value per line, lowercase hex, no padding, no prefix):
//
//	N² lines  A in row-major order, each masked to the element width
//	N² lines  B in row-major order, each masked to the element width
//	N² lines  golden product in row-major order, masked to 32 bits
//
// With the default 8-bit elements a value of -1 is written as "ff", and a
// golden value of -13 as "fffffff3". Read reverses the masking: A and B are
// sign-extended from the element width, the golden entries are reinterpreted
// as int32. The golden mask is fixed at 32 bits regardless of the configured
// accumulator width because that is the width of the testbench's result bus.
package vectors
