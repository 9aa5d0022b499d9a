// SPDX-License-Identifier: MIT

// Package selfcheck is the quantization verification testbench: a fixed set
// of named checks run against the quant package for a given geometry, each
// reporting PASS or FAIL with a reason.
//
// The same properties are pinned by the quant package's unit tests; this
// package exists so that a built binary can verify itself on the target
// host (see the quantcheck command).
package selfcheck
