// SPDX-License-Identifier: MIT
// Package: quant
//
// errors.go — sentinel errors for the quant package. The numeric functions
// themselves never fail; these cover checked entry points only.

package quant

import (
	"errors"
	"fmt"
)

// ErrNonFinite indicates a NaN or ±Inf calibration bound.
var ErrNonFinite = errors.New("quant: non-finite calibration range")

// ErrInvalidParams indicates a Params value that violates scale > 0, finite,
// zero point == 0.
var ErrInvalidParams = errors.New("quant: invalid quantization parameters")

func quantErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
