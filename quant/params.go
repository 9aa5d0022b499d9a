// SPDX-License-Identifier: MIT
// Package: quant
//
// params.go — quantization parameters and the symmetric calibrator.

package quant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systolic/accel"
)

// DegenerateRange is the |max| below which a range is treated as all-zero
// and mapped to Scale = 1.
const DegenerateRange = 1e-8

// Params holds symmetric quantization parameters.
// Invariant: Scale > 0 and finite; ZeroPoint == 0.
type Params struct {
	Scale     float32
	ZeroPoint int32
}

// Unit is the identity mapping (scale 1, zero point 0).
var Unit = Params{Scale: 1, ZeroPoint: 0}

// Validate checks the Params invariant.
func (p Params) Validate() error {
	s := float64(p.Scale)
	if math.IsNaN(s) || math.IsInf(s, 0) || p.Scale <= 0 {
		return quantErrorf("Params.Validate", ErrInvalidParams, "scale %v", p.Scale)
	}
	if p.ZeroPoint != 0 {
		return quantErrorf("Params.Validate", ErrInvalidParams, "zero point %d", p.ZeroPoint)
	}

	return nil
}

// String renders the parameters the way the reports print them.
func (p Params) String() string {
	return fmt.Sprintf("scale=%g, zero_point=%d", p.Scale, p.ZeroPoint)
}

// Calibrate computes symmetric Params for the observed range [minVal, maxVal].
// It does not assume minVal <= maxVal; only max(|minVal|, |maxVal|) matters.
// A degenerate range (absMax < 1e-8) and a non-finite bound both yield Unit,
// so the returned scale is always positive and finite.
// Complexity: O(1).
func Calibrate(cfg accel.Config, minVal, maxVal float32) Params {
	absMax := max(abs32(minVal), abs32(maxVal))
	if !isFinite32(absMax) || absMax < DegenerateRange {
		return Unit
	}

	return Params{Scale: absMax / float32(cfg.IntMax()), ZeroPoint: 0}
}

// CalibrateChecked is Calibrate that reports non-finite bounds as
// ErrNonFinite instead of falling back to Unit.
func CalibrateChecked(cfg accel.Config, minVal, maxVal float32) (Params, error) {
	if !isFinite32(minVal) || !isFinite32(maxVal) {
		return Unit, quantErrorf("CalibrateChecked", ErrNonFinite, "[%v, %v]", minVal, maxVal)
	}

	return Calibrate(cfg, minVal, maxVal), nil
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func isFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
