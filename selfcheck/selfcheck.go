// SPDX-License-Identifier: MIT
// Package: selfcheck
//
// selfcheck.go — check registry, runner and summary.

package selfcheck

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/quant"
)

// Check names, in run order.
const (
	NameSymmetric      = "symmetric_quantization"
	NameRangeClipping  = "range_clipping"
	NameZero           = "zero_preservation"
	NameScaling        = "scaling"
	NameReconstruction = "reconstruction_accuracy"
	NameEdgeCases      = "edge_cases"
	NameConsistency    = "consistency"
)

const (
	// Tolerance bounds float comparisons that should be exact up to rounding.
	Tolerance = 1e-5

	// ReconstructionSlack is added to Scale/2 in the reconstruction check to
	// absorb float32 rounding of v/scale and q·scale.
	ReconstructionSlack = 1e-4

	// ReconstructionSeed and ReconstructionSamples fix the sampled inputs.
	ReconstructionSeed    = 42
	ReconstructionSamples = 1000
)

// Result is the outcome of one check. Message is empty on success.
type Result struct {
	Name    string
	Passed  bool
	Message string
}

type check struct {
	name string
	run  func(cfg accel.Config) error
}

var registry = []check{
	{NameSymmetric, checkSymmetric},
	{NameRangeClipping, checkRangeClipping},
	{NameZero, checkZeroPreservation},
	{NameScaling, checkScaling},
	{NameReconstruction, checkReconstruction},
	{NameEdgeCases, checkEdgeCases},
	{NameConsistency, checkConsistency},
}

// Names returns the check names in run order.
func Names() []string {
	return lo.Map(registry, func(c check, _ int) string { return c.name })
}

// Run executes every check against cfg.
// Errors: accel.ErrInvalidConfig (wrapped) when cfg is invalid.
func Run(cfg accel.Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("selfcheck.Run: %w", err)
	}

	return lo.Map(registry, func(c check, _ int) Result {
		if err := c.run(cfg); err != nil {
			return Result{Name: c.name, Message: err.Error()}
		}
		return Result{Name: c.name, Passed: true}
	}), nil
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	passed = lo.CountBy(results, func(r Result) bool { return r.Passed })
	return passed, len(results) - passed
}

// AllPassed reports whether every result passed. An empty slice passes.
func AllPassed(results []Result) bool {
	return lo.EveryBy(results, func(r Result) bool { return r.Passed })
}

// checkSymmetric: [-IntMax, IntMax] calibrates to scale 1, zero point 0, and
// every sample reconstructs within one step.
func checkSymmetric(cfg accel.Config) error {
	top := float32(cfg.IntMax())
	p := quant.Calibrate(cfg, -top, top)
	if abs(p.Scale-1) > Tolerance {
		return fmt.Errorf("expected scale=1.0 for [%g,%g] range, got %g", -top, top, p.Scale)
	}
	if p.ZeroPoint != 0 {
		return fmt.Errorf("expected zero_point=0 for symmetric quantization, got %d", p.ZeroPoint)
	}
	for _, v := range []float32{-top, -top / 2, -1, 0, 1, top / 2, top} {
		if e := abs(quant.Dequantize(quant.Quantize(cfg, v, p), p) - v); e > 1 {
			return fmt.Errorf("large reconstruction error %g at %g", e, v)
		}
	}

	return nil
}

// checkRangeClipping: values far outside the domain saturate at the bounds.
func checkRangeClipping(cfg accel.Config) error {
	unit := quant.Unit
	far := float32(cfg.IntMax()) * 2
	if q := quant.Quantize(cfg, far, unit); q != cfg.IntMax() {
		return fmt.Errorf("expected clipping to %d, got %d", cfg.IntMax(), q)
	}
	if q := quant.Quantize(cfg, -far, unit); q != cfg.IntMin() {
		return fmt.Errorf("expected clipping to %d, got %d", cfg.IntMin(), q)
	}

	return nil
}

// checkZeroPreservation: 0 survives a round trip for several ranges.
func checkZeroPreservation(cfg accel.Config) error {
	for _, r := range [][2]float32{{-10, 10}, {-127, 127}, {-50.5, 50.5}} {
		p := quant.Calibrate(cfg, r[0], r[1])
		if dq := quant.Dequantize(quant.Quantize(cfg, 0, p), p); abs(dq) > Tolerance {
			return fmt.Errorf("zero not preserved for [%g,%g]: dequantized to %g", r[0], r[1], dq)
		}
	}

	return nil
}

// checkScaling: [-50, 50] gives scale 50/IntMax and the extremes land within
// two steps of the domain edge.
func checkScaling(cfg accel.Config) error {
	p := quant.Calibrate(cfg, -50, 50)
	want := float32(50) / float32(cfg.IntMax())
	if abs(p.Scale-want) > Tolerance {
		return fmt.Errorf("expected scale=%g, got %g", want, p.Scale)
	}
	floor := cfg.IntMax() - 2
	qMax, qMin := quant.Quantize(cfg, 50, p), quant.Quantize(cfg, -50, p)
	if absInt(qMax) < floor || absInt(qMin) < floor {
		return fmt.Errorf("extremes not utilizing full range: %d, %d", qMin, qMax)
	}

	return nil
}

// checkReconstruction: seeded samples in [-100, 100) reconstruct within half
// a step.
func checkReconstruction(cfg accel.Config) error {
	rng := rand.New(rand.NewSource(ReconstructionSeed))
	p := quant.Calibrate(cfg, -100, 100)
	bound := float64(p.Scale)/2 + ReconstructionSlack

	var worst float64
	for i := 0; i < ReconstructionSamples; i++ {
		v := rng.Float32()*200 - 100
		dq := quant.Dequantize(quant.Quantize(cfg, v, p), p)
		worst = math.Max(worst, math.Abs(float64(dq)-float64(v)))
	}
	if worst > bound {
		return fmt.Errorf("max error %g exceeds acceptable %g", worst, bound)
	}

	return nil
}

// checkEdgeCases: tiny range keeps a usable scale, zero range maps 0 to 0,
// asymmetric range stays symmetric.
func checkEdgeCases(cfg accel.Config) error {
	if p := quant.Calibrate(cfg, -0.001, 0.001); p.Scale < 1e-10 {
		return fmt.Errorf("scale too small for tiny range: %g", p.Scale)
	}
	zero := quant.Calibrate(cfg, 0, 0)
	if q := quant.Quantize(cfg, 0, zero); q != 0 {
		return fmt.Errorf("zero range should produce zero output, got %d", q)
	}
	if p := quant.Calibrate(cfg, -10, 100); p.ZeroPoint != 0 {
		return fmt.Errorf("asymmetric range must still use zero_point=0, got %d", p.ZeroPoint)
	}

	return nil
}

// checkConsistency: repeated quantization and dequantization agree.
func checkConsistency(cfg accel.Config) error {
	p := quant.Params{Scale: 0.5}
	const v = float32(42.42)
	q1, q2, q3 := quant.Quantize(cfg, v, p), quant.Quantize(cfg, v, p), quant.Quantize(cfg, v, p)
	if q1 != q2 || q2 != q3 {
		return fmt.Errorf("quantization is non-deterministic: %d, %d, %d", q1, q2, q3)
	}
	if d1, d2 := quant.Dequantize(q1, p), quant.Dequantize(q1, p); abs(d1-d2) > Tolerance {
		return fmt.Errorf("dequantization is non-deterministic: %g, %g", d1, d2)
	}

	return nil
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
