// SPDX-License-Identifier: MIT
// Package: pipeline
//
// pipeline.go — the two linear runs and the source-driven dispatcher.
//
// Design principles:
//   • Deterministic: the only randomness lives in the stimulus.Source.
//   • Errors come only from shape preconditions and the strict
//     accumulator policy; values never fail.

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/activation"
	"github.com/katalvlaran/systolic/gemm"
	"github.com/katalvlaran/systolic/matrix"
	"github.com/katalvlaran/systolic/quant"
	"github.com/katalvlaran/systolic/stimulus"
	"github.com/katalvlaran/systolic/stream"
)

// Result holds every intermediate of one run.
type Result struct {
	// Config is the validated geometry the run used.
	Config accel.Config

	// Quantized is true for RunFloat. The float fields and the params are
	// zero values otherwise.
	Quantized bool

	FloatA, FloatB   matrix.Square[float32]
	ParamsA, ParamsB quant.Params

	// A and B are the operands in the element domain.
	A, B matrix.Square[int32]

	// Raw is the product before activation; Activated is ReLU(Raw).
	Raw, Activated matrix.Square[int64]

	// Rescaled is Raw mapped back to floats with ParamsA.Scale·ParamsB.Scale.
	Rescaled matrix.Square[float32]

	// FloatProduct and FloatActivated are the unquantized reference.
	FloatProduct, FloatActivated matrix.Square[float32]

	// Feed is the per-cycle column feed of A and B into the array.
	Feed []stream.Beat[int32]

	// Stream is Activated in row-major order, as the output port emits it.
	Stream []int64

	// AccWidth is the required and configured accumulator width.
	AccWidth accel.AccumulatorWidth

	// Overflows lists cells whose partial sums left the configured width.
	// Always empty for operands inside the element domain.
	Overflows []gemm.Cell
}

// RunInt runs the direct integer path. Operands outside the element domain
// are saturated to [IntMin, IntMax] before the multiply.
// Errors: accel.ErrInvalidConfig, matrix.ErrDimensionMismatch,
// gemm.ErrAccumulatorOverflow (AccStrict only); all wrapped.
// Complexity: O(N³).
func RunInt(cfg accel.Config, a, b matrix.Square[int32]) (Result, error) {
	// Stage 1 - validation.
	if err := validate(cfg, a, b); err != nil {
		return Result{}, fmt.Errorf("pipeline.RunInt: %w", err)
	}

	// Stage 2 - bring operands into the element domain.
	res := Result{
		Config: cfg,
		A:      quant.SaturateMatrix(cfg, a),
		B:      quant.SaturateMatrix(cfg, b),
	}

	// Stage 3 - multiply, activate, stream.
	if err := res.compute(); err != nil {
		return Result{}, fmt.Errorf("pipeline.RunInt: %w", err)
	}

	return res, nil
}

// RunFloat runs the quantized path with per-matrix symmetric calibration and
// the float reference alongside.
// Errors: as RunInt.
// Complexity: O(N³).
func RunFloat(cfg accel.Config, a, b matrix.Square[float32]) (Result, error) {
	// Stage 1 - validation.
	if err := validate(cfg, a, b); err != nil {
		return Result{}, fmt.Errorf("pipeline.RunFloat: %w", err)
	}

	// Stage 2 - calibrate and quantize each operand independently.
	res := Result{
		Config:    cfg,
		Quantized: true,
		FloatA:    a.Clone(),
		FloatB:    b.Clone(),
		ParamsA:   quant.CalibrateMatrix(cfg, a),
		ParamsB:   quant.CalibrateMatrix(cfg, b),
	}
	res.A = quant.QuantizeMatrix(cfg, a, res.ParamsA)
	res.B = quant.QuantizeMatrix(cfg, b, res.ParamsB)

	// Stage 3 - integer path.
	if err := res.compute(); err != nil {
		return Result{}, fmt.Errorf("pipeline.RunFloat: %w", err)
	}

	// Stage 4 - float reference and rescaled product.
	fp, err := gemm.MulFloat(a, b)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline.RunFloat: %w", err)
	}
	res.FloatProduct = fp
	res.FloatActivated = activation.ReLU(fp)
	scale := res.ParamsA.Scale * res.ParamsB.Scale
	res.Rescaled = matrix.Map(res.Raw, func(v int64) float32 { return float32(v) * scale })

	return res, nil
}

// Run draws operands from src and dispatches to RunFloat when quantized is
// true, RunInt otherwise.
func Run(cfg accel.Config, src *stimulus.Source, quantized bool) (Result, error) {
	if quantized {
		a, b := src.Floats()
		return RunFloat(cfg, a, b)
	}
	a, b := src.Ints()

	return RunInt(cfg, a, b)
}

// compute fills Feed, Raw, Activated, Stream, AccWidth and Overflows from A and B.
func (r *Result) compute() error {
	feed, err := stream.Schedule(r.A, r.B)
	if err != nil {
		return err
	}
	raw, err := gemm.Mul(r.Config, r.A, r.B)
	if err != nil {
		return err
	}
	over, err := gemm.Overflows(r.Config, r.A, r.B)
	if err != nil {
		return err
	}
	r.Feed = feed
	r.Raw = raw
	r.Activated = activation.ReLU(raw)
	r.Stream = matrix.StreamOrder(r.Activated)
	r.AccWidth = r.Config.AccWidth()
	r.Overflows = over

	return nil
}

func validate[T matrix.Scalar](cfg accel.Config, a, b matrix.Square[T]) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := matrix.ValidateSize(a, cfg.ArraySize); err != nil {
		return err
	}

	return matrix.ValidateSize(b, cfg.ArraySize)
}
