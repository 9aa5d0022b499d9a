// SPDX-License-Identifier: MIT
// Package: report
//
// report.go — full reports built from the section writer.

package report

import (
	"io"

	"github.com/katalvlaran/systolic/pipeline"
	"github.com/katalvlaran/systolic/selfcheck"
)

// Run prints every intermediate of res, in pipeline order.
func Run(out io.Writer, res pipeline.Result) error {
	w := NewWriter(out)
	w.Banner(res.Config, res.Quantized)

	if res.Quantized {
		w.Params(res.ParamsA, res.ParamsB)
		Matrix(w, "original float matrix A", res.FloatA)
		Matrix(w, "quantized matrix A", res.A)
		Matrix(w, "original float matrix B", res.FloatB)
		Matrix(w, "quantized matrix B", res.B)
		Matrix(w, "quantized product (no activation)", res.Raw)
		Matrix(w, "after ReLU activation", res.Activated)
		Matrix(w, "rescaled product", res.Rescaled)
		Matrix(w, "float reference product", res.FloatProduct)
		Matrix(w, "float reference ReLU", res.FloatActivated)
		w.Stream("streaming order (row-major, ReLU applied, quantized)", res.Stream)
	} else {
		Matrix(w, "matrix A", res.A)
		Matrix(w, "matrix B", res.B)
		Matrix(w, "raw product (no activation)", res.Raw)
		Matrix(w, "after ReLU activation", res.Activated)
		w.Stream("streaming order (row-major, ReLU applied)", res.Stream)
	}

	w.Overflows(res.Config, res.Overflows)
	w.Feed(res.Feed)
	w.FeedHint()

	return w.Err()
}

// Vectors prints the summary shown after a vector file has been written.
func Vectors(out io.Writer, res pipeline.Result, path string) error {
	w := NewWriter(out)
	w.Boxed("Quantized Test Vector Generator")
	if res.Quantized {
		w.Params(res.ParamsA, res.ParamsB)
	}
	Matrix(w, "quantized matrix A", res.A)
	Matrix(w, "quantized matrix B", res.B)
	Matrix(w, "expected golden output", res.Raw)
	w.Overflows(res.Config, res.Overflows)
	w.printf("Test vectors written to %s\n", path)

	return w.Err()
}

// Checks prints one PASS/FAIL line per check and the summary.
func Checks(out io.Writer, results []selfcheck.Result) error {
	w := NewWriter(out)
	w.Boxed("Quantization Verification Testbench")
	for _, r := range results {
		if r.Passed {
			w.printf("[PASS] %s\n", r.Name)
			continue
		}
		w.printf("[FAIL] %s - %s\n", r.Name, r.Message)
	}
	passed, failed := selfcheck.Summary(results)
	w.Blank()
	w.printf("Results: %d passed, %d failed\n", passed, failed)

	return w.Err()
}
