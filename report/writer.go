// SPDX-License-Identifier: MIT
// Package: report
//
// writer.go — low-level section writer.
//
// Conventions:
//   • Headings are title-cased (golang.org/x/text/cases) and end with ":".
//   • Integer cells are right-aligned in 6 columns, float cells in 10 with
//     4 decimals.
//   • The first write error is sticky; later calls are no-ops and Err
//     returns it.

package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/gemm"
	"github.com/katalvlaran/systolic/matrix"
	"github.com/katalvlaran/systolic/quant"
	"github.com/katalvlaran/systolic/stream"
)

const (
	intCell   = "%6d "
	floatCell = "%10.4f "
	ruleWidth = 40
)

// FeedHint tells the testbench author how Schedule maps onto the array ports.
const FeedHint = "Feed values into hardware column-by-column.\n" +
	"For column k, drive A(:,k) and B(k,:) on a_stream/b_stream respectively."

// Writer prints report sections to an io.Writer.
type Writer struct {
	out   io.Writer
	title cases.Caser
	err   error
}

// NewWriter wraps out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, title: cases.Title(language.English, cases.NoLower)}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// Heading prints a title-cased heading line.
func (w *Writer) Heading(label string) {
	w.printf("%s:\n", w.title.String(label))
}

// Boxed prints label between two rules.
func (w *Writer) Boxed(label string) {
	rule := strings.Repeat("=", ruleWidth)
	w.printf("%s\n  %s\n%s\n\n", rule, label, rule)
}

// Blank prints an empty line.
func (w *Writer) Blank() { w.printf("\n") }

// Banner prints the geometry line and whether quantization is active.
func (w *Writer) Banner(cfg accel.Config, quantized bool) {
	acc := cfg.AccWidth()
	state := "DISABLED"
	if quantized {
		state = "ENABLED"
	}
	w.printf("==== Systolic Array Golden Model ====\n")
	w.printf("ARRAY_SIZE: %d  DATA_WIDTH: %d  REQUIRED_ACC_WIDTH: %d  CONFIGURED_ACC_WIDTH: %d\n",
		cfg.ArraySize, cfg.ElementWidth, acc.Required, acc.Configured)
	w.printf("ROUNDING: %s  ACC_POLICY: %s\n", cfg.Rounding, cfg.AccPolicy)
	w.printf("Quantization: %s\n\n", state)
}

// Params prints the per-matrix quantization parameters.
func (w *Writer) Params(a, b quant.Params) {
	w.Heading("quantization parameters")
	w.printf("  Matrix A: %s\n", a)
	w.printf("  Matrix B: %s\n\n", b)
}

// Matrix prints a heading followed by one line per row.
func Matrix[T matrix.Scalar](w *Writer, label string, m matrix.Square[T]) {
	w.Heading(label)
	for _, row := range m.Rows() {
		for _, v := range row {
			w.printf(cellFormat(v), v)
		}
		w.printf("\n")
	}
	w.Blank()
}

func cellFormat[T matrix.Scalar](v T) string {
	switch any(v).(type) {
	case float32, float64:
		return floatCell
	default:
		return intCell
	}
}

// Stream prints the row-major output sequence with its indices.
func (w *Writer) Stream(label string, values []int64) {
	w.Heading(label)
	for i, v := range values {
		w.printf("  [%2d] => %6d\n", i, v)
	}
	w.Blank()
}

// Overflows prints one line per overflowing cell; nothing when cells is empty.
func (w *Writer) Overflows(cfg accel.Config, cells []gemm.Cell) {
	if len(cells) == 0 {
		return
	}
	w.Heading("accumulator overflow")
	width := cfg.AccWidth().Configured
	for _, c := range cells {
		w.printf("  C[%d][%d] after k=%d: partial sum %d exceeds %d-bit accumulator\n",
			c.Row, c.Col, c.Step, c.Partial, width)
	}
	w.Blank()
}

// Feed prints one line per cycle with the lane values of A(:,k) and B(k,:).
func (w *Writer) Feed(beats []stream.Beat[int32]) {
	w.Heading("column feed")
	for _, b := range beats {
		w.printf("  cycle %d: a_stream=%v b_stream=%v\n", b.Cycle, b.A, b.B)
	}
	w.Blank()
}

// FeedHint prints the column feed instructions.
func (w *Writer) FeedHint() { w.printf("%s\n", FeedHint) }
