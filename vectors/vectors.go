// SPDX-License-Identifier: MIT
// Package: vectors
//
// vectors.go — hex sink and reader.
//
// Determinism:
//   • Values are emitted in matrix.StreamOrder, A then B then golden.
//   • Formatting is strconv base 16, so the same matrices always produce the
//     same bytes.

package vectors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/matrix"
)

// GoldenMask is applied to every golden entry before it is written.
const GoldenMask = 0xFFFFFFFF

// DefaultPath is where the testbench looks for its vectors.
const DefaultPath = "build/test_vectors.hex"

const (
	methodWrite     = "vectors.Write"
	methodWriteFile = "vectors.WriteFile"
	methodRead      = "vectors.Read"
	methodReadFile  = "vectors.ReadFile"
)

// File is a parsed vector file.
type File struct {
	A, B   matrix.Square[int32]
	Golden matrix.Square[int32]
}

// Write emits a, b and golden to w in the testbench layout.
// Stage 1 (Validate): all three matrices are cfg.ArraySize × cfg.ArraySize.
// Stage 2 (Emit): A and B masked with cfg.ElementMask, golden with GoldenMask.
// Errors: matrix.ErrDimensionMismatch / ErrInvalidDimensions (wrapped), or the
// first write error of w.
// Complexity: O(N²).
func Write(w io.Writer, cfg accel.Config, a, b matrix.Square[int32], golden matrix.Square[int64]) error {
	if err := cfg.Validate(); err != nil {
		return vectorsErrorf(methodWrite, err)
	}
	for _, m := range []matrix.Square[int32]{a, b} {
		if err := matrix.ValidateSize(m, cfg.ArraySize); err != nil {
			return vectorsErrorf(methodWrite, err)
		}
	}
	if err := matrix.ValidateSize(golden, cfg.ArraySize); err != nil {
		return vectorsErrorf(methodWrite, err)
	}

	bw := bufio.NewWriter(w)
	mask := uint64(cfg.ElementMask())
	for _, m := range []matrix.Square[int32]{a, b} {
		for _, v := range matrix.StreamOrder(m) {
			writeHex(bw, uint64(v)&mask)
		}
	}
	for _, v := range matrix.StreamOrder(golden) {
		writeHex(bw, uint64(v)&GoldenMask)
	}
	if err := bw.Flush(); err != nil {
		return vectorsErrorf(methodWrite, err)
	}

	return nil
}

// writeHex appends one line; bufio.Writer keeps the first error for Flush.
func writeHex(bw *bufio.Writer, v uint64) {
	bw.WriteString(strconv.FormatUint(v, 16))
	bw.WriteByte('\n')
}

// WriteFile creates path (and its parent directories) and writes the vectors.
// Errors: ErrSinkOpen (wrapped with the OS error text) when the file cannot be
// created, otherwise as Write.
func WriteFile(path string, cfg accel.Config, a, b matrix.Square[int32], golden matrix.Square[int64]) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("%s: %s: %v: %w", methodWriteFile, path, mkErr, ErrSinkOpen)
		}
	}
	f, openErr := os.Create(path)
	if openErr != nil {
		return fmt.Errorf("%s: %s: %v: %w", methodWriteFile, path, openErr, ErrSinkOpen)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = vectorsErrorf(methodWriteFile, cerr)
		}
	}()

	return Write(f, cfg, a, b, golden)
}

// Read parses a vector file written for cfg. Blank lines and surrounding
// whitespace are ignored; exactly 3·N² values must be present.
// Errors: ErrMalformedVector (wrapped with the line number) or the read error.
// Complexity: O(N²).
func Read(r io.Reader, cfg accel.Config) (File, error) {
	if err := cfg.Validate(); err != nil {
		return File{}, vectorsErrorf(methodRead, err)
	}
	n := cfg.ArraySize
	nn := n * n
	values := make([]int32, 0, 3*nn)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if len(values) == 3*nn {
			return File{}, lineErrorf(methodRead, line, "more than %d values", 3*nn)
		}
		v, err := parseValue(text, len(values) < 2*nn, cfg.ElementWidth)
		if err != nil {
			return File{}, lineErrorf(methodRead, line, "%q: %v", text, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return File{}, vectorsErrorf(methodRead, err)
	}
	if len(values) != 3*nn {
		return File{}, lineErrorf(methodRead, line, "got %d values, want %d", len(values), 3*nn)
	}

	var f File
	var err error
	for i, dst := range []*matrix.Square[int32]{&f.A, &f.B, &f.Golden} {
		if *dst, err = fromFlat(n, values[i*nn:(i+1)*nn]); err != nil {
			return File{}, vectorsErrorf(methodRead, err)
		}
	}

	return f, nil
}

// parseValue decodes one hex line. Element lines are sign-extended from
// width bits, golden lines from 32.
func parseValue(text string, element bool, width int) (int32, error) {
	if !element {
		u, err := strconv.ParseUint(text, 16, 32)
		if err != nil {
			return 0, unwrapNum(err)
		}
		return int32(uint32(u)), nil
	}
	u, err := strconv.ParseUint(text, 16, width)
	if err != nil {
		return 0, unwrapNum(err)
	}
	shift := 32 - width

	return int32(uint32(u)<<shift) >> shift, nil
}

// unwrapNum drops strconv's repeated input text from the message.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func fromFlat(n int, flat []int32) (matrix.Square[int32], error) {
	rows := make([][]int32, n)
	for i := range rows {
		rows[i] = flat[i*n : (i+1)*n]
	}
	return matrix.FromRows(rows)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, cfg accel.Config) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, vectorsErrorf(methodReadFile, err)
	}
	defer f.Close()

	return Read(f, cfg)
}
