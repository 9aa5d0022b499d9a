// SPDX-License-Identifier: MIT

package gemm_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/gemm"
	"github.com/katalvlaran/systolic/matrix"
)

// pattern is the deterministic integer stimulus: r+1 on the diagonal,
// c-r above it and -(r-c) below it.
var pattern = [][]int32{
	{1, 1, 2, 3},
	{-1, 2, 1, 2},
	{-2, -1, 3, 1},
	{-3, -2, -1, 4},
}

var lowerTriangular = [][]int32{
	{1, 0, 0, 0},
	{1, 2, 0, 0},
	{1, 2, 3, 0},
	{1, 2, 3, 4},
}

// reference is the textbook definition, computed independently of the engine.
func reference(a, b [][]int32) [][]int64 {
	n := len(a)
	out := make([][]int64, n)
	for i := range out {
		out[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += int64(a[i][k]) * int64(b[k][j])
			}
		}
	}
	return out
}

func constant(n int, v int32) matrix.Square[int32] {
	rows := make([][]int32, n)
	for i := range rows {
		rows[i] = make([]int32, n)
		for j := range rows[i] {
			rows[i][j] = v
		}
	}
	return matrix.MustFromRows(rows)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	id, err := matrix.Identity[int32](4)
	require.NoError(t, err)
	got, err := gemm.Mul(cfg, matrix.MustFromRows(lowerTriangular), id)
	require.NoError(t, err)

	want := [][]int64{{1, 0, 0, 0}, {1, 2, 0, 0}, {1, 2, 3, 0}, {1, 2, 3, 4}}
	if diff := cmp.Diff(want, got.Rows()); diff != "" {
		t.Fatalf("L×I mismatch (-want +got):\n%s", diff)
	}
}

func TestMul_HandComputed(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	cases := []struct {
		name string
		a, b [][]int32
		want [][]int64
	}{
		{
			name: "pattern x pattern",
			a:    pattern, b: pattern,
			want: [][]int64{
				{-13, -5, 6, 19},
				{-11, -2, 1, 10},
				{-10, -9, 3, -1},
				{-11, -14, -15, 2},
			},
		},
		{
			name: "lower triangular x pattern",
			a:    lowerTriangular, b: pattern,
			want: [][]int64{
				{1, 1, 2, 3},
				{-1, 5, 4, 7},
				{-7, 2, 13, 10},
				{-19, -6, 9, 26},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gemm.Mul(cfg, matrix.MustFromRows(tc.a), matrix.MustFromRows(tc.b))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got.Rows()); diff != "" {
				t.Fatalf("product mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, reference(tc.a, tc.b), got.Rows())
		})
	}
}

func TestMul_WorstCaseFitsRequiredWidth(t *testing.T) {
	t.Parallel()
	cfg, err := accel.New(accel.WithExtraBits(0), accel.WithAccPolicy(accel.AccStrict))
	require.NoError(t, err)

	// (-128)·(-128)·4 = 65536 is the largest magnitude sum; 18 bits hold it.
	m := constant(4, cfg.IntMin())
	got, err := gemm.Mul(cfg, m, m)
	require.NoError(t, err)
	v, _ := got.At(3, 3)
	assert.Equal(t, int64(65536), v)

	cells, err := gemm.Overflows(cfg, m, m)
	require.NoError(t, err)
	assert.Empty(t, cells)
}

// Operands wider than the declared element width exceed the 18-bit register
// at k=3: partial sums 40000, 80000, 120000, 160000.
func TestMul_AccumulatorPolicies(t *testing.T) {
	t.Parallel()
	wide := constant(4, 200)

	cases := []struct {
		policy accel.AccPolicy
		want   int64
	}{
		{accel.AccAdvisory, 160000},
		{accel.AccWrap, 160000 - (1 << 18)},
		{accel.AccSaturate, 1<<17 - 1},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			cfg, err := accel.New(accel.WithExtraBits(0), accel.WithAccPolicy(tc.policy))
			require.NoError(t, err)
			got, err := gemm.Mul(cfg, wide, wide)
			require.NoError(t, err)
			for _, v := range matrix.StreamOrder(got) {
				assert.Equal(t, tc.want, v)
			}
		})
	}

	t.Run("strict", func(t *testing.T) {
		cfg, err := accel.New(accel.WithExtraBits(0), accel.WithAccPolicy(accel.AccStrict))
		require.NoError(t, err)
		_, err = gemm.Mul(cfg, wide, wide)
		require.ErrorIs(t, err, gemm.ErrAccumulatorOverflow)
		assert.Contains(t, err.Error(), "C[0][0] after k=3")
	})

	t.Run("extra bits absorb it", func(t *testing.T) {
		cfg, err := accel.New(accel.WithExtraBits(1), accel.WithAccPolicy(accel.AccStrict))
		require.NoError(t, err)
		_, err = gemm.Mul(cfg, wide, wide)
		require.NoError(t, err)
	})
}

func TestOverflows_ReportsFirstStep(t *testing.T) {
	t.Parallel()
	cfg, err := accel.New(accel.WithExtraBits(0))
	require.NoError(t, err)

	a := matrix.MustFromRows(pattern)
	require.NoError(t, a.Set(2, 0, 30000))
	cells, err := gemm.Overflows(cfg, a, constant(4, 10))
	require.NoError(t, err)

	// Row 2 partial sums start at 300000, out of range at k=0 for every column.
	require.Len(t, cells, 4)
	for j, c := range cells {
		assert.Equal(t, gemm.Cell{Row: 2, Col: j, Step: 0, Partial: 300000}, c)
	}
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	small, _ := matrix.NewSquare[int32](3)
	four := matrix.MustFromRows(pattern)
	_, err := gemm.Mul(cfg, small, four)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = gemm.Mul(cfg, four, small)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = gemm.Overflows(cfg, small, small)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var zero matrix.Square[int32]
	_, err = gemm.Mul(cfg, zero, four)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMul_InputsUntouched(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	a := matrix.MustFromRows(pattern)
	snapshot := a.Clone()
	_, err := gemm.Mul(cfg, a, a)
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(a))
}

func TestMulFloat(t *testing.T) {
	t.Parallel()

	a := matrix.MustFromRows([][]float32{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]float32{{0.5, -1}, {2, 0.25}})
	got, err := gemm.MulFloat(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.MustFromRows([][]float32{{4.5, -0.5}, {9.5, -2}}).Equal(got), "got\n%s", got)

	c, _ := matrix.NewSquare[float32](3)
	_, err = gemm.MulFloat(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
