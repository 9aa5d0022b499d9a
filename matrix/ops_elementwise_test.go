// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systolic/matrix"
)

// --- Map ----------------------------------------------------------------------

func TestMap_ShapePreservingAndPure(t *testing.T) {
	t.Parallel()

	in := matrix.MustFromRows([][]int32{{1, -2}, {3, -4}})
	out := matrix.Map(in, func(v int32) float32 { return float32(v) * 0.5 })

	require.Equal(t, in.N(), out.N())
	want := matrix.MustFromRows([][]float32{{0.5, -1}, {1.5, -2}})
	assert.True(t, want.Equal(out), "got\n%s", out)

	// input untouched
	v, _ := in.At(1, 1)
	assert.Equal(t, int32(-4), v)
}

// --- Range --------------------------------------------------------------------

func TestRange(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]float32{
		{1.5, 1.5, 2.5, 3.5},
		{-1.25, 2.5, 1.5, 2.5},
		{-2.25, -1.25, 3.5, 1.5},
		{-3.25, -2.25, -1.25, 4.5},
	})
	lo, hi := matrix.Range(m)
	assert.Equal(t, float32(-3.25), lo)
	assert.Equal(t, float32(4.5), hi)
}

func TestRange_FirstElementSeedsBoth(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]int32{{7}})
	lo, hi := matrix.Range(m)
	assert.Equal(t, int32(7), lo)
	assert.Equal(t, int32(7), hi)

	var zero matrix.Square[float32]
	lo32, hi32 := matrix.Range(zero)
	assert.Zero(t, lo32)
	assert.Zero(t, hi32)
}

// --- StreamOrder --------------------------------------------------------------

func TestStreamOrder_RowMajor(t *testing.T) {
	t.Parallel()

	const n = 4
	m, err := matrix.NewSquare[int64](n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, int64(10*i+j)))
		}
	}

	got := matrix.StreamOrder(m)
	require.Len(t, got, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			assert.Equal(t, v, got[i*n+j], "element %d", i*n+j)
		}
	}
	assert.Equal(t, int64(0), got[0])  // M[0][0]
	assert.Equal(t, int64(1), got[1])  // M[0][1]
	assert.Equal(t, int64(10), got[n]) // M[1][0]
}

func TestStreamOrder_Detached(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]int32{{1, 2}, {3, 4}})
	got := matrix.StreamOrder(m)
	got[0] = 42

	v, _ := m.At(0, 0)
	assert.Equal(t, int32(1), v)
}

// --- Row / Column -------------------------------------------------------------

func TestRowColumn(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]int32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	col, err := matrix.Column(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 5, 8}, col)

	row, err := matrix.Row(m, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 8, 9}, row)

	_, err = matrix.Column(m, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Row(m, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
