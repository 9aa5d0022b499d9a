// SPDX-License-Identifier: MIT

package quant_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systolic/accel"
	"github.com/katalvlaran/systolic/quant"
)

// tolerance mirrors the float comparison bound used by the hardware testbench.
const tolerance = 1e-5

func TestCalibrate_Symmetric(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	p := quant.Calibrate(cfg, -127, 127)
	assert.InDelta(t, 1.0, p.Scale, tolerance)
	assert.Equal(t, int32(0), p.ZeroPoint)

	p = quant.Calibrate(cfg, -50, 50)
	assert.InDelta(t, 50.0/127.0, p.Scale, tolerance)
	assert.Equal(t, int32(0), p.ZeroPoint)
}

func TestCalibrate_UsesAbsMaxRegardlessOfOrder(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	a := quant.Calibrate(cfg, -10, 100)
	b := quant.Calibrate(cfg, 100, -10)
	c := quant.Calibrate(cfg, -100, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, int32(0), a.ZeroPoint, "asymmetric range still calibrates symmetrically")
}

func TestCalibrate_DegenerateRange(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	p := quant.Calibrate(cfg, 0, 0)
	assert.Equal(t, float32(1), p.Scale)
	assert.Equal(t, int32(0), quant.Quantize(cfg, 0, p))
	require.NoError(t, p.Validate())

	p = quant.Calibrate(cfg, -1e-9, 5e-9)
	assert.Equal(t, quant.Unit, p)

	small := quant.Calibrate(cfg, -0.001, 0.001)
	assert.Greater(t, small.Scale, float32(1e-10))
}

func TestCalibrate_NonFinite(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	assert.Equal(t, quant.Unit, quant.Calibrate(cfg, -inf, 1))
	assert.Equal(t, quant.Unit, quant.Calibrate(cfg, nan, nan))

	_, err := quant.CalibrateChecked(cfg, 0, inf)
	require.ErrorIs(t, err, quant.ErrNonFinite)

	p, err := quant.CalibrateChecked(cfg, -50, 50)
	require.NoError(t, err)
	assert.InDelta(t, 50.0/127.0, p.Scale, tolerance)
}

func TestCalibrate_FollowsElementWidth(t *testing.T) {
	t.Parallel()
	cfg, err := accel.New(accel.WithElementWidth(4))
	require.NoError(t, err)

	p := quant.Calibrate(cfg, -14, 7)
	assert.InDelta(t, 2.0, p.Scale, tolerance)
	assert.Equal(t, int32(7), quant.Quantize(cfg, 14, p))
	assert.Equal(t, int32(-8), quant.Quantize(cfg, -100, p))
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, quant.Unit.Validate())
	require.ErrorIs(t, quant.Params{Scale: 0}.Validate(), quant.ErrInvalidParams)
	require.ErrorIs(t, quant.Params{Scale: -1}.Validate(), quant.ErrInvalidParams)
	require.ErrorIs(t, quant.Params{Scale: float32(math.Inf(1))}.Validate(), quant.ErrInvalidParams)
	require.ErrorIs(t, quant.Params{Scale: 1, ZeroPoint: 3}.Validate(), quant.ErrInvalidParams)
	assert.Equal(t, "scale=1, zero_point=0", quant.Unit.String())
}

func TestQuantize_RangeClipping(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	assert.Equal(t, int32(127), quant.Quantize(cfg, 200, quant.Unit))
	assert.Equal(t, int32(-128), quant.Quantize(cfg, -200, quant.Unit))
	assert.Equal(t, int32(127), quant.Quantize(cfg, float32(math.Inf(1)), quant.Unit))
	assert.Equal(t, int32(-128), quant.Quantize(cfg, float32(math.Inf(-1)), quant.Unit))
	assert.Equal(t, int32(0), quant.Quantize(cfg, float32(math.NaN()), quant.Unit))
	assert.Equal(t, int32(127), quant.Quantize(cfg, math.MaxFloat32, quant.Unit))
}

func TestQuantize_SaturationTotality(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()
	rng := rand.New(rand.NewSource(7))

	for _, p := range []quant.Params{quant.Unit, {Scale: 0.01}, {Scale: 1000}} {
		for i := 0; i < 2000; i++ {
			x := float32((rng.Float64()*2 - 1) * math.Pow(10, float64(rng.Intn(12)-4)))
			q := quant.Quantize(cfg, x, p)
			require.GreaterOrEqual(t, q, cfg.IntMin(), "x=%v", x)
			require.LessOrEqual(t, q, cfg.IntMax(), "x=%v", x)
		}
	}
}

func TestQuantize_RoundingModes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rounding accel.Rounding
		in       []float32
		want     []int32
	}{
		{accel.RoundHalfAwayFromZero, []float32{0.5, 1.5, 2.5, -0.5, -2.5, 0.4}, []int32{1, 2, 3, -1, -3, 0}},
		{accel.RoundHalfToEven, []float32{0.5, 1.5, 2.5, -0.5, -2.5, 0.6}, []int32{0, 2, 2, 0, -2, 1}},
		{accel.RoundTowardZero, []float32{0.5, 1.9, 2.5, -0.5, -2.9, 0.6}, []int32{0, 1, 2, 0, -2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.rounding.String(), func(t *testing.T) {
			cfg, err := accel.New(accel.WithRounding(tc.rounding))
			require.NoError(t, err)
			for i, v := range tc.in {
				assert.Equal(t, tc.want[i], quant.Quantize(cfg, v, quant.Unit), "in=%v", v)
			}
		})
	}
}

func TestZeroPreservation(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	ranges := [][2]float32{{-10, 10}, {-127, 127}, {-50.5, 50.5}, {0, 0}, {-3, 1e6}}
	for _, r := range ranges {
		p := quant.Calibrate(cfg, r[0], r[1])
		q := quant.Quantize(cfg, 0, p)
		assert.Equal(t, int32(0), q)
		assert.InDelta(t, 0, quant.Dequantize(q, p), tolerance)
	}
}

func TestScaling_ExtremesUseFullRange(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	p := quant.Calibrate(cfg, -50, 50)
	assert.Equal(t, int32(127), quant.Quantize(cfg, 50, p))
	assert.Equal(t, int32(-127), quant.Quantize(cfg, -50, p))
}

// TestReconstructionBound samples 1000 values in [-100,100] and checks the
// round-trip error never exceeds half a quantization step.
func TestReconstructionBound(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()
	rng := rand.New(rand.NewSource(42))
	p := quant.Calibrate(cfg, -100, 100)

	// float32 division and product each contribute well under 1e-4 at |x|<=100.
	const eps = 1e-4
	var maxErr float64
	for i := 0; i < 1000; i++ {
		x := float32(rng.Float64()*200 - 100)
		back := quant.Dequantize(quant.Quantize(cfg, x, p), p)
		maxErr = math.Max(maxErr, math.Abs(float64(back)-float64(x)))
	}
	assert.LessOrEqual(t, maxErr, float64(p.Scale)/2+eps)
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()
	p := quant.Params{Scale: 0.5}

	q1 := quant.Quantize(cfg, 42.42, p)
	q2 := quant.Quantize(cfg, 42.42, p)
	q3 := quant.Quantize(cfg, 42.42, p)
	assert.Equal(t, q1, q2)
	assert.Equal(t, q2, q3)
	assert.Equal(t, int32(85), q1)

	d1 := quant.Dequantize(q1, p)
	d2 := quant.Dequantize(q1, p)
	assert.Equal(t, math.Float32bits(d1), math.Float32bits(d2))
}

func TestSaturate(t *testing.T) {
	t.Parallel()
	cfg := accel.Default()

	assert.Equal(t, int32(127), quant.Saturate(cfg, 1000))
	assert.Equal(t, int32(-128), quant.Saturate(cfg, -129))
	assert.Equal(t, int32(-5), quant.Saturate(cfg, -5))
}
