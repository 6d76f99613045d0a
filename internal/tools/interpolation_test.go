package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPchipLinearData(t *testing.T) {
	t.Parallel()

	interp, err := NewPchipInterpolator(
		[]float64{0, 1, 2, 3},
		[]float64{0, 1, 2, 3},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, interp.Interpolate(0.5), 1e-10)
	assert.InDelta(t, 1.5, interp.Interpolate(1.5), 1e-10)
	assert.InDelta(t, 2.0, interp.Interpolate(2.0), 1e-10)
}

func TestPchipBoundaryClamp(t *testing.T) {
	t.Parallel()

	interp, err := NewPchipInterpolator(
		[]float64{1, 2, 3},
		[]float64{10, 20, 30},
	)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, interp.Interpolate(0.0), 1e-12)
	assert.InDelta(t, 30.0, interp.Interpolate(5.0), 1e-12)
}

func TestPchipTwoPoints(t *testing.T) {
	t.Parallel()

	interp, err := NewPchipInterpolator(
		[]float64{0, 2},
		[]float64{1, 5},
	)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, interp.Interpolate(1.0), 1e-10)
}

func TestPchipInvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := NewPchipInterpolator([]float64{0, 1}, []float64{0})
	var invalidErr *InvalidDataError
	require.ErrorAs(t, err, &invalidErr)

	_, err = NewPchipInterpolator([]float64{0}, []float64{0})
	require.ErrorAs(t, err, &invalidErr)
}

func TestPchipMonotonicityPreserved(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 2, 3, 4}
	increasing := []float64{0, 0.1, 2.0, 2.1, 4.0}
	decreasing := []float64{4.0, 2.1, 2.0, 0.1, 0}

	up, err := NewPchipInterpolator(x, increasing)
	require.NoError(t, err)
	down, err := NewPchipInterpolator(x, decreasing)
	require.NoError(t, err)

	prevUp := math.Inf(-1)
	prevDown := math.Inf(1)
	for i := 0; i <= 400; i++ {
		xi := float64(i) / 100.0
		vUp := up.Interpolate(xi)
		vDown := down.Interpolate(xi)
		assert.GreaterOrEqual(t, vUp, prevUp-1e-12, "increasing data must stay non-decreasing at x=%f", xi)
		assert.LessOrEqual(t, vDown, prevDown+1e-12, "decreasing data must stay non-increasing at x=%f", xi)
		prevUp = vUp
		prevDown = vDown
	}
}

func TestPchipNoOvershoot(t *testing.T) {
	t.Parallel()

	// A step-like profile. A natural cubic spline would overshoot past the
	// plateau values; PCHIP must stay inside the data range.
	interp, err := NewPchipInterpolator(
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{0, 0, 0, 1, 1, 1},
	)
	require.NoError(t, err)

	for i := 0; i <= 500; i++ {
		xi := float64(i) / 100.0
		v := interp.Interpolate(xi)
		assert.GreaterOrEqual(t, v, -1e-12)
		assert.LessOrEqual(t, v, 1.0+1e-12)
	}
}

func TestCircularPchipSeamContinuity(t *testing.T) {
	t.Parallel()

	dirs := make([]float64, 36)
	vals := make([]float64, 36)
	maxAbs := 0.0
	for i := range dirs {
		dirs[i] = float64(i) * 10.0
		vals[i] = 2.0 + math.Sin(dirs[i]*math.Pi/180.0)
		if math.Abs(vals[i]) > maxAbs {
			maxAbs = math.Abs(vals[i])
		}
	}

	before, err := CircularPchip(dirs, vals, 359.999)
	require.NoError(t, err)
	after, err := CircularPchip(dirs, vals, 0.001)
	require.NoError(t, err)

	assert.InDelta(t, before, after, maxAbs*1e-3)
}

func TestCircularPchipMismatchedLengths(t *testing.T) {
	t.Parallel()

	_, err := CircularPchip([]float64{0, 90, 180}, []float64{1, 2}, 45)
	var invalidErr *InvalidDataError
	require.ErrorAs(t, err, &invalidErr)
}
