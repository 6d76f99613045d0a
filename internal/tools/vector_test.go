package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-12)
	assert.InDelta(t, 0.0, Lerp(0, 10, 0.0), 1e-12)
	// No clamping outside [0,1].
	assert.InDelta(t, 15.0, Lerp(0, 10, 1.5), 1e-12)
}

func TestBilerp(t *testing.T) {
	t.Parallel()

	// Corners a,b,c,d at fractional midpoint average evenly.
	assert.InDelta(t, 2.5, Bilerp(1, 2, 3, 4, 0.5, 0.5), 1e-12)
	assert.InDelta(t, 1.0, Bilerp(1, 2, 3, 4, 0.0, 0.0), 1e-12)
	assert.InDelta(t, 4.0, Bilerp(1, 2, 3, 4, 1.0, 1.0), 1e-12)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	got := Diff([]float64{1.0, 1.5, 2.5, 4.0})

	assert.Equal(t, []float64{0.5, 0.5, 1.0, 1.5}, got)
	assert.Nil(t, Diff(nil))
	assert.Equal(t, []float64{0}, Diff([]float64{3.0}))
}

func TestArgsortStable(t *testing.T) {
	t.Parallel()

	got := Argsort([]float64{3.0, 1.0, 2.0, 1.0})

	// Equal values keep input order.
	assert.Equal(t, []int{1, 3, 2, 0}, got)
}

func TestArgsortInt(t *testing.T) {
	t.Parallel()

	got := ArgsortInt([]int{5, 2, 5, 1})

	assert.Equal(t, []int{3, 1, 0, 2}, got)
}

func TestLinspace(t *testing.T) {
	t.Parallel()

	got := Linspace(0, 1, 5)

	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1.0}, got)
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{2.0}, Linspace(2, 9, 1))
}

func TestMinMaxSkipsNaN(t *testing.T) {
	t.Parallel()

	min, max := MinMax([]float64{2.0, math.NaN(), -1.0, 7.0})

	assert.InDelta(t, -1.0, min, 1e-12)
	assert.InDelta(t, 7.0, max, 1e-12)
}

func TestMinMaxFill(t *testing.T) {
	t.Parallel()

	data := []float64{1.0, -999.0, 3.0}
	min, max := MinMaxFill(data, -900.0)

	assert.InDelta(t, 1.0, min, 1e-12)
	assert.InDelta(t, 3.0, max, 1e-12)
	assert.True(t, math.IsNaN(data[1]))
}

func TestScalarFromUV(t *testing.T) {
	t.Parallel()

	// A pure westerly (wind from the west blows toward +x).
	speed, direction := ScalarFromUV(10.0, 0.0)
	assert.InDelta(t, 10.0, speed, 1e-12)
	assert.InDelta(t, 270.0, direction, 1e-9)

	// A southerly.
	speed, direction = ScalarFromUV(0.0, 5.0)
	assert.InDelta(t, 5.0, speed, 1e-12)
	assert.InDelta(t, 180.0, direction, 1e-9)
}
