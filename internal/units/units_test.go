package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		from   Unit
		to     Unit
		value  float64
		want   float64
		within float64
	}{
		{name: "meters to feet", from: Meters, to: Feet, value: 2.0, want: 6.562, within: 0.001},
		{name: "feet to meters", from: Feet, to: Meters, value: 6.562, want: 2.0, within: 0.001},
		{name: "mps to knots", from: MetersPerSecond, to: KnotsUnit, value: 10.0, want: 19.44, within: 0.01},
		{name: "celsius to fahrenheit", from: Celsius, to: Fahrenheit, value: 20.0, want: 68.0, within: 0.001},
		{name: "fahrenheit to celsius", from: Fahrenheit, to: Celsius, value: 68.0, want: 20.0, within: 0.001},
		{name: "same unit is identity", from: Meters, to: Meters, value: 3.5, want: 3.5, within: 0},
		{name: "unsupported pair passes through", from: Seconds, to: Meters, value: 12.0, want: 12.0, within: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.from.Convert(tt.value, tt.to)
			assert.InDelta(t, tt.want, got, tt.within+1e-12)
		})
	}
}

func TestConvertSystem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Feet, Meters.ConvertSystem(English))
	assert.Equal(t, KnotsUnit, MetersPerSecond.ConvertSystem(Knots))
	assert.Equal(t, Meters, Feet.ConvertSystem(Metric))
	assert.Equal(t, Degrees, Degrees.ConvertSystem(English))
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Meters, ParseUnit("wmoUnit:m"))
	assert.Equal(t, Celsius, ParseUnit(" degC "))
	assert.Equal(t, KnotsUnit, ParseUnit("kts"))
	assert.Equal(t, UnknownUnit, ParseUnit("furlongs"))
}

func TestDimensionalDataToUnitsIdempotent(t *testing.T) {
	t.Parallel()

	d := NewDimensionalData(2.0, "wave height", MeasurementLength, Meters)

	d.ToUnits(English)
	require.NotNil(t, d.Value)
	assert.InDelta(t, 6.562, *d.Value, 0.001)
	assert.Equal(t, Feet, d.Unit)

	// Converting again to the same system must not change the value.
	d.ToUnits(English)
	assert.InDelta(t, 6.562, *d.Value, 0.001)
	assert.Equal(t, Feet, d.Unit)
}

func TestDimensionalDataDirectionToUnits(t *testing.T) {
	t.Parallel()

	d := NewDimensionalData(NewDirectionFromDegrees(145), "wind direction", MeasurementDirection, Degrees)
	d.ToUnits(English)

	require.NotNil(t, d.Value)
	assert.Equal(t, 145, d.Value.Degrees)
	assert.Equal(t, Degrees, d.Unit)
}

func TestDimensionalDataMissingValue(t *testing.T) {
	t.Parallel()

	d := FromRawData("MM", "wave height", MeasurementLength, Meters)
	assert.Nil(t, d.Value)
	assert.Equal(t, "N/A", d.String())
	assert.True(t, FloatValue(d) != FloatValue(d), "missing value should read as NaN")
}

func TestDirectionNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "in range", in: 45, want: 45},
		{name: "wraps over", in: 405, want: 45},
		{name: "negative wraps", in: -90, want: 270},
		{name: "exactly 360", in: 360, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewDirectionFromDegrees(tt.in).Degrees)
		})
	}
}

func TestDirectionConventionNormalize(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 45.0, ConventionFrom.Normalize(45.0), 1e-9)
	assert.InDelta(t, 225.0, ConventionTowards.Normalize(45.0), 1e-9)
	assert.InDelta(t, 225.0, ConventionMet.Normalize(45.0), 1e-9)
	assert.InDelta(t, 0.0, ConventionFrom.Normalize(720.0), 1e-9)
}

func TestCardinalDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, North, CardinalFromDegrees(5))
	assert.Equal(t, North, CardinalFromDegrees(355))
	assert.Equal(t, East, CardinalFromDegrees(95))
	assert.Equal(t, SouthWest, CardinalFromDegrees(225))

	dir, err := ParseDirection("NNE")
	require.NoError(t, err)
	assert.Equal(t, NorthNorthEast, dir.Cardinal)

	dir, err = ParseDirection("270")
	require.NoError(t, err)
	assert.Equal(t, West, dir.Cardinal)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirectionOpposite(t *testing.T) {
	t.Parallel()

	d := NewDirectionFromDegrees(10)
	assert.Equal(t, 190, d.Invert().Degrees)
	assert.True(t, d.IsOpposite(NewDirectionFromDegrees(185)))
	assert.False(t, d.IsOpposite(NewDirectionFromDegrees(80)))
}

func TestSteepnessClassification(t *testing.T) {
	t.Parallel()

	// 2m at 15s is long-period groundswell; 3m at 5s is very steep wind chop.
	assert.Equal(t, SteepnessSwell, SteepnessFromHeightPeriod(2.0, 15.0))
	assert.Equal(t, SteepnessVerySteep, SteepnessFromHeightPeriod(3.0, 5.0))
	assert.Equal(t, SteepnessNA, SteepnessFromHeightPeriod(0.0, 10.0))
}
