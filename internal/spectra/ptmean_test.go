package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swellgrid/swellgrid/internal/tools"
	"github.com/swellgrid/swellgrid/internal/units"
)

// gaussianBumpSpectrum builds a 32x36 spectrum with a single energy bump
// centered at (ik=12, ith=18) on the standard geometric frequency grid.
func gaussianBumpSpectrum() *Spectrum {
	const nk, nth = 32, 36
	frequency, direction := testGrid(nk, nth)

	energy := make([]float64, nk*nth)
	for ith := 0; ith < nth; ith++ {
		for ik := 0; ik < nk; ik++ {
			dk := float64(ik - 12)
			dth := float64(ith - 18)
			energy[ik+ith*nk] = math.Exp(-(dk*dk + dth*dth) / 18.0)
		}
	}
	return NewSpectrum(frequency, direction, energy)
}

// midbandZeroMoment integrates E df dθ with trapezoidal mid-band frequency
// bandwidths, extending the geometric grid one bin at each end.
func midbandZeroMoment(s *Spectrum) float64 {
	nk := s.NK()
	nth := s.NTH()
	dth := 2.0 * math.Pi / float64(nth)

	extended := make([]float64, nk+2)
	extended[0] = s.Frequency[0] / 1.07
	copy(extended[1:], s.Frequency)
	extended[nk+1] = s.Frequency[nk-1] * 1.07

	m0 := 0.0
	for ik := 0; ik < nk; ik++ {
		df := 0.5 * (extended[ik+2] - extended[ik])
		for ith := 0; ith < nth; ith++ {
			m0 += s.EnergyAt(ik, ith) * df * dth
		}
	}
	return m0
}

func TestSwellDataSinglePeak(t *testing.T) {
	t.Parallel()

	s := gaussianBumpSpectrum()

	summary, err := s.SwellData(nil, nil, nil, units.ConventionFrom)
	require.NoError(t, err)

	expectedHs := 4.0 * math.Sqrt(midbandZeroMoment(s))

	require.NotNil(t, summary.Summary.WaveHeight.Value)
	assert.InEpsilon(t, expectedHs, *summary.Summary.WaveHeight.Value, 0.01)

	// One basin covers the whole bump, so exactly one component survives
	// and it carries the same energy as the summary.
	require.Len(t, summary.Components, 1)
	assert.InDelta(t, *summary.Summary.WaveHeight.Value, *summary.Components[0].WaveHeight.Value, 1e-9)

	// Peak period from the 1-D argmax. The geometric bandwidth growth
	// shifts the argmax one bin above the bump center.
	require.NotNil(t, summary.Summary.Period.Value)
	assert.InDelta(t, 1.0/s.Frequency[13], *summary.Summary.Period.Value, 1e-6)

	// The bump is centered on θ=π, which reads as a 270° compass heading.
	require.NotNil(t, summary.Summary.Direction.Value)
	assert.InDelta(t, 270.0, float64(summary.Summary.Direction.Value.Degrees), 1.0)
}

func TestSwellDataRoundTripHeight(t *testing.T) {
	t.Parallel()

	s := gaussianBumpSpectrum()

	summary, err := s.SwellData(nil, nil, nil, units.ConventionFrom)
	require.NoError(t, err)

	m0 := midbandZeroMoment(s)
	assert.InEpsilon(t, 4.0*math.Sqrt(m0), *summary.Summary.WaveHeight.Value, 0.01)
}

func TestPtMeanDirectionConvention(t *testing.T) {
	t.Parallel()

	s := gaussianBumpSpectrum()
	labels, count, err := s.Partition(100)
	require.NoError(t, err)

	dth := 2.0 * math.Pi / 36.0

	summaryFrom, _, err := PtMean(count, labels, s.Frequency, s.Direction, s.Energy, dth,
		nil, nil, nil, units.ConventionFrom)
	require.NoError(t, err)

	summaryTowards, _, err := PtMean(count, labels, s.Frequency, s.Direction, s.Energy, dth,
		nil, nil, nil, units.ConventionTowards)
	require.NoError(t, err)

	from := summaryFrom.Direction.Value.Degrees
	towards := summaryTowards.Direction.Value.Degrees
	assert.Equal(t, (from+180)%360, towards)
}

func TestPtMeanWithWind(t *testing.T) {
	t.Parallel()

	s := gaussianBumpSpectrum()
	labels, count, err := s.Partition(100)
	require.NoError(t, err)

	dth := 2.0 * math.Pi / 36.0
	depth := 40.0
	windSpeed := 12.0
	windDirection := 180.0

	withWind, _, err := PtMean(count, labels, s.Frequency, s.Direction, s.Energy, dth,
		&depth, &windSpeed, &windDirection, units.ConventionFrom)
	require.NoError(t, err)

	calm, _, err := PtMean(count, labels, s.Frequency, s.Direction, s.Energy, dth,
		&depth, nil, nil, units.ConventionFrom)
	require.NoError(t, err)

	// Wind-sea affiliation tags cells but does not change the bulk moments.
	assert.InDelta(t, *calm.WaveHeight.Value, *withWind.WaveHeight.Value, 1e-9)
}

func TestPtMeanShapeValidation(t *testing.T) {
	t.Parallel()

	_, _, err := PtMean(1, []int{0, 0}, []float64{0.1}, []float64{0.0, math.Pi}, []float64{1.0},
		math.Pi, nil, nil, nil, units.ConventionFrom)

	var invalidErr *tools.InvalidDataError
	require.ErrorAs(t, err, &invalidErr)
}

func TestSwellDataTwoPeaks(t *testing.T) {
	t.Parallel()

	const nk, nth = 32, 36
	frequency, direction := testGrid(nk, nth)

	energy := make([]float64, nk*nth)
	for ith := 0; ith < nth; ith++ {
		for ik := 0; ik < nk; ik++ {
			d1k := float64(ik - 8)
			d1th := float64(ith - 9)
			d2k := float64(ik - 22)
			d2th := float64(ith - 27)
			energy[ik+ith*nk] = math.Exp(-(d1k*d1k+d1th*d1th)/8.0) +
				0.5*math.Exp(-(d2k*d2k+d2th*d2th)/8.0)
		}
	}

	s := NewSpectrum(frequency, direction, energy)
	summary, err := s.SwellData(nil, nil, nil, units.ConventionFrom)
	require.NoError(t, err)

	require.Len(t, summary.Components, 2)

	// Components are ordered by peak spectral density, strongest first.
	require.NotNil(t, summary.Components[0].Energy)
	require.NotNil(t, summary.Components[1].Energy)
	assert.Greater(t, *summary.Components[0].Energy, *summary.Components[1].Energy)

	first := *summary.Components[0].WaveHeight.Value
	second := *summary.Components[1].WaveHeight.Value

	// The combined component energy reproduces the summary height.
	rss := math.Sqrt(first*first + second*second)
	assert.InEpsilon(t, *summary.Summary.WaveHeight.Value, rss, 0.05)
}
