package buoy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spectralRecord(frequency, value []float64) SpectralDataRecord {
	return SpectralDataRecord{
		Date:      time.Date(2023, 1, 13, 10, 0, 0, 0, time.UTC),
		Value:     value,
		Frequency: frequency,
	}
}

func TestNewDirectionalSpectralRecord(t *testing.T) {
	t.Parallel()

	frequency := []float64{0.05, 0.06, 0.07}
	energy := spectralRecord(frequency, []float64{0.5, 1.2, 0.3})
	meanDir := spectralRecord(frequency, []float64{180, 190, 200})
	primaryDir := spectralRecord(frequency, []float64{185, 195, 205})
	r1 := spectralRecord(frequency, []float64{0.6, 0.7, 0.5})
	r2 := spectralRecord(frequency, []float64{0.3, 0.4, 0.2})

	record, err := NewDirectionalSpectralRecord(
		StandardDirectionGrid(), energy, meanDir, primaryDir, r1, r2)
	require.NoError(t, err)

	assert.Equal(t, 3, record.Spectrum.NK())
	assert.Equal(t, 36, record.Spectrum.NTH())
	assert.Equal(t, energy.Date, record.Date)

	total := 0.0
	for _, e := range record.Spectrum.Energy {
		assert.GreaterOrEqual(t, e, 0.0)
		total += e
	}
	assert.Greater(t, total, 0.0)
}

func TestNewDirectionalSpectralRecordSentinels(t *testing.T) {
	t.Parallel()

	frequency := []float64{0.05, 0.06}
	energy := spectralRecord(frequency, []float64{999.9, 1.0})
	meanDir := spectralRecord(frequency, []float64{180, 999.0})
	primaryDir := spectralRecord(frequency, []float64{185, 195})
	r1 := spectralRecord(frequency, []float64{0.6, 0.7})
	r2 := spectralRecord(frequency, []float64{0.3, 0.4})

	record, err := NewDirectionalSpectralRecord(
		StandardDirectionGrid(), energy, meanDir, primaryDir, r1, r2)
	require.NoError(t, err)

	// Both frequency bins carry a fill sentinel somewhere, so the whole
	// spectrum is empty.
	for _, e := range record.Spectrum.Energy {
		assert.Equal(t, 0.0, e)
	}
}

func TestNewDirectionalSpectralRecordMismatch(t *testing.T) {
	t.Parallel()

	frequency := []float64{0.05, 0.06}
	energy := spectralRecord(frequency, []float64{0.5, 1.2})
	short := spectralRecord(frequency, []float64{180})
	ok := spectralRecord(frequency, []float64{0.5, 0.5})

	_, err := NewDirectionalSpectralRecord(
		StandardDirectionGrid(), energy, short, ok, ok, ok)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDirectionalRecordSwellData(t *testing.T) {
	t.Parallel()

	// A narrow swell band centered at 0.08 Hz from 250°.
	nk := 10
	frequency := make([]float64, nk)
	energyValues := make([]float64, nk)
	meanValues := make([]float64, nk)
	primaryValues := make([]float64, nk)
	r1Values := make([]float64, nk)
	r2Values := make([]float64, nk)

	for i := range frequency {
		frequency[i] = 0.05 + 0.01*float64(i)
		d := float64(i - 3)
		energyValues[i] = 2.0 * math.Exp(-d*d/2.0)
		meanValues[i] = 250
		primaryValues[i] = 250
		r1Values[i] = 0.8
		r2Values[i] = 0.4
	}

	record, err := NewDirectionalSpectralRecord(
		StandardDirectionGrid(),
		spectralRecord(frequency, energyValues),
		spectralRecord(frequency, meanValues),
		spectralRecord(frequency, primaryValues),
		spectralRecord(frequency, r1Values),
		spectralRecord(frequency, r2Values),
	)
	require.NoError(t, err)

	summary, err := record.SwellData()
	require.NoError(t, err)

	require.NotNil(t, summary.Summary.WaveHeight.Value)
	assert.Greater(t, *summary.Summary.WaveHeight.Value, 0.0)
	assert.NotEmpty(t, summary.Components)
}

func TestJoinDirectionalRecords(t *testing.T) {
	t.Parallel()

	frequency := []float64{0.05, 0.06}
	good := spectralRecord(frequency, []float64{0.5, 0.6})
	bad := spectralRecord(frequency, []float64{0.5})

	records := JoinDirectionalRecords(
		StandardDirectionGrid(),
		[]SpectralDataRecord{good, good},
		[]SpectralDataRecord{good, bad},
		[]SpectralDataRecord{good, good},
		[]SpectralDataRecord{good, good},
		[]SpectralDataRecord{good, good},
	)

	// The second time step has a malformed feed and is dropped.
	assert.Len(t, records, 1)
}
