package buoy

import (
	"math"
	"time"

	"github.com/swellgrid/swellgrid/internal/spectra"
	"github.com/swellgrid/swellgrid/internal/swell"
	"github.com/swellgrid/swellgrid/internal/units"
)

const (
	missingEnergy      = 999.9
	missingCoefficient = 999.0
)

// DirectionalSpectralRecord is a full directional spectrum reconstructed
// from the five aligned NDBC spectral feeds for one observation time.
type DirectionalSpectralRecord struct {
	Date     time.Time
	Spectrum *spectra.Spectrum
}

// NewDirectionalSpectralRecord reconstructs the directional spectrum from
// the raw energy density and the four directional coefficient rows. The
// direction grid is in radians; mean and primary wave directions arrive in
// degrees. Frequency bins carrying fill sentinels in any input contribute no
// energy.
func NewDirectionalSpectralRecord(
	direction []float64,
	energy, meanDir, primaryDir, r1, r2 SpectralDataRecord,
) (*DirectionalSpectralRecord, error) {
	nk := len(energy.Frequency)
	if len(energy.Value) != nk || len(meanDir.Value) != nk || len(primaryDir.Value) != nk ||
		len(r1.Value) != nk || len(r2.Value) != nk {
		return nil, NewParseError("spectral feeds disagree on frequency bin count %d", nk)
	}

	energyClean := make([]float64, nk)
	meanRad := make([]float64, nk)
	primaryRad := make([]float64, nk)
	r1Clean := make([]float64, nk)
	r2Clean := make([]float64, nk)

	for ik := 0; ik < nk; ik++ {
		if fEq(energy.Value[ik], missingEnergy) ||
			fEq(meanDir.Value[ik], missingCoefficient) ||
			fEq(primaryDir.Value[ik], missingCoefficient) ||
			fEq(r1.Value[ik], missingCoefficient) ||
			fEq(r2.Value[ik], missingCoefficient) {
			meanRad[ik] = missingCoefficient
			primaryRad[ik] = missingCoefficient
			continue
		}

		energyClean[ik] = energy.Value[ik]
		meanRad[ik] = meanDir.Value[ik] * math.Pi / 180.0
		primaryRad[ik] = primaryDir.Value[ik] * math.Pi / 180.0
		r1Clean[ik] = r1.Value[ik]
		r2Clean[ik] = r2.Value[ik]
	}

	spectrum, err := spectra.ReconstructSpectrum(
		energy.Frequency, energyClean, meanRad, primaryRad, r1Clean, r2Clean, direction)
	if err != nil {
		return nil, err
	}

	return &DirectionalSpectralRecord{
		Date:     energy.Date,
		Spectrum: spectrum,
	}, nil
}

// JoinDirectionalRecords zips the five parsed feeds row by row into
// directional records, dropping times where any feed is missing or
// malformed.
func JoinDirectionalRecords(
	direction []float64,
	energy, meanDir, primaryDir, r1, r2 []SpectralDataRecord,
) []*DirectionalSpectralRecord {
	n := len(energy)
	for _, series := range [][]SpectralDataRecord{meanDir, primaryDir, r1, r2} {
		if len(series) < n {
			n = len(series)
		}
	}

	records := make([]*DirectionalSpectralRecord, 0, n)
	for i := 0; i < n; i++ {
		record, err := NewDirectionalSpectralRecord(
			direction, energy[i], meanDir[i], primaryDir[i], r1[i], r2[i])
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}

// SwellData implements swell.SwellProvider by partitioning the reconstructed
// spectrum.
func (r *DirectionalSpectralRecord) SwellData() (swell.SwellSummary, error) {
	return r.Spectrum.SwellData(nil, nil, nil, units.ConventionFrom)
}

// StandardDirectionGrid is the 36-bin radian grid NDBC directional spectra
// are reconstructed onto.
func StandardDirectionGrid() []float64 {
	const count = 36
	grid := make([]float64, count)
	for i := range grid {
		grid[i] = float64(i) * 2.0 * math.Pi / count
	}
	return grid
}

func fEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}
