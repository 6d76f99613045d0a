package spectra

import (
	"fmt"
	"math"

	"github.com/swellgrid/swellgrid/internal/tools"
)

// missingDirection marks frequency bins whose directional coefficients were
// not observed.
const missingDirection = 999.0

// ReconstructDirectional rebuilds a directional spectrum from the
// one-dimensional energy density and the first two pairs of Fourier polar
// coefficients, using the NDBC longuet-higgins expansion
//
//	E(f,θ) = S(f) · (1/π) · (0.5 + r1·cos(θ−α1) + r2·cos(2(θ−α2)))
//
// truncated at zero so energy never goes negative. All angles are radians;
// a value of 999.0 in any directional input marks that frequency bin as
// missing and its energy is zeroed. The resulting spectrum carries directions
// in the From convention.
func ReconstructDirectional(energy, meanDir, primaryDir, r1, r2, direction []float64) (*Spectrum, error) {
	nk := len(energy)
	if len(meanDir) != nk || len(primaryDir) != nk || len(r1) != nk || len(r2) != nk {
		return nil, tools.NewInvalidDataError(
			fmt.Sprintf("directional coefficient arrays must all have %d frequency bins", nk))
	}

	nth := len(direction)
	values := make([]float64, nk*nth)

	for ik := 0; ik < nk; ik++ {
		if meanDir[ik] == missingDirection || primaryDir[ik] == missingDirection {
			continue
		}

		for ith := 0; ith < nth; ith++ {
			first := r1[ik] * math.Cos(direction[ith]-meanDir[ik])
			second := r2[ik] * math.Cos(2.0*(direction[ith]-primaryDir[ik]))
			e := energy[ik] * (1.0 / math.Pi) * (0.5 + first + second)
			values[ik+ith*nk] = math.Max(0.0, e)
		}
	}

	return &Spectrum{
		Frequency: nil,
		Direction: direction,
		Energy:    values,
	}, nil
}

// ReconstructSpectrum is ReconstructDirectional with the frequency axis
// attached, which most callers want for downstream integration.
func ReconstructSpectrum(frequency, energy, meanDir, primaryDir, r1, r2, direction []float64) (*Spectrum, error) {
	if len(frequency) != len(energy) {
		return nil, tools.NewInvalidDataError(
			fmt.Sprintf("frequency has %d bins but energy has %d", len(frequency), len(energy)))
	}

	spectrum, err := ReconstructDirectional(energy, meanDir, primaryDir, r1, r2, direction)
	if err != nil {
		return nil, err
	}
	spectrum.Frequency = frequency
	return spectrum, nil
}
