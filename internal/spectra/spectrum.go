package spectra

import (
	"math"

	"github.com/swellgrid/swellgrid/internal/tools"
)

// SpectralAxis selects which axis a one-dimensional reduction runs over.
type SpectralAxis int

const (
	AxisFrequency SpectralAxis = iota
	AxisDirection
)

// Spectrum is a directional wave spectrum: energy density on a frequency by
// direction lattice, flat-indexed as ik + ith*nk.
type Spectrum struct {
	// Frequency bins in Hz.
	Frequency []float64 `json:"frequency"`
	// Direction bins in radians.
	Direction []float64 `json:"direction"`
	// Energy values in m²/Hz/rad.
	Energy []float64 `json:"energy"`
}

// NewSpectrum stores the axes and energy by value. Shapes are trusted here;
// operations that depend on them validate at the point of use.
func NewSpectrum(frequency, direction, energy []float64) *Spectrum {
	return &Spectrum{
		Frequency: frequency,
		Direction: direction,
		Energy:    energy,
	}
}

// NK is the number of frequency bins.
func (s *Spectrum) NK() int {
	return len(s.Frequency)
}

// DK is the vector of frequency bandwidths.
func (s *Spectrum) DK() []float64 {
	return tools.Diff(s.Frequency)
}

// NTH is the number of direction bins.
func (s *Spectrum) NTH() int {
	return len(s.Direction)
}

// DTH is the vector of direction bandwidths.
func (s *Spectrum) DTH() []float64 {
	return tools.Diff(s.Direction)
}

// EnergyAt reads a single cell.
func (s *Spectrum) EnergyAt(ik, ith int) float64 {
	return s.Energy[ik+ith*s.NK()]
}

// FrequencyAt linearly interpolates the frequency axis at a fractional
// index, clamping out-of-range indices to the boundary bins.
func (s *Spectrum) FrequencyAt(fIndex float64) float64 {
	return interpAxis(s.Frequency, fIndex)
}

// DirectionAt linearly interpolates the direction axis at a fractional index.
func (s *Spectrum) DirectionAt(dIndex float64) float64 {
	return interpAxis(s.Direction, dIndex)
}

func interpAxis(axis []float64, index float64) float64 {
	lower := math.Floor(index)
	upper := math.Ceil(index)

	if upper >= float64(len(axis)) {
		return axis[len(axis)-1]
	}
	if lower < 0 {
		return axis[0]
	}
	if lower == upper {
		return axis[int(lower)]
	}

	frac := (index - lower) / (upper - lower)
	return tools.Lerp(axis[int(lower)], axis[int(upper)], frac)
}

// Oned integrates out one axis. The result is in m²/Hz over AxisFrequency
// and m²/rad over AxisDirection.
func (s *Spectrum) Oned(axis SpectralAxis) []float64 {
	nk := s.NK()
	nth := s.NTH()

	switch axis {
	case AxisFrequency:
		dth := s.DTH()
		oned := make([]float64, nk)
		for ik := 0; ik < nk; ik++ {
			for ith := 0; ith < nth; ith++ {
				oned[ik] += dth[ith] * s.Energy[ik+ith*nk]
			}
		}
		return oned
	default:
		dk := s.DK()
		oned := make([]float64, nth)
		for ith := 0; ith < nth; ith++ {
			for ik := 0; ik < nk; ik++ {
				oned[ith] += dk[ik] * s.Energy[ik+ith*nk]
			}
		}
		return oned
	}
}

// InterpEnergy evaluates the spectrum at an arbitrary frequency (Hz) and
// direction (rad) by bilinear interpolation. The direction axis wraps.
func (s *Spectrum) InterpEnergy(frequency, direction float64) float64 {
	nk := s.NK()
	nth := s.NTH()
	if nk == 0 || nth == 0 {
		return 0.0
	}

	ik := nk - 1
	for i, f := range s.Frequency {
		if frequency <= f {
			ik = i
			break
		}
	}
	if ik > 0 {
		ik--
	}
	ikNext := ik + 1
	if ikNext >= nk {
		ikNext = nk - 1
	}

	// Default to the wrap bracket between the last and first bins; interior
	// angles override it.
	ith := nth - 1
	for i := 1; i < nth; i++ {
		if direction > s.Direction[i-1] && direction <= s.Direction[i] {
			ith = i - 1
			break
		}
	}
	ithNext := (ith + 1) % nth

	fLow := s.Frequency[ik]
	fHigh := s.Frequency[ikNext]
	dx := 0.0
	if fHigh > fLow {
		dx = (frequency - fLow) / (fHigh - fLow)
	}

	dLow := s.Direction[ith]
	span := s.Direction[ithNext] - dLow
	if span <= 0 {
		span += 2.0 * math.Pi
	}
	offset := direction - dLow
	if offset < 0 {
		offset += 2.0 * math.Pi
	}
	dy := offset / span

	return tools.Bilerp(
		s.Energy[ik+ith*nk],
		s.Energy[ikNext+ith*nk],
		s.Energy[ik+ithNext*nk],
		s.Energy[ikNext+ithNext*nk],
		clamp01(dx),
		clamp01(dy),
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ProjectPolar rasterizes the spectrum onto a width by height polar image
// with frequency mapped to radius and direction to the compass angle
// 3π/2 − atan2. NaN samples render as 0.
func (s *Spectrum) ProjectPolar(width, height int) []float64 {
	out := make([]float64, width*height)

	xc := float64(width) / 2.0
	yc := float64(height) / 2.0
	maxRadius := float64(width) / 2.0

	fMin := s.Frequency[0]
	fMax := s.Frequency[s.NK()-1]

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - xc
			dy := float64(y) - yc
			r := math.Sqrt(dx*dx+dy*dy) / maxRadius
			if r > 1.0 {
				continue
			}

			f := fMin + r*(fMax-fMin)
			t := 3.0*math.Pi/2.0 - math.Atan2(dy, dx)
			t = math.Mod(t+4.0*math.Pi, 2.0*math.Pi)

			e := s.InterpEnergy(f, t)
			if math.IsNaN(e) {
				e = 0.0
			}
			out[x+y*width] = e
		}
	}
	return out
}

// EnergyRange is the (min, max) of the energy array, skipping NaN.
func (s *Spectrum) EnergyRange() (float64, float64) {
	return tools.MinMax(s.Energy)
}

// Partition segments the spectrum into discrete swell regions.
func (s *Spectrum) Partition(levels int) ([]int, int, error) {
	return tools.Watershed(s.Energy, s.NK(), s.NTH(), levels, nil)
}
