package units

import "math"

// Steepness classifies how peaked a swell is relative to its deep-water
// wavelength, following the NDBC wave-steepness buckets.
type Steepness string

const (
	SteepnessVerySteep Steepness = "VERY_STEEP"
	SteepnessSteep     Steepness = "STEEP"
	SteepnessAverage   Steepness = "AVERAGE"
	SteepnessSwell     Steepness = "SWELL"
	SteepnessNA        Steepness = "N/A"
)

// SteepnessFromHeightPeriod classifies from significant wave height (m) and
// peak period (s) using the deep-water wavelength L0 = gT²/2π.
func SteepnessFromHeightPeriod(waveHeight, period float64) Steepness {
	if waveHeight <= 0 || period <= 0 || math.IsNaN(waveHeight) || math.IsNaN(period) {
		return SteepnessNA
	}

	deepWavelength := 9.81 * period * period / (2.0 * math.Pi)
	ratio := waveHeight / deepWavelength

	switch {
	case ratio >= 1.0/16.0:
		return SteepnessVerySteep
	case ratio >= 1.0/32.0:
		return SteepnessSteep
	case ratio >= 1.0/64.0:
		return SteepnessAverage
	default:
		return SteepnessSwell
	}
}
