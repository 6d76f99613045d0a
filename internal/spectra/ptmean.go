package spectra

import (
	"fmt"
	"math"

	"github.com/swellgrid/swellgrid/internal/swell"
	"github.com/swellgrid/swellgrid/internal/tools"
	"github.com/swellgrid/swellgrid/internal/units"
)

// Frequency grid ratio of the WAVEWATCH III spectral discretization.
const sigmaRatio = 1.07

// Depth assumed when a caller has no bathymetry for the point.
const defaultDepth = 2000.0

// Wind speed multiplier for the wind-sea affiliation cutoff.
const windSeaMultiplier = 1.7

// PtMean computes bulk wave parameters per partition following the WW3
// PTMEAN reduction. Slot 0 integrates the whole spectrum and becomes the
// summary; slots 1..partitionCount-1 integrate the labeled basins and become
// the components. The direction bandwidth dth is assumed uniform. Optional
// depth, wind speed (m/s) and wind direction (degrees) refine the phase
// speeds and the wind-sea affiliation.
func PtMean(
	partitionCount int,
	labels []int,
	frequency, direction, energy []float64,
	dth float64,
	depth, windSpeed, windDirection *float64,
	conv units.DirectionConvention,
) (swell.Swell, []swell.Swell, error) {
	nk := len(frequency)
	nth := len(direction)
	if len(energy) != nk*nth {
		return swell.Swell{}, nil, tools.NewInvalidDataError(
			fmt.Sprintf("energy length %d does not match grid %dx%d", len(energy), nk, nth))
	}
	if len(labels) != len(energy) {
		return swell.Swell{}, nil, tools.NewInvalidDataError(
			fmt.Sprintf("label map length %d does not match energy length %d", len(labels), len(energy)))
	}
	if partitionCount < 1 {
		partitionCount = 1
	}

	h := defaultDepth
	if depth != nil {
		h = *depth
	}
	u := 0.0
	if windSpeed != nil {
		u = *windSpeed
	}
	uDir := 0.0
	if windDirection != nil {
		uDir = *windDirection * math.Pi / 180.0
	}

	// Extended radian-frequency grid: sig[1] anchors the first bin center
	// and the rest fill geometrically.
	sig := make([]float64, nk+2)
	sig[1] = 2.0 * math.Pi * frequency[0]
	sig[0] = sig[1] / sigmaRatio
	for k := 2; k < nk+2; k++ {
		sig[k] = sig[k-1] * sigmaRatio
	}

	dsii := make([]float64, nk)
	dsii[0] = 0.5 * sig[1] * (sigmaRatio - 1.0)
	for k := 1; k < nk-1; k++ {
		dsii[k] = 0.5 * (sig[k+2] - sig[k])
	}
	if nk > 1 {
		dsii[nk-1] = sig[nk] * (sigmaRatio - 1.0) / (2.0 * sigmaRatio)
	}

	// Phase speed per frequency bin for the wind-sea cutoff.
	phaseSpeed := make([]float64, nk)
	for k := 0; k < nk; k++ {
		wn, _ := tools.Wavenu3(sig[k+1], h)
		phaseSpeed[k] = sig[k+1] / wn
	}

	sigCut := windSeaCutoff(direction, sig, phaseSpeed, u, uDir)

	np := partitionCount
	sume := make([]float64, np)
	sume1 := make([]float64, np)
	sume2 := make([]float64, np)
	sumem1 := make([]float64, np)
	sumeqp := make([]float64, np)
	sumfw := make([]float64, np)
	sumecos := make([]float64, np)
	sumesin := make([]float64, np)
	efpmax := make([]float64, np)
	oned := make([]float64, np*nk)
	ebandLast := make([]float64, np)

	accumulate := func(p, ik, ith int, e float64) {
		sigc := sig[ik+1]
		contrib := e * dsii[ik] * dth / (2.0 * math.Pi)

		sume[p] += contrib
		sume1[p] += contrib * sigc
		sume2[p] += contrib * sigc * sigc
		sumem1[p] += contrib / sigc
		sumeqp[p] += e * e * dsii[ik] * sigc
		sumecos[p] += contrib * math.Cos(direction[ith])
		sumesin[p] += contrib * math.Sin(direction[ith])

		if sigc < sigCut[ith] {
			sumfw[p] += contrib
		}

		oned[p*nk+ik] += e * dsii[ik]
		if e > efpmax[p] {
			efpmax[p] = e
		}
		if ik == nk-1 {
			ebandLast[p] += e
		}
	}

	for ith := 0; ith < nth; ith++ {
		for ik := 0; ik < nk; ik++ {
			e := energy[ik+ith*nk]
			if math.IsNaN(e) {
				continue
			}

			accumulate(0, ik, ith, e)

			label := labels[ik+ith*nk]
			if label >= 1 && label < np {
				accumulate(label, ik, ith, e)
			}
		}
	}

	// Analytic f^-5 tail beyond the last bin.
	fte := 0.25 * sig[nk] * sig[nk] * dth
	for p := 0; p < np; p++ {
		eband := ebandLast[p]
		sume[p] += fte * eband
		sume1[p] += fte * (0.3333 / 0.25) * eband
		sume2[p] += fte * (0.5 / 0.25) * eband
		sumem1[p] += fte * (0.2 / 0.25) * eband
		sumeqp[p] += fte * eband
		sumfw[p] += fte * eband
	}

	components := make([]swell.Swell, 0, np-1)
	summary := partitionSwell(0, nk, sig, sume, sumecos, sumesin, efpmax, oned, conv)
	for p := 1; p < np; p++ {
		components = append(components,
			partitionSwell(p, nk, sig, sume, sumecos, sumesin, efpmax, oned, conv))
	}

	return summary, components, nil
}

func partitionSwell(
	p, nk int,
	sig, sume, sumecos, sumesin, efpmax, oned []float64,
	conv units.DirectionConvention,
) swell.Swell {
	hs := 4.0 * math.Sqrt(math.Max(sume[p], 0.0))

	ifp := 0
	peak := math.Inf(-1)
	for ik := 0; ik < nk; ik++ {
		if oned[p*nk+ik] > peak {
			peak = oned[p*nk+ik]
			ifp = ik
		}
	}
	tp := 2.0 * math.Pi / sig[ifp+1]

	meanDeg := math.Mod(630.0-math.Atan2(sumesin[p], sumecos[p])*180.0/math.Pi, 360.0)
	meanDeg = math.Mod(meanDeg+180.0, 360.0)
	meanDeg = conv.Normalize(meanDeg)

	component := swell.NewSwell(
		units.Metric,
		hs,
		tp,
		units.NewDirectionFromDegrees(int(math.Round(meanDeg))),
	)
	e := efpmax[p]
	component.Energy = &e
	return component
}

// windSeaCutoff computes the per-direction cutoff frequency below which a
// cell counts as wind-sea affiliated. Bins whose phase speed exceeds the
// alongwind component outrun the wind and stay swell.
func windSeaCutoff(direction, sig, phaseSpeed []float64, windSpeed, windDirRad float64) []float64 {
	nk := len(phaseSpeed)
	cut := make([]float64, len(direction))

	for ith, theta := range direction {
		upar := windSeaMultiplier * windSpeed * math.Max(0.0, math.Cos(theta-windDirRad))

		if upar <= phaseSpeed[nk-1] {
			// Even the shortest waves outrun the wind.
			cut[ith] = 0.0
			continue
		}
		if upar >= phaseSpeed[0] {
			cut[ith] = sig[nk+1]
			continue
		}

		// Phase speed decreases with frequency; find the crossing and
		// interpolate between adjacent bin centers.
		for k := 0; k < nk-1; k++ {
			if phaseSpeed[k] >= upar && upar > phaseSpeed[k+1] {
				frac := (phaseSpeed[k] - upar) / (phaseSpeed[k] - phaseSpeed[k+1])
				cut[ith] = sig[k+1] + frac*(sig[k+2]-sig[k+1])
				break
			}
		}
	}
	return cut
}
