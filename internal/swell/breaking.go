package swell

import (
	"errors"
	"math"

	"github.com/swellgrid/swellgrid/internal/tools"
	"github.com/swellgrid/swellgrid/internal/units"
)

// BreakingEstimate carries the breaking wave height and the water depth at
// which it breaks, both in meters.
type BreakingEstimate struct {
	WaveHeight float64
	WaterDepth float64
}

// EstimateBreakingHeight solves for the breaking characteristics of a swell
// component approaching a beach. The incident angle between the swell
// direction and the shore normal is folded into the first quadrant. When the
// dispersion solver fails to converge, the deep-water wavelength substitutes
// for the local one.
func EstimateBreakingHeight(component Swell, beachAngle, beachSlope, depth float64) (BreakingEstimate, error) {
	if component.WaveHeight.Value == nil || component.Period.Value == nil || component.Direction.Value == nil {
		return BreakingEstimate{}, NewInsufficientDataError("swell component is missing height, period or direction")
	}

	height := *component.WaveHeight.Value
	period := *component.Period.Value
	waveDirection := float64(component.Direction.Value.Degrees)

	incident := math.Abs(waveDirection - beachAngle)
	incident = math.Mod(incident, 90.0)

	heightB, depthB, err := tools.BreakWave(period, incident, height, beachSlope, depth)
	if err != nil {
		var convErr *tools.ConvergenceError
		if !errors.As(err, &convErr) {
			return BreakingEstimate{}, err
		}
		heightB, depthB = deepWaterBreak(period, incident, height, beachSlope)
	}

	return BreakingEstimate{
		WaveHeight: heightB,
		WaterDepth: depthB,
	}, nil
}

// deepWaterBreak repeats the breaker solution with the deep-water wavelength
// in place of the finite-depth one.
func deepWaterBreak(period, incidentAngle, height, beachSlope float64) (float64, float64) {
	angleRad := incidentAngle * math.Pi / 180.0

	deepWavelength := tools.Gravity * period * period / (2.0 * math.Pi)
	theta := math.Asin(math.Sin(angleRad))
	refraction := math.Sqrt(math.Cos(angleRad) / math.Cos(theta))

	a := 43.8 * (1.0 - math.Exp(-19.0*beachSlope))
	b := 1.56 / (1.0 + math.Exp(-19.5*beachSlope))

	refracted := refraction * height
	w := 0.56 * math.Pow(refracted/deepWavelength, -0.2)

	heightB := w * refracted
	depthB := heightB / (b - a*(heightB/(tools.Gravity*period*period)))
	return heightB, depthB
}

// BreakingComponent estimates breakers for the strongest component of a
// summary, falling back to the summary itself when no components survive
// filtering.
func BreakingComponent(summary SwellSummary, beachAngle, beachSlope, depth float64) (BreakingEstimate, error) {
	component := summary.Summary
	if len(summary.Components) > 0 {
		component = summary.Components[0]
	}
	return EstimateBreakingHeight(component, beachAngle, beachSlope, depth)
}

// RootSumSquareHeight combines component wave heights into an overall sea
// height estimate.
func RootSumSquareHeight(components []Swell) units.DimensionalData[float64] {
	sum := 0.0
	for _, c := range components {
		if c.WaveHeight.Value == nil {
			continue
		}
		sum += *c.WaveHeight.Value * *c.WaveHeight.Value
	}
	return units.NewDimensionalData(math.Sqrt(sum), "wave height", units.MeasurementLength, units.Meters)
}
