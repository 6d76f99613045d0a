package forecast

import (
	"time"

	"github.com/swellgrid/swellgrid/internal/swell"
	"github.com/swellgrid/swellgrid/internal/units"
)

// Breaker heights are scaled down from the theoretical solution, and the
// forecast range bottom sits a fixed ratio below the top.
const (
	breakingHeightScale = 0.8
	minBreakingRatio    = 1.4
)

// BeachConditions describes the break a forecast is computed for: the
// compass angle of the shore normal, the bottom slope and the water depth at
// the measurement point.
type BeachConditions struct {
	Angle float64
	Slope float64
	Depth float64
}

// SurfForecastRecord is one time step of a surf forecast: the offshore sea
// state, its component swells, local wind, and the derived breaking height
// range.
type SurfForecastRecord struct {
	Date              time.Time                              `json:"date"`
	WaveSummary       swell.Swell                            `json:"wave_summary"`
	SwellComponents   []swell.Swell                          `json:"swell_components"`
	WindSpeed         units.DimensionalData[float64]         `json:"wind_speed"`
	WindDirection     units.DimensionalData[units.Direction] `json:"wind_direction"`
	MinBreakingHeight units.DimensionalData[float64]         `json:"minimum_breaking_height"`
	MaxBreakingHeight units.DimensionalData[float64]         `json:"maximum_breaking_height"`
}

// NewSurfForecastRecord derives the breaking height range for one summarized
// sea state. The strongest component drives the breaker solution.
func NewSurfForecastRecord(date time.Time, summary swell.SwellSummary, conditions BeachConditions) (*SurfForecastRecord, error) {
	estimate, err := swell.BreakingComponent(summary, conditions.Angle, conditions.Slope, conditions.Depth)
	if err != nil {
		return nil, err
	}

	maxHeight := estimate.WaveHeight * breakingHeightScale
	minHeight := maxHeight / minBreakingRatio

	return &SurfForecastRecord{
		Date:            date,
		WaveSummary:     summary.Summary,
		SwellComponents: summary.Components,
		MinBreakingHeight: units.NewDimensionalData(
			minHeight, "minimum breaking wave height", units.MeasurementLength, units.Meters),
		MaxBreakingHeight: units.NewDimensionalData(
			maxHeight, "maximum breaking wave height", units.MeasurementLength, units.Meters),
	}, nil
}

// MergeWind attaches wind observations from a weather source to the record.
func (r *SurfForecastRecord) MergeWind(speed units.DimensionalData[float64], direction units.DimensionalData[units.Direction]) {
	r.WindSpeed = speed
	r.WindDirection = direction
}

// ToUnits converts every dimensional field in place.
func (r *SurfForecastRecord) ToUnits(system units.UnitSystem) {
	r.WaveSummary.ToUnits(system)
	for i := range r.SwellComponents {
		r.SwellComponents[i].ToUnits(system)
	}
	r.WindSpeed.ToUnits(system)
	r.WindDirection.ToUnits(system)
	r.MinBreakingHeight.ToUnits(system)
	r.MaxBreakingHeight.ToUnits(system)
}
