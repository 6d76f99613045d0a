package model

import (
	"fmt"
	"math"
	"time"

	"github.com/swellgrid/swellgrid/internal/swell"
	"github.com/swellgrid/swellgrid/internal/units"
)

// KeyMissingError reports a required GRIB variable absent from a decoded
// record.
type KeyMissingError struct {
	Variable string
}

func (e *KeyMissingError) Error() string {
	return fmt.Sprintf("grib record is missing variable %s", e.Variable)
}

// GRIBPointRecord is one forecast time step extracted from gridded GRIB
// output at a single point: the combined sea state, wind, and the individual
// swell trains the model tracked.
type GRIBPointRecord struct {
	Date            time.Time                              `json:"date"`
	WaveSummary     swell.Swell                            `json:"wave_summary"`
	WindSpeed       units.DimensionalData[float64]         `json:"wind_speed"`
	WindDirection   units.DimensionalData[units.Direction] `json:"wind_direction"`
	SwellComponents []swell.Swell                          `json:"swell_components"`
}

// NewGRIBPointRecord assembles a point record from decoded variable values
// keyed by GRIB abbreviation, with ordered-sequence levels suffixed as
// SWELL_0, SWPER_0 and so on. The summary and wind variables are required;
// swell components are taken as far as the model tracked them, and a
// component with any undefined value is skipped.
func NewGRIBPointRecord(date time.Time, values map[string]float64) (*GRIBPointRecord, error) {
	waveHeight, err := requireValue(values, "HTSGW")
	if err != nil {
		return nil, err
	}
	wavePeriod, err := requireValue(values, "PERPW")
	if err != nil {
		return nil, err
	}
	waveDirection, err := requireValue(values, "DIRPW")
	if err != nil {
		return nil, err
	}
	windSpeed, err := requireValue(values, "WIND")
	if err != nil {
		return nil, err
	}
	windDirection, err := requireValue(values, "WDIR")
	if err != nil {
		return nil, err
	}

	record := &GRIBPointRecord{
		Date: date,
		WaveSummary: swell.NewSwell(
			units.Metric, waveHeight, wavePeriod,
			units.NewDirectionFromDegrees(int(math.Round(waveDirection)))),
		WindSpeed: units.NewDimensionalData(
			windSpeed, "wind speed", units.MeasurementSpeed, units.MetersPerSecond),
		WindDirection: units.NewDimensionalData(
			units.NewDirectionFromDegrees(int(math.Round(windDirection))),
			"wind direction", units.MeasurementDirection, units.Degrees),
	}

	for i := 0; i <= 3; i++ {
		height, hasHeight := values[fmt.Sprintf("SWELL_%d", i)]
		period, hasPeriod := values[fmt.Sprintf("SWPER_%d", i)]
		direction, hasDirection := values[fmt.Sprintf("SWDIR_%d", i)]
		if !hasHeight || !hasPeriod || !hasDirection {
			continue
		}
		if component, ok := buildComponent(height, period, direction); ok {
			record.SwellComponents = append(record.SwellComponents, component)
		}
	}

	height, hasHeight := values["WVHGT"]
	period, hasPeriod := values["WVPER"]
	direction, hasDirection := values["WVDIR"]
	if hasHeight && hasPeriod && hasDirection {
		if component, ok := buildComponent(height, period, direction); ok {
			record.SwellComponents = append(record.SwellComponents, component)
		}
	}

	return record, nil
}

func buildComponent(height, period, direction float64) (swell.Swell, bool) {
	if math.IsNaN(height) || math.IsNaN(period) || math.IsNaN(direction) {
		return swell.Swell{}, false
	}
	return swell.NewSwell(
		units.Metric, height, period,
		units.NewDirectionFromDegrees(int(math.Round(direction)))), true
}

func requireValue(values map[string]float64, key string) (float64, error) {
	value, ok := values[key]
	if !ok {
		return 0, &KeyMissingError{Variable: key}
	}
	return value, nil
}
