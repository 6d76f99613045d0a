package swell

import (
	"fmt"
	"math"

	"github.com/swellgrid/swellgrid/internal/tools"
	"github.com/swellgrid/swellgrid/internal/units"
)

// Swell is a single coherent wave train described by its significant height,
// period and direction. Energy carries the peak spectral density of the
// partition that produced the component, when one exists.
type Swell struct {
	WaveHeight units.DimensionalData[float64]         `json:"wave_height"`
	Period     units.DimensionalData[float64]         `json:"period"`
	Direction  units.DimensionalData[units.Direction] `json:"direction"`
	Energy     *float64                               `json:"energy,omitempty"`
}

// NewSwell builds a swell component in the given unit system.
func NewSwell(system units.UnitSystem, waveHeight, period float64, direction units.Direction) Swell {
	heightUnit := units.Meters.ConvertSystem(system)
	timeUnit := units.Seconds

	return Swell{
		WaveHeight: units.NewDimensionalData(waveHeight, "wave height", units.MeasurementLength, heightUnit),
		Period:     units.NewDimensionalData(period, "period", units.MeasurementTime, timeUnit),
		Direction:  units.NewDimensionalData(direction, "direction", units.MeasurementDirection, units.Degrees),
	}
}

// ToUnits converts the wave height in place; period and direction units do
// not vary across systems.
func (s *Swell) ToUnits(system units.UnitSystem) {
	s.WaveHeight.ToUnits(system)
	s.Period.ToUnits(system)
	s.Direction.ToUnits(system)
}

// Steepness classifies the component from its height and period.
func (s Swell) Steepness() units.Steepness {
	if s.WaveHeight.Value == nil || s.Period.Value == nil {
		return units.SteepnessNA
	}
	return units.SteepnessFromHeightPeriod(*s.WaveHeight.Value, *s.Period.Value)
}

func (s Swell) String() string {
	return fmt.Sprintf("%s @ %s %s", s.WaveHeight, s.Period, s.Direction)
}

// FromFrequencySpectra derives a single swell from a one-dimensional energy
// spectrum: height from the zeroth moment, period and direction from the
// highest-energy bin. Directions are in degrees.
func FromFrequencySpectra(frequency, energy, direction []float64) (Swell, error) {
	if len(frequency) == 0 {
		return Swell{}, NewInsufficientDataError("empty frequency spectrum")
	}
	if len(energy) != len(frequency) || len(direction) != len(frequency) {
		return Swell{}, NewInsufficientDataError("frequency, energy and direction lengths differ")
	}

	bandwidths := tools.Diff(frequency)

	zeroMoment := 0.0
	maxEnergyIndex := -1
	maxEnergy := math.Inf(-1)

	for i := range frequency {
		zeroMoment += tools.ZeroSpectralMoment(energy[i], math.Abs(bandwidths[i]))
		if energy[i] > maxEnergy {
			maxEnergy = energy[i]
			maxEnergyIndex = i
		}
	}

	if maxEnergyIndex < 0 {
		return Swell{}, NewInsufficientDataError("failed to extract the max energy frequency")
	}

	waveHeight := 4.0 * math.Sqrt(zeroMoment)
	period := 1.0 / frequency[maxEnergyIndex]
	dir := units.NewDirectionFromDegrees(int(math.Round(direction[maxEnergyIndex])))

	s := NewSwell(units.Metric, waveHeight, period, dir)
	s.Energy = &maxEnergy
	return s, nil
}
