package swell

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/swellgrid/swellgrid/internal/units"
)

// ErrNotImplemented marks provider methods a data source cannot serve.
var ErrNotImplemented = errors.New("swell data not implemented for this source")

// InsufficientDataError reports a derivation that could not find any bin
// above noise.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for swell derivation: %s", e.Reason)
}

func NewInsufficientDataError(reason string) *InsufficientDataError {
	return &InsufficientDataError{
		Reason: reason,
	}
}

// SwellSummary pairs the bulk sea-state summary with the individual swell
// trains it decomposes into, ordered by energy descending.
type SwellSummary struct {
	Summary    Swell   `json:"summary"`
	Components []Swell `json:"components"`
}

// SwellProvider is implemented by any record that can produce a swell
// summary: buoy spectral records, forecast bulletins and model spectra alike.
type SwellProvider interface {
	SwellData() (SwellSummary, error)
}

// minComponentHeight drops partition debris below 5cm significant height.
const minComponentHeight = 0.05

// AssembleSummary filters negligible components and orders the rest by
// energy, strongest first. Components without energy (and NaN energies) sort
// last.
func AssembleSummary(summary Swell, components []Swell) SwellSummary {
	kept := make([]Swell, 0, len(components))
	for _, c := range components {
		if c.WaveHeight.Value != nil && *c.WaveHeight.Value < minComponentHeight {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(a, b int) bool {
		return componentEnergy(kept[a]) > componentEnergy(kept[b])
	})

	return SwellSummary{
		Summary:    summary,
		Components: kept,
	}
}

func componentEnergy(s Swell) float64 {
	if s.Energy == nil || math.IsNaN(*s.Energy) {
		return math.Inf(-1)
	}
	return *s.Energy
}

// ToUnits converts the summary and every component in place.
func (s *SwellSummary) ToUnits(system units.UnitSystem) {
	s.Summary.ToUnits(system)
	for i := range s.Components {
		s.Components[i].ToUnits(system)
	}
}
