package spectra

import (
	"math"

	"github.com/swellgrid/swellgrid/internal/swell"
	"github.com/swellgrid/swellgrid/internal/tools"
	"github.com/swellgrid/swellgrid/internal/units"
)

// Quantization levels used when partitioning for swell extraction.
const partitionLevels = 100

// SwellData partitions the spectrum into swell trains and reduces each basin
// to bulk parameters. Depth, wind speed and wind direction are optional
// refinements. The returned summary integrates the whole spectrum; the
// components are ordered by peak energy descending with negligible trains
// dropped.
func (s *Spectrum) SwellData(depth, windSpeed, windDirection *float64, conv units.DirectionConvention) (swell.SwellSummary, error) {
	labels, count, err := tools.Watershed(s.Energy, s.NK(), s.NTH(), partitionLevels, nil)
	if err != nil {
		return swell.SwellSummary{}, swell.NewInsufficientDataError("watershed segmentation of the spectrum failed")
	}

	dth := s.DTH()
	if len(dth) == 0 {
		return swell.SwellSummary{}, swell.NewInsufficientDataError("spectrum has no direction bins")
	}

	// Direction grids may run clockwise; the bandwidth magnitude is what
	// matters.
	summary, components, err := PtMean(
		count, labels,
		s.Frequency, s.Direction, s.Energy,
		math.Abs(dth[0]),
		depth, windSpeed, windDirection,
		conv,
	)
	if err != nil {
		return swell.SwellSummary{}, err
	}

	return swell.AssembleSummary(summary, components), nil
}
