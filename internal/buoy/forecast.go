package buoy

import (
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/swellgrid/swellgrid/internal/spectra"
	"github.com/swellgrid/swellgrid/internal/swell"
	"github.com/swellgrid/swellgrid/internal/tools"
	"github.com/swellgrid/swellgrid/internal/units"
)

var (
	spectraHeaderRegex = regexp.MustCompile(`'WAVEWATCH III SPECTRA'\s*([0-9]{0,2})\s*([0-9]{0,2})\s*([0-9]{0,2})`)
	spectraPointRegex  = regexp.MustCompile(`.{0,12}\s*([+-]?[0-9]*[.]?[0-9]+)\s*([+-]?[0-9]*[.]?[0-9]+)\s*([+-]?[0-9]*[.]?[0-9]+)\s*([+-]?[0-9]*[.]?[0-9]+)\s*([+-]?[0-9]*[.]?[0-9]+)\s*([+-]?[0-9]*[.]?[0-9]+)\s*([+-]?[0-9]*[.]?[0-9]+)`)
)

// Components beyond this count are almost always partition debris in point
// output, matching the WW3 bulletin convention.
const maxForecastComponents = 4

// ForecastSpectralMetadata is the header block of a WAVEWATCH III point
// spectra file: the shared frequency and direction grids and how many header
// lines they occupy.
type ForecastSpectralMetadata struct {
	Frequency        []float64
	Direction        []units.Direction
	DirectionRadians []float64
	PointCount       int
	LineCount        int
}

// ParseForecastSpectralMetadata decodes the header block. Directions arrive
// in radians and are kept both raw and rounded to compass degrees.
func ParseForecastSpectralMetadata(data string) (ForecastSpectralMetadata, error) {
	lines := strings.Split(data, "\n")
	if len(lines) == 0 {
		return ForecastSpectralMetadata{}, NewParseError("no header line")
	}

	captures := spectraHeaderRegex.FindStringSubmatch(lines[0])
	if captures == nil {
		return ForecastSpectralMetadata{}, NewParseError("invalid spectra header %q", lines[0])
	}

	frequencyCount, err := strconv.Atoi(captures[1])
	if err != nil {
		return ForecastSpectralMetadata{}, NewParseError("bad frequency count %q", captures[1])
	}
	directionCount, err := strconv.Atoi(captures[2])
	if err != nil {
		return ForecastSpectralMetadata{}, NewParseError("bad direction count %q", captures[2])
	}
	pointCount, err := strconv.Atoi(captures[3])
	if err != nil {
		return ForecastSpectralMetadata{}, NewParseError("bad point count %q", captures[3])
	}

	lineCount := 1
	pos := 1

	frequency := make([]float64, 0, frequencyCount)
	for len(frequency) < frequencyCount {
		if pos >= len(lines) {
			return ForecastSpectralMetadata{}, NewParseError("truncated frequency header")
		}
		for _, field := range strings.Fields(lines[pos]) {
			if len(frequency) >= frequencyCount {
				break
			}
			if v, err := strconv.ParseFloat(field, 64); err == nil {
				frequency = append(frequency, v)
			}
		}
		pos++
		lineCount++
	}

	radians := make([]float64, 0, directionCount)
	for len(radians) < directionCount {
		if pos >= len(lines) {
			return ForecastSpectralMetadata{}, NewParseError("truncated direction header")
		}
		for _, field := range strings.Fields(lines[pos]) {
			if len(radians) >= directionCount {
				break
			}
			if v, err := strconv.ParseFloat(field, 64); err == nil {
				radians = append(radians, v)
			}
		}
		pos++
		lineCount++
	}

	direction := make([]units.Direction, len(radians))
	for i, r := range radians {
		direction[i] = units.NewDirectionFromDegrees(int(math.Round(r * 180.0 / math.Pi)))
	}

	return ForecastSpectralMetadata{
		Frequency:        frequency,
		Direction:        direction,
		DirectionRadians: radians,
		PointCount:       pointCount,
		LineCount:        lineCount,
	}, nil
}

// ForecastSpectralRecord is one time step of WAVEWATCH III point output: the
// point conditions and the full directional energy grid, flat-indexed as
// ik + ith*nk.
type ForecastSpectralRecord struct {
	Date             time.Time
	Latitude         float64
	Longitude        float64
	Depth            units.DimensionalData[float64]
	WindSpeed        units.DimensionalData[float64]
	WindDirection    units.DimensionalData[units.Direction]
	CurrentSpeed     units.DimensionalData[float64]
	CurrentDirection units.DimensionalData[units.Direction]
	Frequency        []float64
	Direction        []units.Direction
	DirectionRadians []float64
	Energy           []float64
}

// ForecastSpectralIterator walks the time steps of a point spectra file.
type ForecastSpectralIterator struct {
	lines    []string
	pos      int
	metadata ForecastSpectralMetadata
}

// NewForecastSpectralIterator parses the shared header and positions the
// iterator at the first time step.
func NewForecastSpectralIterator(data string) (*ForecastSpectralIterator, error) {
	metadata, err := ParseForecastSpectralMetadata(data)
	if err != nil {
		return nil, err
	}

	return &ForecastSpectralIterator{
		lines:    strings.Split(data, "\n"),
		pos:      metadata.LineCount,
		metadata: metadata,
	}, nil
}

// Metadata returns the shared spectral grids.
func (it *ForecastSpectralIterator) Metadata() ForecastSpectralMetadata {
	return it.metadata
}

// Next parses the next time step, returning io.EOF when the file is
// exhausted.
func (it *ForecastSpectralIterator) Next() (*ForecastSpectralRecord, error) {
	dateLine, ok := it.nextLine()
	if !ok {
		return nil, io.EOF
	}

	date, err := parseSpectraDate(dateLine)
	if err != nil {
		return nil, err
	}

	pointLine, ok := it.nextLine()
	if !ok {
		return nil, io.EOF
	}

	captures := spectraPointRegex.FindStringSubmatch(pointLine)
	if captures == nil {
		return nil, NewParseError("invalid point line %q", pointLine)
	}
	point := make([]float64, 7)
	for i := 0; i < 7; i++ {
		v, err := strconv.ParseFloat(captures[i+1], 64)
		if err != nil {
			return nil, NewParseError("bad point field %q", captures[i+1])
		}
		point[i] = v
	}

	energyCount := len(it.metadata.Frequency) * len(it.metadata.Direction)
	energy := make([]float64, 0, energyCount)
	for len(energy) < energyCount {
		line, ok := it.nextLine()
		if !ok {
			return nil, io.EOF
		}
		for _, field := range strings.Fields(line) {
			if v, err := strconv.ParseFloat(field, 64); err == nil {
				energy = append(energy, v)
			}
		}
	}
	energy = energy[:energyCount]

	return &ForecastSpectralRecord{
		Date:      date,
		Latitude:  point[0],
		Longitude: point[1],
		Depth: units.NewDimensionalData(
			point[2], "depth", units.MeasurementLength, units.Meters),
		WindSpeed: units.NewDimensionalData(
			point[3], "wind speed", units.MeasurementSpeed, units.MetersPerSecond),
		WindDirection: units.NewDimensionalData(
			units.NewDirectionFromDegrees(int(math.Round(point[4]))),
			"wind direction", units.MeasurementDirection, units.Degrees),
		CurrentSpeed: units.NewDimensionalData(
			point[5], "current speed", units.MeasurementSpeed, units.MetersPerSecond),
		CurrentDirection: units.NewDimensionalData(
			units.NewDirectionFromDegrees(int(math.Round(point[6]))),
			"current direction", units.MeasurementDirection, units.Degrees),
		Frequency:        it.metadata.Frequency,
		Direction:        it.metadata.Direction,
		DirectionRadians: it.metadata.DirectionRadians,
		Energy:           energy,
	}, nil
}

func (it *ForecastSpectralIterator) nextLine() (string, bool) {
	for it.pos < len(it.lines) {
		line := strings.TrimSpace(it.lines[it.pos])
		it.pos++
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// parseSpectraDate reads the fixed-column YYYYMMDD HHMMSS stamp.
func parseSpectraDate(line string) (time.Time, error) {
	if len(line) < 13 {
		return time.Time{}, NewParseError("date line %q too short", line)
	}

	year, err1 := strconv.Atoi(line[0:4])
	month, err2 := strconv.Atoi(line[4:6])
	day, err3 := strconv.Atoi(line[6:8])
	hour, err4 := strconv.Atoi(line[9:11])
	minute, err5 := strconv.Atoi(line[11:13])
	for _, err := range []error{err1, err2, err3, err4, err5} {
		if err != nil {
			return time.Time{}, NewParseError("bad date line %q", line)
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), nil
}

// Spectrum wraps the record's energy grid as a directional spectrum.
func (r *ForecastSpectralRecord) Spectrum() *spectra.Spectrum {
	return spectra.NewSpectrum(r.Frequency, r.DirectionRadians, r.Energy)
}

// DominantSpectra collapses the directional grid to one value per frequency:
// the peak energy across directions and the compass direction it travels
// from.
func (r *ForecastSpectralRecord) DominantSpectra() ([]float64, []float64, []float64) {
	nk := len(r.Frequency)
	nth := len(r.Direction)

	maxEnergies := make([]float64, nk)
	maxDirections := make([]float64, nk)

	for ik := 0; ik < nk; ik++ {
		maxValue := 0.0
		maxDirection := units.NewDirectionFromDegrees(0)
		for ith := 0; ith < nth; ith++ {
			e := r.Energy[ik+ith*nk]
			if e > maxValue {
				maxValue = e
				maxDirection = r.Direction[ith]
			}
		}
		maxEnergies[ik] = maxValue
		maxDirections[ik] = float64(maxDirection.Invert().Degrees)
	}

	return r.Frequency, maxDirections, maxEnergies
}

// SwellData implements swell.SwellProvider using the dominant-direction
// reduction: peaks in the 1-D spectrum split it into per-swell bands, each
// band reduces to one component, and the summary height combines them
// root-sum-square.
func (r *ForecastSpectralRecord) SwellData() (swell.SwellSummary, error) {
	frequency, direction, energy := r.DominantSpectra()

	minimaIndexes, maximaIndexes := tools.DetectPeaks(energy, 0.05)
	if len(maximaIndexes) == 0 {
		return swell.SwellSummary{}, swell.NewInsufficientDataError("no spectral peaks above noise")
	}

	components := make([]swell.Swell, 0, len(maximaIndexes))
	for metaIndex, i := range maximaIndexes {
		start := 0
		if metaIndex > 0 && i > minimaIndexes[metaIndex-1] {
			start = minimaIndexes[metaIndex-1]
		}

		end := len(energy)
		if metaIndex < len(minimaIndexes) {
			end = minimaIndexes[metaIndex]
		}
		if end <= start {
			continue
		}

		component, err := swell.FromFrequencySpectra(
			frequency[start:end], energy[start:end], direction[start:end])
		if err != nil {
			return swell.SwellSummary{}, err
		}
		components = append(components, component)
	}

	sort.SliceStable(components, func(a, b int) bool {
		return componentPeakEnergy(components[a]) > componentPeakEnergy(components[b])
	})
	if len(components) > maxForecastComponents {
		components = components[:maxForecastComponents]
	}

	dominant := components[0]
	summary := swell.Swell{
		WaveHeight: swell.RootSumSquareHeight(components),
		Period:     dominant.Period,
		Direction:  dominant.Direction,
	}

	return swell.SwellSummary{
		Summary:    summary,
		Components: components,
	}, nil
}

func componentPeakEnergy(s swell.Swell) float64 {
	if s.Energy == nil {
		return math.Inf(-1)
	}
	return *s.Energy
}

// SpectralSwellData runs the full two-dimensional partition path on the
// record's spectrum, using the record's depth and wind as refinements.
func (r *ForecastSpectralRecord) SpectralSwellData(conv units.DirectionConvention) (swell.SwellSummary, error) {
	var windDirection *float64
	if r.WindDirection.Value != nil {
		d := float64(r.WindDirection.Value.Degrees)
		windDirection = &d
	}
	return r.Spectrum().SwellData(r.Depth.Value, r.WindSpeed.Value, windDirection, conv)
}
