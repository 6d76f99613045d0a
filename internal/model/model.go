package model

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze the latest-run
// calculation.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// DataSource identifies where gridded model output is hosted.
type DataSource int

const (
	SourceNODDAWS DataSource = iota
	SourceNODDGCP
	SourceNOMADS
)

// URLRoot is the base address for GFS products at the source.
func (s DataSource) URLRoot() string {
	switch s {
	case SourceNODDAWS:
		return "https://noaa-gfs-bdp-pds.s3.amazonaws.com"
	case SourceNODDGCP:
		return "https://storage.googleapis.com/global-forecast-system"
	default:
		return "https://nomads.ncep.noaa.gov/pub/data/nccf/com/gfs/prod"
	}
}

// WaveModel describes one regional WAVEWATCH III deployment: its product id,
// human names and output cadence.
type WaveModel struct {
	ID          string
	Name        string
	Description string
	Resolution  TimeResolution
}

func gfsWaveModel(id, name, description string) WaveModel {
	return WaveModel{
		ID:          id,
		Name:        name,
		Description: description,
		Resolution:  HybridHourlyThreeHourly(120),
	}
}

// GFSWaveAtlantic is the 0.16 degree Atlantic nest.
func GFSWaveAtlantic() WaveModel {
	return gfsWaveModel("atlocn.0p16", "GFS Wave Atlantic", "GFS Wave Model: Atlantic 0.16 degree")
}

// GFSWaveWestCoast is the 0.16 degree US West Coast nest.
func GFSWaveWestCoast() WaveModel {
	return gfsWaveModel("wcoast.0p16", "GFS Wave West Coast US", "GFS Wave Model: US West Coast 0.16 degree")
}

// GFSWaveEastPacific is the 0.16 degree East Pacific nest.
func GFSWaveEastPacific() WaveModel {
	return gfsWaveModel("epacif.0p16", "GFS Wave East Pacific", "GFS Wave Model: East Pacific 0.16 degree")
}

// GFSWaveGlobal16 is the 0.16 degree global grid.
func GFSWaveGlobal16() WaveModel {
	return gfsWaveModel("global.0p16", "GFS Wave Global", "GFS Wave Model: Global 0.16 degree")
}

// GFSWaveGlobal25 is the 0.25 degree global grid.
func GFSWaveGlobal25() WaveModel {
	return gfsWaveModel("global.0p25", "GFS Wave Global", "GFS Wave Model: Global 0.25 degree")
}

// ClosestRunDate returns the most recent model cycle whose output is
// available at the given time. Cycles start at 00Z, 06Z, 12Z and 18Z and take
// about six hours to publish.
func (m WaveModel) ClosestRunDate(date time.Time) time.Time {
	adjusted := date.UTC().Add(-6 * time.Hour)
	adjusted = adjusted.Add(-time.Duration(adjusted.Hour()%6) * time.Hour)
	return adjusted.Truncate(time.Hour)
}

// LatestRunDate is ClosestRunDate at the current clock time.
func (m WaveModel) LatestRunDate() time.Time {
	return m.ClosestRunDate(clock.Now())
}

// GriddedAssetURL builds the address of one gridded GRIB2 output file. A zero
// query date means the latest available run.
func (m WaveModel) GriddedAssetURL(source DataSource, outputIndex int, queryDate time.Time) string {
	if queryDate.IsZero() {
		queryDate = clock.Now()
	}
	runDate := m.ClosestRunDate(queryDate)
	timestep := m.Resolution.HourForIndex(outputIndex)

	return fmt.Sprintf(
		"%s/gfs.%04d%02d%02d/%02d/wave/gridded/gfswave.t%02dz.%s.f%03d.grib2",
		source.URLRoot(),
		runDate.Year(), runDate.Month(), runDate.Day(), runDate.Hour(),
		runDate.Hour(), m.ID, timestep,
	)
}
