package model

type resolutionKind int

const (
	resolutionHourly resolutionKind = iota
	resolutionHybridHourlyThreeHourly
	resolutionThreeHourly
	resolutionHybridThreeSixHourly
)

// TimeResolution maps between forecast output indexes and forecast hours for
// the output cadences NOAA wave models publish. Hybrid cadences switch to a
// coarser step past a cutoff hour.
type TimeResolution struct {
	kind   resolutionKind
	cutoff int
}

// Hourly emits one output per forecast hour.
func Hourly() TimeResolution {
	return TimeResolution{kind: resolutionHourly}
}

// HybridHourlyThreeHourly is hourly through the cutoff hour, then
// three-hourly.
func HybridHourlyThreeHourly(cutoff int) TimeResolution {
	return TimeResolution{kind: resolutionHybridHourlyThreeHourly, cutoff: cutoff}
}

// ThreeHourly emits one output every three forecast hours.
func ThreeHourly() TimeResolution {
	return TimeResolution{kind: resolutionThreeHourly}
}

// HybridThreeSixHourly is three-hourly through the cutoff hour, then
// six-hourly. The cutoff must be a multiple of three.
func HybridThreeSixHourly(cutoff int) TimeResolution {
	return TimeResolution{kind: resolutionHybridThreeSixHourly, cutoff: cutoff}
}

// HourForIndex returns the forecast hour of the given output index.
func (r TimeResolution) HourForIndex(index int) int {
	switch r.kind {
	case resolutionHybridHourlyThreeHourly:
		if index <= r.cutoff {
			return index
		}
		return r.cutoff + (index-r.cutoff)*3
	case resolutionThreeHourly:
		return index * 3
	case resolutionHybridThreeSixHourly:
		cutoffIndex := r.cutoff / 3
		if index <= cutoffIndex {
			return index * 3
		}
		return r.cutoff + (index-cutoffIndex)*6
	default:
		return index
	}
}

// IndexForHour returns the output index whose forecast hour is closest to the
// given hour without exceeding it.
func (r TimeResolution) IndexForHour(hour int) int {
	switch r.kind {
	case resolutionHybridHourlyThreeHourly:
		if hour <= r.cutoff {
			return hour
		}
		return r.cutoff + (hour-r.cutoff)/3
	case resolutionThreeHourly:
		return hour / 3
	case resolutionHybridThreeSixHourly:
		if hour <= r.cutoff {
			return hour / 3
		}
		return r.cutoff/3 + (hour-r.cutoff)/6
	default:
		return hour
	}
}

// HoursForHourRange lists the forecast hours the model actually outputs
// within [start, end] inclusive.
func (r TimeResolution) HoursForHourRange(start, end int) []int {
	hours := make([]int, 0)
	for index := r.IndexForHour(start); ; index++ {
		hour := r.HourForIndex(index)
		if hour > end {
			break
		}
		if hour >= start {
			hours = append(hours, hour)
		}
	}
	return hours
}
