package units

import "strings"

// CardinalDirection is a 16-point compass direction.
type CardinalDirection string

const (
	North          CardinalDirection = "N"
	NorthNorthEast CardinalDirection = "NNE"
	NorthEast      CardinalDirection = "NE"
	EastNorthEast  CardinalDirection = "ENE"
	East           CardinalDirection = "E"
	EastSouthEast  CardinalDirection = "ESE"
	SouthEast      CardinalDirection = "SE"
	SouthSouthEast CardinalDirection = "SSE"
	South          CardinalDirection = "S"
	SouthSouthWest CardinalDirection = "SSW"
	SouthWest      CardinalDirection = "SW"
	WestSouthWest  CardinalDirection = "WSW"
	West           CardinalDirection = "W"
	WestNorthWest  CardinalDirection = "WNW"
	NorthWest      CardinalDirection = "NW"
	NorthNorthWest CardinalDirection = "NNW"
	InvalidCardinal CardinalDirection = ""
)

var compassPoints = []CardinalDirection{
	North, NorthNorthEast, NorthEast, EastNorthEast,
	East, EastSouthEast, SouthEast, SouthSouthEast,
	South, SouthSouthWest, SouthWest, WestSouthWest,
	West, WestNorthWest, NorthWest, NorthNorthWest,
}

// CardinalFromDegrees maps a compass heading to the nearest 16-point direction.
func CardinalFromDegrees(degrees int) CardinalDirection {
	normalized := ((degrees % 360) + 360) % 360
	idx := int((float64(normalized)+11.25)/22.5) % 16
	return compassPoints[idx]
}

// ToDegrees returns the center heading of the compass point.
func (c CardinalDirection) ToDegrees() int {
	for i, p := range compassPoints {
		if p == c {
			return int(float64(i) * 22.5)
		}
	}
	return 0
}

// ParseCardinal parses a compass abbreviation like "NNE".
func ParseCardinal(s string) (CardinalDirection, error) {
	trimmed := CardinalDirection(strings.ToUpper(strings.TrimSpace(s)))
	for _, p := range compassPoints {
		if p == trimmed {
			return p, nil
		}
	}
	return InvalidCardinal, ErrInvalidString
}

func (c CardinalDirection) String() string {
	if c == InvalidCardinal {
		return "n/a"
	}
	return string(c)
}
