package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DirectionConvention tags which way an angle is read: the direction waves
// come from, the direction they travel towards, or a meteorological heading.
type DirectionConvention string

const (
	ConventionFrom    DirectionConvention = "from"
	ConventionTowards DirectionConvention = "towards"
	ConventionMet     DirectionConvention = "met"
)

// Normalize converts a heading in degrees under the receiver's convention to
// the From convention. The result is always in [0, 360).
func (c DirectionConvention) Normalize(degrees float64) float64 {
	switch c {
	case ConventionTowards:
		return math.Mod(degrees+180.0, 360.0)
	case ConventionMet:
		return math.Mod((270.0-degrees)+360.0, 360.0)
	default:
		return math.Mod(math.Mod(degrees, 360.0)+360.0, 360.0)
	}
}

// Direction is a compass heading with its nearest cardinal point.
type Direction struct {
	Degrees  int               `json:"degrees"`
	Cardinal CardinalDirection `json:"cardinal"`
}

// NewDirectionFromDegrees builds a Direction, normalizing into [0, 360).
func NewDirectionFromDegrees(degrees int) Direction {
	normalized := ((degrees % 360) + 360) % 360
	return Direction{
		Degrees:  normalized,
		Cardinal: CardinalFromDegrees(normalized),
	}
}

// NewDirectionFromRadians builds a Direction from an angle in radians.
func NewDirectionFromRadians(radians float64) Direction {
	return NewDirectionFromDegrees(int(math.Round(radians * 180.0 / math.Pi)))
}

// NewDirectionFromCardinal builds a Direction at a compass point's center heading.
func NewDirectionFromCardinal(cardinal CardinalDirection) Direction {
	return Direction{
		Degrees:  cardinal.ToDegrees(),
		Cardinal: cardinal,
	}
}

// Radians returns the heading in radians.
func (d Direction) Radians() float64 {
	return float64(d.Degrees) * math.Pi / 180.0
}

// Invert returns the opposite heading.
func (d Direction) Invert() Direction {
	return NewDirectionFromDegrees(d.Degrees + 180)
}

// Flip rotates the heading 180 degrees in place.
func (d *Direction) Flip() {
	*d = d.Invert()
}

// IsOpposite reports whether the other heading points roughly the other way,
// within a 10 degree tolerance.
func (d Direction) IsOpposite(other Direction) bool {
	diff := d.Degrees - other.Degrees
	if diff < 0 {
		diff = -diff
	}
	return diff >= 170 && diff <= 190
}

func (d Direction) String() string {
	return fmt.Sprintf("%d%s %s", d.Degrees, Degrees.Abbreviation(), d.Cardinal)
}

// ParseDirection parses either a cardinal abbreviation or a numeric heading.
func ParseDirection(s string) (Direction, error) {
	if cardinal, err := ParseCardinal(s); err == nil {
		return NewDirectionFromCardinal(cardinal), nil
	}
	degrees, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Direction{}, ErrInvalidString
	}
	return NewDirectionFromDegrees(degrees), nil
}
