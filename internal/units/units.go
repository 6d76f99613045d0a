package units

import (
	"errors"
	"strings"
)

// UnitSystem selects the family of units a value is reported in.
type UnitSystem string

const (
	Metric  UnitSystem = "metric"
	English UnitSystem = "english"
	Knots   UnitSystem = "knots"
	Kelvin  UnitSystem = "kelvin"
)

func (s UnitSystem) String() string {
	return string(s)
}

// EarthsRadius returns the radius of the earth in the system's length unit (km or mi).
func (s UnitSystem) EarthsRadius() float64 {
	switch s {
	case Metric:
		return 6371.0
	case English:
		return 3956.0
	default:
		return 0.0
	}
}

// DensityOfSeawater returns the density of seawater (kg/m3 or lb/ft3).
func (s UnitSystem) DensityOfSeawater() float64 {
	switch s {
	case Metric:
		return 1029.0
	case English:
		return 64.0
	default:
		return 0.0
	}
}

// Measurement is the physical quantity a DimensionalData value measures.
type Measurement string

const (
	MeasurementLength      Measurement = "length"
	MeasurementSpeed       Measurement = "speed"
	MeasurementTime        Measurement = "time"
	MeasurementDirection   Measurement = "direction"
	MeasurementTemperature Measurement = "temperature"
	MeasurementPressure    Measurement = "pressure"
	MeasurementEnergy      Measurement = "energy"
)

// Unit identifies a concrete unit of measure.
type Unit string

const (
	Millimeters             Unit = "millimeters"
	Meters                  Unit = "meters"
	MetersPerSecond         Unit = "metersPerSecond"
	Celsius                 Unit = "celsius"
	Pascal                  Unit = "pascal"
	HectaPascal             Unit = "hectaPascal"
	Inches                  Unit = "inches"
	Feet                    Unit = "feet"
	MilesPerHour            Unit = "milesPerHour"
	Fahrenheit              Unit = "fahrenheit"
	InchesMercury           Unit = "inchesMercury"
	KnotsUnit               Unit = "knots"
	KelvinUnit              Unit = "kelvin"
	MetersSquaredPerHertz   Unit = "metersSquaredPerHertz"
	NauticalMiles           Unit = "nauticalMiles"
	Degrees                 Unit = "degrees"
	Seconds                 Unit = "seconds"
	Percent                 Unit = "percent"
	KiloJoules              Unit = "kiloJoules"
	UnknownUnit             Unit = "unknown"
)

// Abbreviation returns the short display label for the unit.
func (u Unit) Abbreviation() string {
	switch u {
	case Millimeters:
		return "mm"
	case Meters:
		return "m"
	case MetersPerSecond:
		return "m/s"
	case Celsius:
		return "°C"
	case Pascal:
		return "pa"
	case HectaPascal:
		return "hpa"
	case Inches:
		return "in"
	case Feet:
		return "ft"
	case MilesPerHour:
		return "mph"
	case Fahrenheit:
		return "°F"
	case InchesMercury:
		return "in Hg"
	case KnotsUnit:
		return "kt"
	case KelvinUnit:
		return "K"
	case MetersSquaredPerHertz:
		return "m²/Hz"
	case NauticalMiles:
		return "nmi"
	case Degrees:
		return "°"
	case Seconds:
		return "s"
	case Percent:
		return "%"
	case KiloJoules:
		return "kJ"
	default:
		return ""
	}
}

func (u Unit) String() string {
	return u.Abbreviation()
}

// ParseUnit maps common unit spellings (including WMO abbreviations) to a Unit.
func ParseUnit(value string) Unit {
	switch normalizeUnitString(value) {
	case "mm", "millimeters", "millimeter":
		return Millimeters
	case "m", "meters", "meter", "wmounit:m":
		return Meters
	case "m/s", "mps", "ms-1", "meterspersecond", "meterpersecond":
		return MetersPerSecond
	case "°c", "degcelsius", "degreecelsius", "degreescelsius", "wmounit:degc":
		return Celsius
	case "pa", "pascals", "pascal":
		return Pascal
	case "hpa", "hectapascals", "hectapascal":
		return HectaPascal
	case "in", "inches", "inch":
		return Inches
	case "ft", "feet", "foot":
		return Feet
	case "mph", "m/h", "mh-1", "milesperhour":
		return MilesPerHour
	case "°f", "f", "degfahrenheit", "degreesfahrenheit", "degreefahrenheit":
		return Fahrenheit
	case "inhg", "inches mercury":
		return InchesMercury
	case "kt", "kts", "knots", "knot":
		return KnotsUnit
	case "k", "kelvin":
		return KelvinUnit
	case "m^2/hz", "m2hz-1", "meterssquaredperhertz":
		return MetersSquaredPerHertz
	case "nmi", "nauticalmiles", "nauticalmile":
		return NauticalMiles
	case "°", "deg", "degs", "degrees", "degree":
		return Degrees
	case "s", "second", "seconds":
		return Seconds
	case "%", "percent", "percentage", "wmounit:percent":
		return Percent
	case "kj", "kilojoules", "kilojoule":
		return KiloJoules
	default:
		return UnknownUnit
	}
}

// Convert converts a value expressed in u to the target unit. Unsupported
// pairings return the value unchanged, which makes conversion to the same
// unit a no-op.
func (u Unit) Convert(value float64, target Unit) float64 {
	switch u {
	case Millimeters:
		switch target {
		case Meters:
			return value * 0.001
		case Inches:
			return value / 25.4
		}
	case Meters:
		switch target {
		case Millimeters:
			return value * 1000.0
		case Feet:
			return value * 3.281
		}
	case MetersPerSecond:
		switch target {
		case MilesPerHour:
			return value * 2.237
		case KnotsUnit:
			return value * 1.944
		}
	case Celsius:
		switch target {
		case Fahrenheit:
			return value*(9.0/5.0) + 32.0
		case KelvinUnit:
			return value + 273.0
		}
	case Pascal:
		if target == HectaPascal {
			return value / 100.0
		}
	case HectaPascal:
		switch target {
		case Pascal:
			return value * 100.0
		case InchesMercury:
			return value / 33.8638
		}
	case Inches:
		switch target {
		case Feet:
			return value / 12.0
		case Millimeters:
			return value * 25.4
		}
	case Feet:
		switch target {
		case Inches:
			return value * 12.0
		case Meters:
			return value / 3.281
		}
	case MilesPerHour:
		switch target {
		case MetersPerSecond:
			return value / 2.237
		case KnotsUnit:
			return value / 1.15
		}
	case Fahrenheit:
		switch target {
		case Celsius:
			return (value - 32.0) * (5.0 / 9.0)
		case KelvinUnit:
			return (value + 459.67) * (5.0 / 9.0)
		}
	case InchesMercury:
		if target == HectaPascal {
			return value * 33.8638
		}
	case KnotsUnit:
		switch target {
		case MetersPerSecond:
			return value * 0.514
		case MilesPerHour:
			return value * 1.15
		}
	case KelvinUnit:
		switch target {
		case Celsius:
			return value - 273.0
		case Fahrenheit:
			return value*(9.0/5.0) - 459.67
		}
	}
	return value
}

// ConvertSystem returns the unit that represents the same measurement in the
// target unit system. Units without a counterpart stay unchanged.
func (u Unit) ConvertSystem(target UnitSystem) Unit {
	switch u {
	case Millimeters:
		if target == English {
			return Inches
		}
	case Meters:
		if target == English {
			return Feet
		}
	case MetersPerSecond:
		switch target {
		case English:
			return MilesPerHour
		case Knots:
			return KnotsUnit
		}
	case Celsius:
		switch target {
		case English:
			return Fahrenheit
		case Kelvin:
			return KelvinUnit
		}
	case HectaPascal:
		if target == English {
			return InchesMercury
		}
	case Inches:
		if target == Metric {
			return Millimeters
		}
	case Feet:
		if target == Metric {
			return Meters
		}
	case MilesPerHour:
		switch target {
		case Metric:
			return MetersPerSecond
		case Knots:
			return KnotsUnit
		}
	case Fahrenheit:
		switch target {
		case Metric:
			return Celsius
		case Kelvin:
			return KelvinUnit
		}
	case InchesMercury:
		if target == Metric {
			return HectaPascal
		}
	case KnotsUnit:
		switch target {
		case Metric:
			return MetersPerSecond
		case English:
			return MilesPerHour
		}
	case KelvinUnit:
		switch target {
		case Metric:
			return Celsius
		case English:
			return Fahrenheit
		}
	}
	return u
}

// UnitConvertible is implemented by values that can convert themselves between
// unit systems in place.
type UnitConvertible interface {
	ToUnits(target UnitSystem)
}

func normalizeUnitString(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ErrInvalidString reports a value that could not be parsed into a unit type.
var ErrInvalidString = errors.New("invalid string")
