package units

import (
	"fmt"
	"math"
	"strconv"
)

// DimensionalData couples an optional measured value with the variable it
// describes and the unit it is expressed in. A nil Value means the quantity
// was not observed or carried a fill sentinel upstream.
type DimensionalData[T any] struct {
	Value        *T          `json:"value"`
	VariableName string      `json:"variable_name"`
	Measurement  Measurement `json:"measurement"`
	Unit         Unit        `json:"unit"`
}

// NewDimensionalData builds a DimensionalData holding a concrete value.
func NewDimensionalData[T any](value T, variableName string, measurement Measurement, unit Unit) DimensionalData[T] {
	return DimensionalData[T]{
		Value:        &value,
		VariableName: variableName,
		Measurement:  measurement,
		Unit:         unit,
	}
}

// UnitLabel returns the display abbreviation of the current unit.
func (d DimensionalData[T]) UnitLabel() string {
	return d.Unit.Abbreviation()
}

// ToUnits converts the value in place to the target unit system. Scalar
// float64 values are converted numerically; all other payloads (directions in
// particular) only swap the unit tag. Converting to the current system is a
// no-op, so the call is idempotent.
func (d *DimensionalData[T]) ToUnits(target UnitSystem) {
	newUnit := d.Unit.ConvertSystem(target)
	if d.Value != nil {
		if v, ok := any(*d.Value).(float64); ok {
			converted := d.Unit.Convert(v, newUnit)
			if cv, ok := any(converted).(T); ok {
				d.Value = &cv
			}
		}
	}
	d.Unit = newUnit
}

func (d DimensionalData[T]) String() string {
	label := d.Unit.Abbreviation()
	if label == Degrees.Abbreviation() {
		label = ""
	} else if label != "" {
		label = " " + label
	}

	if d.Value == nil {
		return "N/A"
	}

	switch v := any(*d.Value).(type) {
	case float64:
		return fmt.Sprintf("%.1f%s", v, label)
	default:
		return fmt.Sprintf("%v%s", v, label)
	}
}

// FloatValue unwraps a scalar DimensionalData, returning NaN when missing.
func FloatValue(d DimensionalData[float64]) float64 {
	if d.Value == nil {
		return math.NaN()
	}
	return *d.Value
}

// FromRawData parses a scalar reading from a raw string field. Unparseable
// input yields a DimensionalData with no value rather than an error, matching
// how observational feeds mark missing samples.
func FromRawData(raw string, variableName string, measurement Measurement, unit Unit) DimensionalData[float64] {
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DimensionalData[float64]{
			VariableName: variableName,
			Measurement:  measurement,
			Unit:         unit,
		}
	}
	return NewDimensionalData(parsed, variableName, measurement, unit)
}
