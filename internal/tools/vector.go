package tools

import (
	"math"
	"sort"
)

// Lerp linearly interpolates between a and b without clamping t.
func Lerp(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

// Bilerp evaluates the tensor-product bilinear form over the cell with
// corners (x0,y0)=a, (x1,y0)=b, (x0,y1)=c, (x1,y1)=d at fractional
// distances dx, dy from the (x0,y0) corner.
func Bilerp(a, b, c, d, dx, dy float64) float64 {
	return a*(1.0-dx)*(1.0-dy) + b*dx*(1.0-dy) + c*(1.0-dx)*dy + d*dx*dy
}

// Diff returns first differences the same length as the input: the first
// element repeats the gap between the first two samples.
func Diff(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	out := make([]float64, len(data))
	if len(data) > 1 {
		out[0] = data[1] - data[0]
	}
	for i := 1; i < len(data); i++ {
		out[i] = data[i] - data[i-1]
	}
	return out
}

// Argsort returns the indices that would sort the data ascending. The sort is
// stable so ties keep their input order.
func Argsort(data []float64) []int {
	indices := make([]int, len(data))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return data[indices[a]] < data[indices[b]]
	})
	return indices
}

// ArgsortInt is Argsort for integer data.
func ArgsortInt(data []int) []int {
	indices := make([]int, len(data))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return data[indices[a]] < data[indices[b]]
	})
	return indices
}

// Linspace returns n evenly spaced values from a to b inclusive.
func Linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = (b - a) / float64(n-1)
	}
	for i := range out {
		out[i] = a + step*float64(i)
	}
	return out
}

// MinMax returns the smallest and largest values, skipping NaN entries.
func MinMax(data []float64) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// MinMaxFill returns the value range while replacing entries at or below the
// fill sentinel with NaN in place.
func MinMaxFill(data []float64, fill float64) (float64, float64) {
	for i, v := range data {
		if v <= fill {
			data[i] = math.NaN()
		}
	}
	return MinMax(data)
}

// ScalarFromUV converts u/v vector components to magnitude and a
// meteorological heading in degrees.
func ScalarFromUV(u, v float64) (float64, float64) {
	angle := int(270.0-(math.Atan2(v, u)*(180.0/math.Pi))) % 360
	speed := math.Sqrt(u*u + v*v)
	return speed, float64(angle)
}
