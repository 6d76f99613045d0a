package tools

import (
	"fmt"
	"math"
)

// PchipInterpolator is a shape-preserving piecewise cubic Hermite interpolator
// built with the Fritsch-Carlson slope construction. Unlike a natural cubic
// spline it never overshoots the data, which keeps interpolated wave spectra
// non-negative between knots.
type PchipInterpolator struct {
	x      []float64
	y      []float64
	slopes []float64
}

// NewPchipInterpolator builds an interpolator over strictly increasing x.
func NewPchipInterpolator(x, y []float64) (*PchipInterpolator, error) {
	if len(x) != len(y) {
		return nil, NewInvalidDataError(fmt.Sprintf("x and y must have the same length: %d vs %d", len(x), len(y)))
	}
	if len(x) < 2 {
		return nil, NewInvalidDataError("need at least 2 points for interpolation")
	}

	n := len(x)
	slopes := make([]float64, n)

	if n == 2 {
		slope := (y[1] - y[0]) / (x[1] - x[0])
		slopes[0] = slope
		slopes[1] = slope
		return &PchipInterpolator{x: cloneFloats(x), y: cloneFloats(y), slopes: slopes}, nil
	}

	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		delta[i] = (y[i+1] - y[i]) / h[i]
	}

	// Boundary slopes use the one-sided secant.
	slopes[0] = delta[0]
	slopes[n-1] = delta[n-2]

	for i := 1; i < n-1; i++ {
		if sign(delta[i-1]) != sign(delta[i]) || delta[i-1] == 0.0 || delta[i] == 0.0 {
			slopes[i] = 0.0
		} else {
			w1 := 2.0*h[i] + h[i-1]
			w2 := h[i] + 2.0*h[i-1]
			slopes[i] = (w1 + w2) / (w1/delta[i-1] + w2/delta[i])
		}
	}

	// Fritsch-Carlson monotonicity constraint: alpha^2 + beta^2 <= 9.
	for i := 0; i < n-1; i++ {
		if delta[i] == 0.0 {
			slopes[i] = 0.0
			slopes[i+1] = 0.0
			continue
		}

		alpha := slopes[i] / delta[i]
		beta := slopes[i+1] / delta[i]
		tau := alpha*alpha + beta*beta
		if tau > 9.0 {
			tauSqrt := math.Sqrt(tau)
			slopes[i] = 3.0 * delta[i] * alpha / tauSqrt
			slopes[i+1] = 3.0 * delta[i] * beta / tauSqrt
		}
	}

	return &PchipInterpolator{x: cloneFloats(x), y: cloneFloats(y), slopes: slopes}, nil
}

// Interpolate evaluates at a single point. Points outside the data range are
// clamped to the boundary values.
func (p *PchipInterpolator) Interpolate(xNew float64) float64 {
	n := len(p.x)

	if xNew <= p.x[0] {
		return p.y[0]
	}
	if xNew >= p.x[n-1] {
		return p.y[n-1]
	}

	k := p.findInterval(xNew)

	h := p.x[k+1] - p.x[k]
	t := (xNew - p.x[k]) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2.0*t3 - 3.0*t2 + 1.0
	h10 := t3 - 2.0*t2 + t
	h01 := -2.0*t3 + 3.0*t2
	h11 := t3 - t2

	return h00*p.y[k] + h10*h*p.slopes[k] + h01*p.y[k+1] + h11*h*p.slopes[k+1]
}

// InterpolateMany evaluates at multiple points.
func (p *PchipInterpolator) InterpolateMany(xNew []float64) []float64 {
	out := make([]float64, len(xNew))
	for i, x := range xNew {
		out[i] = p.Interpolate(x)
	}
	return out
}

// findInterval binary-searches for the bracketing interval [x[k], x[k+1]].
func (p *PchipInterpolator) findInterval(x float64) int {
	lo := 0
	hi := len(p.x) - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x < p.x[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// CircularPchip interpolates direction-indexed values with periodic boundary
// conditions by triplicating the knots at -360, 0 and +360 degree offsets.
// This keeps the interpolant continuous across the 0/360 seam.
func CircularPchip(sourceDir, values []float64, targetDir float64) (float64, error) {
	if len(sourceDir) != len(values) {
		return 0, NewInvalidDataError(fmt.Sprintf("direction and value lengths differ: %d vs %d", len(sourceDir), len(values)))
	}

	n := len(sourceDir)
	wrappedDir := make([]float64, 0, 3*n)
	wrappedVal := make([]float64, 0, 3*n)

	for _, offset := range []float64{-360.0, 0.0, 360.0} {
		for _, d := range sourceDir {
			wrappedDir = append(wrappedDir, d+offset)
		}
		wrappedVal = append(wrappedVal, values...)
	}

	interp, err := NewPchipInterpolator(wrappedDir, wrappedVal)
	if err != nil {
		return 0, err
	}
	return interp.Interpolate(targetDir), nil
}

func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
