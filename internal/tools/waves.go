package tools

import "math"

// Gravity is the gravitational acceleration used throughout, in m/s².
const Gravity = 9.81

// kdMax caps kh products before hyperbolic functions to avoid overflow.
const kdMax = 20.0

// Ldis solves the linear dispersion relation for wavelength given a wave
// period (s) and water depth (m). The nondimensional root x = kh of
// x·tanh(x) = ω²h/g is found by Newton-Raphson with tolerance 1e-6 and a cap
// of 50 iterations.
func Ldis(period, depth float64) (float64, error) {
	const eps = 0.000001
	const maxIterations = 50

	omega := 2.0 * math.Pi / period
	d := omega * omega * depth / Gravity

	var xo float64
	if d >= 1.0 {
		xo = d
	} else {
		xo = math.Sqrt(d)
	}

	iter := 0
	err := 1.0
	xf := 0.0

	for err > eps && iter < maxIterations {
		f := xo - d/math.Tanh(xo)
		sinh := math.Sinh(xo)
		df := 1.0 + d/(sinh*sinh)
		xf = xo - f/df
		err = math.Abs((xf - xo) / xo)
		xo = xf
		iter++
	}

	if iter >= maxIterations {
		return 0, NewConvergenceError("dispersion relation", maxIterations)
	}
	return 2.0 * math.Pi * depth / xf, nil
}

// Wavenu3 computes wavenumber (rad/m) and group velocity (m/s) from the
// intrinsic frequency si (rad/s) and water depth h (m), using the improved
// Eckart formula by Beji (2003). No iteration is required.
func Wavenu3(si, h float64) (float64, float64) {
	zpi := 2.0 * math.Pi

	tp := si / zpi
	kho := zpi * zpi * h / Gravity * tp * tp
	tmp := 1.55 + 1.3*kho + 0.216*kho*kho
	kh := kho * (1.0 + math.Pow(kho, 1.09)/math.Exp(math.Min(tmp, kdMax))) /
		math.Sqrt(math.Tanh(math.Min(kho, kdMax)))
	k := kh / h
	cg := 0.5 * (1.0 + 2.0*kh/math.Sinh(math.Min(2.0*kh, kdMax))) * si / k

	return k, cg
}

// BreakWave solves for the breaking wave height and breaking water depth
// given deep-water swell and beach conditions. Angle is in degrees, lengths
// in meters. The convergence failure from Ldis propagates to the caller.
func BreakWave(period, incidentAngle, deepWaterWaveHeight, beachSlope, waterDepth float64) (float64, float64, error) {
	angleRad := incidentAngle * math.Pi / 180.0

	wavelength, err := Ldis(period, waterDepth)
	if err != nil {
		return 0, 0, err
	}

	deepWavelength := Gravity * period * period / (2.0 * math.Pi)
	initialCelerity := Gravity * period / (2.0 * math.Pi)
	celerity := wavelength / period

	// Snell's law gives the refracted incidence angle in shallow water.
	theta := math.Asin(celerity * math.Sin(angleRad) / initialCelerity)
	refractionCoefficient := math.Sqrt(math.Cos(angleRad) / math.Cos(theta))

	a := 43.8 * (1.0 - math.Exp(-19.0*beachSlope))
	b := 1.56 / (1.0 + math.Exp(-19.5*beachSlope))

	deepRefractedWaveHeight := refractionCoefficient * deepWaterWaveHeight
	w := 0.56 * math.Pow(deepRefractedWaveHeight/deepWavelength, -0.2)

	breakingWaveHeight := w * deepRefractedWaveHeight

	k := b - a*(breakingWaveHeight/(Gravity*period*period))
	breakingWaterDepth := breakingWaveHeight / k

	return breakingWaveHeight, breakingWaterDepth, nil
}

// RefractionCoefficient computes Kr for a straight beach with parallel bottom
// contours. Angles are in degrees. Returns the coefficient and the shallow
// incident angle in degrees.
func RefractionCoefficient(wavelength, depth, incidentAngle float64) (float64, float64) {
	angleRad := incidentAngle * math.Pi / 180.0
	wavenumber := 2.0 * math.Pi / wavelength
	shallowAngle := math.Asin(math.Sin(angleRad) * math.Tanh(wavenumber*depth))
	coefficient := math.Sqrt(math.Cos(angleRad) / math.Cos(shallowAngle))
	return coefficient, shallowAngle * 180.0 / math.Pi
}

// ShoalingCoefficient computes Ks from wavelength and depth in meters.
func ShoalingCoefficient(wavelength, depth float64) float64 {
	wavenumber := 2.0 * math.Pi / wavelength
	deepWavelength := wavelength / math.Tanh(wavenumber*depth)
	w := math.Sqrt(wavenumber * Gravity)
	period := 2.0 * math.Pi / w

	initialCelerity := deepWavelength / period
	celerity := initialCelerity * math.Tanh(wavenumber*depth)
	groupVelocity := 0.5 * celerity * (1.0 + 2.0*wavenumber*depth/math.Sinh(2.0*wavenumber*depth))

	return math.Sqrt(initialCelerity / (2.0 * groupVelocity))
}

// ZeroSpectralMoment is the m0 contribution of a single spectral bin.
func ZeroSpectralMoment(energy, bandwidth float64) float64 {
	return energy * bandwidth
}

// SecondSpectralMoment is the m2 contribution of a single spectral bin.
func SecondSpectralMoment(energy, bandwidth, frequency float64) float64 {
	return energy * bandwidth * frequency * frequency
}

// SteepnessCoefficient derives the spectral steepness from the zero and
// second moments.
func SteepnessCoefficient(zeroMoment, secondMoment float64) float64 {
	return 8.0 * math.Pi * secondMoment / (Gravity * math.Sqrt(zeroMoment))
}
