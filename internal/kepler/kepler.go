package kepler

import "math"

const (
	twoPi = 2 * math.Pi

	// DefaultTolerance is the convergence threshold on |ΔE| in radians.
	DefaultTolerance = 1e-8
	// DefaultMaxIterations caps Newton-Raphson steps.
	DefaultMaxIterations = 100

	// highEccentricity switches the starting guess to π.
	highEccentricity = 0.8
)

type Options struct {
	Tolerance     float64
	MaxIterations int
}

func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result carries the eccentric anomaly and how it was reached.
type Result struct {
	E          float64
	Iterations int
	Converged  bool
}

// Solve returns the eccentric anomaly for mean anomaly M and eccentricity e
// using the default options.
func Solve(M, e float64) float64 {
	return SolveWith(M, e, DefaultOptions()).E
}

// SolveWith runs the solver with explicit options. Zero-valued fields in
// opts fall back to the defaults.
func SolveWith(M, e float64, opts Options) Result {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	M = NormalizeAngle(M)

	// The equation is odd about π: solve the lower half and reflect, so the
	// iteration always starts on the convex branch [0, π].
	reflected := M >= math.Pi
	if reflected {
		M = twoPi - M
	}

	E := M
	if e > highEccentricity {
		E = math.Pi
	}

	res := Result{}
	for res.Iterations < opts.MaxIterations {
		delta := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= delta
		res.Iterations++
		if math.Abs(delta) < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	if reflected {
		E = twoPi - E
	}
	res.E = E
	return res
}

// TrueAnomaly recovers the true anomaly from the eccentric anomaly.
func TrueAnomaly(E, e float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2),
	)
}

// MeanAnomaly is the forward form of Kepler's equation.
func MeanAnomaly(E, e float64) float64 {
	return E - e*math.Sin(E)
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// math.Mod of a tiny negative value can round back up to 2π.
	if a >= twoPi {
		a = 0
	}
	return a
}
