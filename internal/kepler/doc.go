// Package kepler solves Kepler's equation for elliptical orbits.
//
// Given a mean anomaly M (radians, any real value) and an eccentricity
// e in [0, 1), [Solve] returns the eccentric anomaly E satisfying
//
//	E - e·sin(E) = M
//
// using Newton-Raphson iteration. The iteration is bounded: when the
// iteration cap is reached before the tolerance is met, the last estimate
// is returned and [Result.Converged] is false. Callers treat that as a
// reduced-precision answer, not an error.
//
// M is first reduced to [0, 2π). Mean anomalies in [π, 2π) are solved as
// 2π − M and reflected back, using E(2π − M) = 2π − E(M), so the iteration
// always runs on [0, π]. The result matches iterating on M directly.
//
// # Example
//
//	E := kepler.Solve(M, 0.0167)
//	nu := kepler.TrueAnomaly(E, 0.0167)
package kepler
