package orbit

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DaysPerYear is the Julian year used by Kepler's third law.
	DaysPerYear = 365.25

	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// LengthUnit is the unit of a semi-major axis.
type LengthUnit int

const (
	AU LengthUnit = iota
	Kilometer
)

func (u LengthUnit) String() string {
	switch u {
	case AU:
		return "au"
	case Kilometer:
		return "km"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseLengthUnit accepts "au" and "km" (case-insensitive); empty means AU.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "au":
		return AU, nil
	case "km", "kilometer", "kilometers":
		return Kilometer, nil
	}
	return AU, fmt.Errorf("orbit: unknown length unit %q", s)
}

// Elements is an element set as supplied by a catalog. Angles are degrees.
//
// The perihelion may be given either as a longitude (ϖ) or as an argument
// (ω); when both are set the argument wins. A nil MeanLongitude means 0. A
// nil Period is derived from Kepler's third law, which is only allowed for
// AU element sets. A negative Period encodes retrograde motion.
type Elements struct {
	SemiMajorAxis            float64
	Unit                     LengthUnit
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	LongitudeOfPerihelion    *float64
	ArgumentOfPerihelion     *float64
	MeanLongitude            *float64
	Period                   *float64
	Parent                   string
}

// Float returns a pointer to v, for filling optional element fields.
func Float(v float64) *float64 { return &v }

// Orbit is the canonical form of an element set: radians, AU and days.
type Orbit struct {
	A         float64 // semi-major axis, AU
	E         float64
	I         float64
	Node      float64 // longitude of ascending node Ω
	ArgPeri   float64 // argument of perihelion ω
	M0        float64 // mean anomaly at epoch
	Period    float64 // days, signed
	Motion    float64 // mean motion, rad/day, signed
	semiMinor float64
}

// DerivePeriod returns the sidereal period in days of a Sun-orbiting body
// with semi-major axis aAU.
func DerivePeriod(aAU float64) float64 {
	return math.Pow(aAU, 1.5) * DaysPerYear
}

// ResolvePeriod returns the supplied period or the one derived from the
// semi-major axis. The element set alone cannot tell whether Parent is the
// root at the origin, so the Resolver rejects derived periods for bodies
// whose parent itself orbits.
func (el Elements) ResolvePeriod() (float64, error) {
	if el.Period != nil {
		if *el.Period == 0 || math.IsNaN(*el.Period) {
			return 0, ErrZeroPeriod
		}
		return *el.Period, nil
	}
	if el.Unit != AU {
		return 0, ErrMissingPeriod
	}
	return DerivePeriod(el.SemiMajorAxis), nil
}

// Validate checks the element set without building an Orbit.
func (el Elements) Validate() error {
	_, err := el.Resolve()
	return err
}

// Resolve converts the element set to its canonical form.
func (el Elements) Resolve() (Orbit, error) {
	e := el.Eccentricity
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return Orbit{}, ErrEccentricity
	}
	if !(el.SemiMajorAxis > 0) || math.IsInf(el.SemiMajorAxis, 0) {
		return Orbit{}, ErrSemiMajorAxis
	}

	period, err := el.ResolvePeriod()
	if err != nil {
		return Orbit{}, err
	}

	a := el.SemiMajorAxis
	if el.Unit == Kilometer {
		a /= AUKilometers
	}

	node := el.LongitudeOfAscendingNode * deg2rad

	var argPeri, lonPeri float64
	switch {
	case el.ArgumentOfPerihelion != nil:
		argPeri = *el.ArgumentOfPerihelion * deg2rad
		lonPeri = argPeri + node
	case el.LongitudeOfPerihelion != nil:
		lonPeri = *el.LongitudeOfPerihelion * deg2rad
		argPeri = lonPeri - node
	}

	var meanLon float64
	if el.MeanLongitude != nil {
		meanLon = *el.MeanLongitude * deg2rad
	}

	return Orbit{
		A:         a,
		E:         e,
		I:         el.Inclination * deg2rad,
		Node:      node,
		ArgPeri:   argPeri,
		M0:        meanLon - lonPeri,
		Period:    period,
		Motion:    twoPi / period,
		semiMinor: a * math.Sqrt(1-e*e),
	}, nil
}

// MeanAnomaly returns the (unwrapped) mean anomaly t days after epoch.
func (o Orbit) MeanAnomaly(t float64) float64 {
	return o.M0 + o.Motion*t
}

// Perihelion is the closest approach distance in AU.
func (o Orbit) Perihelion() float64 { return o.A * (1 - o.E) }

// Aphelion is the farthest distance in AU.
func (o Orbit) Aphelion() float64 { return o.A * (1 + o.E) }

// toFrame rotates orbital-plane coordinates by ω, then i, then Ω.
func (o Orbit) toFrame(xo, yo float64) Vec3 {
	sw, cw := math.Sincos(o.ArgPeri)
	si, ci := math.Sincos(o.I)
	sn, cn := math.Sincos(o.Node)

	// around z by ω
	xp := xo*cw - yo*sw
	yp := xo*sw + yo*cw

	// around x by i
	yi := yp * ci
	zi := yp * si

	// around z by Ω
	return Vec3{
		X: xp*cn - yi*sn,
		Y: xp*sn + yi*cn,
		Z: zi,
	}
}
