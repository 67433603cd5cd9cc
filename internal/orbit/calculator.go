package orbit

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/kepler"
)

// SolveObserver receives every Kepler solution the calculator computes.
type SolveObserver interface {
	OnSolve(res kepler.Result)
}

// Calculator evaluates element sets at a time offset (days since epoch).
type Calculator struct {
	solver   kepler.Options
	logger   *log.Logger
	observer SolveObserver
}

type Option func(*Calculator)

func WithSolverOptions(opts kepler.Options) Option {
	return func(c *Calculator) { c.solver = opts }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithObserver(o SolveObserver) Option {
	return func(c *Calculator) { c.observer = o }
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		solver: kepler.DefaultOptions(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Logger returns the logger the calculator reports through.
func (c *Calculator) Logger() *log.Logger { return c.logger }

// StateVector is the full evaluation of an orbit at one instant.
type StateVector struct {
	Time             float64
	Position         Vec3 // AU
	Velocity         Vec3 // AU/day
	MeanAnomaly      float64
	EccentricAnomaly float64
	TrueAnomaly      float64
	Radius           float64 // AU
	Converged        bool
}

// Position returns the body's position relative to its primary.
func (c *Calculator) Position(el Elements, t float64) (Vec3, error) {
	o, err := el.Resolve()
	if err != nil {
		return Origin, err
	}
	E, _ := c.solve(o, t)
	return o.positionAt(E), nil
}

// Velocity returns the body's velocity relative to its primary in AU/day.
func (c *Calculator) Velocity(el Elements, t float64) (Vec3, error) {
	o, err := el.Resolve()
	if err != nil {
		return Origin, err
	}
	E, _ := c.solve(o, t)
	return o.velocityAt(E), nil
}

// State evaluates position, velocity and anomalies in one solve.
func (c *Calculator) State(el Elements, t float64) (StateVector, error) {
	o, err := el.Resolve()
	if err != nil {
		return StateVector{}, err
	}
	return c.StateOf(o, t), nil
}

// StateOf evaluates an already resolved orbit.
func (c *Calculator) StateOf(o Orbit, t float64) StateVector {
	E, converged := c.solve(o, t)
	pos := o.positionAt(E)
	return StateVector{
		Time:             t,
		Position:         pos,
		Velocity:         o.velocityAt(E),
		MeanAnomaly:      kepler.NormalizeAngle(o.MeanAnomaly(t)),
		EccentricAnomaly: E,
		TrueAnomaly:      kepler.NormalizeAngle(kepler.TrueAnomaly(E, o.E)),
		Radius:           pos.Length(),
		Converged:        converged,
	}
}

func (c *Calculator) solve(o Orbit, t float64) (float64, bool) {
	res := kepler.SolveWith(o.MeanAnomaly(t), o.E, c.solver)
	if c.observer != nil {
		c.observer.OnSolve(res)
	}
	if !res.Converged {
		c.logger.Debug("kepler iteration cap reached, using best estimate",
			"e", o.E, "t", t, "iterations", res.Iterations)
	}
	return res.E, res.Converged
}

func (o Orbit) positionAt(E float64) Vec3 {
	sinE, cosE := math.Sincos(E)
	xo := o.A * (cosE - o.E)
	yo := o.semiMinor * sinE
	return o.toFrame(xo, yo)
}

// velocityAt differentiates positionAt with dE/dt = n / (1 - e·cos E).
func (o Orbit) velocityAt(E float64) Vec3 {
	sinE, cosE := math.Sincos(E)
	eDot := o.Motion / (1 - o.E*cosE)
	vxo := -o.A * sinE * eDot
	vyo := o.semiMinor * cosE * eDot
	return o.toFrame(vxo, vyo)
}

// Path returns n points evenly spaced in eccentric anomaly around the
// ellipse, relative to the primary. Used for drawing orbit outlines.
func (o Orbit) Path(n int) []Vec3 {
	if n < 3 {
		n = 3
	}
	pts := make([]Vec3, n)
	for k := range pts {
		pts[k] = o.positionAt(twoPi * float64(k) / float64(n))
	}
	return pts
}
