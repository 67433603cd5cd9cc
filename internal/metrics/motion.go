package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/track"
)

// PathLength sums the chord lengths between consecutive samples, AU.
type PathLength struct {
	name   string
	total  float64
	last   orbit.Vec3
	primed bool
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length_au"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(s track.Sample) {
	if p.primed {
		p.total += s.Position.Sub(p.last).Length()
	}
	p.last = s.Position
	p.primed = true
}

func (p *PathLength) Value() float64 { return p.total }

func (p *PathLength) Reset() {
	p.total = 0
	p.last = orbit.Origin
	p.primed = false
}

// MaxSpeed is the largest sampled speed in AU/day.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed_au_day"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(s track.Sample) {
	m.max = math.Max(m.max, s.Speed())
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }

// Convergence is the fraction of samples whose Kepler solve converged.
type Convergence struct {
	name      string
	converged int
	samples   int
}

func NewConvergence() *Convergence {
	return &Convergence{name: "convergence"}
}

func (c *Convergence) Name() string { return c.name }

func (c *Convergence) Observe(s track.Sample) {
	c.samples++
	if s.Converged {
		c.converged++
	}
}

func (c *Convergence) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return float64(c.converged) / float64(c.samples)
}

func (c *Convergence) Reset() {
	c.converged = 0
	c.samples = 0
}

// Standard returns a fresh set of the metrics recorded with every run.
func Standard() []track.Metric {
	return []track.Metric{
		NewPeriapsis(),
		NewApoapsis(),
		NewMeanRadius(),
		NewEccentricity(),
		NewPathLength(),
		NewMaxSpeed(),
		NewConvergence(),
	}
}
