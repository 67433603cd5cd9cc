package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/track"
)

// Periapsis is the smallest sampled distance from the reference body, AU.
type Periapsis struct {
	name    string
	min     float64
	samples int
}

func NewPeriapsis() *Periapsis {
	return &Periapsis{name: "periapsis_au", min: math.Inf(1)}
}

func (p *Periapsis) Name() string { return p.name }

func (p *Periapsis) Observe(s track.Sample) {
	p.min = math.Min(p.min, s.Distance)
	p.samples++
}

func (p *Periapsis) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.min
}

func (p *Periapsis) Reset() {
	p.min = math.Inf(1)
	p.samples = 0
}

// Apoapsis is the largest sampled distance, AU.
type Apoapsis struct {
	name string
	max  float64
}

func NewApoapsis() *Apoapsis {
	return &Apoapsis{name: "apoapsis_au"}
}

func (a *Apoapsis) Name() string { return a.name }

func (a *Apoapsis) Observe(s track.Sample) {
	a.max = math.Max(a.max, s.Distance)
}

func (a *Apoapsis) Value() float64 { return a.max }

func (a *Apoapsis) Reset() { a.max = 0 }

type MeanRadius struct {
	name    string
	sum     float64
	samples int
}

func NewMeanRadius() *MeanRadius {
	return &MeanRadius{name: "mean_radius_au"}
}

func (m *MeanRadius) Name() string { return m.name }

func (m *MeanRadius) Observe(s track.Sample) {
	m.sum += s.Distance
	m.samples++
}

func (m *MeanRadius) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanRadius) Reset() {
	m.sum = 0
	m.samples = 0
}

// Eccentricity estimates e from the sampled extremes,
// (r_max − r_min) / (r_max + r_min). It approaches the true value once the
// window covers a full orbit.
type Eccentricity struct {
	name string
	peri *Periapsis
	apo  *Apoapsis
}

func NewEccentricity() *Eccentricity {
	return &Eccentricity{name: "eccentricity_estimate", peri: NewPeriapsis(), apo: NewApoapsis()}
}

func (e *Eccentricity) Name() string { return e.name }

func (e *Eccentricity) Observe(s track.Sample) {
	e.peri.Observe(s)
	e.apo.Observe(s)
}

func (e *Eccentricity) Value() float64 {
	lo, hi := e.peri.Value(), e.apo.Value()
	if hi+lo == 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}

func (e *Eccentricity) Reset() {
	e.peri.Reset()
	e.apo.Reset()
}
