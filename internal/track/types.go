package track

import (
	"errors"
	"fmt"

	"github.com/san-kum/orrery/internal/orbit"
)

// MaxSamples caps a single run.
const MaxSamples = 1_000_000

var (
	ErrStep           = errors.New("track: step must be positive and finite")
	ErrDuration       = errors.New("track: duration must be finite and not negative")
	ErrStart          = errors.New("track: start must be finite")
	ErrTooManySamples = fmt.Errorf("track: window needs more than %d samples", MaxSamples)
	ErrNoBodies       = errors.New("track: no bodies to sample")
)

// Sample is one evaluation of a body. Position and Velocity are relative to
// the run's reference body (the origin when none is set).
type Sample struct {
	Time      float64
	Position  orbit.Vec3
	Velocity  orbit.Vec3
	Distance  float64
	Converged bool
}

func (s Sample) Speed() float64 { return s.Velocity.Length() }

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnSample(body string, s Sample)
}

// Config describes a sampling window in days since J2000.
type Config struct {
	Start    float64
	Duration float64
	Step     float64
	Relative string
}

// Steps is the number of intervals in the window.
func (c Config) Steps() int {
	return int(c.Duration/c.Step + 1e-9)
}

type Result struct {
	Body       string
	Relative   string
	Samples    []Sample
	Metrics    map[string]float64
	Shortfalls int
}

// Times returns the sample times.
func (r *Result) Times() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Time
	}
	return out
}

// Distances returns the distance series, handy for plotting.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Distance
	}
	return out
}

// SampleError carries the sample index and time at which a run failed.
type SampleError struct {
	Body    string
	Index   int
	Time    float64
	Wrapped error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("track %s: sample %d at t=%.4f: %v", e.Body, e.Index, e.Time, e.Wrapped)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
