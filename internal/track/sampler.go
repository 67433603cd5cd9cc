package track

import (
	"context"
	"math"

	"github.com/san-kum/orrery/internal/orbit"
)

// Sampler evaluates one body over a time window.
type Sampler struct {
	resolver  *orbit.Resolver
	metrics   []Metric
	observers []Observer
}

func New(resolver *orbit.Resolver) *Sampler {
	return &Sampler{
		resolver:  resolver,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Sampler) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Sampler) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Sampler) Run(ctx context.Context, body string, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	steps := cfg.Steps()
	result := &Result{
		Body:     body,
		Relative: cfg.Relative,
		Samples:  make([]Sample, 0, steps+1),
		Metrics:  make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := cfg.Start + float64(i)*cfg.Step
		sample, err := s.sample(body, cfg.Relative, t)
		if err != nil {
			return result, &SampleError{Body: body, Index: i, Time: t, Wrapped: err}
		}
		if !sample.Converged {
			result.Shortfalls++
		}

		for _, m := range s.metrics {
			m.Observe(sample)
		}
		for _, obs := range s.observers {
			obs.OnSample(body, sample)
		}
		result.Samples = append(result.Samples, sample)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// RunWithCallback streams samples until the window ends or fn returns false.
func (s *Sampler) RunWithCallback(ctx context.Context, body string, cfg Config, fn func(Sample) bool) error {
	if err := validate(cfg); err != nil {
		return err
	}
	for i := 0; i <= cfg.Steps(); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		t := cfg.Start + float64(i)*cfg.Step
		sample, err := s.sample(body, cfg.Relative, t)
		if err != nil {
			return &SampleError{Body: body, Index: i, Time: t, Wrapped: err}
		}
		if !fn(sample) {
			return nil
		}
	}
	return nil
}

func (s *Sampler) sample(body, relative string, t float64) (Sample, error) {
	sv, err := s.resolver.ResolveState(body, t)
	if err != nil {
		return Sample{}, err
	}
	if relative != "" {
		ref, err := s.resolver.ResolveState(relative, t)
		if err != nil {
			return Sample{}, err
		}
		sv.Position = sv.Position.Sub(ref.Position)
		sv.Velocity = sv.Velocity.Sub(ref.Velocity)
		sv.Converged = sv.Converged && ref.Converged
	}
	return Sample{
		Time:      t,
		Position:  sv.Position,
		Velocity:  sv.Velocity,
		Distance:  sv.Position.Length(),
		Converged: sv.Converged,
	}, nil
}

func validate(cfg Config) error {
	switch {
	case !(cfg.Step > 0) || math.IsInf(cfg.Step, 1):
		return ErrStep
	case !(cfg.Duration >= 0) || math.IsInf(cfg.Duration, 1):
		return ErrDuration
	case math.IsNaN(cfg.Start) || math.IsInf(cfg.Start, 0):
		return ErrStart
	case cfg.Duration/cfg.Step >= MaxSamples:
		return ErrTooManySamples
	}
	return nil
}
