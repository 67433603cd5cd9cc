package track

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
)

type countMetric struct {
	n   int
	max float64
}

func (c *countMetric) Name() string { return "count" }
func (c *countMetric) Observe(s Sample) {
	c.n++
	if s.Distance > c.max {
		c.max = s.Distance
	}
}
func (c *countMetric) Value() float64 { return float64(c.n) }
func (c *countMetric) Reset()         { c.n, c.max = 0, 0 }

type recorder struct {
	mu     sync.Mutex
	bodies map[string]int
}

func (r *recorder) OnSample(body string, s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bodies == nil {
		r.bodies = make(map[string]int)
	}
	r.bodies[body]++
}

func resolver() *orbit.Resolver {
	return orbit.NewResolver(nil, catalog.Default())
}

func TestSamplerRun(t *testing.T) {
	s := New(resolver())
	m := &countMetric{}
	s.AddMetric(m)
	rec := &recorder{}
	s.AddObserver(rec)

	result, err := s.Run(context.Background(), "earth", Config{Duration: 365.25, Step: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Samples) != 366 {
		t.Errorf("expected 366 samples, got %d", len(result.Samples))
	}
	if result.Metrics["count"] != 366 {
		t.Errorf("expected metric count 366, got %f", result.Metrics["count"])
	}
	if rec.bodies["earth"] != 366 {
		t.Errorf("observer saw %d samples", rec.bodies["earth"])
	}
	if result.Shortfalls != 0 {
		t.Errorf("unexpected solver shortfalls: %d", result.Shortfalls)
	}
	for _, smp := range result.Samples {
		if smp.Distance < 0.98 || smp.Distance > 1.02 {
			t.Fatalf("earth distance %f at t=%f", smp.Distance, smp.Time)
		}
	}
	times := result.Times()
	if times[0] != 0 || times[len(times)-1] != 365 {
		t.Errorf("unexpected time span %f..%f", times[0], times[len(times)-1])
	}
}

func TestSamplerRelative(t *testing.T) {
	s := New(resolver())
	result, err := s.Run(context.Background(), "moon", Config{Start: 100, Duration: 30, Step: 0.5, Relative: "earth"})
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range result.Distances() {
		km := d * orbit.AUKilometers
		if km < 363000 || km > 406000 {
			t.Fatalf("moon distance %f km outside orbit", km)
		}
	}
	if result.Relative != "earth" {
		t.Errorf("expected relative earth, got %q", result.Relative)
	}
}

func TestSamplerSingleSample(t *testing.T) {
	s := New(resolver())
	result, err := s.Run(context.Background(), "mars", Config{Start: 50, Step: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Samples) != 1 || result.Samples[0].Time != 50 {
		t.Errorf("expected one sample at t=50, got %+v", result.Samples)
	}
}

func TestSamplerInvalidConfig(t *testing.T) {
	s := New(resolver())
	tests := []struct {
		cfg  Config
		want error
	}{
		{Config{Duration: 10, Step: 0}, ErrStep},
		{Config{Duration: 10, Step: -1}, ErrStep},
		{Config{Duration: -1, Step: 1}, ErrDuration},
		{Config{Duration: math.NaN(), Step: 1}, ErrDuration},
		{Config{Duration: math.Inf(1), Step: 1}, ErrDuration},
		{Config{Duration: 10, Step: math.NaN()}, ErrStep},
		{Config{Duration: 10, Step: math.Inf(1)}, ErrStep},
		{Config{Start: math.NaN(), Duration: 10, Step: 1}, ErrStart},
		{Config{Start: math.Inf(-1), Duration: 10, Step: 1}, ErrStart},
		{Config{Duration: 1e30, Step: 1}, ErrTooManySamples},
		{Config{Duration: 1, Step: 1e-300}, ErrTooManySamples},
	}
	for _, tt := range tests {
		if _, err := s.Run(context.Background(), "earth", tt.cfg); !errors.Is(err, tt.want) {
			t.Errorf("config %+v: expected %v, got %v", tt.cfg, tt.want, err)
		}
		err := s.RunWithCallback(context.Background(), "earth", tt.cfg, func(Sample) bool { return true })
		if !errors.Is(err, tt.want) {
			t.Errorf("callback config %+v: expected %v, got %v", tt.cfg, tt.want, err)
		}
	}
}

func TestSamplerUnknownBody(t *testing.T) {
	s := New(resolver())
	_, err := s.Run(context.Background(), "vulcan", Config{Duration: 1, Step: 1})
	if !errors.Is(err, orbit.ErrUnknownBody) {
		t.Fatalf("expected unknown body, got %v", err)
	}
	var se *SampleError
	if !errors.As(err, &se) || se.Index != 0 || se.Body != "vulcan" {
		t.Errorf("expected sample error at index 0, got %v", err)
	}

	_, err = s.Run(context.Background(), "earth", Config{Duration: 1, Step: 1, Relative: "vulcan"})
	if !errors.Is(err, orbit.ErrUnknownBody) {
		t.Errorf("expected unknown reference body, got %v", err)
	}
}

func TestSamplerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(resolver())
	result, err := s.Run(ctx, "earth", Config{Duration: 1000, Step: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected canceled, got %v", err)
	}
	if result == nil || len(result.Samples) != 0 {
		t.Error("expected empty partial result")
	}
}

func TestRunWithCallback(t *testing.T) {
	s := New(resolver())
	n := 0
	err := s.RunWithCallback(context.Background(), "venus", Config{Duration: 100, Step: 1}, func(Sample) bool {
		n++
		return n < 10
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("expected callback to stop after 10 samples, got %d", n)
	}
}

func TestEnsemble(t *testing.T) {
	e := NewEnsemble(resolver(), func() []Metric { return []Metric{&countMetric{}} })
	rec := &recorder{}
	e.AddObserver(rec)

	bodies := []string{"mercury", "venus", "earth", "mars"}
	results, err := e.Run(context.Background(), bodies, Config{Duration: 10, Step: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(bodies) {
		t.Fatalf("expected %d results, got %d", len(bodies), len(results))
	}
	for i, r := range results {
		if r.Body != bodies[i] {
			t.Errorf("result %d: expected %s, got %s", i, bodies[i], r.Body)
		}
		if r.Metrics["count"] != 11 {
			t.Errorf("%s: metric shared between runs, count %f", r.Body, r.Metrics["count"])
		}
		if rec.bodies[r.Body] != 11 {
			t.Errorf("%s: observer saw %d samples", r.Body, rec.bodies[r.Body])
		}
	}
}

func TestEnsembleErrors(t *testing.T) {
	e := NewEnsemble(resolver(), nil)
	if _, err := e.Run(context.Background(), nil, Config{Step: 1}); !errors.Is(err, ErrNoBodies) {
		t.Errorf("expected ErrNoBodies, got %v", err)
	}
	_, err := e.Run(context.Background(), []string{"earth", "vulcan"}, Config{Duration: 1, Step: 1})
	if !errors.Is(err, orbit.ErrUnknownBody) {
		t.Errorf("expected unknown body, got %v", err)
	}
}
