package track

import (
	"context"
	"errors"
	"sync"

	"github.com/san-kum/orrery/internal/orbit"
)

// Ensemble samples several bodies over the same window concurrently.
// Metrics are built per body by the factory so no instance is shared
// between goroutines.
type Ensemble struct {
	resolver  *orbit.Resolver
	metrics   func() []Metric
	observers []Observer
}

func NewEnsemble(resolver *orbit.Resolver, metrics func() []Metric) *Ensemble {
	return &Ensemble{resolver: resolver, metrics: metrics}
}

// AddObserver registers o with every sampler. It must be safe for
// concurrent use.
func (e *Ensemble) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Run returns one result per body, in input order.
func (e *Ensemble) Run(ctx context.Context, bodies []string, cfg Config) ([]*Result, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	results := make([]*Result, len(bodies))
	errs := make([]error, len(bodies))

	var wg sync.WaitGroup
	for i, body := range bodies {
		wg.Add(1)
		go func(idx int, body string) {
			defer wg.Done()

			s := New(e.resolver)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}
			for _, o := range e.observers {
				s.AddObserver(o)
			}
			results[idx], errs[idx] = s.Run(ctx, body, cfg)
		}(i, body)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
