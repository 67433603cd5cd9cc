// Package telemetry exports solver, clock and HTTP activity as Prometheus
// metrics.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/kepler"
	"github.com/san-kum/orrery/internal/track"
)

const namespace = "orrery"

// Collector owns a registry so several collectors can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	solverIterations prometheus.Histogram
	solverShortfalls prometheus.Counter
	samplesTotal     *prometheus.CounterVec
	clockElapsed     prometheus.Gauge
	clockScale       prometheus.Gauge
	clockRunning     prometheus.Gauge
	bodyDistance     *prometheus.GaugeVec
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	streamClients    prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		solverIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kepler_iterations",
			Help:      "Newton-Raphson iterations per Kepler solve",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 20, 50, 100},
		}),
		solverShortfalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kepler_shortfalls_total",
			Help:      "Kepler solves that hit the iteration cap before converging",
		}),
		samplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "track_samples_total",
			Help:      "Track samples evaluated",
		}, []string{"body"}),
		clockElapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clock_elapsed_days",
			Help:      "Simulated days since J2000",
		}),
		clockScale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clock_time_scale",
			Help:      "Simulated seconds per wall second",
		}),
		clockRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clock_running",
			Help:      "1 while the simulation clock runs",
		}),
		bodyDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "body_distance_au",
			Help:      "Heliocentric distance of each streamed body",
		}, []string{"body"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests",
		}, []string{"route", "method"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"route", "method", "code"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_clients",
			Help:      "Connected websocket clients",
		}),
	}

	c.registry.MustRegister(
		c.solverIterations, c.solverShortfalls, c.samplesTotal,
		c.clockElapsed, c.clockScale, c.clockRunning,
		c.bodyDistance, c.requestDuration, c.requestsTotal, c.streamClients,
	)
	return c
}

// Registry exposes the underlying registry, e.g. to add Go runtime
// collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// OnSolve implements orbit.SolveObserver.
func (c *Collector) OnSolve(r kepler.Result) {
	c.solverIterations.Observe(float64(r.Iterations))
	if !r.Converged {
		c.solverShortfalls.Inc()
	}
}

// OnSample implements track.Observer.
func (c *Collector) OnSample(body string, _ track.Sample) {
	c.samplesTotal.WithLabelValues(body).Inc()
}

func (c *Collector) ObserveClock(s clock.State) {
	c.clockElapsed.Set(s.Elapsed)
	c.clockScale.Set(s.Scale)
	if s.Running {
		c.clockRunning.Set(1)
	} else {
		c.clockRunning.Set(0)
	}
}

func (c *Collector) SetBodyDistance(body string, au float64) {
	c.bodyDistance.WithLabelValues(body).Set(au)
}

func (c *Collector) RecordRequest(route, method string, code int, d time.Duration) {
	c.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
	c.requestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

func (c *Collector) StreamOpened() { c.streamClients.Inc() }
func (c *Collector) StreamClosed() { c.streamClients.Dec() }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
