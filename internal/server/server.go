// Package server exposes an orrery over HTTP: catalog and position queries,
// clock control, a websocket frame stream and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/telemetry"
)

const (
	DefaultStreamFPS    = 10
	DefaultTickInterval = time.Second / 60
	writeTimeout        = 5 * time.Second
	shutdownTimeout     = 5 * time.Second
)

type Options struct {
	Addr string
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit    float64
	Burst        int
	StreamFPS    int
	TickInterval time.Duration
	Logger       *log.Logger
	Telemetry    *telemetry.Collector
}

// Server owns one clock. The tick loop and the clock handlers are its only
// writers and they serialize on mu.
type Server struct {
	catalog   *catalog.Catalog
	resolver  *orbit.Resolver
	telemetry *telemetry.Collector
	logger    *log.Logger
	limiter   *IPRateLimiter
	opts      Options

	mu    sync.Mutex
	clock *clock.Clock

	router   *mux.Router
	upgrader websocket.Upgrader
}

func New(cat *catalog.Catalog, resolver *orbit.Resolver, clk *clock.Clock, opts Options) *Server {
	if opts.StreamFPS <= 0 {
		opts.StreamFPS = DefaultStreamFPS
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		catalog:   cat,
		resolver:  resolver,
		telemetry: opts.Telemetry,
		logger:    opts.Logger,
		opts:      opts,
		clock:     clk,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = int(opts.RateLimit) + 1
		}
		s.limiter = NewIPRateLimiter(rate.Limit(opts.RateLimit), burst)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(s.instrument, s.rateLimit)

	r.HandleFunc("/bodies", s.handleBodies).Methods(http.MethodGet)
	r.HandleFunc("/bodies/{id}", s.handleBody).Methods(http.MethodGet)
	r.HandleFunc("/bodies/{id}/position", s.handlePosition).Methods(http.MethodGet)
	r.HandleFunc("/positions", s.handlePositions).Methods(http.MethodGet)

	r.HandleFunc("/clock", s.handleClock).Methods(http.MethodGet)
	r.HandleFunc("/clock/scale", s.handleScale).Methods(http.MethodPost)
	r.HandleFunc("/clock/jump", s.handleJump).Methods(http.MethodPost)
	r.HandleFunc("/clock/date", s.handleDate).Methods(http.MethodPost)
	r.HandleFunc("/clock/{action}", s.handleClockAction).Methods(http.MethodPost)

	r.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)
	if s.telemetry != nil {
		r.Handle("/metrics", s.telemetry.Handler()).Methods(http.MethodGet)
	}
	s.router = r
}

func (s *Server) Handler() http.Handler { return s.router }

// withClock runs fn with the clock locked and returns the resulting state.
func (s *Server) withClock(fn func(c *clock.Clock)) clock.State {
	s.mu.Lock()
	if fn != nil {
		fn(s.clock)
	}
	st := s.clock.Snapshot()
	s.mu.Unlock()

	if s.telemetry != nil {
		s.telemetry.ObserveClock(st)
	}
	return st
}

// Tick advances the clock by the wall time since the previous tick.
func (s *Server) Tick() clock.State {
	return s.withClock(func(c *clock.Clock) { c.Tick() })
}

func (s *Server) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.tickLoop(loopCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("orrery server listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	}
}
