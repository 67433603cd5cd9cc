package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/track"
)

const (
	DefaultTimeScale = "1day/sec"
	DefaultFPS       = 60
	DefaultDataDir   = ".orrery"
	DefaultLogLevel  = "info"
	DefaultAddr      = ":8080"
	DefaultDuration  = 365.25
	DefaultStep      = 1.0
	DefaultRate      = 20.0
	DefaultBurst     = 40
	DefaultZoom      = 1.0

	// DateLayout is the layout of StartDate.
	DateLayout = "2006-01-02"
)

type Config struct {
	Catalog   string       `yaml:"catalog"`
	StartDate string       `yaml:"start_date"`
	TimeScale string       `yaml:"time_scale"`
	FPS       int          `yaml:"fps"`
	DataDir   string       `yaml:"data_dir"`
	LogLevel  string       `yaml:"log_level"`
	Track     TrackConfig  `yaml:"track"`
	View      ViewConfig   `yaml:"view"`
	Server    ServerConfig `yaml:"server"`
}

// TrackConfig controls sampled runs. Times are days since J2000.
type TrackConfig struct {
	Bodies   []string `yaml:"bodies"`
	Start    float64  `yaml:"start"`
	Duration float64  `yaml:"duration"`
	Step     float64  `yaml:"step"`
	Relative string   `yaml:"relative_to"`
}

type ViewConfig struct {
	Theme      string   `yaml:"theme"`
	Focus      string   `yaml:"focus"`
	Zoom       float64  `yaml:"zoom"`
	ShowOrbits bool     `yaml:"show_orbits"`
	ShowLabels bool     `yaml:"show_labels"`
	Types      []string `yaml:"types"`
}

type ServerConfig struct {
	Addr      string  `yaml:"addr"`
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
	StreamFPS int     `yaml:"stream_fps"`
}

func DefaultConfig() *Config {
	return &Config{
		StartDate: "2000-01-01",
		TimeScale: DefaultTimeScale,
		FPS:       DefaultFPS,
		DataDir:   DefaultDataDir,
		LogLevel:  DefaultLogLevel,
		Track: TrackConfig{
			Bodies:   []string{"earth"},
			Duration: DefaultDuration,
			Step:     DefaultStep,
		},
		View: ViewConfig{
			Theme:      "default",
			Focus:      "sun",
			Zoom:       DefaultZoom,
			ShowOrbits: true,
			ShowLabels: true,
		},
		Server: ServerConfig{
			Addr:      DefaultAddr,
			RateLimit: DefaultRate,
			Burst:     DefaultBurst,
			StreamFPS: 10,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Start parses StartDate. An empty date is the J2000 day.
func (c *Config) Start() (time.Time, error) {
	if c.StartDate == "" {
		return time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: start_date: %w", err)
	}
	return t, nil
}

// Validate rejects values no command can run with.
func (c *Config) Validate() error {
	if _, err := c.Start(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if !(c.Track.Step > 0) || math.IsInf(c.Track.Step, 1) {
		return fmt.Errorf("config: track.step must be positive and finite, got %g", c.Track.Step)
	}
	if !(c.Track.Duration >= 0) || math.IsInf(c.Track.Duration, 1) {
		return fmt.Errorf("config: track.duration must be finite and not negative, got %g", c.Track.Duration)
	}
	if c.Track.Duration/c.Track.Step >= track.MaxSamples {
		return fmt.Errorf("config: track window of %g days at step %g exceeds %d samples", c.Track.Duration, c.Track.Step, track.MaxSamples)
	}
	if c.Server.RateLimit < 0 || c.Server.Burst < 0 {
		return fmt.Errorf("config: server rate limits must not be negative")
	}
	return nil
}

// Samples is the number of track samples, endpoints included.
func (t TrackConfig) Samples() int {
	if t.Step <= 0 {
		return 1
	}
	return int(t.Duration/t.Step+1e-9) + 1
}
