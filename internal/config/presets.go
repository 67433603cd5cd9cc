package config

import "sort"

// Presets are named scenarios that override parts of DefaultConfig.
var Presets = map[string]*Config{
	"inner": {
		TimeScale: "1week/sec",
		Track:     TrackConfig{Bodies: []string{"mercury", "venus", "earth", "mars"}, Duration: 687, Step: 1},
		View:      ViewConfig{Focus: "sun", Zoom: 6, Types: []string{"star", "planet"}},
	},
	"outer": {
		TimeScale: "1year/sec",
		Track:     TrackConfig{Bodies: []string{"jupiter", "saturn", "uranus", "neptune"}, Duration: 60190, Step: 30},
		View:      ViewConfig{Focus: "sun", Zoom: 0.6, Types: []string{"star", "planet"}},
	},
	"jovian": {
		TimeScale: "1hour/sec",
		Track:     TrackConfig{Bodies: []string{"io", "europa", "ganymede", "callisto"}, Duration: 17, Step: 0.05, Relative: "jupiter"},
		View:      ViewConfig{Focus: "jupiter", Zoom: 500, Types: []string{"planet", "moon"}},
	},
	"lunar": {
		StartDate: "2024-01-01",
		TimeScale: "1hour/sec",
		Track:     TrackConfig{Bodies: []string{"moon"}, Duration: 27.3, Step: 0.1, Relative: "earth"},
		View:      ViewConfig{Focus: "earth", Zoom: 2000, Types: []string{"planet", "moon"}},
	},
	"halley": {
		StartDate: "2000-01-01",
		TimeScale: "1year/sec",
		Track:     TrackConfig{Bodies: []string{"halley"}, Duration: 27500, Step: 10},
		View:      ViewConfig{Focus: "sun", Zoom: 0.4, Types: []string{"star", "planet", "comet"}},
	},
	"comets": {
		TimeScale: "10years/sec",
		Track:     TrackConfig{Bodies: []string{"halley", "encke", "swift-tuttle", "tempel-tuttle"}, Duration: 36525, Step: 10},
		View:      ViewConfig{Focus: "sun", Zoom: 0.3, Types: []string{"star", "comet"}},
	},
}

// GetPreset returns DefaultConfig with the named scenario applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Apply(p)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the non-zero fields of o onto c.
func (c *Config) Apply(o *Config) {
	if o.Catalog != "" {
		c.Catalog = o.Catalog
	}
	if o.StartDate != "" {
		c.StartDate = o.StartDate
	}
	if o.TimeScale != "" {
		c.TimeScale = o.TimeScale
	}
	if o.FPS > 0 {
		c.FPS = o.FPS
	}
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if len(o.Track.Bodies) > 0 {
		c.Track.Bodies = append([]string(nil), o.Track.Bodies...)
	}
	if o.Track.Start != 0 {
		c.Track.Start = o.Track.Start
	}
	if o.Track.Duration > 0 {
		c.Track.Duration = o.Track.Duration
	}
	if o.Track.Step > 0 {
		c.Track.Step = o.Track.Step
	}
	if o.Track.Relative != "" {
		c.Track.Relative = o.Track.Relative
	}
	if o.View.Theme != "" {
		c.View.Theme = o.View.Theme
	}
	if o.View.Focus != "" {
		c.View.Focus = o.View.Focus
	}
	if o.View.Zoom > 0 {
		c.View.Zoom = o.View.Zoom
	}
	if len(o.View.Types) > 0 {
		c.View.Types = append([]string(nil), o.View.Types...)
	}
	if o.Server.Addr != "" {
		c.Server.Addr = o.Server.Addr
	}
}
