// Package clock tracks simulated time for an orrery session.
//
// Elapsed time is stored in days since J2000 (2000-01-01 12:00 UTC). The
// clock never schedules itself: the presentation layer calls Tick or
// Advance once per frame. A Clock is not safe for concurrent use; its owner
// is the only writer.
package clock

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

const (
	SecondsPerDay = 86400.0

	DateTimeLayout = "2006-01-02 15:04:05"

	// J2000JD is the Julian Date of the reference epoch.
	J2000JD = 2451545.0

	// Floor is the earliest elapsed time the clock can hold.
	Floor = 0.0

	SynodicMonth = 29.53058867

	// referenceNewMoon is the new moon of 2000-01-06 18:14 UTC, in days
	// since J2000.
	referenceNewMoon = 5.259722
)

// Epoch is J2000 as a wall time.
var Epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

type Clock struct {
	elapsed  float64
	scale    float64
	running  bool
	lastTick time.Time
	now      func() time.Time
}

type Option func(*Clock)

// WithNow replaces the wall clock used by Play and Tick.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

func WithScale(scale float64) Option {
	return func(c *Clock) { c.SetTimeScale(scale) }
}

func WithElapsed(days float64) Option {
	return func(c *Clock) { c.SetTime(days) }
}

// New returns a stopped clock at the epoch running at real time.
func New(opts ...Option) *Clock {
	c := &Clock{scale: 1, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clock) Elapsed() float64 { return c.elapsed }
func (c *Clock) Scale() float64   { return c.scale }
func (c *Clock) Running() bool    { return c.running }

// Play starts the clock and records the wall reference instant.
func (c *Clock) Play() {
	c.running = true
	c.lastTick = c.now()
}

// Pause stops the clock. Pausing a stopped clock is a no-op.
func (c *Clock) Pause() {
	c.running = false
}

// Toggle flips between running and stopped and reports the new state.
func (c *Clock) Toggle() bool {
	if c.running {
		c.Pause()
	} else {
		c.Play()
	}
	return c.running
}

// Reset stops the clock and returns it to the epoch.
func (c *Clock) Reset() {
	c.running = false
	c.elapsed = Floor
	c.lastTick = c.now()
}

// Advance adds wall·scale of simulated time. It does nothing while stopped
// or for a non-positive wall delta, so time only moves forward here.
func (c *Clock) Advance(wall time.Duration) {
	if !c.running || wall <= 0 {
		return
	}
	next := c.elapsed + wall.Seconds()*c.scale/SecondsPerDay
	if !math.IsInf(next, 0) {
		c.elapsed = next
	}
}

// Tick advances by the wall time since the previous Tick or Play.
func (c *Clock) Tick() {
	if !c.running {
		return
	}
	now := c.now()
	delta := now.Sub(c.lastTick)
	c.lastTick = now
	if delta > 0 {
		c.Advance(delta)
	}
}

// SetTime sets elapsed days since the epoch, clamped at Floor. Non-finite
// values are ignored.
func (c *Clock) SetTime(days float64) {
	if !finite(days) {
		return
	}
	c.elapsed = max(days, Floor)
}

// SetJulianDate sets the clock from a Julian Date.
func (c *Clock) SetJulianDate(jd float64) {
	c.SetTime(jd - J2000JD)
}

// SetFromCalendarDate sets the clock from a wall time. Dates before the
// epoch clamp to it.
func (c *Clock) SetFromCalendarDate(t time.Time) {
	c.SetJulianDate(julian.TimeToJD(t.UTC()))
}

// GoToDate sets the clock to midnight UTC of the given calendar day.
func (c *Clock) GoToDate(year int, month time.Month, day int) {
	c.SetFromCalendarDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// JumpForward steps ahead. Negative amounts are ignored; use JumpBackward.
func (c *Clock) JumpForward(amount float64, unit Unit) {
	if !(amount > 0) {
		return
	}
	c.SetTime(c.elapsed + amount*unit.Days())
}

// JumpBackward steps back, stopping at Floor rather than going negative.
func (c *Clock) JumpBackward(amount float64, unit Unit) {
	if !(amount > 0) {
		return
	}
	c.SetTime(c.elapsed - amount*unit.Days())
}

// SetTimeScale sets simulated seconds per wall second. Negative values
// clamp to zero, which freezes time without stopping the clock.
func (c *Clock) SetTimeScale(scale float64) {
	if !finite(scale) {
		return
	}
	c.scale = max(scale, 0)
}

// SetTimeScalePreset applies a named preset and reports whether it exists.
func (c *Clock) SetTimeScalePreset(name string) bool {
	scale, ok := LookupScale(name)
	if ok {
		c.scale = scale
	}
	return ok
}

func (c *Clock) ScaleLabel() string { return ScaleLabel(c.scale) }

func (c *Clock) JulianDate() float64 { return J2000JD + c.elapsed }

// Date converts elapsed time to a UTC calendar time, rounded to the
// millisecond.
func (c *Clock) Date() time.Time { return DateAt(c.elapsed) }

// DateAt converts days since J2000 to a UTC calendar time without the clock
// floor, so times before the epoch convert too.
func DateAt(days float64) time.Time {
	return julian.JDToTime(J2000JD + days).UTC().Round(time.Millisecond)
}

func (c *Clock) FormatDate() string { return c.Date().Format("2006-01-02") }

func (c *Clock) FormatDateTime() string { return c.Date().Format(DateTimeLayout) }

// RelativeTime describes elapsed time in days, years or millions of years.
func (c *Clock) RelativeTime() string {
	days := c.elapsed
	years := days / 365.25
	switch {
	case years >= 1e6:
		return fmt.Sprintf("%.1f million years", years/1e6)
	case years >= 1000:
		return fmt.Sprintf("%.0f years", years)
	case years >= 1:
		return fmt.Sprintf("%.2f years", years)
	default:
		return fmt.Sprintf("%.1f days", days)
	}
}

// SolarLongitude is the Sun's mean longitude in degrees, [0, 360).
func (c *Clock) SolarLongitude() float64 {
	return wrapDegrees(280.460 + 0.9856474*c.elapsed)
}

// EarthObliquity is the mean obliquity of the ecliptic in degrees.
func (c *Clock) EarthObliquity() float64 {
	centuries := c.elapsed / 36525
	return 23.439291 - 0.0130042*centuries
}

// SunDeclination is the Sun's apparent declination in degrees.
func (c *Clock) SunDeclination() float64 {
	_, dec := solar.ApparentEquatorial(c.JulianDate())
	return dec.Deg()
}

// SiderealTime is Greenwich mean sidereal time in hours, [0, 24).
func (c *Clock) SiderealTime() float64 {
	return sidereal.Mean(c.JulianDate()).Hour()
}

// MoonPhase returns the synodic phase in [0, 1): 0 new, 0.5 full.
func (c *Clock) MoonPhase() float64 {
	p := math.Mod(c.elapsed-referenceNewMoon, SynodicMonth) / SynodicMonth
	if p < 0 {
		p++
	}
	if p >= 1 {
		p = 0
	}
	return p
}

func (c *Clock) MoonPhaseName() string {
	return PhaseName(c.MoonPhase())
}

// PhaseName buckets a synodic phase into the eight traditional names.
func PhaseName(phase float64) string {
	switch {
	case phase < 0.0625 || phase > 0.9375:
		return "New Moon"
	case phase < 0.1875:
		return "Waxing Crescent"
	case phase < 0.3125:
		return "First Quarter"
	case phase < 0.4375:
		return "Waxing Gibbous"
	case phase < 0.5625:
		return "Full Moon"
	case phase < 0.6875:
		return "Waning Gibbous"
	case phase < 0.8125:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}

// Season is the northern-hemisphere season of the current date.
func (c *Clock) Season() string {
	d := c.Date()
	m, day := d.Month(), d.Day()
	switch {
	case (m == time.March && day >= 20) || m == time.April || m == time.May || (m == time.June && day < 21):
		return "Spring"
	case (m == time.June && day >= 21) || m == time.July || m == time.August || (m == time.September && day < 22):
		return "Summer"
	case (m == time.September && day >= 22) || m == time.October || m == time.November || (m == time.December && day < 21):
		return "Fall"
	default:
		return "Winter"
	}
}

// State is a read-only snapshot for display and serialization.
type State struct {
	Elapsed        float64 `json:"elapsed_days"`
	JulianDate     float64 `json:"julian_date"`
	Date           string  `json:"date"`
	Running        bool    `json:"running"`
	Scale          float64 `json:"time_scale"`
	ScaleLabel     string  `json:"time_scale_label"`
	RelativeTime   string  `json:"relative_time"`
	SolarLongitude float64 `json:"solar_longitude"`
	SunDeclination float64 `json:"sun_declination"`
	SiderealTime   float64 `json:"sidereal_time"`
	MoonPhase      float64 `json:"moon_phase"`
	MoonPhaseName  string  `json:"moon_phase_name"`
	Season         string  `json:"season"`
}

func (c *Clock) Snapshot() State {
	return State{
		Elapsed:        c.elapsed,
		JulianDate:     c.JulianDate(),
		Date:           c.FormatDateTime(),
		Running:        c.running,
		Scale:          c.scale,
		ScaleLabel:     c.ScaleLabel(),
		RelativeTime:   c.RelativeTime(),
		SolarLongitude: c.SolarLongitude(),
		SunDeclination: c.SunDeclination(),
		SiderealTime:   c.SiderealTime(),
		MoonPhase:      c.MoonPhase(),
		MoonPhaseName:  c.MoonPhaseName(),
		Season:         c.Season(),
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
