package clock

import (
	"fmt"
	"strings"
)

// Unit is a jump granularity for JumpForward and JumpBackward.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

var unitNames = [...]string{"seconds", "minutes", "hours", "days", "weeks", "months", "years"}

// Days returns the length of one unit in days. Months are mean Gregorian
// months and years are Julian years.
func (u Unit) Days() float64 {
	switch u {
	case Seconds:
		return 1 / SecondsPerDay
	case Minutes:
		return 1.0 / 1440
	case Hours:
		return 1.0 / 24
	case Weeks:
		return 7
	case Months:
		return 30.44
	case Years:
		return 365.25
	default:
		return 1
	}
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit accepts plural, singular and short forms ("d", "y", "min").
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "second", "seconds":
		return Seconds, nil
	case "min", "minute", "minutes":
		return Minutes, nil
	case "h", "hour", "hours":
		return Hours, nil
	case "", "d", "day", "days":
		return Days, nil
	case "w", "week", "weeks":
		return Weeks, nil
	case "mo", "month", "months":
		return Months, nil
	case "y", "yr", "year", "years":
		return Years, nil
	}
	return Days, fmt.Errorf("clock: unknown time unit %q", s)
}

// ScalePreset is a named time scale in simulated seconds per wall second.
type ScalePreset struct {
	Name  string
	Scale float64
}

// ScalePresets are ordered from slowest to fastest.
var ScalePresets = []ScalePreset{
	{"paused", 0},
	{"realtime", 1},
	{"1min/sec", 60},
	{"1hour/sec", 3600},
	{"1day/sec", 86400},
	{"1week/sec", 604800},
	{"1month/sec", 2592000},
	{"1year/sec", 31536000},
	{"10years/sec", 315360000},
	{"100years/sec", 3153600000},
	{"1000years/sec", 31536000000},
}

// LookupScale returns the scale for a preset name.
func LookupScale(name string) (float64, bool) {
	for _, p := range ScalePresets {
		if p.Name == name {
			return p.Scale, true
		}
	}
	return 0, false
}

// ScaleLabel names a scale by its preset when within 1%, otherwise in
// exponent form.
func ScaleLabel(scale float64) string {
	if scale == 0 {
		return "paused"
	}
	for _, p := range ScalePresets {
		if p.Scale == 0 {
			continue
		}
		diff := scale - p.Scale
		if diff < 0 {
			diff = -diff
		}
		if diff < 0.01*p.Scale {
			return p.Name
		}
	}
	return fmt.Sprintf("%.2ex", scale)
}

// StepScale returns the preset dir steps from scale. A scale between two
// presets snaps to the neighbour in the direction of travel. The result is
// clamped to the preset range.
func StepScale(scale float64, dir int) ScalePreset {
	idx := 0
	for i, p := range ScalePresets {
		if p.Scale <= scale {
			idx = i
		}
	}
	if dir < 0 && ScalePresets[idx].Scale < scale {
		dir++
	}
	idx = min(max(idx+dir, 0), len(ScalePresets)-1)
	return ScalePresets[idx]
}
