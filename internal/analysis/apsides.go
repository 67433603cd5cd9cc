package analysis

import (
	"github.com/san-kum/orrery/internal/track"
)

type ApsisKind int

const (
	Periapsis ApsisKind = iota
	Apoapsis
)

func (k ApsisKind) String() string {
	if k == Apoapsis {
		return "apoapsis"
	}
	return "periapsis"
}

// Apsis is a local extreme of distance found in a sampled track.
type Apsis struct {
	Kind     ApsisKind
	Index    int // sample nearest the extreme
	Time     float64
	Distance float64
}

// FindApsides locates interior local minima and maxima of the distance
// series. Time and distance are refined with a parabola through the
// extreme sample and its neighbours. Samples must be evenly spaced.
func FindApsides(samples []track.Sample) []Apsis {
	var out []Apsis
	for i := 1; i < len(samples)-1; i++ {
		prev, cur, next := samples[i-1].Distance, samples[i].Distance, samples[i+1].Distance
		var kind ApsisKind
		switch {
		case cur < prev && cur <= next:
			kind = Periapsis
		case cur > prev && cur >= next:
			kind = Apoapsis
		default:
			continue
		}

		t, d := samples[i].Time, cur
		step := samples[i+1].Time - samples[i].Time
		if den := prev - 2*cur + next; den != 0 {
			offset := 0.5 * (prev - next) / den
			t += offset * step
			d = cur - 0.25*(prev-next)*offset
		}
		out = append(out, Apsis{Kind: kind, Index: i, Time: t, Distance: d})
	}
	return out
}

// Report summarizes a tracked body's motion.
type Report struct {
	Body string
	// Period is the dominant period of the x coordinate in days; zero when
	// none could be estimated.
	Period    float64
	Periapses []Apsis
	Apoapses  []Apsis
	MinRadius float64
	MaxRadius float64
}

// Eccentricity estimates e from the extreme distances.
func (r Report) Eccentricity() float64 {
	if r.MaxRadius+r.MinRadius == 0 {
		return 0
	}
	return (r.MaxRadius - r.MinRadius) / (r.MaxRadius + r.MinRadius)
}

// Analyze builds a report from evenly spaced samples.
func Analyze(body string, samples []track.Sample) Report {
	r := Report{Body: body}
	if len(samples) == 0 {
		return r
	}

	xs := make([]float64, len(samples))
	r.MinRadius, r.MaxRadius = samples[0].Distance, samples[0].Distance
	for i, s := range samples {
		xs[i] = s.Position.X
		r.MinRadius = min(r.MinRadius, s.Distance)
		r.MaxRadius = max(r.MaxRadius, s.Distance)
	}
	if len(samples) > 1 {
		if p, ok := DominantPeriod(xs, samples[1].Time-samples[0].Time); ok {
			r.Period = p
		}
	}

	for _, a := range FindApsides(samples) {
		if a.Kind == Periapsis {
			r.Periapses = append(r.Periapses, a)
		} else {
			r.Apoapses = append(r.Apoapses, a)
		}
	}
	return r
}
