package orbit

import (
	"errors"
	"sort"
)

// MaxDepth bounds parent recursion. Real hierarchies are two or three deep.
const MaxDepth = 16

// BodySource supplies element sets by body id.
type BodySource interface {
	// OrbitOf returns the elements for id. A known body with nil elements
	// is fixed at the frame origin.
	OrbitOf(id string) (*Elements, bool)
	IDs() []string
}

// Resolver places bodies in the shared frame by walking parent links.
type Resolver struct {
	calc   *Calculator
	bodies BodySource
}

func NewResolver(calc *Calculator, bodies BodySource) *Resolver {
	if calc == nil {
		calc = NewCalculator()
	}
	return &Resolver{calc: calc, bodies: bodies}
}

func (r *Resolver) Calculator() *Calculator { return r.calc }

// Resolve returns the heliocentric position of id at t, recursing through
// the parent chain at the same t.
func (r *Resolver) Resolve(id string, t float64) (Vec3, error) {
	sv, err := r.resolve(id, t, 0)
	return sv.Position, err
}

// ResolveState returns heliocentric position and velocity of id at t.
func (r *Resolver) ResolveState(id string, t float64) (StateVector, error) {
	return r.resolve(id, t, 0)
}

func (r *Resolver) resolve(id string, t float64, depth int) (StateVector, error) {
	if depth > MaxDepth {
		return StateVector{Time: t}, &ElementsError{Body: id, Wrapped: ErrParentCycle}
	}
	el, ok := r.bodies.OrbitOf(id)
	if !ok {
		return StateVector{Time: t}, &ElementsError{Body: id, Wrapped: ErrUnknownBody}
	}
	if el == nil {
		return StateVector{Time: t, Converged: true}, nil
	}

	if el.Period == nil && el.Parent != "" {
		// the derived period assumes the primary is the root at the origin
		if pe, ok := r.bodies.OrbitOf(el.Parent); ok && pe != nil {
			return StateVector{Time: t}, &ElementsError{Body: id, Wrapped: ErrMissingPeriod}
		}
	}
	o, err := el.Resolve()
	if err != nil {
		return StateVector{Time: t}, &ElementsError{Body: id, Wrapped: err}
	}
	sv := r.calc.StateOf(o, t)
	if el.Parent == "" {
		return sv, nil
	}

	parent, err := r.resolve(el.Parent, t, depth+1)
	if err != nil {
		return StateVector{Time: t}, err
	}
	sv.Position = parent.Position.Add(sv.Position)
	sv.Velocity = parent.Velocity.Add(sv.Velocity)
	sv.Converged = sv.Converged && parent.Converged
	return sv, nil
}

// PositionOf is the display path: it never fails. Unknown or invalid
// bodies are placed at the origin and a warning is logged.
func (r *Resolver) PositionOf(id string, t float64) Vec3 {
	pos, err := r.Resolve(id, t)
	if err != nil {
		if errors.Is(err, ErrUnknownBody) {
			r.calc.logger.Warn("position requested for unknown body", "body", id, "err", err)
		} else {
			r.calc.logger.Warn("cannot place body, using origin", "body", id, "err", err)
		}
		return Origin
	}
	return pos
}

// Positions evaluates every body the source knows at t.
func (r *Resolver) Positions(t float64) map[string]Vec3 {
	ids := r.bodies.IDs()
	out := make(map[string]Vec3, len(ids))
	for _, id := range ids {
		out[id] = r.PositionOf(id, t)
	}
	return out
}

// Distance returns the separation of two bodies in AU.
func (r *Resolver) Distance(a, b string, t float64) (float64, error) {
	pa, err := r.Resolve(a, t)
	if err != nil {
		return 0, err
	}
	pb, err := r.Resolve(b, t)
	if err != nil {
		return 0, err
	}
	return pb.Sub(pa).Length(), nil
}

// Nearest returns the ids sorted by distance from id at t, excluding id.
func (r *Resolver) Nearest(id string, t float64) ([]string, error) {
	origin, err := r.Resolve(id, t)
	if err != nil {
		return nil, err
	}
	all := r.Positions(t)
	ids := make([]string, 0, len(all))
	for other := range all {
		if other != id {
			ids = append(ids, other)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return all[ids[i]].Sub(origin).Length() < all[ids[j]].Sub(origin).Length()
	})
	return ids, nil
}
