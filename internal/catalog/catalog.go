package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/orbit"
)

var (
	ErrDuplicateBody = errors.New("catalog: duplicate body id")
	ErrUnknownParent = errors.New("catalog: parent is not in the catalog")
	ErrParentCycle   = errors.New("catalog: parent chain forms a cycle")
	ErrEmptyID       = errors.New("catalog: body has no id")
	ErrUnknownMoon   = errors.New("catalog: listed moon is not in the catalog")
)

// BodyError names the body a validation error was raised for.
type BodyError struct {
	Body    string
	Wrapped error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("%s: %q", e.Wrapped.Error(), e.Body)
}

func (e *BodyError) Unwrap() error { return e.Wrapped }

// Catalog is an immutable, validated set of bodies. It implements
// orbit.BodySource.
type Catalog struct {
	bodies   []Body
	index    map[string]int
	elements map[string]*orbit.Elements
}

type file struct {
	Bodies []Body `yaml:"bodies"`
}

// New validates bodies and builds a catalog preserving their order.
func New(bodies []Body) (*Catalog, error) {
	if err := Validate(bodies); err != nil {
		return nil, err
	}
	c := &Catalog{
		bodies:   bodies,
		index:    make(map[string]int, len(bodies)),
		elements: make(map[string]*orbit.Elements, len(bodies)),
	}
	for i, b := range bodies {
		c.index[b.ID] = i
		// Validate has already checked the unit.
		el, _ := b.OrbitElements()
		c.elements[b.ID] = el
	}
	return c, nil
}

// Default returns the built-in solar system.
func Default() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return New(doc.Bodies)
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Save writes the catalog in the format Load reads.
func (c *Catalog) Save(path string) error {
	data, err := yaml.Marshal(file{Bodies: c.bodies})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ids, parent links and element sets. All problems are
// reported together.
func Validate(bodies []Body) error {
	var errs []error
	parents := make(map[string]string, len(bodies))
	byID := make(map[string]Body, len(bodies))
	first := make(map[string]int, len(bodies))

	for i, b := range bodies {
		if b.ID == "" {
			errs = append(errs, &BodyError{Body: b.Name, Wrapped: ErrEmptyID})
			continue
		}
		if _, dup := byID[b.ID]; dup {
			errs = append(errs, &BodyError{Body: b.ID, Wrapped: ErrDuplicateBody})
			continue
		}
		byID[b.ID] = b
		first[b.ID] = i
		parents[b.ID] = b.Parent
	}

	for i, b := range bodies {
		if j, ok := first[b.ID]; !ok || j != i {
			continue
		}
		for _, m := range b.Moons {
			if _, ok := byID[m]; !ok {
				errs = append(errs, &BodyError{Body: b.ID + "/" + m, Wrapped: ErrUnknownMoon})
			}
		}
		if b.Parent != "" {
			if _, ok := byID[b.Parent]; !ok {
				errs = append(errs, &BodyError{Body: b.ID, Wrapped: ErrUnknownParent})
				continue
			}
		}
		if inCycle(b.ID, parents) {
			errs = append(errs, &BodyError{Body: b.ID, Wrapped: ErrParentCycle})
			continue
		}
		if err := validateElements(b, byID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func inCycle(id string, parents map[string]string) bool {
	seen := map[string]bool{id: true}
	for cur := parents[id]; cur != ""; cur = parents[cur] {
		if seen[cur] {
			return true
		}
		seen[cur] = true
	}
	return false
}

func validateElements(b Body, byID map[string]Body) error {
	el, err := b.OrbitElements()
	if err != nil {
		return err
	}
	if el == nil {
		return nil
	}
	if err := el.Validate(); err != nil {
		return &orbit.ElementsError{Body: b.ID, Wrapped: err}
	}
	// Kepler's third law in years and AU only holds about the Sun, which is
	// a root fixed at the origin.
	if el.Period == nil && b.Parent != "" && byID[b.Parent].Elements != nil {
		return &orbit.ElementsError{Body: b.ID, Wrapped: orbit.ErrMissingPeriod}
	}
	return nil
}

// OrbitOf implements orbit.BodySource.
func (c *Catalog) OrbitOf(id string) (*orbit.Elements, bool) {
	el, ok := c.elements[id]
	return el, ok
}

// IDs returns body ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.bodies))
	for i, b := range c.bodies {
		ids[i] = b.ID
	}
	return ids
}

func (c *Catalog) Len() int { return len(c.bodies) }

func (c *Catalog) Get(id string) (Body, bool) {
	i, ok := c.index[id]
	if !ok {
		return Body{}, false
	}
	return c.bodies[i], true
}

// Bodies returns a copy of all entries in catalog order.
func (c *Catalog) Bodies() []Body {
	out := make([]Body, len(c.bodies))
	copy(out, c.bodies)
	return out
}

// Children returns the bodies whose parent is id.
func (c *Catalog) Children(id string) []Body {
	var out []Body
	for _, b := range c.bodies {
		if b.Parent == id {
			out = append(out, b)
		}
	}
	return out
}

// Moons returns the moons of a planet, in the order the planet lists them
// when it does, otherwise in catalog order.
func (c *Catalog) Moons(planet string) []Body {
	p, ok := c.Get(planet)
	if !ok {
		return nil
	}
	if len(p.Moons) > 0 {
		out := make([]Body, 0, len(p.Moons))
		for _, id := range p.Moons {
			if m, ok := c.Get(id); ok {
				out = append(out, m)
			}
		}
		return out
	}
	var out []Body
	for _, b := range c.Children(planet) {
		if b.Type == Moon {
			out = append(out, b)
		}
	}
	return out
}

func (c *Catalog) ByType(t Type) []Body {
	var out []Body
	for _, b := range c.bodies {
		if b.Type == t {
			out = append(out, b)
		}
	}
	return out
}

// Roots returns bodies without a parent.
func (c *Catalog) Roots() []Body {
	return c.Children("")
}

// Types lists the distinct body types present, sorted.
func (c *Catalog) Types() []Type {
	seen := make(map[Type]bool)
	var out []Type
	for _, b := range c.bodies {
		if !seen[b.Type] {
			seen[b.Type] = true
			out = append(out, b.Type)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
