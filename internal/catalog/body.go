// Package catalog holds the set of bodies an orrery can place: a built-in
// J2000 table of the Sun, planets, major moons and periodic comets, plus
// loading of user catalogs from YAML.
package catalog

import (
	"fmt"

	"github.com/san-kum/orrery/internal/orbit"
)

// Type classifies a body.
type Type string

const (
	Star   Type = "star"
	Planet Type = "planet"
	Moon   Type = "moon"
	Comet  Type = "comet"
)

// Body is one catalog entry. A body with no Elements is fixed at the frame
// origin.
type Body struct {
	ID       string        `yaml:"id" json:"id"`
	Name     string        `yaml:"name" json:"name"`
	Type     Type          `yaml:"type" json:"type"`
	Parent   string        `yaml:"parent,omitempty" json:"parent,omitempty"`
	RadiusKm float64       `yaml:"radius_km" json:"radius_km"`
	MassKg   float64       `yaml:"mass_kg,omitempty" json:"mass_kg,omitempty"`
	Color    string        `yaml:"color,omitempty" json:"color,omitempty"`
	Moons    []string      `yaml:"moons,omitempty" json:"moons,omitempty"`
	Elements *ElementsSpec `yaml:"elements,omitempty" json:"elements,omitempty"`
}

// ElementsSpec is the serialized element block. Angles are degrees, the
// period is in days.
type ElementsSpec struct {
	SemiMajorAxis         float64  `yaml:"a" json:"a"`
	Unit                  string   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Eccentricity          float64  `yaml:"e" json:"e"`
	Inclination           float64  `yaml:"i" json:"i"`
	AscendingNode         float64  `yaml:"node,omitempty" json:"node,omitempty"`
	LongitudeOfPerihelion *float64 `yaml:"longitude_of_perihelion,omitempty" json:"longitude_of_perihelion,omitempty"`
	ArgumentOfPerihelion  *float64 `yaml:"argument_of_perihelion,omitempty" json:"argument_of_perihelion,omitempty"`
	MeanLongitude         *float64 `yaml:"mean_longitude,omitempty" json:"mean_longitude,omitempty"`
	Period                *float64 `yaml:"period,omitempty" json:"period,omitempty"`
}

// OrbitElements converts the body's element block for the calculator.
// It returns nil for a body without elements.
func (b Body) OrbitElements() (*orbit.Elements, error) {
	if b.Elements == nil {
		return nil, nil
	}
	unit, err := orbit.ParseLengthUnit(b.Elements.Unit)
	if err != nil {
		return nil, fmt.Errorf("catalog: body %q: %w", b.ID, err)
	}
	s := b.Elements
	return &orbit.Elements{
		SemiMajorAxis:            s.SemiMajorAxis,
		Unit:                     unit,
		Eccentricity:             s.Eccentricity,
		Inclination:              s.Inclination,
		LongitudeOfAscendingNode: s.AscendingNode,
		LongitudeOfPerihelion:    s.LongitudeOfPerihelion,
		ArgumentOfPerihelion:     s.ArgumentOfPerihelion,
		MeanLongitude:            s.MeanLongitude,
		Period:                   s.Period,
		Parent:                   b.Parent,
	}, nil
}

// DisplayName falls back to the id when no name is set.
func (b Body) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}
