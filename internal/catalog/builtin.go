package catalog

import "github.com/san-kum/orrery/internal/orbit"

var f = orbit.Float

// planet builds a heliocentric element block from the J2000 mean elements
// (a, e, i, L, ϖ, Ω). The period is derived from a.
func planet(a, e, i, meanLon, lonPeri, node float64) *ElementsSpec {
	return &ElementsSpec{
		SemiMajorAxis:         a,
		Unit:                  "au",
		Eccentricity:          e,
		Inclination:           i,
		AscendingNode:         node,
		LongitudeOfPerihelion: f(lonPeri),
		MeanLongitude:         f(meanLon),
	}
}

func moon(aKm, e, i, period float64) *ElementsSpec {
	return &ElementsSpec{
		SemiMajorAxis: aKm,
		Unit:          "km",
		Eccentricity:  e,
		Inclination:   i,
		Period:        f(period),
	}
}

func comet(a, e, i, node, argPeri float64) *ElementsSpec {
	return &ElementsSpec{
		SemiMajorAxis:        a,
		Unit:                 "au",
		Eccentricity:         e,
		Inclination:          i,
		AscendingNode:        node,
		ArgumentOfPerihelion: f(argPeri),
	}
}

// Builtin returns a fresh copy of the built-in solar system table.
func Builtin() []Body {
	return []Body{
		{ID: "sun", Name: "Sun", Type: Star, RadiusKm: 696340, MassKg: 1.989e30, Color: "#FFDD00"},

		{ID: "mercury", Name: "Mercury", Type: Planet, Parent: "sun", RadiusKm: 2440, MassKg: 3.301e23, Color: "#B5B5B5",
			Elements: planet(0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593)},
		{ID: "venus", Name: "Venus", Type: Planet, Parent: "sun", RadiusKm: 6052, MassKg: 4.867e24, Color: "#E6C229",
			Elements: planet(0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255)},
		{ID: "earth", Name: "Earth", Type: Planet, Parent: "sun", RadiusKm: 6371, MassKg: 5.972e24, Color: "#6B93D6",
			Moons:    []string{"moon"},
			Elements: planet(1.00000261, 0.01671123, 0, 100.46457166, 102.93768193, 0)},
		{ID: "mars", Name: "Mars", Type: Planet, Parent: "sun", RadiusKm: 3390, MassKg: 6.39e23, Color: "#C1440E",
			Moons:    []string{"phobos", "deimos"},
			Elements: planet(1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891)},
		{ID: "jupiter", Name: "Jupiter", Type: Planet, Parent: "sun", RadiusKm: 69911, MassKg: 1.898e27, Color: "#D8CA9D",
			Moons:    []string{"io", "europa", "ganymede", "callisto"},
			Elements: planet(5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909)},
		{ID: "saturn", Name: "Saturn", Type: Planet, Parent: "sun", RadiusKm: 58232, MassKg: 5.683e26, Color: "#EAD6B8",
			Moons:    []string{"titan", "rhea", "iapetus", "dione", "tethys", "enceladus", "mimas"},
			Elements: planet(9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448)},
		{ID: "uranus", Name: "Uranus", Type: Planet, Parent: "sun", RadiusKm: 25362, MassKg: 8.681e25, Color: "#D1E7E7",
			Moons:    []string{"miranda", "ariel", "umbriel", "titania", "oberon"},
			Elements: planet(19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503)},
		{ID: "neptune", Name: "Neptune", Type: Planet, Parent: "sun", RadiusKm: 24622, MassKg: 1.024e26, Color: "#5B5DDF",
			Moons:    []string{"triton", "proteus", "nereid"},
			Elements: planet(30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574)},

		{ID: "moon", Name: "Moon", Type: Moon, Parent: "earth", RadiusKm: 1737, MassKg: 7.34e22, Color: "#AAAAAA",
			Elements: moon(384400, 0.055, 5.1, 27.3)},
		{ID: "phobos", Name: "Phobos", Type: Moon, Parent: "mars", RadiusKm: 11.267, MassKg: 1.07e16, Color: "#8B7355",
			Elements: moon(9376, 0.015, 1.1, 0.32)},
		{ID: "deimos", Name: "Deimos", Type: Moon, Parent: "mars", RadiusKm: 6.2, MassKg: 1.48e15, Color: "#8B8378",
			Elements: moon(23458, 0.0002, 1.788, 1.263)},
		{ID: "io", Name: "Io", Type: Moon, Parent: "jupiter", RadiusKm: 1821.6, MassKg: 8.93e22, Color: "#FFE135",
			Elements: moon(421700, 0.004, 0.04, 1.77)},
		{ID: "europa", Name: "Europa", Type: Moon, Parent: "jupiter", RadiusKm: 1560.8, MassKg: 4.8e22, Color: "#C9A659",
			Elements: moon(671034, 0.009, 0.47, 3.55)},
		{ID: "ganymede", Name: "Ganymede", Type: Moon, Parent: "jupiter", RadiusKm: 2631.2, MassKg: 1.48e23, Color: "#8A8A8A",
			Elements: moon(1070412, 0.001, 0.2, 7.15)},
		{ID: "callisto", Name: "Callisto", Type: Moon, Parent: "jupiter", RadiusKm: 2410.3, MassKg: 1.08e23, Color: "#6E6E6E",
			Elements: moon(1882709, 0.007, 0.19, 16.69)},
		{ID: "titan", Name: "Titan", Type: Moon, Parent: "saturn", RadiusKm: 2574.7, MassKg: 1.35e23, Color: "#E8C776",
			Elements: moon(1221870, 0.029, 0.31, 15.95)},
		{ID: "rhea", Name: "Rhea", Type: Moon, Parent: "saturn", RadiusKm: 763.8, MassKg: 2.31e21, Color: "#A8A8A8",
			Elements: moon(527108, 0.001, 0.35, 4.52)},
		{ID: "iapetus", Name: "Iapetus", Type: Moon, Parent: "saturn", RadiusKm: 734.5, MassKg: 1.81e21, Color: "#8B8378",
			Elements: moon(3560820, 0.029, 15.5, 79.3)},
		{ID: "dione", Name: "Dione", Type: Moon, Parent: "saturn", RadiusKm: 561.4, MassKg: 1.1e21, Color: "#B8B8B8",
			Elements: moon(377396, 0.002, 0.02, 2.74)},
		{ID: "tethys", Name: "Tethys", Type: Moon, Parent: "saturn", RadiusKm: 531, MassKg: 6.17e20, Color: "#B8B8B8",
			Elements: moon(294619, 0.0001, 1.09, 1.89)},
		{ID: "enceladus", Name: "Enceladus", Type: Moon, Parent: "saturn", RadiusKm: 252.1, MassKg: 1.08e20, Color: "#FFFFFF",
			Elements: moon(237948, 0.005, 0.01, 1.37)},
		{ID: "mimas", Name: "Mimas", Type: Moon, Parent: "saturn", RadiusKm: 198.2, MassKg: 3.75e19, Color: "#B8B8B8",
			Elements: moon(185539, 0.02, 1.57, 0.94)},
		{ID: "miranda", Name: "Miranda", Type: Moon, Parent: "uranus", RadiusKm: 235.8, MassKg: 6.59e19, Color: "#A8A8A8",
			Elements: moon(129390, 0.001, 4.23, 1.41)},
		{ID: "ariel", Name: "Ariel", Type: Moon, Parent: "uranus", RadiusKm: 578.9, MassKg: 1.35e21, Color: "#B8B8B8",
			Elements: moon(191020, 0.001, 0.04, 2.52)},
		{ID: "umbriel", Name: "Umbriel", Type: Moon, Parent: "uranus", RadiusKm: 584.7, MassKg: 1.17e21, Color: "#787878",
			Elements: moon(266000, 0.004, 0.13, 4.14)},
		{ID: "titania", Name: "Titania", Type: Moon, Parent: "uranus", RadiusKm: 788.4, MassKg: 3.53e21, Color: "#A8A8A8",
			Elements: moon(435910, 0.001, 0.08, 8.71)},
		{ID: "oberon", Name: "Oberon", Type: Moon, Parent: "uranus", RadiusKm: 761.4, MassKg: 3.01e21, Color: "#8B8B8B",
			Elements: moon(583520, 0.001, 0.07, 13.46)},
		// Triton's retrograde motion is carried by its negative period; the
		// inclination is measured against the orbit's own sense of motion.
		{ID: "triton", Name: "Triton", Type: Moon, Parent: "neptune", RadiusKm: 1353.4, MassKg: 2.14e22, Color: "#B5B5B5",
			Elements: moon(354759, 0.00002, 23, -5.88)},
		{ID: "proteus", Name: "Proteus", Type: Moon, Parent: "neptune", RadiusKm: 210, MassKg: 4.4e19, Color: "#787878",
			Elements: moon(117646, 0.0005, 0.03, 1.12)},
		{ID: "nereid", Name: "Nereid", Type: Moon, Parent: "neptune", RadiusKm: 170, MassKg: 2.7e19, Color: "#787878",
			Elements: moon(5513400, 0.751, 32.6, 360.1)},

		{ID: "halley", Name: "Halley's Comet", Type: Comet, Parent: "sun", RadiusKm: 5.5, Color: "#FFFFFF",
			Elements: comet(17.8, 0.967, 162.3, 58.42, 111.33)},
		{ID: "hale-bopp", Name: "Comet Hale-Bopp", Type: Comet, Parent: "sun", RadiusKm: 30, Color: "#88CCFF",
			Elements: comet(186, 0.995, 89.4, 282.47, 130.59)},
		{ID: "encke", Name: "Comet Encke", Type: Comet, Parent: "sun", RadiusKm: 2.4, Color: "#FFFFFF",
			Elements: comet(2.21, 0.847, 11.8, 334.57, 186.55)},
		{ID: "swift-tuttle", Name: "Comet Swift-Tuttle", Type: Comet, Parent: "sun", RadiusKm: 13.5, Color: "#FFFFFF",
			Elements: comet(26.09, 0.963, 113.5, 139.38, 152.98)},
		{ID: "tempel-tuttle", Name: "Comet Tempel-Tuttle", Type: Comet, Parent: "sun", RadiusKm: 2.3, Color: "#FFFFFF",
			Elements: comet(10.33, 0.905, 162.5, 235.27, 172.5)},
	}
}

// Shower is an annual meteor shower and the comet whose debris feeds it.
type Shower struct {
	Name        string  `yaml:"name" json:"name"`
	RadiantRA   float64 `yaml:"radiant_ra_hours" json:"radiant_ra_hours"`
	RadiantDec  float64 `yaml:"radiant_dec" json:"radiant_dec"`
	PeakMonth   int     `yaml:"peak_month" json:"peak_month"`
	PeakDay     int     `yaml:"peak_day" json:"peak_day"`
	ZHR         int     `yaml:"zhr" json:"zhr"`
	ParentComet string  `yaml:"parent_comet" json:"parent_comet"`
}

// Showers lists the major annual meteor showers.
var Showers = []Shower{
	{"Quadrantids", 15.3, 49, 1, 3, 120, "2003 EH1"},
	{"Eta Aquariids", 22.5, -1, 5, 5, 50, "halley"},
	{"Perseids", 3.1, 58, 8, 12, 100, "swift-tuttle"},
	{"Orionids", 6.4, 16, 10, 21, 20, "halley"},
	{"Leonids", 10.15, 22, 11, 17, 15, "tempel-tuttle"},
	{"Geminids", 7.55, 33, 12, 13, 150, "3200 Phaethon"},
}
