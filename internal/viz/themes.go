package viz

import "github.com/san-kum/orrery/internal/catalog"

// Theme is a colour scheme for the live view. Colours are hex strings.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
	Text      string
	Muted     string
	Success   string
	Warning   string
	Error     string

	Star   string
	Planet string
	Moon   string
	Comet  string
	Orbit  string
	Trail  string

	// UseBodyColors draws bodies in their catalog colour when set.
	UseBodyColors bool
}

var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   "#7aa2f7",
		Secondary: "#9ece6a",
		Accent:    "#e0af68",
		Text:      "#c0caf5",
		Muted:     "#565f89",
		Success:   "#9ece6a",
		Warning:   "#e0af68",
		Error:     "#f7768e",
		Star:      "#ffd75f",
		Planet:    "#7dcfff",
		Moon:      "#a9b1d6",
		Comet:     "#bb9af7",
		Orbit:     "#3b4261",
		Trail:     "#565f89",

		UseBodyColors: true,
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   "#ff00ff",
		Secondary: "#00ffff",
		Accent:    "#ffff00",
		Text:      "#ffffff",
		Muted:     "#666666",
		Success:   "#00ff00",
		Warning:   "#ff8800",
		Error:     "#ff0000",
		Star:      "#ffff00",
		Planet:    "#00ffff",
		Moon:      "#ff88ff",
		Comet:     "#ff00ff",
		Orbit:     "#442244",
		Trail:     "#664466",
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   "#00ff00",
		Secondary: "#00cc00",
		Accent:    "#88ff88",
		Text:      "#00ff00",
		Muted:     "#005500",
		Success:   "#88ff88",
		Warning:   "#ffff00",
		Error:     "#ff0000",
		Star:      "#ccffcc",
		Planet:    "#00ff00",
		Moon:      "#00aa00",
		Comet:     "#88ff88",
		Orbit:     "#003300",
		Trail:     "#005500",
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   "#ffffff",
		Secondary: "#cccccc",
		Accent:    "#0088ff",
		Text:      "#ffffff",
		Muted:     "#888888",
		Success:   "#00ff00",
		Warning:   "#ffaa00",
		Error:     "#ff0000",
		Star:      "#ffffff",
		Planet:    "#dddddd",
		Moon:      "#aaaaaa",
		Comet:     "#0088ff",
		Orbit:     "#444444",
		Trail:     "#666666",
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   "#0077be",
		Secondary: "#00a8cc",
		Accent:    "#ffd700",
		Text:      "#e0f0ff",
		Muted:     "#4488aa",
		Success:   "#00ff88",
		Warning:   "#ffcc00",
		Error:     "#ff4444",
		Star:      "#ffd700",
		Planet:    "#00a8cc",
		Moon:      "#88ccee",
		Comet:     "#e0f0ff",
		Orbit:     "#1a3a5a",
		Trail:     "#2a5a7a",
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   "#ff6b6b",
		Secondary: "#feca57",
		Accent:    "#ff9ff3",
		Text:      "#fff5f5",
		Muted:     "#8b6b8c",
		Success:   "#5fd068",
		Warning:   "#ffc048",
		Error:     "#ff4757",
		Star:      "#feca57",
		Planet:    "#ff6b6b",
		Moon:      "#ffb8b8",
		Comet:     "#ff9ff3",
		Orbit:     "#4d2b4e",
		Trail:     "#6d4b6e",
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BodyColor picks the colour a body is drawn in.
func (t Theme) BodyColor(b catalog.Body) string {
	if t.UseBodyColors && b.Color != "" {
		return b.Color
	}
	switch b.Type {
	case catalog.Star:
		return t.Star
	case catalog.Moon:
		return t.Moon
	case catalog.Comet:
		return t.Comet
	default:
		return t.Planet
	}
}
