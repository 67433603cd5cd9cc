package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are rebuilt whenever the theme changes.
type styles struct {
	canvas  lipgloss.Style
	panel   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	focus   lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
	muted   lipgloss.Style
	overlay lipgloss.Style
	high    lipgloss.Style
	mid     lipgloss.Style
	low     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Muted)).
			Padding(1, 2).
			Width(panelWidth-2),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Width(12),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		running: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)).Bold(true),
		focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		graph:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Padding(1, 0),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Italic(true).MarginTop(1),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(1, 2),
		high: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		mid:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		low:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
	}
}

// ProgressBar renders fraction of width as a filled bar.
func (s styles) ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.value.Render(strings.Repeat("█", filled)) + s.muted.Render(strings.Repeat("░", width-filled))
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the last width values, scaled to their own range.
func (s styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return s.muted.Render(strings.Repeat("─", max(width, 0)))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}
	var b strings.Builder
	for _, v := range values {
		norm := (v - lo) / rng
		idx := int(norm * float64(len(sparkChars)-1))
		idx = min(max(idx, 0), len(sparkChars)-1)
		c := string(sparkChars[idx])
		switch {
		case norm > 0.7:
			b.WriteString(s.high.Render(c))
		case norm > 0.3:
			b.WriteString(s.mid.Render(c))
		default:
			b.WriteString(s.low.Render(c))
		}
	}
	return b.String()
}

// Separator is a muted rule with a centre mark.
func (s styles) Separator(width int) string {
	if width < 8 {
		return s.muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return s.muted.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}

// GradientText colours each rune of text on a line between two hex colours.
func GradientText(text, startColor, endColor string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	sr, sg, sb := parseHex(startColor)
	er, eg, eb := parseHex(endColor)

	var b strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		bl := int(float64(sb) + t*float64(eb-sb))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, bl)))
		b.WriteString(style.Render(string(c)))
	}
	return b.String()
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = min(max(v, 0), 255)
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
