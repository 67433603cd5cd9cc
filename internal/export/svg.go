package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/orrery/internal/track"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	background = "#0a0a0a"
	foreground = "#d0d0d0"
)

// CanvasToSVG draws a braille canvas as dots, one per lit sub-cell, each in
// its cell colour. Label cells become text.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	if scale <= 0 {
		scale = 4
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	bits := [4][2]rune{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	radius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			color := canvas.Colors[row][col]
			if color == "" {
				color = foreground
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			if r < 0x2800 || r > 0x28ff {
				fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.1f">%s</text>
`, baseX, baseY+scale*3, color, scale*3, html.EscapeString(string(r)))
				continue
			}
			pattern := r - 0x2800
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&bits[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, radius, color)
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// TrackToSVG plots a run's path projected onto the ecliptic plane. The
// primary at the origin is marked when it falls inside the frame.
func TrackToSVG(samples []track.Sample, width, height int, stroke string) string {
	if len(samples) < 2 {
		return ""
	}

	minX, maxX := samples[0].Position.X, samples[0].Position.X
	minY, maxY := samples[0].Position.Y, samples[0].Position.Y
	for _, s := range samples {
		minX, maxX = min(minX, s.Position.X), max(maxX, s.Position.X)
		minY, maxY = min(minY, s.Position.Y), max(maxY, s.Position.Y)
	}

	// equal scale on both axes so orbits keep their shape
	span := max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	span *= 1.2
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	px := float64(min(width, height)) / span
	project := func(x, y float64) (float64, float64) {
		return float64(width)/2 + (x-cx)*px, float64(height)/2 - (y-cy)*px
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	if ox, oy := project(0, 0); ox >= 0 && ox <= float64(width) && oy >= 0 && oy <= float64(height) {
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="3" fill="#FDB813"/>
`, ox, oy)
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, stroke)
	for i, s := range samples {
		x, y := project(s.Position.X, s.Position.Y)
		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
