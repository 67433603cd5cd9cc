package viz

import "github.com/guptarohit/asciigraph"

// PlotSeries renders values as an ASCII line chart. It returns an empty
// string when there is nothing to plot.
func PlotSeries(values []float64, width, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(4),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(values, opts...)
}
