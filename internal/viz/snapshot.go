package viz

import (
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

// Snapshot draws one frame at the clock's current time onto a w by h cell
// canvas. The clock is only read.
func Snapshot(cat *catalog.Catalog, resolver *orbit.Resolver, clk *clock.Clock, opts Options, w, h int) *Canvas {
	m := NewModel(cat, resolver, clk, opts)
	m.width, m.height = max(w, 1), max(h, 1)
	m.canvas = NewCanvas(m.width, m.height)
	m.draw()
	return m.canvas
}
