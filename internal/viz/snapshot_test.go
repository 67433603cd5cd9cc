package viz

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

func TestSnapshot(t *testing.T) {
	cat := catalog.Default()
	logger := log.New(io.Discard)
	resolver := orbit.NewResolver(orbit.NewCalculator(orbit.WithLogger(logger)), cat)
	clk := clock.New(clock.WithElapsed(100))

	c := Snapshot(cat, resolver, clk, Options{Focus: "sun", Zoom: 4, Logger: logger}, 60, 20)
	if c.Width != 60 || c.Height != 20 {
		t.Fatalf("canvas %dx%d, want 60x20", c.Width, c.Height)
	}
	sw, sh := c.Dots()
	if !c.IsSet(sw/2, sh/2) {
		t.Error("sun not drawn at the centre")
	}
	if !strings.Contains(c.String(), "Sun") {
		t.Error("focus label missing")
	}
	if clk.Elapsed() != 100 {
		t.Errorf("snapshot moved the clock to %v", clk.Elapsed())
	}
}
