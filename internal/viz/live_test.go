package viz

import (
	"io"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

type fakeWall struct{ t time.Time }

func (f *fakeWall) now() time.Time          { return f.t }
func (f *fakeWall) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestModel(t *testing.T, opts Options) (Model, *clock.Clock, *fakeWall) {
	t.Helper()
	cat := catalog.Default()
	logger := log.New(io.Discard)
	resolver := orbit.NewResolver(orbit.NewCalculator(orbit.WithLogger(logger)), cat)
	wall := &fakeWall{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	clk := clock.New(clock.WithNow(wall.now), clock.WithScale(clock.SecondsPerDay))
	opts.Logger = logger
	return NewModel(cat, resolver, clk, opts), clk, wall
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestTickAdvancesClockOnlyWhenRunning(t *testing.T) {
	m, clk, wall := newTestModel(t, Options{})

	wall.advance(time.Second)
	next, cmd := m.Update(TickMsg(wall.t))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick should schedule the next frame")
	}
	if clk.Elapsed() != 0 {
		t.Fatalf("stopped clock advanced to %v", clk.Elapsed())
	}

	m = press(t, m, " ")
	if !clk.Running() {
		t.Fatal("space should start the clock")
	}
	wall.advance(2 * time.Second)
	next, _ = m.Update(TickMsg(wall.t))
	m = next.(Model)
	if got := clk.Elapsed(); math.Abs(got-2) > 1e-9 {
		t.Errorf("elapsed = %v, want 2 days", got)
	}

	m = press(t, m, " ")
	wall.advance(time.Second)
	m.Update(TickMsg(wall.t))
	if got := clk.Elapsed(); math.Abs(got-2) > 1e-9 {
		t.Errorf("paused clock moved to %v", got)
	}
}

func TestScaleAndJumpKeys(t *testing.T) {
	m, clk, _ := newTestModel(t, Options{})

	press(t, m, ">")
	if got := clk.ScaleLabel(); got != "1week/sec" {
		t.Errorf("scale after > = %s, want 1week/sec", got)
	}
	press(t, m, "<", "<")
	if got := clk.ScaleLabel(); got != "1hour/sec" {
		t.Errorf("scale after << = %s, want 1hour/sec", got)
	}

	m = press(t, m, "]")
	if got := clk.Elapsed(); got != 1 {
		t.Errorf("elapsed after ] = %v, want 1 day", got)
	}
	m = press(t, m, "u", "u", "u", "]")
	if got := clk.Elapsed(); got != 366.25 {
		t.Errorf("elapsed after year jump = %v, want 366.25", got)
	}
	m = press(t, m, "[", "[")
	if got := clk.Elapsed(); got != clock.Floor {
		t.Errorf("backward jumps should clamp at the floor, got %v", got)
	}

	press(t, m, "]", "r")
	if clk.Elapsed() != 0 || clk.Running() {
		t.Errorf("reset left elapsed %v running %v", clk.Elapsed(), clk.Running())
	}
}

func TestFocusCycling(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Focus: "sun"})
	if m.Focus() != "sun" {
		t.Fatalf("focus = %s", m.Focus())
	}
	m = press(t, m, "f", "f")
	if m.Focus() != "venus" {
		t.Errorf("focus = %s, want venus", m.Focus())
	}
	m = press(t, m, "F")
	if m.Focus() != "mercury" {
		t.Errorf("focus = %s, want mercury", m.Focus())
	}

	m, _, _ = newTestModel(t, Options{Focus: "pluto"})
	if m.Focus() != "sun" {
		t.Errorf("unknown focus should fall back to the root, got %s", m.Focus())
	}
}

func TestTypeFilterMovesFocus(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Focus: "halley", Types: []catalog.Type{catalog.Star, catalog.Comet}})
	for _, b := range m.focusable() {
		if b.Type != catalog.Star && b.Type != catalog.Comet {
			t.Fatalf("hidden type %s is focusable", b.Type)
		}
	}
	m = press(t, m, "4")
	if m.Focus() == "halley" {
		t.Error("focus should leave a hidden body")
	}
	if b, _ := catalog.Default().Get(m.Focus()); b.Type != catalog.Star {
		t.Errorf("focus moved to %s, want the star", m.Focus())
	}
}

func TestPickerSelectsFocus(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Focus: "earth"})
	m = press(t, m, "b")
	if m.picker == nil {
		t.Fatal("b should open the body menu")
	}
	if !strings.Contains(m.View(), "FOCUS") {
		t.Error("menu not rendered")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.picker != nil {
		t.Error("menu still open after enter")
	}
	if m.Focus() != "mars" {
		t.Errorf("focus = %s, want mars", m.Focus())
	}

	m = press(t, m, "b")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.picker != nil || m.Focus() != "mars" {
		t.Error("esc should close the menu without changing focus")
	}
}

func TestThemeCycle(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	if m.Theme().Name != "default" {
		t.Fatalf("theme = %s", m.Theme().Name)
	}
	m = press(t, m, "t")
	if m.Theme().Name != "cyberpunk" {
		t.Errorf("theme = %s, want cyberpunk", m.Theme().Name)
	}
	for range Themes {
		m = press(t, m, "t")
	}
	if m.Theme().Name != "cyberpunk" {
		t.Errorf("theme cycle did not wrap, got %s", m.Theme().Name)
	}
}

func TestDistanceHistory(t *testing.T) {
	m, _, wall := newTestModel(t, Options{Focus: "earth"})
	m = press(t, m, " ")
	for i := 0; i < 10; i++ {
		wall.advance(time.Second)
		next, _ := m.Update(TickMsg(wall.t))
		m = next.(Model)
	}
	d := m.Distances()
	if len(d) != 11 {
		t.Fatalf("history length = %d, want 11", len(d))
	}
	for _, v := range d {
		if v < 0.98 || v > 1.02 {
			t.Errorf("earth distance %v out of range", v)
		}
	}
	m = press(t, m, "f")
	if len(m.Distances()) != 0 {
		t.Error("history should restart with a new focus")
	}
}

func TestViewRendersPanelAndBodies(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Focus: "earth", ShowOrbits: true, ShowLabels: true, Zoom: 6})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(Model)
	view := m.View()
	for _, want := range []string{"Date", "2000-01-01 12:00:00", "Earth", "Sun", "default"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestZoomKeys(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Zoom: 2})
	m = press(t, m, "+")
	if got := m.Camera().Zoom; math.Abs(got-2.5) > 1e-12 {
		t.Errorf("zoom = %v, want 2.5", got)
	}
	m = press(t, m, "x", "c")
	if m.Camera().Zoom != 2 || m.Camera().RotX != NewCamera().RotX {
		t.Error("c should restore the default view")
	}
}
