package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	panelWidth         = 48
	historyCapacity    = 600
	defaultTrailLength = 240
	orbitResolution    = 180
	// moons closer than this many dots to their planet are not labelled
	labelSeparation = 6
)

var jumpUnits = []clock.Unit{clock.Hours, clock.Days, clock.Weeks, clock.Months, clock.Years}

type TickMsg time.Time

// Options configure a live view.
type Options struct {
	FPS         int
	Theme       string
	Focus       string
	Zoom        float64
	ShowOrbits  bool
	ShowLabels  bool
	Types       []catalog.Type // empty shows every type
	TrailLength int
	Logger      *log.Logger
}

// Model is the live orrery. The model is the only writer of its clock.
type Model struct {
	clock    *clock.Clock
	resolver *orbit.Resolver
	catalog  *catalog.Catalog
	logger   *log.Logger

	camera *Camera
	canvas *Canvas
	scene  *Scene
	theme  Theme
	styles styles

	width, height int
	fps           int
	focus         string
	defaultFocus  string
	defaultZoom   float64
	visible       map[catalog.Type]bool
	showOrbits    bool
	showLabels    bool
	showAxes      bool
	showHelp      bool
	jumpUnit      int

	paths       map[string][]orbit.Vec3
	positions   map[string]orbit.Vec3
	trails      map[string][]orbit.Vec3
	trailLength int
	distance    []float64
	lastElapsed float64
	picker      *picker
}

// NewModel builds a live view over cat. Orbit outlines are computed once
// since the elements never change.
func NewModel(cat *catalog.Catalog, resolver *orbit.Resolver, clk *clock.Clock, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.TrailLength == 0 {
		opts.TrailLength = defaultTrailLength
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 1
	}

	visible := make(map[catalog.Type]bool)
	if len(opts.Types) == 0 {
		for _, t := range cat.Types() {
			visible[t] = true
		}
	}
	for _, t := range opts.Types {
		visible[t] = true
	}

	focus := opts.Focus
	if _, ok := cat.Get(focus); !ok {
		if roots := cat.Roots(); len(roots) > 0 {
			focus = roots[0].ID
		}
	}

	theme := GetTheme(opts.Theme)
	camera := NewCamera()
	camera.SetZoom(opts.Zoom)

	m := Model{
		clock:        clk,
		resolver:     resolver,
		catalog:      cat,
		logger:       opts.Logger,
		camera:       camera,
		canvas:       NewCanvas(defaultWidth, defaultHeight),
		scene:        NewScene(),
		theme:        theme,
		styles:       newStyles(theme),
		width:        defaultWidth,
		height:       defaultHeight,
		fps:          opts.FPS,
		focus:        focus,
		defaultFocus: focus,
		defaultZoom:  camera.Zoom,
		visible:      visible,
		showOrbits:   opts.ShowOrbits,
		showLabels:   opts.ShowLabels,
		jumpUnit:     1,
		paths:        make(map[string][]orbit.Vec3),
		positions:    make(map[string]orbit.Vec3),
		trails:       make(map[string][]orbit.Vec3),
		trailLength:  opts.TrailLength,
		distance:     make([]float64, 0, historyCapacity),
		lastElapsed:  -1,
	}
	for _, b := range cat.Bodies() {
		el, ok := cat.OrbitOf(b.ID)
		if !ok || el == nil {
			continue
		}
		o, err := el.Resolve()
		if err != nil {
			m.logger.Warn("no orbit outline", "body", b.ID, "err", err)
			continue
		}
		m.paths[b.ID] = o.Path(orbitResolution)
	}
	m.record()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input and advances the clock once per frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.picker != nil {
			if m.picker.update(msg) {
				if m.picker.selected != "" {
					m.setFocus(m.picker.selected)
				}
				m.picker = nil
			}
			return m, nil
		}
		return m.handleKey(msg)
	case TickMsg:
		m.clock.Tick()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.clock.Toggle()
	case ">", ".":
		m.clock.SetTimeScale(clock.StepScale(m.clock.Scale(), 1).Scale)
	case "<", ",":
		m.clock.SetTimeScale(clock.StepScale(m.clock.Scale(), -1).Scale)
	case "]":
		m.clock.JumpForward(1, jumpUnits[m.jumpUnit])
		m.clearTrails()
	case "[":
		m.clock.JumpBackward(1, jumpUnits[m.jumpUnit])
		m.clearTrails()
	case "u":
		m.jumpUnit = (m.jumpUnit + 1) % len(jumpUnits)
	case "n":
		m.clock.SetFromCalendarDate(time.Now())
		m.clearTrails()
	case "r":
		m.clock.Reset()
		m.camera.ResetView(m.defaultZoom)
		m.focus = m.defaultFocus
		m.clearTrails()
		m.distance = m.distance[:0]
	case "c":
		m.camera.ResetView(m.defaultZoom)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "x":
		m.camera.RotateX(0.1)
	case "X":
		m.camera.RotateX(-0.1)
	case "y":
		m.camera.RotateY(0.1)
	case "Y":
		m.camera.RotateY(-0.1)
	case "z":
		m.camera.RotateZ(0.1)
	case "Z":
		m.camera.RotateZ(-0.1)
	case "f", "tab":
		m.cycleFocus(1)
	case "F", "shift+tab":
		m.cycleFocus(-1)
	case "b":
		m.picker = newPicker(m.focusable(), m.focus)
	case "o":
		m.showOrbits = !m.showOrbits
	case "l":
		m.showLabels = !m.showLabels
	case "a":
		m.showAxes = !m.showAxes
	case "1":
		m.toggleType(catalog.Star)
	case "2":
		m.toggleType(catalog.Planet)
	case "3":
		m.toggleType(catalog.Moon)
	case "4":
		m.toggleType(catalog.Comet)
	case "t":
		m.SetTheme(NextTheme(m.theme.Name))
	case "?":
		m.showHelp = !m.showHelp
	}
	m.record()
	return m, nil
}

func (m *Model) resize(w, h int) {
	cw := max(w-panelWidth-4, 20)
	ch := max(h-2, 10)
	m.width, m.height = cw, ch
	m.canvas = NewCanvas(cw, ch)
}

// SetTheme switches the colour scheme.
func (m *Model) SetTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
}

func (m *Model) toggleType(t catalog.Type) {
	m.visible[t] = !m.visible[t]
	if b, ok := m.catalog.Get(m.focus); ok && !m.visible[b.Type] {
		m.cycleFocus(1)
	}
}

// focusable lists the bodies of visible types in catalog order.
func (m *Model) focusable() []catalog.Body {
	var out []catalog.Body
	for _, b := range m.catalog.Bodies() {
		if m.visible[b.Type] {
			out = append(out, b)
		}
	}
	return out
}

func (m *Model) cycleFocus(dir int) {
	bodies := m.focusable()
	if len(bodies) == 0 {
		return
	}
	idx := -1
	for i, b := range bodies {
		if b.ID == m.focus {
			idx = i
		}
	}
	if idx < 0 {
		m.setFocus(bodies[0].ID)
		return
	}
	idx = (idx + dir + len(bodies)) % len(bodies)
	m.setFocus(bodies[idx].ID)
}

func (m *Model) setFocus(id string) {
	if id == m.focus {
		return
	}
	m.focus = id
	m.distance = m.distance[:0]
}

func (m *Model) clearTrails() {
	for id := range m.trails {
		delete(m.trails, id)
	}
}

// record places every body at the current clock time and extends trails
// and the distance history when time has moved.
func (m *Model) record() {
	t := m.clock.Elapsed()
	for id, p := range m.resolver.Positions(t) {
		m.positions[id] = p
	}
	if t == m.lastElapsed {
		return
	}
	m.lastElapsed = t

	if m.trailLength > 0 {
		for _, b := range m.catalog.Bodies() {
			if b.Elements == nil || !m.visible[b.Type] {
				continue
			}
			trail := append(m.trails[b.ID], m.positions[b.ID])
			if len(trail) > m.trailLength {
				trail = trail[len(trail)-m.trailLength:]
			}
			m.trails[b.ID] = trail
		}
	}

	if d, ok := m.parentDistance(); ok {
		m.distance = append(m.distance, d)
		if len(m.distance) > historyCapacity {
			m.distance = m.distance[1:]
		}
	}
}

// parentDistance is the focus body's distance from its primary.
func (m *Model) parentDistance() (float64, bool) {
	b, ok := m.catalog.Get(m.focus)
	if !ok || b.Parent == "" {
		return 0, false
	}
	return m.positions[b.ID].Sub(m.positions[b.Parent]).Length(), true
}

// relativeSpeed is the focus body's speed about its primary in AU/day.
func (m *Model) relativeSpeed() (float64, bool) {
	b, ok := m.catalog.Get(m.focus)
	if !ok || b.Parent == "" {
		return 0, false
	}
	t := m.clock.Elapsed()
	sv, err := m.resolver.ResolveState(b.ID, t)
	if err != nil {
		return 0, false
	}
	pv, err := m.resolver.ResolveState(b.Parent, t)
	if err != nil {
		return 0, false
	}
	return sv.Velocity.Sub(pv.Velocity).Length(), true
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.scene.Clear()
	m.camera.Target = m.positions[m.focus]
	sw, sh := m.canvas.Dots()

	if m.showAxes {
		m.scene.Segments = append(m.scene.Segments, AxesScene(orbit.Origin, 1, m.theme.Muted).Segments...)
	}
	bodies := m.catalog.Bodies()
	if m.showOrbits {
		for _, b := range bodies {
			path, ok := m.paths[b.ID]
			if !ok || !m.visible[b.Type] {
				continue
			}
			m.scene.AddPath(path, m.positions[b.Parent], true, m.theme.Orbit)
		}
	}
	for _, trail := range m.trails {
		for _, p := range trail {
			m.scene.AddPoint(p, m.theme.Trail)
		}
	}
	Render(m.canvas, m.scene, m.camera)

	type label struct {
		x, y  int
		text  string
		color string
	}
	var labels []label
	for _, b := range bodies {
		if !m.visible[b.Type] {
			continue
		}
		x, y, _, ok := m.camera.Project(m.positions[b.ID], sw, sh)
		if !ok {
			continue
		}
		m.canvas.Disc(x, y, bodyRadius(b.Type), m.theme.BodyColor(b))
		if !m.showLabels && b.ID != m.focus {
			continue
		}
		if b.Type == catalog.Moon && b.ID != m.focus {
			px, py, _, _ := m.camera.Project(m.positions[b.Parent], sw, sh)
			if absInt(px-x)+absInt(py-y) < labelSeparation {
				continue
			}
		}
		color := m.theme.Text
		if b.ID == m.focus {
			color = m.theme.Accent
		}
		labels = append(labels, label{x + bodyRadius(b.Type), y, b.DisplayName(), color})
	}
	// labels go last so dots drawn later cannot split them
	for _, l := range labels {
		m.canvas.Label(l.x, l.y, l.text, l.color)
	}
}

func bodyRadius(t catalog.Type) int {
	switch t {
	case catalog.Star:
		return 2
	case catalog.Planet:
		return 1
	default:
		return 0
	}
}

// View renders the canvas beside the status panel.
func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.Render(m.theme.Muted))

	var panel string
	if m.picker != nil {
		panel = m.styles.panel.Render(m.picker.view(m.styles))
	} else {
		panel = m.styles.panel.Render(m.status())
	}
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
	if m.showHelp {
		return m.styles.overlay.Render(helpText) + "\n" + mainView
	}
	return mainView
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
}

func (m Model) status() string {
	var s strings.Builder
	s.WriteString(GradientText("ORRERY", m.theme.Primary, m.theme.Accent) + "\n\n")
	if m.clock.Running() {
		s.WriteString(m.styles.running.Render("▶ RUNNING"))
	} else {
		s.WriteString(m.styles.paused.Render("❚❚ PAUSED"))
	}
	s.WriteString("  " + m.styles.muted.Render(m.clock.ScaleLabel()) + "\n\n")

	s.WriteString(m.row("Date", m.clock.FormatDateTime()))
	s.WriteString(m.row("JD", fmt.Sprintf("%.4f", m.clock.JulianDate())))
	s.WriteString(m.row("Elapsed", m.clock.RelativeTime()))
	s.WriteString(m.row("Jump", "1 "+strings.TrimSuffix(jumpUnits[m.jumpUnit].String(), "s")))
	s.WriteString(m.row("Season", m.clock.Season()))
	s.WriteString(m.row("Sun λ", fmt.Sprintf("%.2f°", m.clock.SolarLongitude())))
	s.WriteString(m.row("Moon", m.clock.MoonPhaseName()))
	s.WriteString(m.styles.label.Render("") + m.styles.ProgressBar(m.clock.MoonPhase(), 20) + "\n")
	s.WriteString("\n" + m.styles.Separator(36) + "\n\n")

	name := m.focus
	if b, ok := m.catalog.Get(m.focus); ok {
		name = b.DisplayName()
		s.WriteString(m.styles.focus.Render(strings.ToUpper(name)) + "  " + m.styles.muted.Render(string(b.Type)) + "\n")
		if b.Parent != "" {
			if d, ok := m.parentDistance(); ok {
				s.WriteString(m.row("Distance", fmt.Sprintf("%.5f AU", d)))
			}
			if v, ok := m.relativeSpeed(); ok {
				s.WriteString(m.row("Speed", fmt.Sprintf("%.3f km/s", v*orbit.AUKilometers/clock.SecondsPerDay)))
			}
		}
		p := m.positions[b.ID]
		s.WriteString(m.row("Position", fmt.Sprintf("%.3f %.3f %.3f", p.X, p.Y, p.Z)))
	}
	s.WriteString(m.row("Zoom", fmt.Sprintf("x%.2f", m.camera.Zoom)))
	s.WriteString(m.row("Theme", m.theme.Name))

	if chart := PlotSeries(m.distance, 28, 4, "distance to primary (AU)"); chart != "" {
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.help.Render("SP:Play  </>:Scale  [ ]:Jump  Q:Quit\nF:Focus  B:Bodies  +/-:Zoom  ?:Help"))
	return s.String()
}

const helpText = `KEYBOARD SHORTCUTS

  Space     play / pause
  < >       slower / faster time scale
  [ ]       jump back / forward
  u         cycle jump unit
  n         jump to now
  r         reset to J2000
  f F       next / previous focus body
  b         choose focus body
  + -       zoom in / out
  x y z     rotate view (shift reverses)
  c         reset view
  o l a     toggle orbits / labels / axes
  1-4       toggle stars / planets / moons / comets
  t         cycle themes
  ?         toggle this help
  q         quit`

// Focus returns the id of the body the view is centred on.
func (m Model) Focus() string { return m.focus }

// Theme returns the active theme.
func (m Model) Theme() Theme { return m.theme }

// Camera exposes the view camera.
func (m Model) Camera() *Camera { return m.camera }

// Distances returns the recorded focus-to-primary history.
func (m Model) Distances() []float64 { return m.distance }
