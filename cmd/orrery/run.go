package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/server"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/telemetry"
	"github.com/san-kum/orrery/internal/track"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/spf13/cobra"
)

const builtinCatalog = "builtin"

// Effective state after setup: config file, then preset, then flags.
var (
	cfg    *config.Config
	logger *log.Logger
)

func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	flags := cmd.Flags()
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("scale") {
		cfg.TimeScale = timeScale
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}
	if flags.Changed("focus") {
		cfg.View.Focus = focus
	}
	if flags.Changed("zoom") {
		cfg.View.Zoom = zoom
	}
	if flags.Changed("types") {
		cfg.View.Types = bodyTypes
	}
	if flags.Changed("start") {
		cfg.Track.Start = trackStart
	}
	if flags.Changed("duration") {
		cfg.Track.Duration = trackDuration
	}
	if flags.Changed("step") {
		cfg.Track.Step = trackStep
	}
	if flags.Changed("relative") {
		cfg.Track.Relative = relativeTo
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("rate") {
		cfg.Server.RateLimit = rateLimit
	}
	if flags.Changed("burst") {
		cfg.Server.Burst = burst
	}
	if flags.Changed("stream-fps") {
		cfg.Server.StreamFPS = streamFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	logger, err = newLogger(os.Stderr, cfg.LogLevel)
	return err
}

func newLogger(w *os.File, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "orrery",
	})
	l.SetLevel(lvl)
	return l, nil
}

func loadCatalog() (*catalog.Catalog, string, error) {
	if cfg.Catalog == "" {
		return catalog.Default(), builtinCatalog, nil
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "path", cfg.Catalog, "bodies", cat.Len())
	return cat, filepath.Base(cfg.Catalog), nil
}

func newResolver(cat *catalog.Catalog, l *log.Logger, opts ...orbit.Option) *orbit.Resolver {
	opts = append([]orbit.Option{orbit.WithLogger(l)}, opts...)
	return orbit.NewResolver(orbit.NewCalculator(opts...), cat)
}

// parseScale accepts a preset name or a number of simulated seconds per
// wall second.
func parseScale(s string) (float64, error) {
	if v, ok := clock.LookupScale(s); ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "x"), 64)
	if err != nil {
		return 0, fmt.Errorf("unknown time scale %q", s)
	}
	return v, nil
}

// newClock starts at the configured date and scale, stopped.
func newClock() (*clock.Clock, error) {
	start, err := cfg.Start()
	if err != nil {
		return nil, err
	}
	scale, err := parseScale(cfg.TimeScale)
	if err != nil {
		return nil, err
	}
	clk := clock.New()
	clk.SetFromCalendarDate(start)
	clk.SetTimeScale(scale)
	return clk, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(config.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want 2006-01-02 or RFC 3339", s)
	}
	return t, nil
}

// evalTime resolves --date, then --t, then the configured start date.
func evalTime(cmd *cobra.Command) (float64, error) {
	switch {
	case cmd.Flags().Changed("date"):
		d, err := parseDate(atDate)
		if err != nil {
			return 0, err
		}
		return julianDays(d), nil
	case cmd.Flags().Changed("t"):
		return atDays, nil
	}
	clk, err := newClock()
	if err != nil {
		return 0, err
	}
	return clk.Elapsed(), nil
}

// julianDays converts a calendar instant to days since J2000 without the
// clock floor, so dates before 2000 still evaluate.
func julianDays(t time.Time) float64 {
	return t.Sub(clock.Epoch).Hours() / 24
}

func listBodies(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog()
	if err != nil {
		return err
	}
	if saveTo != "" {
		if err := cat.Save(saveTo); err != nil {
			return err
		}
		fmt.Printf("catalog written to %s\n", saveTo)
		return nil
	}

	bodies := cat.Bodies()
	if bodyType != "" {
		bodies = cat.ByType(catalog.Type(bodyType))
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tPARENT\tA (AU)\tE\tI (DEG)\tPERIOD (D)")
	for _, b := range bodies {
		a, e, inc, period := "-", "-", "-", "-"
		if el, ok := cat.OrbitOf(b.ID); ok && el != nil {
			if o, err := el.Resolve(); err == nil {
				a = fmt.Sprintf("%.6g", o.A)
				e = fmt.Sprintf("%.4f", o.E)
				inc = fmt.Sprintf("%.2f", el.Inclination)
				period = fmt.Sprintf("%.2f", o.Period)
			}
		}
		parent := b.Parent
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.DisplayName(), b.Type, parent, a, e, inc, period)
	}
	return w.Flush()
}

type positionOutput struct {
	Body        string     `json:"body"`
	RelativeTo  string     `json:"relative_to,omitempty"`
	Time        float64    `json:"t"`
	Date        string     `json:"date"`
	Position    orbit.Vec3 `json:"position_au"`
	Velocity    orbit.Vec3 `json:"velocity_au_day"`
	Distance    float64    `json:"distance_au"`
	MeanAnomaly float64    `json:"mean_anomaly"`
	TrueAnomaly float64    `json:"true_anomaly"`
	Converged   bool       `json:"converged"`
}

func showPosition(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog()
	if err != nil {
		return err
	}
	t, err := evalTime(cmd)
	if err != nil {
		return err
	}
	resolver := newResolver(cat, logger)

	sv, err := resolver.ResolveState(args[0], t)
	if err != nil {
		return err
	}
	out := positionOutput{
		Body:        args[0],
		Time:        t,
		Date:        clock.DateAt(t).Format(time.RFC3339),
		Position:    sv.Position,
		Velocity:    sv.Velocity,
		MeanAnomaly: sv.MeanAnomaly,
		TrueAnomaly: sv.TrueAnomaly,
		Converged:   sv.Converged,
	}
	if relativeTo != "" {
		ref, err := resolver.ResolveState(relativeTo, t)
		if err != nil {
			return err
		}
		out.RelativeTo = relativeTo
		out.Position = sv.Position.Sub(ref.Position)
		out.Velocity = sv.Velocity.Sub(ref.Velocity)
	}
	out.Distance = out.Position.Length()

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	km := out.Position.Kilometers()
	fmt.Printf("body: %s\n", out.Body)
	if out.RelativeTo != "" {
		fmt.Printf("relative to: %s\n", out.RelativeTo)
	}
	fmt.Printf("time: %.4f days (%s)\n\n", out.Time, out.Date)
	fmt.Printf("position:  %12.6f %12.6f %12.6f AU\n", out.Position.X, out.Position.Y, out.Position.Z)
	fmt.Printf("           %12.0f %12.0f %12.0f km\n", km.X, km.Y, km.Z)
	fmt.Printf("velocity:  %12.8f %12.8f %12.8f AU/day\n", out.Velocity.X, out.Velocity.Y, out.Velocity.Z)
	fmt.Printf("distance:  %.6f AU\n", out.Distance)
	fmt.Printf("anomalies: mean %.4f rad, true %.4f rad\n", out.MeanAnomaly, out.TrueAnomaly)
	if !out.Converged {
		fmt.Println("warning: kepler solver hit its iteration cap")
	}
	return nil
}

func showPositions(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog()
	if err != nil {
		return err
	}
	t, err := evalTime(cmd)
	if err != nil {
		return err
	}
	positions := newResolver(cat, logger).Positions(t)

	bodies := cat.Bodies()
	if bodyType != "" {
		bodies = cat.ByType(catalog.Type(bodyType))
	}
	if jsonOut {
		out := make(map[string]orbit.Vec3, len(bodies))
		for _, b := range bodies {
			out[b.ID] = positions[b.ID]
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("t = %.4f days since J2000\n\n", t)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tX (AU)\tY (AU)\tZ (AU)\tR (AU)")
	for _, b := range bodies {
		p := positions[b.ID]
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\t%.6f\n", b.ID, p.X, p.Y, p.Z, p.Length())
	}
	return w.Flush()
}

func showClock(cmd *cobra.Command, args []string) error {
	clk, err := newClock()
	if err != nil {
		return err
	}
	switch {
	case cmd.Flags().Changed("date"):
		d, err := parseDate(atDate)
		if err != nil {
			return err
		}
		clk.SetFromCalendarDate(d)
	case cmd.Flags().Changed("t"):
		clk.SetTime(atDays)
	}

	snap := clk.Snapshot()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "date\t%s\n", clk.FormatDateTime())
	fmt.Fprintf(w, "julian date\t%.5f\n", snap.JulianDate)
	fmt.Fprintf(w, "elapsed\t%s (%.4f days)\n", snap.RelativeTime, snap.Elapsed)
	fmt.Fprintf(w, "time scale\t%s\n", snap.ScaleLabel)
	fmt.Fprintf(w, "solar longitude\t%.3f°\n", snap.SolarLongitude)
	fmt.Fprintf(w, "obliquity\t%.4f°\n", clk.EarthObliquity())
	fmt.Fprintf(w, "sun declination\t%.3f°\n", snap.SunDeclination)
	fmt.Fprintf(w, "sidereal time\t%.4f h\n", snap.SiderealTime)
	fmt.Fprintf(w, "moon\t%s (%.3f)\n", snap.MoonPhaseName, snap.MoonPhase)
	fmt.Fprintf(w, "season\t%s\n", snap.Season)
	return w.Flush()
}

func trackBodies(cmd *cobra.Command, args []string) error {
	cat, catalogName, err := loadCatalog()
	if err != nil {
		return err
	}
	bodies := args
	if len(bodies) == 0 {
		bodies = cfg.Track.Bodies
	}
	if len(bodies) == 0 {
		return track.ErrNoBodies
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	tc := track.Config{
		Start:    cfg.Track.Start,
		Duration: cfg.Track.Duration,
		Step:     cfg.Track.Step,
		Relative: cfg.Track.Relative,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ens := track.NewEnsemble(newResolver(cat, logger), metrics.Standard)
	start := time.Now()
	results, runErr := ens.Run(ctx, bodies, tc)
	logger.Debug("tracking finished", "bodies", len(bodies), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tBODY\tSAMPLES\tPERIAPSIS\tAPOAPSIS\tPATH (AU)\tSHORTFALLS")
	for _, res := range results {
		if res == nil {
			continue
		}
		id, err := st.Save(tc, catalogName, res)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", res.Body, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.6f\t%.6f\t%.4f\t%d\n", id, res.Body, len(res.Samples),
			res.Metrics["periapsis_au"], res.Metrics["apoapsis_au"], res.Metrics["path_length_au"], res.Shortfalls)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBODY\tRELATIVE\tTIME\tSTART\tDURATION\tSTEP\tSAMPLES")
	for _, run := range runs {
		rel := run.Relative
		if rel == "" {
			rel = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2fd\t%.4gd\t%d\n",
			run.ID,
			run.Body,
			rel,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start,
			run.Duration,
			run.Step,
			run.Samples,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s\n", meta.Body)
	fmt.Printf("samples: %d\n\n", len(samples))

	distances := make([]float64, len(samples))
	speeds := make([]float64, len(samples))
	for i, s := range samples {
		distances[i] = s.Distance
		speeds[i] = s.Speed()
	}
	reference := "sun"
	if meta.Relative != "" {
		reference = meta.Relative
	}
	fmt.Println(viz.PlotSeries(distances, 80, 10, fmt.Sprintf("distance from %s (AU)", reference)))
	fmt.Println()
	fmt.Println(viz.PlotSeries(speeds, 80, 6, "speed (AU/day)"))
	fmt.Println()

	names := make([]string, 0, len(meta.Metrics))
	for name := range meta.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-22s %.6g\n", name, meta.Metrics[name])
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	if outFile == "" {
		return st.ExportJSON(os.Stdout, args[0])
	}
	if err := st.ExportJSONFile(outFile, args[0]); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func deleteRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	r := analysis.Analyze(meta.Body, samples)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s\n", meta.Body)
	if r.Period > 0 {
		fmt.Printf("period: %.3f days\n", r.Period)
	} else {
		fmt.Println("period: -")
	}
	fmt.Printf("distance: %.6f .. %.6f AU (e ~ %.4f)\n\n", r.MinRadius, r.MaxRadius, r.Eccentricity())

	apsides := append(append([]analysis.Apsis{}, r.Periapses...), r.Apoapses...)
	sort.Slice(apsides, func(i, j int) bool { return apsides[i].Time < apsides[j].Time })
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tT (DAYS)\tDATE\tDISTANCE (AU)")
	for _, a := range apsides {
		date := clock.DateAt(a.Time).Format(config.DateLayout)
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%.6f\n", a.Kind, a.Time, date, a.Distance)
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	stroke := "#6B93D6"
	if cat, _, err := loadCatalog(); err == nil {
		if b, ok := cat.Get(meta.Body); ok && b.Color != "" {
			stroke = b.Color
		}
	}
	svg := export.TrackToSVG(samples, svgWidth, svgHeight, stroke)
	if svg == "" {
		return fmt.Errorf("run %s has too few samples to draw", meta.ID)
	}
	return writeOutput(svg)
}

// snapshot renders one frame of the live view to svg.
func snapshot(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog()
	if err != nil {
		return err
	}
	t, err := evalTime(cmd)
	if err != nil {
		return err
	}
	clk := clock.New(clock.WithElapsed(t))
	canvas := viz.Snapshot(cat, newResolver(cat, logger), clk, viewOptions(logger), frameWidth, frameHeight)
	return writeOutput(export.CanvasToSVG(canvas, 4))
}

func writeOutput(s string) error {
	if outFile == "" {
		_, err := fmt.Print(s)
		return err
	}
	if err := os.WriteFile(outFile, []byte(s), 0644); err != nil {
		return err
	}
	fmt.Printf("written to %s\n", outFile)
	return nil
}

func viewOptions(l *log.Logger) viz.Options {
	return viz.Options{
		FPS:        cfg.FPS,
		Theme:      cfg.View.Theme,
		Focus:      cfg.View.Focus,
		Zoom:       cfg.View.Zoom,
		ShowOrbits: cfg.View.ShowOrbits,
		ShowLabels: cfg.View.ShowLabels,
		Types:      viewTypes(cfg.View.Types),
		Logger:     l,
	}
}

func viewTypes(names []string) []catalog.Type {
	types := make([]catalog.Type, 0, len(names))
	for _, n := range names {
		types = append(types, catalog.Type(strings.ToLower(strings.TrimSpace(n))))
	}
	return types
}

// runLive logs to a file in the data directory so the terminal stays
// clean.
func runLive(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog()
	if err != nil {
		return err
	}
	clk, err := newClock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(cfg.DataDir, "live.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	liveLogger, err := newLogger(f, cfg.LogLevel)
	if err != nil {
		return err
	}

	m := viz.NewModel(cat, newResolver(cat, liveLogger), clk, viewOptions(liveLogger))
	clk.Play()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func serve(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog()
	if err != nil {
		return err
	}
	clk, err := newClock()
	if err != nil {
		return err
	}
	collector := telemetry.NewCollector()
	resolver := newResolver(cat, logger, orbit.WithObserver(collector))

	srv := server.New(cat, resolver, clk, server.Options{
		Addr:      cfg.Server.Addr,
		RateLimit: cfg.Server.RateLimit,
		Burst:     cfg.Server.Burst,
		StreamFPS: cfg.Server.StreamFPS,
		Logger:    logger,
		Telemetry: collector,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("scenarios:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tSCALE\tFOCUS\tZOOM\tTRACK")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%g\t%s\n", name, p.TimeScale, p.View.Focus, p.View.Zoom, strings.Join(p.Track.Bodies, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\ntime scales:")
	for _, s := range clock.ScalePresets {
		fmt.Printf("  %-14s %g\n", s.Name, s.Scale)
	}
	return nil
}

func listShowers(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPEAK\tZHR\tRADIANT (RA, DEC)\tPARENT")
	for _, s := range catalog.Showers {
		peak := time.Date(2000, time.Month(s.PeakMonth), s.PeakDay, 0, 0, 0, 0, time.UTC).Format("Jan 02")
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fh, %+.0f°\t%s\n", s.Name, peak, s.ZHR, s.RadiantRA, s.RadiantDec, s.ParentComet)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", args[0])
	return nil
}
