package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir     string
	catalogPath string
	configFile  string
	logLevel    string
	preset      string

	// time selection
	atDays float64
	atDate string

	// track
	trackStart    float64
	trackDuration float64
	trackStep     float64
	relativeTo    string

	// live view
	timeScale string
	frameRate int
	theme     string
	focus     string
	zoom      float64
	bodyTypes []string

	// server
	addr      string
	rateLimit float64
	burst     int
	streamFPS int

	bodyType string
	jsonOut  bool
	outFile  string
	saveTo   string

	// svg
	svgWidth    int
	svgHeight   int
	frameWidth  int
	frameHeight int
)

// main registers the orrery commands. With no subcommand the live view
// starts. It exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "orrery",
		Short:             "keplerian solar system orrery",
		SilenceUsage:      true,
		RunE:              runLive,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (yaml), built-in when empty")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	addViewFlags(rootCmd)

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list catalog bodies",
		Args:  cobra.NoArgs,
		RunE:  listBodies,
	}
	bodiesCmd.Flags().StringVar(&bodyType, "type", "", "only bodies of this type (star, planet, moon, comet)")
	bodiesCmd.Flags().StringVar(&saveTo, "save", "", "write the catalog to this yaml file")

	positionCmd := &cobra.Command{
		Use:   "position [body]",
		Short: "position and velocity of one body",
		Args:  cobra.ExactArgs(1),
		RunE:  showPosition,
	}
	addTimeFlags(positionCmd)
	positionCmd.Flags().StringVar(&relativeTo, "relative", "", "report relative to this body")
	positionCmd.Flags().BoolVar(&jsonOut, "json", false, "print json")

	positionsCmd := &cobra.Command{
		Use:   "positions",
		Short: "heliocentric positions of every body",
		Args:  cobra.NoArgs,
		RunE:  showPositions,
	}
	addTimeFlags(positionsCmd)
	positionsCmd.Flags().StringVar(&bodyType, "type", "", "only bodies of this type")
	positionsCmd.Flags().BoolVar(&jsonOut, "json", false, "print json")

	clockCmd := &cobra.Command{
		Use:   "clock",
		Short: "calendar, moon phase and season at a time",
		Args:  cobra.NoArgs,
		RunE:  showClock,
	}
	addTimeFlags(clockCmd)
	clockCmd.Flags().BoolVar(&jsonOut, "json", false, "print json")

	trackCmd := &cobra.Command{
		Use:   "track [body...]",
		Short: "sample bodies over a window and store the runs",
		RunE:  trackBodies,
	}
	trackCmd.Flags().Float64Var(&trackStart, "start", 0, "start, days since J2000")
	trackCmd.Flags().Float64Var(&trackDuration, "duration", 365.25, "window length in days")
	trackCmd.Flags().Float64Var(&trackStep, "step", 1, "sample spacing in days")
	trackCmd.Flags().StringVar(&relativeTo, "relative", "", "sample relative to this body")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot distance over a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file, stdout when empty")

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "period and apsides of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a stored run's path as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file, stdout when empty")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width in pixels")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 800, "image height in pixels")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame of the orrery as svg",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	addTimeFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file, stdout when empty")
	snapshotCmd.Flags().IntVar(&frameWidth, "width", 100, "frame width in cells")
	snapshotCmd.Flags().IntVar(&frameHeight, "height", 40, "frame height in cells")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live terminal orrery",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve positions and the clock over http",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().Float64Var(&rateLimit, "rate", 20, "requests per second per client, 0 disables")
	serveCmd.Flags().IntVar(&burst, "burst", 40, "rate limiter burst")
	serveCmd.Flags().IntVar(&streamFPS, "stream-fps", 10, "websocket frames per second")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario and time scale presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	showersCmd := &cobra.Command{
		Use:   "showers",
		Short: "list annual meteor showers",
		Args:  cobra.NoArgs,
		RunE:  listShowers,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(bodiesCmd, positionCmd, positionsCmd, clockCmd, trackCmd, listCmd, plotCmd,
		analyzeCmd, exportJSONCmd, exportSVGCmd, deleteCmd, snapshotCmd, liveCmd, serveCmd,
		presetsCmd, showersCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTimeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&atDays, "t", 0, "time in days since J2000")
	cmd.Flags().StringVar(&atDate, "date", "", "calendar date (2006-01-02 or RFC 3339)")
}

func addViewFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&timeScale, "scale", "1day/sec", "time scale preset or simulated seconds per second")
	f.IntVar(&frameRate, "fps", 60, "frames per second")
	f.StringVar(&theme, "theme", "default", "colour theme")
	f.StringVar(&focus, "focus", "sun", "body to centre on")
	f.Float64Var(&zoom, "zoom", 1, "initial zoom")
	f.StringSliceVar(&bodyTypes, "types", nil, "body types to show")
}
