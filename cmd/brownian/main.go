package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/brownian/internal/config"
	"github.com/san-kum/brownian/internal/export"
	"github.com/san-kum/brownian/internal/logging"
	"github.com/san-kum/brownian/internal/viz"
	"github.com/san-kum/brownian/internal/walk"
)

var (
	particles  int
	steps      int
	maxStep    int
	seed       uint64
	dim        int
	theme      string
	width      int
	height     int
	logLevel   string
	configFile string
	preset     string
	// plot
	showAxes bool
	// export
	outPath   string
	svgWidth  int
	svgHeight int
	canvasSVG bool
	svgScale  float64

	logger = logging.Nop()
)

// main registers the brownian commands and flags, launches the interactive
// plot window when no subcommand is given, and exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brownian",
		Short: "brownian motion by random walk",
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	pf.IntVar(&steps, "steps", config.DefaultSteps, "number of points per trajectory")
	pf.IntVar(&maxStep, "max-step", config.DefaultMaxStep, "maximum step size per axis (exclusive)")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 draws a fresh one)")
	pf.IntVar(&dim, "dim", config.DefaultDim, "plot dimension (2 or 3)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.IntVar(&width, "width", config.DefaultWidth, "terminal width for plots")
	pf.IntVar(&height, "height", config.DefaultHeight, "terminal height for plots")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "generate trajectories and print final positions",
		Args:  cobra.NoArgs,
		RunE:  runWalk,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot trajectories in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	plotCmd.Flags().BoolVar(&showAxes, "axes", false, "also chart each coordinate against step")

	exportCmd := &cobra.Command{
		Use:       "export [csv|json|svg]",
		Short:     "export trajectories",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "json", "svg"},
		RunE:      runExport,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&svgWidth, "svg-width", 800, "svg width in pixels")
	exportCmd.Flags().IntVar(&svgHeight, "svg-height", 800, "svg height in pixels")
	exportCmd.Flags().BoolVar(&canvasSVG, "canvas", false, "svg of the terminal plot (uses --dim, --width, --height)")
	exportCmd.Flags().Float64Var(&svgScale, "svg-scale", 4, "svg pixels per braille dot with --canvas")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARTICLES\tSTEPS\tMAX STEP\tDIM")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%dD\n", name, p.Particles, p.Steps, p.MaxStep, p.Dim)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(walkCmd, plotCmd, exportCmd, presetsCmd)
	return rootCmd
}

// loadConfig resolves settings with precedence preset < config file < env < flags
// and rebuilds the logger at the resolved level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("max-step") {
		cfg.MaxStep = maxStep
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dim") {
		cfg.Dim = dim
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = l

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(viz.ThemeNames(), cfg.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	if err := cfg.ResolveSeed(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generate(ctx context.Context, cfg *config.Config) (walk.TrajectorySet, error) {
	gen := walk.New(walk.SeededStreams(cfg.Seed), walk.WithLogger(logger))

	start := time.Now()
	set, err := gen.Generate(ctx, cfg.Params())
	if err != nil {
		return nil, err
	}

	logger.Info("walk generated",
		zap.Int("particles", cfg.Particles),
		zap.Int("steps", cfg.Steps),
		zap.Int("max_step", cfg.MaxStep),
		zap.Uint64("seed", cfg.Seed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return set, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), cfg, logger)
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	set, err := generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(out, "points: %d\n\n", set.Points())

	if len(set) == 0 {
		fmt.Fprintln(out, "no particles")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLE\tPOINTS\tFINAL X\tFINAL Y\tFINAL Z")
	for i, traj := range set {
		last := traj.Last()
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%.1f\t%.1f\n", i, len(traj), last.X, last.Y, last.Z)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	set, err := generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	t := viz.GetTheme(cfg.Theme)
	canvas := renderPlot(cfg, set)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Brownian Motion Simulated By Random Walk (%dD, seed %d)\n", cfg.Dim, cfg.Seed)
	fmt.Fprint(out, canvas.Render(t.Palette(), t.Text))

	if showAxes {
		axes := 3
		if cfg.Dim == 2 {
			axes = 2
		}
		for axis := 0; axis < axes; axis++ {
			chart := viz.AxisChart(set, axis, cfg.Width-10, 10)
			if chart == "" {
				continue
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, chart)
		}
	}
	return nil
}

func renderPlot(cfg *config.Config, set walk.TrajectorySet) *viz.Canvas {
	plot := viz.NewPlot()
	plot.Add(set, cfg.Dim)
	canvas := viz.NewCanvas(cfg.Width, cfg.Height)
	plot.Draw(canvas)
	return canvas
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	if format != "csv" && format != "json" && format != "svg" {
		return fmt.Errorf("unknown export format: %s", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	set, err := generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		err = export.WriteCSV(out, set)
	case "json":
		err = export.WriteJSON(out, cfg.Params(), cfg.Seed, set)
	case "svg":
		svg := export.TrajectoriesToSVG(set, svgWidth, svgHeight, nil)
		if canvasSVG {
			svg = export.CanvasToSVG(renderPlot(cfg, set), svgScale, nil)
		}
		_, err = io.WriteString(out, svg)
	}
	if err != nil {
		return err
	}

	if outPath != "" {
		logger.Info("exported", zap.String("format", format), zap.String("path", outPath))
	}
	return nil
}
