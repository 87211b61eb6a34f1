package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/springsim/internal/analysis"
	"github.com/san-kum/springsim/internal/integrators"
	"github.com/san-kum/springsim/internal/viz"
)

var (
	configFile string
	debug      bool
	// engine overrides, applied on top of the config file
	dt      float64
	scheme  string
	gravity float64

	steps       int
	sampleEvery int
	exportEvery int
	particle    int
	axis        string
	fps         int
	perFrame    int
	theme       string
	format      string
	output      string
	svgOut      string
	input       string

	// sweep
	param     string
	sweepFrom float64
	sweepTo   float64
	points    int
	transient int
	record    int

	// tune
	grid   []string
	metric string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "springsim"})
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "springsim",
		Short:         "2d particle-spring simulator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
		// interactive scene menu when no command is given
		RunE: runPicker,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.BoolVar(&debug, "debug", false, "verbose logging")
	pf.Float64Var(&dt, "dt", 0, "timestep (overrides config)")
	pf.StringVar(&scheme, "scheme", "", "step scheme: "+joinNames(integrators.Names()))
	pf.Float64Var(&gravity, "gravity", 0, "gravity (overrides config)")
	pf.StringVar(&theme, "theme", viz.Themes[0].Name, "live view theme: "+joinNames(viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene headless and report metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")
	runCmd.Flags().IntVar(&sampleEvery, "sample", 10, "record every n-th step")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "run a scene with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", viz.DefaultFPS, "frame rate")
	liveCmd.Flags().IntVar(&perFrame, "steps-per-frame", 1, "engine steps per frame")

	plotCmd := &cobra.Command{
		Use:   "plot [scene]",
		Short: "plot a particle coordinate and its trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotScene,
	}
	plotCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")
	plotCmd.Flags().IntVar(&particle, "particle", 1, "particle id")
	plotCmd.Flags().StringVar(&axis, "axis", string(analysis.AxisY), "coordinate: x, y, vx or vy")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the trajectory canvas as SVG")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [scene]",
		Short: "frequency, phase and divergence analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeScene,
	}
	analyzeCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")
	analyzeCmd.Flags().IntVar(&particle, "particle", 1, "particle id")
	analyzeCmd.Flags().StringVar(&axis, "axis", string(analysis.AxisY), "coordinate: x, y, vx or vy")
	analyzeCmd.Flags().StringVar(&input, "input", "", "analyze frames from a CSV export instead of running")

	exportCmd := &cobra.Command{
		Use:   "export [scene]",
		Short: "run a scene and export the recorded frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportScene,
	}
	exportCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")
	exportCmd.Flags().IntVar(&exportEvery, "sample", 1, "record every n-th step")
	exportCmd.Flags().IntVar(&particle, "particle", 1, "particle id (svg)")
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format: csv, json or svg")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	compareCmd := &cobra.Command{
		Use:   "compare [scene] [scheme...]",
		Short: "compare step schemes on the same scene",
		Args:  cobra.ArbitraryArgs,
		RunE:  compareSchemes,
	}
	compareCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scene]",
		Short: "sweep an engine parameter and plot turning points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepScene,
	}
	sweepCmd.Flags().StringVar(&param, "param", "hooke", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.5, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 2, "last value")
	sweepCmd.Flags().IntVar(&points, "points", 20, "number of values")
	sweepCmd.Flags().IntVar(&particle, "particle", 1, "particle id")
	sweepCmd.Flags().StringVar(&axis, "axis", string(analysis.AxisY), "coordinate: x, y, vx or vy")
	sweepCmd.Flags().IntVar(&transient, "transient", 200, "steps discarded per value")
	sweepCmd.Flags().IntVar(&record, "record", 800, "steps recorded per value")

	tuneCmd := &cobra.Command{
		Use:   "tune [scene]",
		Short: "grid search engine parameters minimizing a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tuneScene,
	}
	tuneCmd.Flags().StringArrayVar(&grid, "grid", []string{"dt=0.005,0.01,0.02"}, "parameter values as name=v1,v2,... (repeatable)")
	tuneCmd.Flags().StringVar(&metric, "metric", "energy_drift", "metric to minimize")
	tuneCmd.Flags().IntVar(&steps, "steps", 1000, "number of steps")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes",
		RunE:  listScenes,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the default configuration as yaml",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, analyzeCmd, exportCmd, compareCmd, sweepCmd, tuneCmd, scenesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
