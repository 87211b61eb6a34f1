package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springsim/internal/analysis"
	"github.com/san-kum/springsim/internal/config"
	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/export"
	"github.com/san-kum/springsim/internal/metrics"
	"github.com/san-kum/springsim/internal/optim"
	"github.com/san-kum/springsim/internal/physics"
	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/viz"
)

// setup resolves the engine config and scene. Flags override the config
// file, which overrides built-in defaults.
type setup struct {
	name  string
	cfg   physics.Config
	scene *config.Scene
}

func loadSetup(cmd *cobra.Command, args []string) (*setup, error) {
	file := config.DefaultConfig()
	if configFile != "" {
		var err error
		file, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		file.Physics.Dt = dt
	}
	if flags.Changed("scheme") {
		file.Physics.Scheme = scheme
	}
	if flags.Changed("gravity") {
		file.Physics.Gravity = gravity
	}

	cfg, err := file.Physics.Engine()
	if err != nil {
		return nil, err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	scene, err := config.Resolve(file, name)
	if err != nil {
		return nil, err
	}
	if scene.Name == "" {
		scene.Name = "custom"
	}

	logger.Debug("engine config",
		"scene", scene.Name, "dt", cfg.Dt, "scheme", cfg.Scheme, "gravity", cfg.Gravity,
		"particles", len(scene.Particles), "springs", len(scene.Springs))

	return &setup{name: scene.Name, cfg: cfg, scene: scene}, nil
}

func (s *setup) build() (*physics.Engine, error) {
	return config.Build(s.cfg, s.scene)
}

func (s *setup) simulate(n, every int) (*sim.Result, *physics.Engine, error) {
	eng, err := s.build()
	if err != nil {
		return nil, nil, err
	}

	simulator := sim.New(eng)
	for _, m := range metrics.Standard() {
		simulator.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := simulator.Run(ctx, sim.RunConfig{Steps: n, SampleEvery: every, ValidateState: true})
	if err != nil {
		return result, eng, err
	}
	logger.Debug("simulation finished", "steps", result.StepsTaken, "elapsed", time.Since(start))

	for _, e := range result.Errors {
		logger.Warn("simulation stopped early", "err", e)
	}
	return result, eng, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	s, err := loadSetup(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("running %s (%s, dt=%g)...\n", s.name, s.cfg.Scheme, s.cfg.Dt)
	start := time.Now()

	result, eng, err := s.simulate(steps, sampleEvery)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d  time: %.2fs  particles: %d  springs: %d\n",
		result.StepsTaken, eng.Time(), eng.NumParticles(), eng.NumSprings())
	fmt.Println("\nmetrics:")
	printMetrics(os.Stdout, result.Metrics)
	return nil
}

func printMetrics(w io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %.6f\n", name, m[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadSetup(cmd, args)
	if err != nil {
		return err
	}
	return viz.Run(s.build, liveOptions(s.name))
}

func liveOptions(scene string) viz.Options {
	opts := viz.DefaultOptions()
	opts.Scene = scene
	opts.FPS = fps
	opts.StepsPerFrame = perFrame
	opts.Theme = theme
	return opts
}

func runPicker(cmd *cobra.Command, args []string) error {
	if _, err := loadSetup(cmd, nil); err != nil {
		return err
	}
	open := func(scene string) (viz.Factory, error) {
		s, err := loadSetup(cmd, []string{scene})
		if err != nil {
			return nil, err
		}
		return s.build, nil
	}
	if fps == 0 {
		fps = viz.DefaultFPS
	}
	if perFrame == 0 {
		perFrame = 1
	}
	return viz.RunPicker(config.ListPresets(), config.PresetInfo, open, liveOptions(""))
}

func plotScene(cmd *cobra.Command, args []string) error {
	s, err := loadSetup(cmd, args)
	if err != nil {
		return err
	}
	ax, err := analysis.ParseAxis(axis)
	if err != nil {
		return err
	}

	result, eng, err := s.simulate(steps, 1)
	if err != nil {
		return err
	}

	data, err := analysis.Series(result.Frames, particle, ax)
	if err != nil {
		return err
	}

	fmt.Printf("scene: %s\n", s.name)
	fmt.Printf("samples: %d\n\n", len(data))

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("particle %d %s vs step", particle, ax)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(result.Energy,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("total energy"),
	))
	fmt.Println()

	canvas := viz.NewCanvas(60, 20)
	proj := viz.NewProjector(eng.World(), canvas)
	path, err := export.Trajectory(result.Frames, particle)
	if err != nil {
		return err
	}
	for i := 1; i < len(path); i++ {
		x0, y0 := proj.Project(path[i-1])
		x1, y1 := proj.Project(path[i])
		canvas.DrawLine(x0, y0, x1, y1)
	}
	fmt.Print(canvas.String())

	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.CanvasToSVG(canvas, 4)), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgOut)
	}
	return nil
}

func analyzeScene(cmd *cobra.Command, args []string) error {
	ax, err := analysis.ParseAxis(axis)
	if err != nil {
		return err
	}

	var (
		frames []dynamo.Frame
		label  string
		s      *setup
	)
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		if frames, err = export.ReadCSV(f); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		label = input
	} else {
		if s, err = loadSetup(cmd, args); err != nil {
			return err
		}
		result, _, err := s.simulate(steps, 1)
		if err != nil {
			return err
		}
		frames, label = result.Frames, s.name
	}

	if len(frames) < 2 {
		return fmt.Errorf("no data")
	}
	spacing := frames[1].Time - frames[0].Time

	data, err := analysis.Series(frames, particle, ax)
	if err != nil {
		return err
	}
	ps, err := analysis.PowerSpectrum(data)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", label)
	fmt.Printf("particle %d, axis %s, %d samples\n\n", particle, ax, len(data))

	fmt.Println(asciigraph.Plot(ps[1:max(2, len(ps)/4)],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", ax)),
	))
	fmt.Println()

	freq, err := analysis.DominantFrequency(data, spacing)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	portrait, err := analysis.GeneratePhasePortrait(frames, particle, ax)
	if err != nil {
		return err
	}
	fmt.Printf("\nphase portrait (%s vs %s)\n", ax, ax.Velocity())
	fmt.Print(analysis.PhasePortraitToASCII(portrait, 70, 20))

	if s != nil {
		lambda, err := analysis.LyapunovExponent(s.build, particle, 1e-6, steps)
		if err != nil {
			logger.Warn("divergence estimate failed", "err", err)
			return nil
		}
		fmt.Printf("\nlyapunov exponent: %.4f\n", lambda)
	}
	return nil
}

func exportScene(cmd *cobra.Command, args []string) error {
	s, err := loadSetup(cmd, args)
	if err != nil {
		return err
	}

	result, eng, err := s.simulate(steps, exportEvery)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		err = export.WriteCSV(out, result)
	case "json":
		meta := export.Meta{
			Scene:     s.name,
			Scheme:    eng.SchemeName(),
			Dt:        s.cfg.Dt,
			Gravity:   s.cfg.Gravity,
			Particles: eng.NumParticles(),
			Springs:   eng.NumSprings(),
		}
		err = export.WriteJSON(out, meta, result)
	case "svg":
		points, perr := export.Trajectory(result.Frames, particle)
		if perr != nil {
			return perr
		}
		p, perr := eng.Particle(particle)
		if perr != nil {
			return perr
		}
		stroke := config.FormatColor(p.Material.Color())
		_, err = io.WriteString(out, export.TrajectorySVG(points, 800, 600, stroke))
	default:
		return fmt.Errorf("unknown format: %s (want csv, json or svg)", format)
	}
	if err != nil {
		return err
	}

	if output != "" {
		logger.Info("exported", "format", format, "path", output, "frames", len(result.Frames))
	}
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	sceneArgs, schemes := args, []string(nil)
	if len(args) > 0 {
		sceneArgs, schemes = args[:1], args[1:]
	}
	if len(schemes) == 0 {
		schemes = []string{"halfstep", "verlet", "euler"}
	}

	s, err := loadSetup(cmd, sceneArgs)
	if err != nil {
		return err
	}

	build := func(idx int) (*physics.Engine, []sim.Metric, error) {
		cfg := s.cfg
		cfg.Scheme = schemes[idx]
		eng, err := config.Build(cfg, s.scene)
		if err != nil {
			return nil, nil, err
		}
		return eng, metrics.Standard(), nil
	}

	fmt.Printf("comparing schemes for %s (dt=%.4f, steps=%d)\n\n", s.name, s.cfg.Dt, steps)

	start := time.Now()
	results, err := sim.NewEnsemble(build, len(schemes)).Run(context.Background(), sim.RunConfig{Steps: steps, SampleEvery: steps})
	if err != nil {
		return err
	}
	logger.Debug("ensemble finished", "runs", len(results), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tENERGY\tDRIFT\tMAX SPEED\tCOLLISIONS\tSTABILITY")
	for i, r := range results {
		m := r.Metrics
		fmt.Fprintf(w, "%s\t%.3f\t%.2e\t%.3f\t%.0f\t%.3f\n",
			schemes[i], m["energy"], m["energy_drift"], m["max_speed"], m["collisions"], m["stability"])
	}
	return w.Flush()
}

func sweepScene(cmd *cobra.Command, args []string) error {
	s, err := loadSetup(cmd, args)
	if err != nil {
		return err
	}

	sc := analysis.SweepConfig{
		Param:     param,
		Min:       sweepFrom,
		Max:       sweepTo,
		Points:    points,
		Particle:  particle,
		Axis:      analysis.Axis(axis),
		Transient: transient,
		Record:    record,
	}
	build := func(cfg physics.Config) (*physics.Engine, error) {
		return config.Build(cfg, s.scene)
	}

	data, err := analysis.Sweep(s.cfg, build, sc)
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s over [%g, %g] on %s\n\n", param, sweepFrom, sweepTo, s.name)
	fmt.Print(analysis.SweepToASCII(data, 70, 20))

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tTURNING POINTS")
	for _, p := range data {
		fmt.Fprintf(w, "%.4f\t%d\n", p.Param, len(p.Values))
	}
	return w.Flush()
}

func tuneScene(cmd *cobra.Command, args []string) error {
	s, err := loadSetup(cmd, args)
	if err != nil {
		return err
	}

	names, ranges, err := parseGrid(grid)
	if err != nil {
		return err
	}
	search, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}

	build := func(cfg physics.Config) (*physics.Engine, []sim.Metric, error) {
		eng, err := config.Build(cfg, s.scene)
		if err != nil {
			return nil, nil, err
		}
		return eng, metrics.Standard(), nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("searching %d combinations on %s, minimizing %s\n\n", search.Candidates(), s.name, metric)
	best, val, err := search.Search(ctx, s.cfg, build, metric, sim.RunConfig{Steps: steps, SampleEvery: steps})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%g\n", name, best[name])
	}
	fmt.Fprintf(w, "%s\t%.6g\n", metric, val)
	return w.Flush()
}

// parseGrid reads name=v1,v2,... specs.
func parseGrid(specs []string) ([]string, [][]float64, error) {
	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, nil, fmt.Errorf("bad grid %q (want name=v1,v2,...)", spec)
		}
		var values []float64
		for _, field := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("grid %s: %w", name, err)
			}
			values = append(values, v)
		}
		names = append(names, strings.TrimSpace(name))
		ranges = append(ranges, values)
	}
	return names, ranges, nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, config.PresetInfo[name])
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	file := config.DefaultConfig()
	if configFile != "" {
		var err error
		if file, err = config.Load(configFile); err != nil {
			return err
		}
	}
	data, err := config.Marshal(file)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
