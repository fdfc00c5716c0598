package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/visual"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	algorithm  string
	arraySize  int
	speed      int
	seed       int64
	theme      string
	mute       bool
	logFile    string
	logLevel   string
	// bench
	benchSizes []int
	benchInput string
	// snapshot
	stepIndex int
	outPath   string
	every     int
	braille   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "sorting algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".sortviz", "data directory for recorded traces")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVarP(&algorithm, "algorithm", "a", "", "algorithm ("+strings.Join(sorting.Names(), ", ")+")")
	pf.IntVarP(&arraySize, "size", "n", config.DefaultSize, fmt.Sprintf("array size (%d-%d)", config.MinSize, config.MaxSize))
	pf.IntVar(&speed, "speed", config.DefaultSpeed, fmt.Sprintf("milliseconds per step before the algorithm multiplier (%d-%d)", config.MinSpeed, config.MaxSpeed))
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVar(&mute, "mute", false, "start with sound off")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal visualizer (default)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "window visualizer",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	showCmd := &cobra.Command{
		Use:   "show [algorithm]",
		Short: "print an algorithm's description and code",
		Args:  cobra.ExactArgs(1),
		RunE:  showAlgorithm,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config-init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "count steps for growing sizes and fit the growth exponent",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{32, 64, 128, 256}, "array sizes")
	benchCmd.Flags().StringVar(&benchInput, "input", "reversed", "input shape (reversed, shuffled)")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm]",
		Short: "record a step trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordTrace,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded traces",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot how many elements are out of place at each step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [algorithm]",
		Short: "render a step to SVG or the whole run to GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&stepIndex, "step", -1, "step to render (-1 for the last)")
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "sortviz.svg", "output file (.svg or .gif)")
	snapshotCmd.Flags().IntVar(&every, "every", 1, "keep one step in this many (gif)")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "draw the svg through the braille canvas")

	rootCmd.AddCommand(tuiCmd, guiCmd, listCmd, showCmd, presetsCmd, configCmd, benchCmd, recordCmd, runsCmd, plotCmd, exportJSONCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadSettings layers defaults, preset, config file and explicit flags, in
// that order, and validates the result.
func loadSettings(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if flags.Changed("size") {
		cfg.ArraySize = arraySize
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("mute") {
		cfg.Audio.Enabled = !mute
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger. When a full-screen frontend owns the
// terminal and no log file is set, logs are discarded.
func newLogger(screen bool) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = f, func() { f.Close() }
	case screen:
		out = io.Discard
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func visualOptions(cfg *config.Config) visual.Options {
	return visual.Options{
		Algorithm:      cfg.AlgorithmID(),
		Size:           cfg.ArraySize,
		Speed:          cfg.Speed,
		BaseFrequency:  cfg.Audio.BaseFrequency,
		FrequencyScale: cfg.Audio.FrequencyScale,
		SweepStride:    time.Duration(cfg.SweepStrideMs) * time.Millisecond,
		Seed:           cfg.Seed,
	}
}

func newSession(cmd *cobra.Command) (*config.Config, *visual.Coordinator, *audio.Synth, *slog.Logger, func(), error) {
	cfg, err := loadSettings(cmd, nil)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	log, closeLog, err := newLogger(true)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	synth := audio.New(audio.Options{
		Volume: cfg.Audio.Volume,
		Muted:  !cfg.Audio.Enabled,
		Log:    log,
	})
	coord := visual.New(visualOptions(cfg), synth, log)
	log.Info("session ready", "algorithm", cfg.Algorithm, "size", cfg.ArraySize, "speed", cfg.Speed)

	cleanup := func() {
		if err := synth.Close(); err != nil {
			log.Warn("closing audio", "err", err)
		}
		closeLog()
	}
	return cfg, coord, synth, log, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, coord, synth, log, cleanup, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	m := viz.NewModel(coord, viz.Options{
		Theme:    cfg.Theme,
		Audio:    synth,
		SkipMenu: cmd.Flags().Changed("algorithm"),
		Log:      log,
	})
	return viz.Run(m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	_, coord, synth, log, cleanup, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	gui.Run(coord, synth, !cmd.Flags().Changed("algorithm"), log)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPEED x\tDESCRIPTION")
	for _, d := range sorting.All() {
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\n", d.ID, d.Name, d.SpeedMultiplier, d.Description)
	}
	return w.Flush()
}

func showAlgorithm(cmd *cobra.Command, args []string) error {
	id, err := sorting.Parse(args[0])
	if err != nil {
		return err
	}
	d := sorting.Lookup(id)
	fmt.Printf("%s\n\n%s\n\nspeed multiplier: %g\n\n%s\n", d.Name, d.Description, d.SpeedMultiplier, d.Code)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGORITHM\tSIZE\tSPEED\tTHEME\tSOUND")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		sound := "on"
		if !p.Audio.Enabled {
			sound = "off"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d ms\t%s\t%s\n", name, p.Algorithm, p.ArraySize, p.Speed, p.Theme, sound)
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	ids := sorting.IDs()
	if len(args) > 0 {
		ids = nil
		for _, a := range args {
			id, err := sorting.Parse(a)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}

	var input analysis.Input
	switch benchInput {
	case "reversed":
		input = analysis.Reversed
	case "shuffled":
		input = analysis.Shuffled(seed)
	default:
		return fmt.Errorf("unknown input shape: %s (available: reversed, shuffled)", benchInput)
	}
	for _, n := range benchSizes {
		if n <= 0 {
			return fmt.Errorf("size %d: %w", n, config.ErrOutOfRange)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := analysis.Bench(ctx, ids, benchSizes, input)
	if err != nil {
		return err
	}

	fmt.Printf("step counts on %s input (%s)\n\n", benchInput, time.Since(start).Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "ALGORITHM"
	for _, n := range benchSizes {
		header += fmt.Sprintf("\tn=%d", n)
	}
	fmt.Fprintln(w, header+"\tEXPONENT")
	for _, r := range results {
		row := string(r.ID)
		for _, c := range r.Counts {
			row += fmt.Sprintf("\t%d", c)
		}
		fmt.Fprintf(w, "%s\t%.2f\n", row, r.Exponent)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(benchSizes) < 2 {
		return nil
	}
	series := make([][]float64, len(results))
	legends := make([]string, len(results))
	for i, r := range results {
		series[i] = make([]float64, len(r.Counts))
		for j, c := range r.Counts {
			series[i][j] = float64(c)
		}
		legends[i] = string(r.ID)
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption("steps vs size"),
		asciigraph.SeriesColors(seriesColors(len(series))...),
		asciigraph.SeriesLegends(legends...),
	)
	fmt.Println()
	fmt.Println(graph)
	return nil
}

func seriesColors(n int) []asciigraph.AnsiColor {
	palette := []asciigraph.AnsiColor{
		asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green,
		asciigraph.Red, asciigraph.Blue, asciigraph.White,
	}
	out := make([]asciigraph.AnsiColor, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}

// traceInput deals the seeded permutation a headless run sorts.
func traceInput(cfg *config.Config) (int64, []int) {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return s, visual.Permutation(rand.New(rand.NewSource(s)), cfg.ArraySize)
}

func recordTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	id := cfg.AlgorithmID()
	s, input := traceInput(cfg)
	runID, err := st.Save(id, s, input, sorting.Lookup(id).Produce(input))
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	log.Debug("trace recorded", "run", runID, "steps", meta.Steps)

	fmt.Printf("recorded %s: %s, n=%d, seed=%d, %d steps\n", runID, id, meta.Size, meta.Seed, meta.Steps)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tSEED\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Seed,
			run.Steps,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(steps) < 2 {
		return fmt.Errorf("no data to plot")
	}

	trace := analysis.DisorderTrace(steps)
	data := make([]float64, len(trace))
	for i, v := range trace {
		data[i] = float64(v)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("steps: %d\n\n", meta.Steps)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("elements out of place"),
	))
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	id := cfg.AlgorithmID()
	_, input := traceInput(cfg)
	var steps []sorting.Step
	for s := range sorting.Lookup(id).Produce(input) {
		steps = append(steps, s)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(outPath), ".gif") {
		if err := export.WriteGIF(f, steps, export.GIFOptions{Every: every}); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d steps)\n", outPath, len(steps))
		return nil
	}

	k := stepIndex
	if k < 0 || k >= len(steps) {
		k = len(steps) - 1
	}
	step := steps[k]
	pal := export.DefaultPalette
	if th := viz.GetTheme(cfg.Theme); th.Name == cfg.Theme {
		pal = export.Palette{Background: "#0a0a0a", Bar: string(th.Bar), Highlight: string(th.Highlight)}
	}

	var svg string
	if braille {
		c := viz.NewCanvas(80, 20)
		viz.BarChart(c, step.Array)
		var hot map[int]bool
		if !step.Highlight.IsNone() {
			hot = viz.CellColumns(step.Highlight[:], len(step.Array), c.Width)
		}
		svg = export.CanvasToSVG(c, 4, pal, hot)
	} else {
		svg = export.BarsToSVG(step.Array, step.Highlight, 800, 400, pal)
	}
	if _, err := io.WriteString(f, svg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (step %d of %d)\n", outPath, k, len(steps)-1)
	return nil
}
