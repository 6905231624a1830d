package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/boltgrid/internal/config"
	"github.com/san-kum/boltgrid/internal/dbm"
	"github.com/san-kum/boltgrid/internal/export"
	"github.com/san-kum/boltgrid/internal/generate"
	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
	"github.com/san-kum/boltgrid/internal/render"
	"github.com/san-kum/boltgrid/internal/storage"
	"github.com/san-kum/boltgrid/internal/viz"
)

var (
	dataDir string

	profile string
	genSeed int64
	biasNum int
	biasDen int
	power   int
	eta     int

	steps   int
	simSeed int64
	save    bool

	configFile string
	preset     string
	frameIdx   int
	scale      int
)

// main exits with status 1 when the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "boltgrid",
		Short:        "lightning grid generator, simulator and renderer",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".boltgrid", "run store directory")

	generateCmd := &cobra.Command{
		Use:   "generate [output] [width] [mode]",
		Short: "write a grid description",
		Args:  cobra.ExactArgs(3),
		RunE:  generateGrid,
	}
	generateCmd.Flags().StringVar(&profile, "profile", config.DefaultProfile, "generator profile (a or b)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", time.Now().UnixNano(), "random seed")
	generateCmd.Flags().IntVar(&biasNum, "bias-num", 0, "row bias numerator (0 = mode default)")
	generateCmd.Flags().IntVar(&biasDen, "bias-den", 0, "row bias denominator (0 = mode default)")
	generateCmd.Flags().IntVar(&power, "power", 0, "override description power")
	generateCmd.Flags().IntVar(&eta, "eta", 0, "override description eta")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	simulateCmd := &cobra.Command{
		Use:   "simulate [grid] [output]",
		Short: "grow bolts on a grid and write the frame sequence",
		Args:  cobra.ExactArgs(2),
		RunE:  simulateGrid,
	}
	simulateCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of strikes")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", config.DefaultSeed, "random seed")
	simulateCmd.Flags().BoolVar(&save, "save", false, "record the run in the run store")
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	renderCmd := &cobra.Command{
		Use:   "render [input] [output]",
		Short: "render a frame sequence as an animation (.gif or .avi)",
		Args:  cobra.ExactArgs(2),
		RunE:  renderFrames,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [frames]",
		Short: "print a summary and one frame",
		Args:  cobra.ExactArgs(1),
		RunE:  previewFrames,
	}
	previewCmd.Flags().IntVar(&frameIdx, "frame", -1, "frame index (-1 = last)")

	viewCmd := &cobra.Command{
		Use:   "view [frames]",
		Short: "step through a frame sequence interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := gridfile.LoadFrames(args[0])
			if err != nil {
				return err
			}
			return viz.RunViewer(args[0], fs)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot a grid description or frame sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  plotFile,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [frames] [output.png]",
		Short: "write a PNG chart of bolt growth",
		Args:  cobra.ExactArgs(2),
		RunE:  chartFrames,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [frames] [output]",
		Short: "export one frame as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&frameIdx, "frame", -1, "frame index (-1 = last)")
	exportSVGCmd.Flags().IntVar(&scale, "scale", 8, "pixels per cell")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [frames] [output]",
		Short: "export frames and metrics to JSON (- for stdout)",
		Args:  cobra.ExactArgs(2),
		RunE:  exportJSON,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata and growth",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(generateCmd, simulateCmd, renderCmd, previewCmd, viewCmd, plotCmd, chartCmd, exportSVGCmd, exportJSONCmd, listCmd, showCmd, presetsCmd)
	return rootCmd
}

// loadConfig applies the preset, then the config file on top of it.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func generateGrid(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[1], err)
	}
	mode, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", args[2], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gc := cfg.Generator
	if cmd.Flags().Changed("profile") || gc.Profile == "" {
		gc.Profile = profile
	}
	if cmd.Flags().Changed("bias-num") {
		gc.BiasNumerator = biasNum
	}
	if cmd.Flags().Changed("bias-den") {
		gc.BiasDenominator = biasDen
	}
	if cmd.Flags().Changed("power") {
		gc.Power = power
	}
	if cmd.Flags().Changed("eta") {
		gc.Eta = eta
	}
	seed := genSeed
	if gc.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = gc.Seed
	}

	genCfg, err := gc.GenerateConfig(mode)
	if err != nil {
		return err
	}
	gen, err := generate.New(genCfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	d, err := gen.WriteFile(args[0], width)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %dx%d profile %s mode %d, %d sources, %d targets\n",
		args[0], d.Height, d.Width, gen.Config().Profile, mode, len(d.Sources), len(d.Targets))
	return nil
}

func simulateGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("steps") && (preset != "" || configFile != "") {
		steps = cfg.Simulation.Steps
	}
	if !cmd.Flags().Changed("seed") && (preset != "" || configFile != "") {
		simSeed = cfg.Simulation.Seed
	}

	d, err := gridfile.LoadDescription(args[0])
	if err != nil {
		return err
	}

	sim, err := dbm.New(d, rand.New(rand.NewSource(simSeed)))
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		sim.AddMetric(m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "simulating %d strikes on %dx%d grid...\n", steps, d.Height, d.Width)
	start := time.Now()

	result, err := sim.Run(cmd.Context(), dbm.Config{Steps: steps})
	if err != nil {
		return err
	}
	if err := gridfile.SaveFrames(args[1], result.Frames); err != nil {
		return err
	}

	fmt.Fprintf(out, "completed in %v\n", time.Since(start))
	if result.Skipped > 0 {
		fmt.Fprintf(out, "skipped %d points outside the grid\n", result.Skipped)
	}
	if result.Stalled > 0 {
		fmt.Fprintf(out, "%d strikes found no ground\n", result.Stalled)
	}
	fmt.Fprintln(out, viz.Summary(args[1], result.Frames, result.Metrics))

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Input:   args[0],
		Output:  args[1],
		Seed:    simSeed,
		Power:   d.Power,
		Eta:     d.Eta,
		Stalled: result.Stalled,
		Metrics: result.Metrics,
	}, result.Frames)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "run id: %s\n", runID)
	return nil
}

func renderFrames(cmd *cobra.Command, args []string) error {
	res, err := render.RenderFile(args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !res.Written {
		fmt.Fprintf(out, "%s has %d frame(s); at least %d are needed, nothing written\n", args[0], res.Frames, render.MinFrames)
		return nil
	}
	fmt.Fprintf(out, "wrote %s: %d frames (%s)\n", args[1], res.Frames, res.Format)
	return nil
}

func pickFrame(fs *gridfile.FrameSet) (gridfile.Frame, int, error) {
	n := len(fs.Frames)
	if n == 0 {
		return nil, 0, fmt.Errorf("no frames")
	}
	i := frameIdx
	if i < 0 {
		i = n - 1
	}
	if i >= n {
		return nil, 0, fmt.Errorf("frame %d out of range (0-%d)", i, n-1)
	}
	return fs.Frames[i], i, nil
}

func previewFrames(cmd *cobra.Command, args []string) error {
	fs, err := gridfile.LoadFrames(args[0])
	if err != nil {
		return err
	}
	f, i, err := pickFrame(fs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Summary(args[0], fs, metrics.Summarize(fs, metrics.Defaults())))
	fmt.Fprintf(out, "frame %d\n", i)
	fmt.Fprint(out, viz.FrameCanvas(f).String())
	return nil
}

func plotFile(cmd *cobra.Command, args []string) error {
	n, err := gridfile.HeaderFields(args[0])
	if err != nil {
		return err
	}

	var graph string
	switch n {
	case 4:
		d, err := gridfile.LoadDescription(args[0])
		if err != nil {
			return err
		}
		graph = viz.ProfilePlot(d)
	case 3:
		fs, err := gridfile.LoadFrames(args[0])
		if err != nil {
			return err
		}
		graph = viz.GrowthPlot(fs)
	default:
		return fmt.Errorf("%s: unrecognised header with %d fields", args[0], n)
	}

	if graph == "" {
		return fmt.Errorf("no data to plot")
	}
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

// writeFile creates path and removes it again if write fails.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func chartFrames(cmd *cobra.Command, args []string) error {
	fs, err := gridfile.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if err := writeFile(args[1], func(f *os.File) error { return export.GrowthChart(f, fs) }); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	fs, err := gridfile.LoadFrames(args[0])
	if err != nil {
		return err
	}
	frame, i, err := pickFrame(fs)
	if err != nil {
		return err
	}
	if err := writeFile(args[1], func(f *os.File) error { return export.FrameSVG(f, frame, scale) }); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: frame %d\n", args[1], i)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	fs, err := gridfile.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if args[1] == "-" {
		return storage.ExportJSON(cmd.OutOrStdout(), fs)
	}
	return writeFile(args[1], func(f *os.File) error { return storage.ExportJSON(f, fs) })
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGRID\tFRAMES\tSEED\tINPUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Height,
			run.Width,
			run.Frames,
			run.Seed,
			run.Input,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	names, rows, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}

	for col, name := range names {
		data := make([]float64, 0, len(rows))
		for _, row := range rows {
			if col < len(row) {
				data = append(data, row[col])
			}
		}
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROFILE\tBIAS\tPOWER\tETA\tSTEPS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		bias := "default"
		if p.Generator.BiasDenominator != 0 {
			bias = fmt.Sprintf("%d/%d", p.Generator.BiasNumerator, p.Generator.BiasDenominator)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", name, p.Generator.Profile, bias,
			orDefault(p.Generator.Power), orDefault(p.Generator.Eta), p.Simulation.Steps)
	}
	return w.Flush()
}

func orDefault(v int) string {
	if v == 0 {
		return "default"
	}
	return strconv.Itoa(v)
}
