package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/AndrewTrepagnier/crossflowlab/internal/analysis"
	"github.com/AndrewTrepagnier/crossflowlab/internal/config"
	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/export"
	"github.com/AndrewTrepagnier/crossflowlab/internal/metrics"
	"github.com/AndrewTrepagnier/crossflowlab/internal/solver"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
	"github.com/AndrewTrepagnier/crossflowlab/internal/tui"
	"github.com/AndrewTrepagnier/crossflowlab/internal/viz"
)

var (
	configFile string
	preset     string
	// Solver selection
	convention string
	method     string
	tolerance  float64
	maxIter    int
	// Operating point overrides
	flowLPM  float64
	density  float64
	cpHot    float64
	cpCold   float64
	tHotIn   float64
	tHotOut  float64
	tColdIn  float64
	tColdOut float64
	coldFlow float64
	// Fin geometry
	finHTC       float64
	finK         float64
	finWidth     float64
	finThickness float64
	finLength    float64
	finDT        float64
	finSamples   int
	// Curve rendering
	curveRatios  string
	curveMaxNTU  float64
	curveSamples int
	chartWidth   int
	chartHeight  int
	svgPath      string
	// Sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	workers    int
	csvPath    string
	// Sensitivity
	relStep float64
	// Seek
	seekParam  string
	seekTarget float64
	seekLo     float64
	seekHi     float64
	// Solve output
	jsonOut  bool
	csvOut   bool
	plainOut bool
	// Export
	exportFormat string
	outPath      string
	// Explorer
	themeName string
)

// main registers commands and flags and executes the root command. With
// no subcommand the interactive explorer starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "crossflow",
		Short: "crossflow heat exchanger performance lab",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runLive(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset operating point")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the operating point",
		RunE:  runSolve,
	}
	addPointFlags(solveCmd)
	solveCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run snapshot as JSON")
	solveCmd.Flags().BoolVar(&csvOut, "csv", false, "print the run snapshot as CSV")
	solveCmd.Flags().BoolVar(&plainOut, "plain", false, "unstyled report for piping")

	finCmd := &cobra.Command{
		Use:   "fin",
		Short: "rectangular fin efficiency and heat rate",
		RunE:  runFin,
	}
	finCmd.Flags().Float64Var(&finHTC, "htc", config.DefaultHTC, "convective coefficient h (W/m2K)")
	finCmd.Flags().Float64Var(&finK, "conductivity", config.DefaultConductivity, "fin conductivity k (W/mK)")
	finCmd.Flags().Float64Var(&finWidth, "width", config.DefaultFinWidth, "fin width (mm)")
	finCmd.Flags().Float64Var(&finThickness, "thickness", config.DefaultFinThickness, "fin thickness (mm)")
	finCmd.Flags().Float64Var(&finLength, "length", config.DefaultFinLength, "fin length (mm)")
	finCmd.Flags().Float64Var(&finDT, "dt", 20.0, "base-to-air temperature difference (K)")
	finCmd.Flags().IntVar(&finSamples, "samples", 40, "profile sample count")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot effectiveness-NTU curve families",
		RunE:  runCurve,
	}
	curveCmd.Flags().StringVar(&curveRatios, "ratios", "0,0.25,0.5,0.75,1", "capacity ratios, comma separated")
	curveCmd.Flags().Float64Var(&curveMaxNTU, "max-ntu", 5.0, "NTU axis upper bound")
	curveCmd.Flags().IntVar(&curveSamples, "samples", 101, "samples per curve")
	curveCmd.Flags().IntVar(&chartWidth, "width", 70, "chart width")
	curveCmd.Flags().IntVar(&chartHeight, "height", 18, "chart height")
	curveCmd.Flags().StringVar(&svgPath, "svg", "", "write curves to an SVG file instead")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one input across a range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "flow", "input to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.5, "range start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 3.0, "range end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of points")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all cores)")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write points to a CSV file")
	sweepCmd.Flags().StringVar(&svgPath, "svg", "", "write the effectiveness curve to an SVG file")

	sensitivityCmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "finite-difference sensitivities of the solved point",
		RunE:  runSensitivity,
	}
	sensitivityCmd.Flags().Float64Var(&relStep, "rel-step", 1e-4, "relative perturbation size")

	seekCmd := &cobra.Command{
		Use:   "seek",
		Short: "find the input value that hits a target effectiveness",
		RunE:  runSeek,
	}
	seekCmd.Flags().StringVar(&seekParam, "param", "t_cold_out", "input to adjust")
	seekCmd.Flags().Float64Var(&seekTarget, "target", 0.85, "target effectiveness in (0, 1)")
	seekCmd.Flags().Float64Var(&seekLo, "lo", 26.0, "search interval start")
	seekCmd.Flags().Float64Var(&seekHi, "hi", 47.0, "search interval end")

	compareCmd := &cobra.Command{
		Use:   "compare [method1] [method2] ...",
		Short: "compare conventions and solver methods on the same operating point",
		RunE:  runCompare,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset operating points",
		RunE:  runPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "solve and export the run snapshot",
		RunE:  runExport,
	}
	addPointFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or csv")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive operating point explorer",
		RunE:  runLive,
	}
	addPointFlags(liveCmd)
	liveCmd.Flags().StringVar(&themeName, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list NTU solver methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range solver.List() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, finCmd, curveCmd, sweepCmd, sensitivityCmd, seekCmd, compareCmd, presetsCmd, exportCmd, liveCmd, methodsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addPointFlags registers the operating point and solver overrides used
// by commands that run the pipeline.
func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flowLPM, "flow", config.DefaultFlowLPM, "hot water flow (L/min)")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "hot water density (kg/m3)")
	cmd.Flags().Float64Var(&cpHot, "cp-hot", config.DefaultCpHot, "hot stream cp (kJ/kgK)")
	cmd.Flags().Float64Var(&cpCold, "cp-cold", config.DefaultCpCold, "cold stream cp (kJ/kgK)")
	cmd.Flags().Float64Var(&tHotIn, "t-hot-in", config.DefaultTHotIn, "hot inlet temperature (C)")
	cmd.Flags().Float64Var(&tHotOut, "t-hot-out", config.DefaultTHotOut, "hot outlet temperature (C)")
	cmd.Flags().Float64Var(&tColdIn, "t-cold-in", config.DefaultTColdIn, "cold inlet temperature (C)")
	cmd.Flags().Float64Var(&tColdOut, "t-cold-out", config.DefaultTColdOut, "cold outlet temperature (C)")
	cmd.Flags().Float64Var(&coldFlow, "cold-flow", 0, "measured cold mass flow (kg/s, 0 = derive)")
	cmd.Flags().StringVar(&convention, "convention", "minmax", "capacity ratio convention: minmax or coldhot")
	cmd.Flags().StringVar(&method, "method", config.DefaultMethod, "NTU solver method")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "solver tolerance (0 = default)")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "solver iteration budget (0 = default)")
}

// loadConfig resolves defaults, preset, config file and flag overrides,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("flow") {
		cfg.Exchanger.FlowLPM = flowLPM
	}
	if f.Changed("density") {
		cfg.Exchanger.Density = density
	}
	if f.Changed("cp-hot") {
		cfg.Exchanger.CpHot = cpHot
	}
	if f.Changed("cp-cold") {
		cfg.Exchanger.CpCold = cpCold
	}
	if f.Changed("t-hot-in") {
		cfg.Exchanger.THotIn = tHotIn
	}
	if f.Changed("t-hot-out") {
		cfg.Exchanger.THotOut = tHotOut
	}
	if f.Changed("t-cold-in") {
		cfg.Exchanger.TColdIn = tColdIn
	}
	if f.Changed("t-cold-out") {
		cfg.Exchanger.TColdOut = tColdOut
	}
	if f.Changed("cold-flow") {
		cfg.Exchanger.ColdMassFlow = coldFlow
	}
	if f.Changed("convention") {
		cfg.Convention = convention
	}
	if f.Changed("method") {
		cfg.Solver.Method = method
	}
	if f.Changed("tolerance") {
		cfg.Solver.Tolerance = tolerance
	}
	if f.Changed("max-iter") {
		cfg.Solver.MaxIter = maxIter
	}
	return cfg, nil
}

// pipelineFactory validates the solver selection once and returns a
// constructor for fresh pipelines, one per worker.
func pipelineFactory(cfg *config.Config) (func() *exchanger.Pipeline, error) {
	conv, err := cfg.GetConvention()
	if err != nil {
		return nil, err
	}
	if _, err := cfg.GetMethod(); err != nil {
		return nil, err
	}
	name := cfg.Solver.Method
	if name == "" {
		name = config.DefaultMethod
	}
	opts := cfg.GetSolverOptions()

	return func() *exchanger.Pipeline {
		m, _ := solver.New(name)
		return exchanger.New(conv, m, opts)
	}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	factory, err := pipelineFactory(cfg)
	if err != nil {
		return err
	}

	res, err := factory().Run(cfg.GetState())
	if err != nil {
		return err
	}

	if jsonOut && csvOut {
		return fmt.Errorf("choose one of --json or --csv")
	}
	if jsonOut {
		return export.FromResult(res).WriteJSON(os.Stdout)
	}
	if csvOut {
		return export.FromResult(res).WriteCSV(os.Stdout)
	}

	var sum *metrics.Summary
	if v, err := metrics.Summarize(res.State); err == nil {
		sum = &v
	}
	if plainOut {
		return printPlainSolve(res, sum)
	}
	fmt.Println(viz.Report(res, sum))
	return nil
}

// printPlainSolve writes the solve report without styling so the output
// pipes cleanly into column-oriented tools.
func printPlainSolve(res *exchanger.Result, sum *metrics.Summary) error {
	s := res.State

	fmt.Printf("solved %s convention in %v (%s, %d iterations, residual %.3e)\n",
		res.Convention, res.Duration, res.Method, res.Iterations, res.Residual)
	if res.Bracketed {
		fmt.Println("newton rejected, root bracketed by bisection")
	}
	fmt.Printf("\nhot   %.1f -> %.1f C\ncold  %.1f -> %.1f C\n\n", s.THotIn, s.THotOut, s.TColdIn, s.TColdOut)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tVALUE\tUNIT")
	fmt.Fprintf(w, "hot mass flow\t%.6f\tkg/s\n", s.MassFlowHot)
	fmt.Fprintf(w, "cold mass flow\t%.6f\tkg/s\n", s.MassFlowCold)
	fmt.Fprintf(w, "duty\t%.3f\tW\n", s.Duty)
	fmt.Fprintf(w, "C_hot\t%.4f\tW/K\n", s.CHot)
	fmt.Fprintf(w, "C_cold\t%.4f\tW/K\n", s.CCold)
	fmt.Fprintf(w, "C_min\t%.4f\tW/K\n", s.CMin)
	fmt.Fprintf(w, "C_max\t%.4f\tW/K\n", s.CMax)
	fmt.Fprintf(w, "capacity ratio\t%.6f\t\n", s.RatioMinMax)
	fmt.Fprintf(w, "q_max\t%.3f\tW\n", s.QMax)
	fmt.Fprintf(w, "q_actual\t%.3f\tW\n", s.QActual)
	fmt.Fprintf(w, "effectiveness\t%.6f\t\n", s.Effectiveness)
	fmt.Fprintf(w, "NTU\t%.6f\t\n", s.NTU)
	fmt.Fprintf(w, "UA\t%.4f\tW/K\n", s.UA)
	if err := w.Flush(); err != nil {
		return err
	}

	if sum != nil {
		fmt.Println("\nLMTD crosscheck:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "energy balance closure\t%.6f\t\n", sum.Closure)
		fmt.Fprintf(w, "LMTD\t%.4f\tK\n", sum.LMTD)
		fmt.Fprintf(w, "UA (counterflow LMTD)\t%.4f\tW/K\n", sum.UALMTD)
		fmt.Fprintf(w, "implied F factor\t%.6f\t\n", sum.FImplied)
		return w.Flush()
	}
	return nil
}

func runFin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f := cfg.GetFin()
	fl := cmd.Flags()
	if fl.Changed("htc") {
		f.HTC = finHTC
	}
	if fl.Changed("conductivity") {
		f.Conductivity = finK
	}
	if fl.Changed("width") {
		f.Width = finWidth
	}
	if fl.Changed("thickness") {
		f.Thickness = finThickness
	}
	if fl.Changed("length") {
		f.Length = finLength
	}

	eta, err := f.Efficiency()
	if err != nil {
		return err
	}
	q, err := f.HeatRate(finDT)
	if err != nil {
		return err
	}

	fmt.Printf("fin: h=%.1f W/m2K  k=%.1f W/mK  %.2f x %.2f x %.2f mm\n\n", f.HTC, f.Conductivity, f.Width, f.Thickness, f.Length)
	fmt.Printf("efficiency: %.4f\n", eta)
	fmt.Printf("heat rate at dT=%.1f K: %.4f W\n\n", finDT, q)

	profile, err := f.Profile(finSamples)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(profile,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("efficiency vs fin length 0..%.2f mm", f.Length)),
	)
	fmt.Println(graph)
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	parts := strings.Split(curveRatios, ",")
	ratios := make([]float64, 0, len(parts))
	for _, part := range parts {
		r, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("bad ratio %q: %w", part, err)
		}
		ratios = append(ratios, r)
	}

	cs, err := viz.Family(ratios, curveMaxNTU, curveSamples)
	if err != nil {
		return err
	}

	if svgPath != "" {
		canvas := viz.NewCanvas(chartWidth, chartHeight)
		cs.Draw(canvas)
		svg := export.CanvasToSVG(canvas, 4)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	fmt.Println(cs.Render(chartWidth, chartHeight))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	factory, err := pipelineFactory(cfg)
	if err != nil {
		return err
	}

	sw := analysis.Sweep{
		Param:   sweepParam,
		Min:     sweepMin,
		Max:     sweepMax,
		Steps:   sweepSteps,
		Workers: workers,
	}
	points, err := sw.Run(context.Background(), cfg.GetState(), factory)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tDUTY\tEFF\tNTU\tUA\t\n", strings.ToUpper(sweepParam))
	values := make([]float64, 0, len(points))
	effs := make([]float64, 0, len(points))
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%.4f\t-\t-\t-\t-\t%v\n", pt.Value, pt.Err)
			continue
		}
		fmt.Fprintf(w, "%.4f\t%.2f\t%.4f\t%.4f\t%.3f\t\n",
			pt.Value, pt.State.Duty, pt.State.Effectiveness, pt.State.NTU, pt.State.UA)
		values = append(values, pt.Value)
		effs = append(effs, pt.State.Effectiveness)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(values) >= 2 {
		chart, err := viz.SweepChart(sweepParam, values, effs, 60, 10)
		if err == nil {
			fmt.Println()
			fmt.Println(chart)
		}
	}

	if csvPath != "" {
		file, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.WriteSweepCSV(file, sweepParam, points); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvPath)
	}

	if svgPath != "" {
		if len(values) < 2 {
			return fmt.Errorf("svg output needs at least two solved points")
		}
		svg := export.CurveSVG(values, effs, 640, 360, "#5fafff")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	factory, err := pipelineFactory(cfg)
	if err != nil {
		return err
	}

	sens, err := analysis.Sensitivities(cfg.GetState(), nil, relStep, factory())
	if err != nil {
		return err
	}

	fmt.Printf("central differences, relative step %.1e\n\n", relStep)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tBASE\td(EFF)\td(NTU)\td(UA)\td(DUTY)\t")
	for _, sn := range sens {
		if sn.Err != nil {
			fmt.Fprintf(w, "%s\t%.4f\t-\t-\t-\t-\t%v\n", sn.Param, sn.Base, sn.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%.4f\t%+.5f\t%+.5f\t%+.5f\t%+.4f\t\n",
			sn.Param, sn.Base, sn.DEffectiveness, sn.DNTU, sn.DUA, sn.DDuty)
	}
	return w.Flush()
}

func runSeek(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	factory, err := pipelineFactory(cfg)
	if err != nil {
		return err
	}

	res, err := analysis.SeekEffectiveness(cfg.GetState(), seekParam, seekTarget, seekLo, seekHi, factory())
	if err != nil {
		return err
	}

	fmt.Printf("effectiveness %.4f at %s = %.6f (%d bisections, residual %.2e)\n\n",
		res.State.Effectiveness, res.Param, res.Value, res.Iterations, res.Residual)
	fmt.Printf("duty: %.2f W\nNTU:  %.4f\nUA:   %.3f W/K\n", res.State.Duty, res.State.NTU, res.State.UA)
	return nil
}

// runCompare solves the same operating point under both capacity ratio
// conventions and each requested solver method. The conventions agree
// when the cold flow is derived and diverge when it is measured.
func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := cfg.GetSolverOptions()
	state := cfg.GetState()

	names := args
	if len(names) == 0 {
		names = solver.List()
	}

	fmt.Printf("%-8s  %-10s  %-10s  %-10s  %-10s  %-6s  %-12s  %-10s\n",
		"conv", "method", "eff", "ntu", "ua", "iters", "residual", "time")
	fmt.Println(strings.Repeat("-", 88))

	for _, conv := range []thermo.Convention{thermo.ConvMinMax, thermo.ConvColdHot} {
		for _, name := range names {
			m, err := solver.New(name)
			if err != nil {
				fmt.Printf("%-8s  %-10s  error: %v\n", conv, name, err)
				continue
			}
			res, err := exchanger.New(conv, m, opts).Run(state)
			if err != nil {
				fmt.Printf("%-8s  %-10s  error: %v\n", conv, name, err)
				continue
			}
			fmt.Printf("%-8s  %-10s  %10.6f  %10.6f  %10.4f  %6d  %12.3e  %-10v\n",
				conv, name, res.State.Effectiveness, res.State.NTU, res.State.UA,
				res.Iterations, res.Residual, res.Duration)
		}
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	if len(names) == 0 {
		fmt.Println("no presets")
		return nil
	}
	for _, name := range names {
		p := config.GetPreset(name)
		conv := p.Convention
		if conv == "" {
			conv = "minmax"
		}
		fmt.Printf("  %-12s conv=%-8s flow=%.2f L/min  cold %.1f -> %.1f C", name, conv, p.Exchanger.FlowLPM, p.Exchanger.TColdIn, p.Exchanger.TColdOut)
		if p.Exchanger.ColdMassFlow > 0 {
			fmt.Printf("  cold flow %.4f kg/s", p.Exchanger.ColdMassFlow)
		}
		fmt.Println()
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	factory, err := pipelineFactory(cfg)
	if err != nil {
		return err
	}

	res, err := factory().Run(cfg.GetState())
	if err != nil {
		return err
	}
	data := export.FromResult(res)

	switch exportFormat {
	case "json":
		if outPath != "" {
			if err := data.SaveJSON(outPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		}
		return data.WriteJSON(os.Stdout)
	case "csv":
		if outPath != "" {
			if err := data.SaveCSV(outPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		}
		return data.WriteCSV(os.Stdout)
	default:
		return fmt.Errorf("unknown format: %s (json or csv)", exportFormat)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	conv, err := cfg.GetConvention()
	if err != nil {
		return err
	}
	if _, err := cfg.GetMethod(); err != nil {
		return err
	}
	name := cfg.Solver.Method
	if name == "" {
		name = config.DefaultMethod
	}

	if themeName != "" {
		known := false
		for _, n := range viz.ThemeNames() {
			if n == themeName {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown theme %q (themes: %s)", themeName, strings.Join(viz.ThemeNames(), ", "))
		}
		viz.SetTheme(themeName)
	}

	m := tui.NewModel(cfg.GetState(), conv, name, cfg.GetSolverOptions())

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
