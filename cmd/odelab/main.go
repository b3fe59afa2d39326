package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/lab"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/store"
	"github.com/san-kum/odelab/internal/sweep"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir     string
	stepperName string
	tau         float64
	steps       int
	initFlag    string
	paramFlags  []string
	configFile  string
	preset      string
	// phase plot axes
	xAxis int
	yAxis int
	// sweep
	sweepParam  string
	sweepValues string
	// converge
	coarseSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "integrate a problem and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runProblem,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run per state variable",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [stepper...]",
		Short: "compare steppers on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSteppers,
	}
	compareCmd.Flags().Float64Var(&tau, "tau", 10.0, "total duration")
	compareCmd.Flags().IntVar(&steps, "steps", 1001, "number of samples")
	compareCmd.Flags().StringVar(&initFlag, "init", "", "initial state, comma separated")

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "measure observed convergence orders on dy/dt = y",
		RunE:  convergeOrders,
	}
	convergeCmd.Flags().Float64Var(&tau, "tau", 1.0, "total duration")
	convergeCmd.Flags().IntVar(&coarseSteps, "coarse", 10, "coarse sample count")

	sweepCmd := &cobra.Command{
		Use:   "sweep [problem]",
		Short: "integrate one problem across a parameter range in parallel",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&tau, "tau", 10.0, "total duration")
	sweepCmd.Flags().IntVar(&steps, "steps", 10001, "number of samples")
	sweepCmd.Flags().StringVar(&initFlag, "init", "", "initial state, comma separated")
	sweepCmd.Flags().StringVar(&stepperName, "stepper", "rk4", "stepper")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "rho", "parameter to sweep")
	sweepCmd.Flags().StringVar(&sweepValues, "values", "13,14,15,28", "parameter values, comma separated")

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "integrate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCSVCmd, exportJSONCmd,
		compareCmd, convergeCmd, sweepCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&stepperName, "stepper", "rk4", "stepper (euler, rk2, rk4, rk45)")
	cmd.Flags().Float64Var(&tau, "tau", 10.0, "total duration")
	cmd.Flags().IntVar(&steps, "steps", 1001, "number of samples")
	cmd.Flags().StringVar(&initFlag, "init", "", "initial state, comma separated")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "problem parameter as name=value")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildSpec merges preset, config file and flags into a run spec.
// Explicit flags beat the config file, which beats the preset.
func buildSpec(cmd *cobra.Command, problem string) (lab.Spec, error) {
	spec := lab.Spec{
		Problem: problem,
		Stepper: stepperName,
		Tau:     tau,
		Steps:   steps,
	}

	apply := func(cfg *config.Config) {
		if !cmd.Flags().Changed("stepper") && cfg.Stepper != "" {
			spec.Stepper = cfg.Stepper
		}
		if !cmd.Flags().Changed("tau") && cfg.Tau > 0 {
			spec.Tau = cfg.Tau
		}
		if !cmd.Flags().Changed("steps") && cfg.Steps > 0 {
			spec.Steps = cfg.Steps
		}
		if !cmd.Flags().Changed("init") && len(cfg.Init) > 0 {
			spec.Init = ode.State(cfg.Init).Clone()
		}
		if len(cfg.Params) > 0 {
			if spec.Params == nil {
				spec.Params = make(map[string]float64)
			}
			for k, v := range cfg.Params {
				spec.Params[k] = v
			}
		}
	}

	if preset != "" {
		cfg := config.GetPreset(problem, preset)
		if cfg == nil {
			return spec, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		apply(cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return spec, fmt.Errorf("failed to load config: %w", err)
		}
		apply(cfg)
	}

	if cmd.Flags().Changed("init") {
		init, err := parseFloats(initFlag)
		if err != nil {
			return spec, fmt.Errorf("bad --init: %w", err)
		}
		spec.Init = init
	}

	// flags always win for params
	for _, p := range paramFlags {
		name, value, err := parseParam(p)
		if err != nil {
			return spec, err
		}
		if spec.Params == nil {
			spec.Params = make(map[string]float64)
		}
		spec.Params[name] = value
	}

	return spec, nil
}

func parseFloats(s string) (ode.State, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make(ode.State, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseParam(s string) (string, float64, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("bad --param %q, want name=value", s)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad --param %q: %w", s, err)
	}
	return name, value, nil
}

func runProblem(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec(cmd, args[0])
	if err != nil {
		return err
	}

	exp, err := lab.New(lab.NewRegistry(), spec)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("integrating %s with %s...\n", spec.Problem, spec.Stepper)
	start := time.Now()

	traj, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(spec.Problem, spec.Stepper, exp.Config(), traj)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d (h=%.6f)\n", traj.Len(), exp.Config().StepSize())
	fmt.Printf("final state: %v\n", traj.Last())

	if drift := analysis.EnergyDrift(exp.System(), traj); drift > 0 {
		fmt.Printf("energy drift: %.3e\n", drift)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tTAU\tH\tSTEPPER")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Tau,
			run.Dt,
			run.Stepper,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s\n", meta.Problem)
	fmt.Printf("samples: %d\n\n", traj.Len())

	numVars := len(traj.States[0])
	if numVars > 6 {
		numVars = 6
	}

	for idx := 0; idx < numVars; idx++ {
		graph := asciigraph.Plot(traj.Component(idx),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("x%d vs time", idx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}
	if len(traj.States[0]) <= xAxis || len(traj.States[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s (%s)\n", meta.ID, meta.Problem)
	fmt.Printf("x-axis: x%d, y-axis: x%d\n\n", xAxis, yAxis)

	xData := traj.Component(xAxis)
	yData := traj.Component(yAxis)

	xMin, xMax := bounds(xData)
	yMin, yMax := bounds(yData)
	xRange, yRange := xMax-xMin, yMax-yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	const width, height = 70, 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			switch {
			case i < len(xData)/3:
				canvas[py][px] = '.'
			case i < 2*len(xData)/3:
				canvas[py][px] = 'o'
			default:
				canvas[py][px] = '*'
			}
		}
	}

	fmt.Printf("%8.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for _, row := range canvas {
		fmt.Printf("         │%s│\n", string(row))
	}
	fmt.Printf("%8.2f └%s┘\n", yMin, strings.Repeat("─", width))
	fmt.Printf("        %.2f%s%.2f\n", xMin, strings.Repeat(" ", width-12), xMax)
	fmt.Println("\nlegend: . = early, o = middle, * = late")

	return nil
}

func bounds(data []float64) (float64, float64) {
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range traj.States[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range traj.States {
		row := []string{strconv.FormatFloat(traj.Times[i], 'g', -1, 64)}
		for _, val := range traj.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	return store.ExportJSON(os.Stdout, meta, traj)
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	problem := args[0]
	names := args[1:]

	registry := lab.NewRegistry()

	var init ode.State
	if initFlag != "" {
		var err error
		init, err = parseFloats(initFlag)
		if err != nil {
			return fmt.Errorf("bad --init: %w", err)
		}
	}

	fmt.Printf("comparing steppers on %s (tau=%.1f, steps=%d)\n\n", problem, tau, steps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tFINAL_X0\tENERGY_DRIFT\tTIME_MS")

	for _, name := range names {
		exp, err := lab.New(registry, lab.Spec{
			Problem: problem,
			Stepper: name,
			Tau:     tau,
			Steps:   steps,
			Init:    init,
		})
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		start := time.Now()
		traj, err := exp.Run(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%.6f\t%.2e\t%.2f\n",
			name,
			traj.Last()[0],
			analysis.EnergyDrift(exp.System(), traj),
			float64(elapsed.Microseconds())/1000,
		)
	}

	return w.Flush()
}

func convergeOrders(cmd *cobra.Command, args []string) error {
	registry := lab.NewRegistry()

	sys, err := registry.GetProblem("exponential")
	if err != nil {
		return err
	}

	exact := func(t float64) ode.State {
		return ode.State{math.Exp(t)}
	}

	fmt.Printf("convergence on dy/dt = y over [0, %.1f], coarse steps %d\n\n", tau, coarseSteps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tOBSERVED_ORDER")

	for _, name := range []string{"euler", "rk2", "rk4"} {
		stepper, err := registry.GetStepper(name)
		if err != nil {
			return err
		}

		order, err := analysis.ConvergenceOrder(context.Background(), sys, stepper,
			ode.State{1}, exact, tau, coarseSteps)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%.2f\n", name, order)
	}

	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	problem := args[0]
	registry := lab.NewRegistry()

	newSys, err := registry.NewProblemFunc(problem)
	if err != nil {
		return err
	}
	newStepper, err := registry.NewStepperFunc(stepperName)
	if err != nil {
		return err
	}

	values, err := parseFloats(sweepValues)
	if err != nil {
		return fmt.Errorf("bad --values: %w", err)
	}

	var init ode.State
	if initFlag != "" {
		init, err = parseFloats(initFlag)
		if err != nil {
			return fmt.Errorf("bad --init: %w", err)
		}
	} else {
		if seeded, ok := newSys().(lab.Seeded); ok {
			init = seeded.DefaultState()
		} else {
			return fmt.Errorf("problem %s needs --init", problem)
		}
	}

	cfg := ode.Config{Tau: tau, Steps: steps}
	s := &sweep.Sweep{
		NewSystem:  newSys,
		NewStepper: newStepper,
		Param:      sweepParam,
		Values:     []float64(values),
	}

	fmt.Printf("sweeping %s.%s over %v (%d parallel runs)\n\n", problem, sweepParam, values, len(values))
	start := time.Now()

	results, err := s.Run(context.Background(), init, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tFINAL_STATE\tSEPARATION")

	for _, res := range results {
		sys := newSys()
		if tunable, ok := sys.(ode.Configurable); ok && sweepParam != "" {
			if err := tunable.SetParam(sweepParam, res.Value); err != nil {
				return err
			}
		}

		sep, err := analysis.Separation(context.Background(), sys, newStepper(), init, 1e-8, cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%.3f\t%v\t%+.4f\n", res.Value, res.Traj.Last(), sep)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec(cmd, args[0])
	if err != nil {
		return err
	}

	exp, err := lab.New(lab.NewRegistry(), spec)
	if err != nil {
		return err
	}

	m := viz.NewModel(exp.System(), exp.Stepper(), exp.Initial(), exp.Config().StepSize(), spec.Problem)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
