package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/config"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/export"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/metrics"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/optim"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/report"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/storage"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	dt         float64
	maxTicks   int
	numRuns    int

	sweepTarget string
	sweepStat   string
	sweepFrom   int
	sweepTo     int
	sweepStep   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "umarace",
		Short: "multi-competitor race simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".umarace", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a race and save the results",
		RunE:  runRace,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses config)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "tick length in seconds (0 uses config)")
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 100000, "abort ceiling in ticks")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a race in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses config)")
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "tick length in seconds (0 uses config)")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "run the same race across many seeds",
		RunE:  runTrials,
	}
	trialsCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	trialsCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	trialsCmd.Flags().Int64Var(&seed, "seed", 0, "first seed (0 uses config)")
	trialsCmd.Flags().Float64Var(&dt, "dt", 0, "tick length in seconds (0 uses config)")
	trialsCmd.Flags().IntVar(&numRuns, "runs", 100, "number of races")
	trialsCmd.Flags().IntVar(&maxTicks, "max-ticks", 100000, "abort ceiling in ticks")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved races",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved race",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	eventsCmd := &cobra.Command{
		Use:   "events [run_id]",
		Short: "show the event log of a saved race",
		Args:  cobra.ExactArgs(1),
		RunE:  showEvents,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export race metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id] [output.svg]",
		Short: "render a saved race as an svg chart",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one competitor's stat and measure win rate",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "first seed (0 uses config)")
	sweepCmd.Flags().Float64Var(&dt, "dt", 0, "tick length in seconds (0 uses config)")
	sweepCmd.Flags().IntVar(&numRuns, "runs", 50, "races per sweep point")
	sweepCmd.Flags().IntVar(&maxTicks, "max-ticks", 100000, "abort ceiling in ticks")
	sweepCmd.Flags().StringVar(&sweepTarget, "competitor", "", "competitor name")
	sweepCmd.Flags().StringVar(&sweepStat, "stat", "speed", "stat to sweep (speed, stamina, power, guts, wit)")
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 300, "first stat value")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 900, "last stat value")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 100, "stat step")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, trialsCmd, listCmd, plotCmd, eventsCmd, exportCmd, svgCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSetup resolves preset, config file, and flag overrides into a
// ready-to-run race. Flags win over the file, the file over the preset.
func loadSetup(cmd *cobra.Command) (*config.Config, race.RaceConfig, []race.Profile, race.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, race.RaceConfig{}, nil, race.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, race.RaceConfig{}, nil, race.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dt") && dt > 0 {
		cfg.Dt = dt
	}

	raceCfg, profiles, warnings := cfg.RaceSetup()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return cfg, raceCfg, profiles, cfg.Params(), nil
}

func runRace(cmd *cobra.Command, args []string) error {
	cfg, raceCfg, profiles, params, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng, err := race.New(raceCfg, profiles, params, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	rec := storage.NewRecorder(profiles)
	eng.AddObserver(rec)

	trackers := []race.Metric{
		metrics.NewLeadMargin(),
		metrics.NewPackSpread(),
		metrics.NewAvgFinishTime(),
		metrics.NewIncidentCount(),
		metrics.NewOvertakeCount(),
	}

	start := time.Now()
	for !eng.Done() {
		tr := eng.Step(cfg.Dt)
		for _, m := range trackers {
			m.Observe(tr)
		}
		if maxTicks > 0 && eng.Tick() >= maxTicks && !eng.Done() {
			eng.Halt("did not complete")
		}
	}
	elapsed := time.Since(start)

	result := eng.Results()
	runID, err := st.Save(raceCfg, profiles, cfg.Seed, cfg.Dt, rec, result)
	if err != nil {
		return err
	}

	for _, line := range report.Generate(raceCfg, result) {
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println("metrics:")
	for _, m := range trackers {
		fmt.Printf("  %s: %.3f\n", m.Name(), m.Value())
	}
	fmt.Printf("\nsimulated in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, raceCfg, profiles, params, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(raceCfg, profiles, params, cfg.Seed, cfg.Dt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, raceCfg, profiles, params, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	ens := race.NewEnsemble(raceCfg, profiles, params, numRuns, cfg.Seed)
	ens.MaxTicks = maxTicks

	fmt.Printf("running %d races...\n", numRuns)
	start := time.Now()
	results, err := ens.Run(context.Background(), cfg.Dt)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n\n", elapsed)
	for _, line := range report.Summary(results) {
		fmt.Println(line)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no races found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tRACE\tDIST\tFIELD\tWINNER\tRESULT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%.0fm\t%d\t%s\t%d fin / %d dnf\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.RaceType,
			run.Surface,
			run.Distance,
			len(run.Competitors),
			run.Winner,
			run.Finishers,
			run.DNFs,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, times, rows, err := st.LoadTicks(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("race: %s %s %.0fm, %d ticks over %.1fs\n\n",
		meta.RaceType, meta.Surface, meta.Distance, meta.Ticks, times[len(times)-1])

	for col, name := range header {
		if !strings.HasSuffix(name, "_distance") {
			continue
		}
		data := make([]float64, len(rows))
		for i := range rows {
			data[i] = rows[i][col]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(strings.TrimSuffix(name, "_distance")+" distance (m)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func showEvents(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	events, err := st.LoadEvents(runID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTICK\tCOMPETITOR\tKIND\tDETAIL")
	for _, ev := range events {
		fmt.Fprintf(w, "%.1fs\t%d\t%s\t%s\t%s\n", ev.Time, ev.Tick, ev.Competitor, ev.Kind, ev.Detail)
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID, outPath := args[0], args[1]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, times, rows, err := st.LoadTicks(runID)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return fmt.Errorf("not enough data to render")
	}

	var traces []export.Trace
	for col, name := range header {
		if !strings.HasSuffix(name, "_distance") {
			continue
		}
		values := make([]float64, len(rows))
		for i := range rows {
			values[i] = rows[i][col]
		}
		traces = append(traces, export.Trace{Name: strings.TrimSuffix(name, "_distance"), Values: values})
	}

	svg := export.TracesToSVG(times, traces, meta.Distance, 800, 400)
	if svg == "" {
		return fmt.Errorf("nothing to render")
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, raceCfg, profiles, params, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	target := 0
	if sweepTarget != "" {
		target = -1
		for i, p := range profiles {
			if p.Name == sweepTarget {
				target = i
				break
			}
		}
		if target < 0 {
			return fmt.Errorf("unknown competitor: %s", sweepTarget)
		}
	}

	if sweepStep <= 0 || sweepTo < sweepFrom {
		return fmt.Errorf("invalid sweep range %d..%d step %d", sweepFrom, sweepTo, sweepStep)
	}
	var values []int
	for v := sweepFrom; v <= sweepTo; v += sweepStep {
		values = append(values, v)
	}

	sweep := optim.NewStatSweep(raceCfg, profiles, params, numRuns, cfg.Seed)
	sweep.MaxTicks = maxTicks

	fmt.Printf("sweeping %s of %s over %d values, %d races each...\n",
		sweepStat, profiles[target].Name, len(values), numRuns)

	points, err := sweep.Run(context.Background(), target, sweepStat, values, cfg.Dt)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tWINS\tDNFS\tWIN RATE\n", strings.ToUpper(sweepStat))
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%d/%d\t%d\t%.1f%%\n", p.Value, p.Wins, p.Runs, p.DNFs, p.WinRate()*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := optim.Best(points); ok {
		fmt.Printf("\nbest: %s %d (%.1f%% win rate)\n", sweepStat, best.Value, best.WinRate()*100)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta)
}
