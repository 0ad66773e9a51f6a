package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/slidetime/internal/clock"
	"github.com/san-kum/slidetime/internal/config"
	"github.com/san-kum/slidetime/internal/driver"
	"github.com/san-kum/slidetime/internal/face"
	"github.com/san-kum/slidetime/internal/record"
	"github.com/san-kum/slidetime/internal/steps"
	"github.com/san-kum/slidetime/internal/tui"
	"github.com/san-kum/slidetime/internal/words"
)

// maxSettleFrames bounds a single minute's animation in previews.
const maxSettleFrames = 10000

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	fps        int
	timezone   string
	stepsDB    string
	noSteps    bool
	debug      bool
	// simulate
	from     string
	minutes  int
	ansi     bool
	saveRun  bool
	playback int
	// steps
	historyDays int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slidetime",
		Short: "sliding word clock for the terminal",
		RunE:  runFace,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".slidetime", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "layout preset (rect, round)")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "animation frame rate")
	rootCmd.Flags().StringVar(&timezone, "tz", "", "IANA timezone (default local)")
	rootCmd.PersistentFlags().StringVar(&stepsDB, "steps-db", "", "step count database (default <data>/steps.db)")
	rootCmd.Flags().BoolVar(&noSteps, "no-steps", false, "hide the step count")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log to slidetime.log")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "play the face against a simulated clock",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVar(&from, "from", "09:05", "start time (HH:MM)")
	simulateCmd.Flags().IntVar(&minutes, "minutes", 2, "minutes to simulate after the start")
	simulateCmd.Flags().BoolVar(&ansi, "ansi", true, "redraw in place instead of appending frames")
	simulateCmd.Flags().IntVar(&playback, "fps", config.DefaultFPS, "playback frame rate (0 = as fast as possible)")
	simulateCmd.Flags().BoolVar(&saveRun, "record", false, "save the run under the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot row positions of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list layout presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range face.ThemeNames() {
				fmt.Printf("  %s\n", t)
			}
		},
	}

	wordsCmd := &cobra.Command{
		Use:   "words [HH:MM]",
		Short: "print the rows for a time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printWords,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	}

	stepsCmd := &cobra.Command{
		Use:   "steps",
		Short: "manage the step count",
	}
	stepsAddCmd := &cobra.Command{
		Use:   "add [count]",
		Short: "record steps taken now",
		Args:  cobra.ExactArgs(1),
		RunE:  addSteps,
	}
	stepsTodayCmd := &cobra.Command{
		Use:   "today",
		Short: "print today's step count",
		RunE:  todaySteps,
	}
	stepsHistoryCmd := &cobra.Command{
		Use:   "history",
		Short: "chart daily step counts",
		RunE:  stepsHistory,
	}
	stepsHistoryCmd.Flags().IntVar(&historyDays, "days", 14, "number of days")
	stepsCmd.AddCommand(stepsAddCmd, stepsTodayCmd, stepsHistoryCmd)

	rootCmd.AddCommand(simulateCmd, listCmd, plotCmd, exportCmd, presetsCmd, themesCmd, wordsCmd, initCmd, stepsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file, preset and flags, in that order of
// increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", err, preset, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("fps") && cmd.Name() != "simulate" {
		cfg.FPS = fps
	}
	if flags.Changed("tz") {
		cfg.Timezone = timezone
	}
	if flags.Changed("steps-db") {
		cfg.StepsDB = stepsDB
	}
	if cfg.StepsDB == "" {
		cfg.StepsDB = filepath.Join(dataDir, "steps.db")
	}
	if flags.Changed("no-steps") {
		cfg.ShowSteps = !noSteps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runFace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if debug {
		f, err := tea.LogToFile("slidetime.log", "slidetime")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var src steps.Source
	if cfg.ShowSteps {
		st, err := steps.Open(cfg.StepsDB)
		if err != nil {
			log.Printf("steps disabled: %v", err)
		} else {
			defer st.Close()
			src = st
		}
	}

	m := face.New(cfg, clock.Real{Location: loc}, src, log.Default())
	return face.Run(m)
}

func parseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	hour, minute, err := parseClock(from)
	if err != nil {
		return err
	}
	if minutes < 0 {
		return fmt.Errorf("minutes must not be negative, got %d", minutes)
	}

	today := time.Now()
	start := time.Date(today.Year(), today.Month(), today.Day(), hour, minute, 0, 0, time.Local)
	clk := clock.NewManual(start)

	labels, rows := face.Rows(cfg)
	var lines [driver.NumRows]int
	delays := make([]int, 0, driver.NumRows)
	for i, rc := range cfg.Rows {
		lines[i] = rc.Y
		delays = append(delays, rc.Delay)
	}

	renderer := tui.NewLiveRenderer(os.Stdout, labels, lines, playback, ansi)
	rec := &record.Recorder{}
	d := driver.New(clk, rows, driver.WithObserver(renderer), driver.WithObserver(rec))

	renderer.Start()
	defer renderer.Stop()

	for i := 0; i <= minutes; i++ {
		if i > 0 {
			clk.Advance(time.Minute)
			d.Restart()
		}
		d.Settle(maxSettleFrames)
	}

	if !saveRun {
		return nil
	}

	st := record.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(record.RunMetadata{
		Start:   start,
		Minutes: minutes,
		Layout:  cfg.Layout,
		Width:   cfg.Width,
		Delays:  delays,
	}, rec.Frames)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(rec.Frames))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := record.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECORDED\tSTART\tMINUTES\tLAYOUT\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start.Format("15:04"),
			run.Minutes,
			run.Layout,
			run.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := record.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(frames))

	captions := [driver.NumRows]string{"hour row position", "tens row position", "ones row position"}
	for i := 0; i < driver.NumRows; i++ {
		graph := asciigraph.Plot(record.Positions(frames, i),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(captions[i]),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := record.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func printWords(cmd *cobra.Command, args []string) error {
	now := time.Now()
	hour, minute := now.Hour(), now.Minute()
	if len(args) == 1 {
		var err error
		if hour, minute, err = parseClock(args[0]); err != nil {
			return err
		}
	}
	tens, ones := words.MinuteWords(minute)
	fmt.Println(words.HourWord(hour))
	fmt.Println(tens)
	fmt.Println(ones)
	return nil
}

// openSteps opens the same database the face reads.
func openSteps(cmd *cobra.Command) (*steps.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return steps.Open(cfg.StepsDB)
}

func addSteps(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid step count %q", args[0])
	}
	st, err := openSteps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	now := time.Now()
	if err := st.Add(ctx, now, n); err != nil {
		return err
	}
	total, err := st.StepsToday(ctx, now)
	if err != nil {
		return err
	}
	fmt.Println(words.StepsLine(total, words.LayoutRect))
	return nil
}

func todaySteps(cmd *cobra.Command, args []string) error {
	st, err := openSteps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	total, err := st.StepsToday(context.Background(), time.Now())
	if err != nil {
		return err
	}
	fmt.Println(words.StepsLine(total, words.LayoutRect))
	return nil
}

func stepsHistory(cmd *cobra.Command, args []string) error {
	st, err := openSteps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	days, err := st.History(context.Background(), time.Now(), historyDays)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		fmt.Println("no history")
		return nil
	}

	data := make([]float64, len(days))
	for i, d := range days {
		data[i] = float64(d.Steps)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("steps %s .. %s", days[0].Date, days[len(days)-1].Date)),
	)
	fmt.Println(graph)
	return nil
}
