package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/browser"
	"github.com/san-kum/arcview/internal/config"
	"github.com/san-kum/arcview/internal/console"
	"github.com/san-kum/arcview/internal/export"
	"github.com/san-kum/arcview/internal/gui"
	"github.com/san-kum/arcview/internal/logging"
	"github.com/san-kum/arcview/internal/storage"
	"github.com/san-kum/arcview/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	preset     string
	verbose    bool
	debug      bool
	outDir     string

	logger = zap.NewNop()
	con    = console.New(os.Stdin, os.Stdout)
)

// main registers the commands and runs the console browser when no subcommand is given.
// It exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "arcview",
		Short:         "ARC task dataset browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runBrowse,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "dataset layout preset")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print every record while loading")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "browse both datasets in the terminal",
		RunE:  runTUI,
	}

	showCmd := &cobra.Command{
		Use:   "show [training|evaluation] [index]",
		Short: "display one task",
		Args:  cobra.ExactArgs(2),
		RunE:  runShow,
	}

	exportCmd := &cobra.Command{
		Use:   "export [training|evaluation] [index]",
		Short: "write the figures of one task as svg",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "summarize both datasets",
		RunE:  runStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list dataset layout presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %s  %s\n", name, p.Training, p.Evaluation)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "arcview.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, showCmd, exportCmd, statsCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		reportFatal(err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func reportFatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var le *arc.LoadError
	if errors.As(err, &le) {
		if le.Severity == arc.Fatal {
			fmt.Fprintln(os.Stderr, "Please check the configured dataset path to see if it is valid.")
		}
		fmt.Fprintln(os.Stderr, "Program will terminate as a result since it will not run otherwise. Please fix this issue.")
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDatasets reads both directories up front, evaluation first.
func loadDatasets(cfg *config.Config) (training, evaluation arc.Dataset, err error) {
	opts := []storage.Option{storage.WithPrompter(con), storage.WithLogger(logger)}
	if cfg.Debug {
		opts = append(opts, storage.WithDebug(os.Stdout))
	}

	evaluation, err = storage.New(cfg.Datasets.Evaluation, cfg.Extension, opts...).Load("evaluation")
	if err != nil {
		return arc.Dataset{}, arc.Dataset{}, fmt.Errorf("read evaluation dataset: %w", err)
	}
	training, err = storage.New(cfg.Datasets.Training, cfg.Extension, opts...).Load("training")
	if err != nil {
		return arc.Dataset{}, arc.Dataset{}, fmt.Errorf("read training dataset: %w", err)
	}
	logger.Info("datasets loaded",
		zap.Int("training", training.Len()),
		zap.Int("evaluation", evaluation.Len()))
	return training, evaluation, nil
}

func newShower(cfg *config.Config) browser.Shower {
	if cfg.Display.Mode == config.ModeSVG {
		return &export.DirShower{
			Dir:       cfg.Display.OutDir,
			PanelSize: cfg.Display.PanelSize,
			Prompt:    con,
			Logger:    logger,
		}
	}
	return gui.NewWindow(cfg.Display.PanelSize, cfg.Display.FPS)
}

func newBrowser(cfg *config.Config, training, evaluation arc.Dataset, shower browser.Shower) *browser.Browser {
	return browser.New(training, evaluation, con, shower, browser.Options{
		Out:      os.Stdout,
		Text:     viz.TextOptions{Color: cfg.Console.Color},
		Markdown: cfg.Console.Markdown,
		Logger:   logger,
	})
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("\nARC-AGI database visualization.")
	training, evaluation, err := loadDatasets(cfg)
	if err != nil {
		return err
	}

	if err := newBrowser(cfg, training, evaluation, newShower(cfg)).Run(); err != nil {
		return err
	}
	fmt.Println("Thank you for using the ARC-AGI viewer.")
	fmt.Println()
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	training, evaluation, err := loadDatasets(cfg)
	if err != nil {
		return err
	}
	return viz.RunInteractive(training, evaluation)
}

// pickRecord resolves the dataset name and index arguments of show and export.
func pickRecord(cfg *config.Config, args []string) (arc.Dataset, int, error) {
	training, evaluation, err := loadDatasets(cfg)
	if err != nil {
		return arc.Dataset{}, 0, err
	}

	var ds arc.Dataset
	switch args[0] {
	case "training", "t":
		ds = training
	case "evaluation", "e":
		ds = evaluation
	default:
		return arc.Dataset{}, 0, fmt.Errorf("unknown dataset: %s (want training or evaluation)", args[0])
	}

	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return arc.Dataset{}, 0, fmt.Errorf("invalid index %q: %w", args[1], err)
	}
	if idx < 0 || idx >= ds.Len() {
		return arc.Dataset{}, 0, fmt.Errorf("index %d out of range (0-%d)", idx, ds.Len()-1)
	}
	return ds, idx, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, idx, err := pickRecord(cfg, args)
	if err != nil {
		return err
	}
	b := newBrowser(cfg, arc.Dataset{}, arc.Dataset{}, newShower(cfg))
	return b.Display(ds.At(idx), idx)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, idx, err := pickRecord(cfg, args)
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = cfg.Display.OutDir
	}
	shower := &export.DirShower{Dir: dir, PanelSize: cfg.Display.PanelSize, Logger: logger}
	b := newBrowser(cfg, arc.Dataset{}, arc.Dataset{}, shower)
	if err := b.Display(ds.At(idx), idx); err != nil {
		return err
	}
	fmt.Printf("wrote %d figures to %s\n", shower.Written(), dir)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	training, evaluation, err := loadDatasets(cfg)
	if err != nil {
		return err
	}

	for _, ds := range []arc.Dataset{training, evaluation} {
		s := arc.Summarize(ds)
		fmt.Printf("%s (%s)\n", ds.Name, ds.Dir)
		fmt.Printf("  tasks:       %d\n", s.Tasks)
		fmt.Printf("  train pairs: %d\n", s.TrainPairs)
		fmt.Printf("  test pairs:  %d\n", s.TestPairs)
		fmt.Printf("  malformed:   %d\n", s.Malformed)
		fmt.Printf("  largest:     %dx%d\n\n", s.MaxRows, s.MaxCols)

		if len(s.TestCells) < 2 {
			continue
		}
		graph := asciigraph.Plot(s.TestCells,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("first test input cells per task (%s)", ds.Name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}
