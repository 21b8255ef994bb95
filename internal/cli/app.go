// Package cli builds the cobra command tree shared by the hanoi binary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"hanoi-search/internal/config"
	"hanoi-search/internal/console"
	"hanoi-search/internal/hanoi"
	"hanoi-search/internal/logging"
)

const defaultConfigFile = "hanoi.yaml"

// App carries the state resolved before any subcommand runs.
type App struct {
	configPath  string
	showMetrics bool

	disks         int
	strategy      string
	depthLimit    int
	maxExpansions int
	logLevel      string
	logJSON       bool
	logDir        string

	cfg      config.Config
	logger   *logging.Logger
	registry *prometheus.Registry
	metrics  *hanoi.Metrics
}

func NewApp() *App { return &App{} }

// Config is valid once the root command's pre-run hook has executed.
func (a *App) Config() config.Config { return a.cfg }

// Logger is valid once the root command's pre-run hook has executed.
func (a *App) Logger() *logging.Logger { return a.logger }

// Solver builds a solver from the resolved configuration. A zero depth limit
// is resolved per search from the root's disk count.
func (a *App) Solver() *hanoi.Solver {
	return hanoi.NewSolver(
		hanoi.WithDepthLimit(a.cfg.DepthLimit),
		hanoi.WithMaxExpansions(a.cfg.MaxExpansions),
		hanoi.WithLogger(a.logger.Slog()),
		hanoi.WithMetrics(a.metrics),
	)
}

// RootCommand returns the hanoi command. Without a subcommand it runs the
// interactive menu.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hanoi",
		Short: "Solve the Tower of Hanoi with breadth-first or A* search",
		Long: `hanoi explores the Tower of Hanoi state space from n disks on the first peg
to n disks on the third peg, using either a FIFO breadth-first search with a
depth limit or an A* search ordered by g + (disks on the goal peg).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: a.RunE(func(cmd *cobra.Command, args []string) error {
			session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
				a.cfg.Disks, a.Solver(), a.logger.Slog())
			return session.Run()
		}),
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	flags.IntVarP(&a.disks, "disks", "n", 0,
		fmt.Sprintf("Number of disks (1-%d); search memory grows as 3^n", hanoi.MaxDisks))
	flags.IntVar(&a.depthLimit, "depth-limit", 0, "Breadth-first depth limit (0 = 2^n - 1)")
	flags.IntVar(&a.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 = unbounded)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.logJSON, "log-json", false, "Log as JSON")
	flags.StringVar(&a.logDir, "log-dir", "", "Also write JSON logs to this directory")
	flags.BoolVar(&a.showMetrics, "metrics", false, "Print search counters after the run")

	root.AddCommand(a.solveCommand(), a.configCommand())
	return root
}

func (a *App) solveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve without the menu and print the path",
		Args:  cobra.NoArgs,
		RunE: a.RunE(func(cmd *cobra.Command, args []string) error {
			strategy, err := hanoi.ParseStrategy(a.cfg.Strategy)
			if err != nil {
				return err
			}
			start, err := hanoi.Initial(a.cfg.Disks)
			if err != nil {
				return err
			}
			r := console.NewRenderer(cmd.OutOrStdout())
			r.Line("The minimum number of steps to solve this puzzle with %d disks is: %d",
				a.cfg.Disks, hanoi.MinMoves(a.cfg.Disks))
			_, err = console.Solve(r, a.Solver(), strategy, start, a.logger.Slog())
			return err
		}),
	}
	cmd.Flags().StringVarP(&a.strategy, "strategy", "s", "", "bfs or astar")
	return cmd
}

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.RunE(func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, a.cfg); err != nil {
				return err
			}
			abs, _ := filepath.Abs(path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", abs)
			return nil
		}),
	})
	return cmd
}

// setup loads the config file, applies explicitly set flags over it and
// builds the logger and metrics.
func (a *App) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("disks") {
		cfg.Disks = a.disks
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.strategy
	}
	if flags.Changed("depth-limit") {
		cfg.DepthLimit = a.depthLimit
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = a.maxExpansions
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("log-dir") {
		cfg.Log.Dir = a.logDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg, err := cfg.LoggingConfig()
	if err != nil {
		return err
	}
	logCfg.Output = cmd.ErrOrStderr()

	a.cfg = cfg
	a.logger = logging.New(logCfg)
	a.registry = prometheus.NewRegistry()
	a.metrics = hanoi.NewMetrics(a.registry)

	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"disks", cfg.Disks,
		"strategy", cfg.Strategy,
		"depth_limit", cfg.EffectiveDepthLimit(),
	)
	return nil
}

// RunE wraps a command body so the metrics summary and logger teardown run
// whether or not the body fails. cobra skips post-run hooks after an error.
func (a *App) RunE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if tErr := a.teardown(cmd); tErr != nil {
			return errors.Join(err, tErr)
		}
		return err
	}
}

func (a *App) teardown(cmd *cobra.Command) error {
	if a.logger == nil {
		return nil
	}
	var errs []error
	if a.showMetrics && a.registry != nil {
		if err := writeMetrics(cmd.OutOrStdout(), a.registry); err != nil {
			a.logger.Warn("metrics summary failed", "error", err)
			errs = append(errs, err)
		}
	}
	errs = append(errs, a.logger.Close())
	return errors.Join(errs...)
}

// writeMetrics prints every non-zero sample as name{labels} value.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), value))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
