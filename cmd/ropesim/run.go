package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"ropesim/internal/config"
	"ropesim/internal/geom"
	"ropesim/internal/input"
	"ropesim/internal/logging"
	"ropesim/internal/metrics"
	"ropesim/internal/rope"
	"ropesim/internal/script"
)

type runOptions struct {
	configPath string
	length     int
	overrides  []string
	trace      bool
	metrics    bool
	logLevel   string
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Simulate the moves in file (stdin by default) and print the tail count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runSimulation(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&opts.length, "length", "n", 2, "number of knots in the rope")
	f.StringArrayVar(&opts.overrides, "set", nil, "override a config key (key=value, repeatable)")
	f.BoolVar(&opts.trace, "trace", false, "draw the rope after every move")
	f.BoolVar(&opts.metrics, "metrics", false, "print simulation metrics")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

// resolve layers defaults, the config file, explicit flags and --set overrides.
func (o *runOptions) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.RopeLength = o.length
	}
	if flags.Changed("trace") {
		cfg.Trace = o.trace
	}
	if flags.Changed("metrics") {
		cfg.Metrics = o.metrics
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(o.overrides) > 0 {
		ov, err := config.ParseOverrides(o.overrides)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Apply(ov); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func runSimulation(out, errOut io.Writer, cfg config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(errOut, level)

	lines, err := input.ReadLines(cfg.Input)
	if err != nil {
		return err
	}
	moves, err := script.ParseLines(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	log.Debug("parsed moves", "input", cfg.Input, "count", len(moves))

	opts := []rope.Option{rope.WithLogger(log)}
	reg := prometheus.NewRegistry()
	if cfg.Metrics {
		c, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		opts = append(opts, rope.WithObserver(c))
	}

	sim, err := rope.NewSimulator(cfg.RopeLength, cfg.Origin.Point(), opts...)
	if err != nil {
		return err
	}
	if cfg.Trace {
		if err := trace(out, sim, moves, log); err != nil {
			return err
		}
	} else {
		sim.Run(moves)
	}

	fmt.Fprintln(out, sim.Visited())
	if cfg.Metrics {
		return printMetrics(out, reg)
	}
	return nil
}

func trace(out io.Writer, sim *rope.Simulator, moves []geom.Move, log *slog.Logger) error {
	for _, m := range moves {
		sim.Apply(m)
		fmt.Fprintf(out, "== %v ==\n", m)
		if err := rope.Render(out, sim.Rope(), sim.VisitedSet(), sim.Origin()); err != nil {
			return err
		}
	}
	log.Info("simulation finished", "segments", len(sim.Rope()), "steps", sim.Steps(), "visited", sim.Visited())
	return nil
}

func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	snap, err := metrics.Snapshot(g)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s %g\n", name, snap[name])
	}
	return nil
}
