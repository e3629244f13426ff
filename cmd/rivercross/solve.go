package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/config"
	"github.com/katalvlaran/rivercross/search"
)

// solve flags bound to config keys
var solveFlags = []struct {
	name, key string
}{
	{"cannibals", config.KeyCannibals},
	{"missionaries", config.KeyMissionaries},
	{"max-iterations", config.KeyMaxIterations},
	{"format", config.KeyFormat},
	{"trace", config.KeyTrace},
	{"delay", config.KeyStepDelay},
}

func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a crossing sequence",
		Long: "Search breadth-first from everybody on the left bank until everybody is on\n" +
			"the right bank, or until the iteration cap or the frontier runs out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range solveFlags {
				if err := a.v.BindPFlag(f.key, cmd.Flags().Lookup(f.name)); err != nil {
					return err
				}
			}
			p, err := config.Load(a.v)
			if err != nil {
				return err
			}
			return a.solve(cmd, p)
		},
	}

	fs := cmd.Flags()
	fs.IntP("cannibals", "c", config.DefaultCannibals, "number of cannibals")
	fs.IntP("missionaries", "m", config.DefaultMissionaries, "number of missionaries")
	fs.IntP("max-iterations", "n", config.DefaultMaxIterations, "iteration cap (0 stops before expanding the root)")
	fs.StringP("format", "o", config.DefaultFormat, "output format: text or json")
	fs.Bool("trace", false, "log every node event at debug level")
	fs.Duration("delay", 0, "pause between iterations")
	return cmd
}

func (a *app) solve(cmd *cobra.Command, p config.Params) error {
	level := p.LogLevel
	if p.Trace && level > slog.LevelDebug {
		level = slog.LevelDebug
	}
	logger := a.logger(level)

	opts := []search.Option{
		search.WithLogger(logger),
		search.WithStepDelay(p.StepDelay),
	}
	if p.Trace {
		opts = append(opts, search.WithHooks(search.LogHooks(logger)))
	}

	res, err := search.Solve(cmd.Context(), p.Cannibals, p.Missionaries, p.MaxIterations, opts...)
	if err != nil {
		return err
	}

	if err := render(cmd.OutOrStdout(), p.Format, res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if !res.Solved() {
		return errExhausted
	}
	return nil
}
