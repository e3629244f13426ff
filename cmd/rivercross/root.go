package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rivercross/config"
)

// app carries state shared by all subcommands.
type app struct {
	stdout, stderr io.Writer

	configFile string
	v          *viper.Viper
}

// errUsage wraps flag and argument errors reported by cobra.
var errUsage = errors.New("usage")

func isUsageError(err error) bool { return errors.Is(err, errUsage) }

// newRootCmd creates the top-level command with global flags and all
// subcommands registered.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "rivercross",
		Short: "Solve the missionaries-and-cannibals river crossing",
		Long: "rivercross explores boat crossings breadth-first, skipping states it has\n" +
			"already seen, and prints the first sequence that brings everybody across.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(a.configFile)
			if err != nil {
				return err
			}
			if f := cmd.Flags().Lookup("log-level"); f != nil {
				if err := v.BindPFlag(config.KeyLogLevel, f); err != nil {
					return err
				}
			}
			a.v = v
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(a.newSolveCmd())
	root.AddCommand(a.newVersionCmd())
	return root
}

// logger builds the stderr text logger for a run.
func (a *app) logger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}
