// Package cli wires the aoc command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/logger"
	"github.com/katalvlaran/aoc2023/internal/runner"
)

// LastDay is run when no day, or an unparsable one, is given.
const LastDay = 25

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug    bool
		all      bool
		cfgPath  string
		inputDir string
	)

	cmd := &cobra.Command{
		Use:          "aoc [day]",
		Short:        "Advent of Code 2023 solutions",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if inputDir != "" {
				cfg.InputDir = inputDir
			}
			level := cfg.LogLevel
			if debug {
				level = "debug"
			}
			log.Logger = logger.NewConsole(level, cmd.ErrOrStderr())

			r, err := runner.New(cfg, runner.WithDays(runner.AllDays()...), runner.WithLogger(log.Logger))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if all {
				return runAll(ctx, r, cmd.OutOrStdout())
			}

			day := parseDay(args)
			log.Debug().Int("day", day).Str("input", cfg.InputPath(day)).Msg("running")
			res, err := r.Run(ctx, day)
			if err != nil {
				log.Error().Err(err).Int("day", day).Msg("run failed")
				return err
			}

			return runner.Print(cmd.OutOrStdout(), res)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.Flags().BoolVar(&all, "all", false, "run every day concurrently")
	cmd.Flags().StringVar(&cfgPath, "config", "aoc.yaml", "YAML configuration file; a missing file is ignored")
	cmd.Flags().StringVar(&inputDir, "input-dir", "", "directory holding the input files (overrides config)")

	return cmd
}

// parseDay reads the optional positional day, falling back to LastDay.
func parseDay(args []string) int {
	if len(args) == 0 {
		return LastDay
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return LastDay
	}

	return n
}

func runAll(ctx context.Context, r *runner.Runner, w io.Writer) error {
	results, err := r.RunAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}
	for _, res := range results {
		if _, err = fmt.Fprintf(w, "Day %02d\n", res.Day); err != nil {
			return err
		}
		if err = runner.Print(w, res); err != nil {
			return err
		}
	}

	return nil
}
