// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// cliContext holds flag values and the logger shared by all subcommands.
type cliContext struct {
	verbose bool
	logger  *slog.Logger

	// run
	tolerance float64
	noColor   bool

	// projection
	fov, ratio, near, far float32
}

// Defaults for the projection subcommand.
const (
	defaultFOV   = 60
	defaultRatio = 1
	defaultNear  = 1
	defaultFar   = 100
)

// newLogger returns a text logger on w at debug level when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	c := &cliContext{}
	root := &cobra.Command{
		Use:   "lalg",
		Short: "evaluate vector and matrix operations",
		Long: `
lalg runs batches of linear-algebra operations described in YAML or TOML job
files and prints perspective projection matrices.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logger = newLogger(cmd.ErrOrStderr(), c.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newRunCmd(c),
		newProjectionCmd(c),
		newOpsCmd(),
	)

	return root
}
