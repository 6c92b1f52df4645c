// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/job"
)

// errStepsFailed is returned when a job ran but some of its steps failed.
var errStepsFailed = errors.New("job steps failed")

func newRunCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <job-file>",
		Short: "evaluate every step of a YAML or TOML job file",
		Long: `
Evaluate every step of a job file and print one block per step. Steps are
independent: a failing step is reported and the remaining steps still run.

--tolerance overrides the file's pivot_tolerance.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, c, args[0])
		},
	}
	cmd.Flags().Float64Var(&c.tolerance, "tolerance", 0, "pivot tolerance for rank, row_echelon, determinant and inverse")
	cmd.Flags().BoolVar(&c.noColor, "no-color", false, "disable colored status labels")

	return cmd
}

func runJob(cmd *cobra.Command, c *cliContext, path string) error {
	j, err := job.Load(path)
	if err != nil {
		err = errors.Wrapf(err, "loading job %q", path)
		if errors.Is(err, job.ErrUnsupportedFormat) {
			err = errors.WithHint(err, "job files must end in .yaml, .yml or .toml")
		}
		return err
	}
	if cmd.Flags().Changed("tolerance") {
		j.PivotTolerance = c.tolerance
		if err := j.Validate(); err != nil {
			return errors.WithHint(errors.Wrap(err, "applying --tolerance"), "--tolerance must be a finite, non-negative number")
		}
	}
	c.logger.Debug("job loaded", "path", path, "steps", len(j.Steps), "pivot_tolerance", j.PivotTolerance)

	results := job.Run(j)
	for _, r := range results {
		if r.Failed() {
			c.logger.Debug("step failed", "name", r.Name, "op", r.Op, "err", r.Err)
		} else {
			c.logger.Debug("step done", "name", r.Name, "op", r.Op)
		}
	}

	if err := job.Render(cmd.OutOrStdout(), results, !c.noColor); err != nil {
		return errors.Wrap(err, "rendering results")
	}
	if _, failed := job.Summary(results); failed > 0 {
		return errors.Wrapf(errStepsFailed, "%d of %d", failed, len(results))
	}

	return nil
}
