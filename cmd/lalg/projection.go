// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/projection"
)

func newProjectionCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projection",
		Short: "print a 4x4 perspective projection matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.logger.Debug("building projection", "fov_deg", c.fov, "ratio", c.ratio, "near", c.near, "far", c.far)
			m, err := projection.Perspective(projection.Radians(c.fov), c.ratio, c.near, c.far)
			if err != nil {
				return errors.WithHint(
					errors.Wrap(err, "building projection"),
					"--fov is in degrees within (0, 180); --ratio > 0; 0 < --near < --far",
				)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m)

			return err
		},
	}
	cmd.Flags().Float32Var(&c.fov, "fov", defaultFOV, "vertical field of view in degrees")
	cmd.Flags().Float32Var(&c.ratio, "ratio", defaultRatio, "aspect ratio, width / height")
	cmd.Flags().Float32Var(&c.near, "near", defaultNear, "near clip plane distance")
	cmd.Flags().Float32Var(&c.far, "far", defaultFar, "far clip plane distance")

	return cmd
}
