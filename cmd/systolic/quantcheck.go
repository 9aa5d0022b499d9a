// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/systolic/report"
	"github.com/katalvlaran/systolic/selfcheck"
)

// errChecksFailed makes quantcheck exit non-zero.
var errChecksFailed = errors.New("quantcheck: verification failed")

func newQuantCheckCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quantcheck",
		Short: "Run the quantization verification testbench",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			root.logf(cmd, "quantcheck: %d-bit elements, rounding %s", cfg.ElementWidth, cfg.Rounding)
			results, err := selfcheck.Run(cfg)
			if err != nil {
				return err
			}
			if err := report.Checks(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if !selfcheck.AllPassed(results) {
				_, failed := selfcheck.Summary(results)
				return fmt.Errorf("%d of %d checks: %w", failed, len(results), errChecksFailed)
			}

			return nil
		},
	}
}
