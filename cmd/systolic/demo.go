// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/systolic/pipeline"
	"github.com/katalvlaran/systolic/report"
	"github.com/katalvlaran/systolic/stimulus"
)

// DefaultDemoSeed seeds demo --random.
const DefaultDemoSeed uint32 = 0xC0FFEE

func newDemoCommand(root *rootOptions) *cobra.Command {
	var (
		random   bool
		quantize bool
		seed     uint32
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run one reference multiply and print every intermediate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			var srcOpts []stimulus.Option
			if random {
				srcOpts = append(srcOpts, stimulus.WithSeed(seed))
				root.logf(cmd, "demo: random stimulus, seed=%#x", seed)
			}
			src, err := stimulus.New(cfg, srcOpts...)
			if err != nil {
				return err
			}
			res, err := pipeline.Run(cfg, src, quantize)
			if err != nil {
				return err
			}
			root.logf(cmd, "demo: %d overflowing cells", len(res.Overflows))

			return report.Run(cmd.OutOrStdout(), res)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&random, "random", false, "draw operands from the seeded RNG instead of the fixed pattern")
	f.BoolVar(&quantize, "quantize", false, "start from float operands and quantize them")
	f.Uint32Var(&seed, "seed", DefaultDemoSeed, "RNG seed for --random")

	return cmd
}
