// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/systolic/pipeline"
	"github.com/katalvlaran/systolic/report"
	"github.com/katalvlaran/systolic/stimulus"
	"github.com/katalvlaran/systolic/vectors"
)

// Vector generator stimulus.
const (
	DefaultVectorSeed uint32  = 0xDEADBEEF
	vectorFloatLo     float32 = -30
	vectorFloatHi     float32 = 30
	vectorOffsetB     float32 = 1
)

func newVectorsCommand(root *rootOptions) *cobra.Command {
	var (
		random bool
		seed   uint32
		output string
	)
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Quantize float operands and write the hex test vectors for RTL simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			srcOpts := []stimulus.Option{
				stimulus.WithFloatRange(vectorFloatLo, vectorFloatHi),
				stimulus.WithDiagonalOffsets(0, vectorOffsetB),
			}
			if random {
				srcOpts = append(srcOpts, stimulus.WithSeed(seed))
				root.logf(cmd, "vectors: random stimulus, seed=%#x", seed)
			}
			src, err := stimulus.New(cfg, srcOpts...)
			if err != nil {
				return err
			}
			res, err := pipeline.Run(cfg, src, true)
			if err != nil {
				return err
			}
			if err := vectors.WriteFile(output, cfg, res.A, res.B, res.Raw); err != nil {
				return err
			}
			root.logf(cmd, "vectors: wrote %d values to %s", 3*cfg.Elements(), output)

			return report.Vectors(cmd.OutOrStdout(), res, output)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&random, "random", false, "draw float operands from the seeded RNG instead of the fixed pattern")
	f.Uint32Var(&seed, "seed", DefaultVectorSeed, "RNG seed for --random")
	f.StringVarP(&output, "output", "o", vectors.DefaultPath, "vector file to write (parent directories are created)")

	return cmd
}
