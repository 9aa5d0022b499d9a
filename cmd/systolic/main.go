// SPDX-License-Identifier: MIT

// Command systolic is the host-side golden model for the systolic-array GEMM
// accelerator: it prints reference runs, writes testbench vectors, verifies
// the quantizer and reports the host's int8 dot-product support.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/systolic/accel"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	arraySize int
	dataWidth int
	extraBits int
	rounding  accel.Rounding
	accPolicy accel.AccPolicy
	verbose   bool
}

// config builds the validated geometry from the flags.
func (o *rootOptions) config() (accel.Config, error) {
	return accel.New(
		accel.WithArraySize(o.arraySize),
		accel.WithElementWidth(o.dataWidth),
		accel.WithExtraBits(o.extraBits),
		accel.WithRounding(o.rounding),
		accel.WithAccPolicy(o.accPolicy),
	)
}

// logf writes a diagnostic line to stderr when --verbose is set.
func (o *rootOptions) logf(cmd *cobra.Command, format string, args ...any) {
	if !o.verbose {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{
		arraySize: accel.DefaultArraySize,
		dataWidth: accel.DefaultElementWidth,
		extraBits: accel.DefaultExtraBits,
		rounding:  accel.DefaultRounding,
		accPolicy: accel.DefaultAccPolicy,
	}

	root := &cobra.Command{
		Use:           "systolic",
		Short:         "Golden model for the systolic-array int8 GEMM accelerator",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	pf := root.PersistentFlags()
	pf.IntVar(&opts.arraySize, "array-size", opts.arraySize, "systolic array dimension N (matrices are N×N)")
	pf.IntVar(&opts.dataWidth, "data-width", opts.dataWidth, "element bit width")
	pf.IntVar(&opts.extraBits, "extra-bits", opts.extraBits, "guard bits added to the required accumulator width")
	pf.Var(newRoundingValue(&opts.rounding), "rounding", "rounding mode: "+joinNames(accel.RoundingNames()))
	pf.Var(newAccPolicyValue(&opts.accPolicy), "acc-policy", "accumulator policy: "+joinNames(accel.AccPolicyNames()))
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "if set, print diagnostics to stderr")

	root.AddCommand(
		newDemoCommand(opts),
		newVectorsCommand(opts),
		newQuantCheckCommand(opts),
		newHostInfoCommand(),
	)

	return root
}

// execute runs the command tree with args and the given streams.
func execute(args []string, stdout, stderr io.Writer) error {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
