// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// feature is one CPU capability relevant to int8 dot products.
type feature struct {
	name    string
	present bool
	note    string
}

// int8Features lists the host's int8 multiply-accumulate extensions.
func int8Features() []feature {
	switch runtime.GOARCH {
	case "amd64":
		return []feature{
			{"SSE41", cpu.X86.HasSSE41, "PMADDUBSW baseline"},
			{"AVX2", cpu.X86.HasAVX2, "256-bit VPMADDUBSW"},
			{"AVX512BW", cpu.X86.HasAVX512BW, "512-bit byte/word ops"},
			{"AVX512VNNI", cpu.X86.HasAVX512VNNI, "VPDPBUSD int8 dot product"},
		}
	case "arm64":
		return []feature{
			{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"ASIMDDP", cpu.ARM64.HasASIMDDP, "SDOT/UDOT int8 dot product"},
			{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		}
	default:
		return nil
	}
}

func newHostInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hostinfo",
		Short: "Print the host CPU's int8 dot-product capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeHostInfo(cmd.OutOrStdout(), int8Features())
		},
	}
}

func writeHostInfo(out io.Writer, features []feature) error {
	if _, err := fmt.Fprintf(out, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\n\n",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU()); err != nil {
		return err
	}
	if len(features) == 0 {
		_, err := fmt.Fprintf(out, "no int8 dot-product features known for %s\n", runtime.GOARCH)
		return err
	}
	for _, f := range features {
		if _, err := fmt.Fprintf(out, "  Has%-11s %-5v (%s)\n", f.name+":", f.present, f.note); err != nil {
			return err
		}
	}

	return nil
}
