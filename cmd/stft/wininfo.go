package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stft/dsp/window"
)

var wininfoCmd = &cobra.Command{
	Use:   "wininfo",
	Short: "Print spectral properties of the analysis window",
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		return runWininfo(size)
	},
}

func init() {
	wininfoCmd.Flags().Int("size", 1024, "window length in samples")
	rootCmd.AddCommand(wininfoCmd)
}

func runWininfo(size int) error {
	plain, err := window.Hann(size)
	if err != nil {
		return err
	}

	normalized, err := window.Hann(size, window.WithEnergyNorm())
	if err != nil {
		return err
	}

	info := window.Analyze(plain)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "window\thann (periodic), %d samples\n", size)
	fmt.Fprintf(tw, "coherent gain\t%.6f\n", info.CoherentGain)
	fmt.Fprintf(tw, "ENBW\t%.6f bins\n", info.ENBW)
	fmt.Fprintf(tw, "energy\t%.6f\n", info.Energy)
	fmt.Fprintf(tw, "energy (normalized)\t%.6f\n", window.Energy(normalized))

	return tw.Flush()
}
