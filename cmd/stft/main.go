// Command stft computes short-time Fourier transforms of synthetic test
// signals and reports spectral statistics.
//
// Examples:
//
//	stft analyze --signal sine --freq 440
//	stft analyze --signal multi --freqs 220,440,880 --amps 0.5,0.7,0.3 --csv out.csv
//	stft analyze --signal stepped --freqs 500,1000,2000 --samples 24000
//	stft wininfo --size 1024
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
