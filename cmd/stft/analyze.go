package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stft/dsp/core"
	"github.com/cwbudde/algo-stft/dsp/signal"
	"github.com/cwbudde/algo-stft/dsp/stft"
	"github.com/cwbudde/algo-stft/dsp/window"
	"github.com/cwbudde/algo-stft/stats/frequency"
)

var rootCmd = &cobra.Command{
	Use:   "stft",
	Short: "Short-time Fourier transform analysis of synthetic signals",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate a test signal, run an STFT and print spectral statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd)
	},
}

func init() {
	f := analyzeCmd.Flags()
	f.String("signal", "sine", "signal type: sine, multi, stepped, noise")
	f.Float64("freq", 440, "tone frequency in Hz (sine)")
	f.String("freqs", "220,440,880", "comma-separated frequencies in Hz (multi, stepped)")
	f.String("amps", "0.5,0.7,0.3", "comma-separated amplitudes (multi)")
	f.Float64("amplitude", 1.0, "amplitude (sine, stepped, noise)")
	f.Int("samples", 44100, "signal length in samples")
	f.Float64("rate", 44100, "sample rate in Hz")
	f.Int("window", 1024, "window size in samples")
	f.Int("hop", 512, "hop size in samples")
	f.Int64("seed", 1, "random seed (noise)")
	f.String("csv", "", "write the power spectrogram in dB to a CSV file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command) error {
	kind, _ := cmd.Flags().GetString("signal")
	samples, _ := cmd.Flags().GetInt("samples")
	rate, _ := cmd.Flags().GetFloat64("rate")
	windowSize, _ := cmd.Flags().GetInt("window")
	hopSize, _ := cmd.Flags().GetInt("hop")
	csvPath, _ := cmd.Flags().GetString("csv")

	input, err := generateSignal(cmd, kind, rate, samples)
	if err != nil {
		return err
	}

	params := stft.NewParameters(windowSize, hopSize, rate, window.TypeHann)

	result, timing, err := stft.PerformTimed(input, params)
	if err != nil {
		return fmt.Errorf("stft: %w", err)
	}

	printSummary(os.Stdout, kind, samples, params, result, timing)

	if csvPath != "" {
		if err := writePowerCSV(csvPath, result); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	return nil
}

func generateSignal(cmd *cobra.Command, kind string, rate float64, samples int) ([]float64, error) {
	amplitude, _ := cmd.Flags().GetFloat64("amplitude")
	seed, _ := cmd.Flags().GetInt64("seed")

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(rate)},
		signal.WithSeed(seed),
	)

	switch kind {
	case "sine":
		freq, _ := cmd.Flags().GetFloat64("freq")
		return gen.Sine(freq, amplitude, samples)
	case "multi":
		freqs, err := parseFloats(flagString(cmd, "freqs"))
		if err != nil {
			return nil, fmt.Errorf("parse --freqs: %w", err)
		}
		amps, err := parseFloats(flagString(cmd, "amps"))
		if err != nil {
			return nil, fmt.Errorf("parse --amps: %w", err)
		}
		return gen.MultiTone(freqs, amps, samples)
	case "stepped":
		freqs, err := parseFloats(flagString(cmd, "freqs"))
		if err != nil {
			return nil, fmt.Errorf("parse --freqs: %w", err)
		}
		return gen.SteppedTones(freqs, amplitude, samples)
	case "noise":
		return gen.WhiteNoise(amplitude, samples)
	default:
		return nil, fmt.Errorf("unknown signal type %q (want sine, multi, stepped or noise)", kind)
	}
}

func printSummary(w *os.File, kind string, samples int, params stft.Parameters, result *stft.Result, timing stft.TimingResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "signal\t%s (%d samples @ %g Hz)\n", kind, samples, params.SampleRate)
	fmt.Fprintf(tw, "window/hop\t%d / %d (%.0f%% overlap)\n",
		params.WindowSize, params.HopSize, params.OverlapPercentage())
	fmt.Fprintf(tw, "frames\t%d\n", result.FrameCount)
	fmt.Fprintf(tw, "bins\t%d (%.3f Hz resolution)\n",
		result.FrequencyBinCount, result.FrequencyResolution)
	fmt.Fprintf(tw, "frame time\t%.6f s\n", result.FrameTime)
	fmt.Fprintf(tw, "execution\t%s\n", timing.ExecutionTime)

	// Per-frame peak summary over the first frames.
	magnitude := result.Magnitude()
	limit := len(magnitude)
	if limit > 8 {
		limit = 8
	}
	for f := 0; f < limit; f++ {
		s := frequency.Calculate(magnitude[f], params.SampleRate)
		fmt.Fprintf(tw, "frame %d\tpeak %.1f Hz (%.4g), centroid %.1f Hz\n",
			f, s.PeakFrequency, s.Max, s.Centroid)
	}
	if len(magnitude) > limit {
		fmt.Fprintf(tw, "\t... %d more frames\n", len(magnitude)-limit)
	}

	tw.Flush()
}

// writePowerCSV writes one row per frame, one column per frequency bin,
// values in dB.
func writePowerCSV(path string, result *stft.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	record := make([]string, result.FrequencyBinCount)
	for _, frame := range result.PowerDB() {
		for i, v := range frame {
			record[i] = strconv.FormatFloat(v, 'e', 18, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
