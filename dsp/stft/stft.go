package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-stft/dsp/window"
)

// Result holds the complex spectrogram produced by Perform, indexed
// [frame][bin], together with derived timing metadata.
type Result struct {
	// Spectrogram contains the scaled forward-transform bins 0..Nyquist per
	// frame. The caller owns the matrix; the library keeps no reference.
	Spectrogram [][]complex128

	FrameCount          int
	FrequencyBinCount   int
	FrameTime           float64
	FrequencyResolution float64
}

// Perform computes the STFT of input under the given parameters.
//
// On failure it returns nil and a diagnostic error; every diagnostic is a
// deterministic function of the inputs, so retrying cannot succeed without
// changing them.
func Perform(input []float64, p Parameters) (*Result, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	if input == nil {
		return nil, ErrInputNil
	}

	if len(input) < p.WindowSize {
		return nil, ErrInputTooShort
	}

	coeffs := window.Generate(p.WindowType, p.WindowSize, window.WithEnergyNorm())
	if len(coeffs) != p.WindowSize {
		return nil, ErrWindowGeneration
	}

	frameCount := p.FrameCount(len(input))
	binCount := p.FrequencyBinCount()

	plan, err := algofft.NewPlan64(p.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	fftIn := make([]complex128, p.WindowSize)
	fftOut := make([]complex128, p.WindowSize)
	scale := complex(1/float64(p.WindowSize), 0)

	spectrogram := make([][]complex128, frameCount)

	for frame := 0; frame < frameCount; frame++ {
		start := frame * p.HopSize

		for i := 0; i < p.WindowSize; i++ {
			fftIn[i] = complex(input[start+i]*coeffs[i], 0)
		}

		err = plan.Forward(fftOut, fftIn)
		if err != nil {
			return nil, fmt.Errorf("stft: forward FFT failed at frame %d: %w", frame, err)
		}

		// Keep bins 0..Nyquist; the upper half is conjugate-redundant for
		// real input. The 1/N scale matches the reference convention.
		row := make([]complex128, binCount)
		for bin := 0; bin < binCount; bin++ {
			row[bin] = fftOut[bin] * scale
		}

		spectrogram[frame] = row
	}

	return &Result{
		Spectrogram:         spectrogram,
		FrameCount:          frameCount,
		FrequencyBinCount:   binCount,
		FrameTime:           p.FrameTime(),
		FrequencyResolution: p.FrequencyResolution(),
	}, nil
}
