package stft

import (
	"github.com/cwbudde/algo-stft/dsp/window"
)

// Scaling selects the output scaling convention.
type Scaling int

const (
	// ScalingSpectrum is the amplitude-spectrum convention (scipy default).
	ScalingSpectrum Scaling = iota
	// ScalingPSD tags power-spectral-density scaling. The pipeline currently
	// applies the same 1/N amplitude scale for both conventions, matching the
	// reference implementation.
	ScalingPSD
)

// Parameters holds the immutable configuration for one STFT analysis.
//
// Parameters is a plain value type; copy it freely.
type Parameters struct {
	WindowSize int
	HopSize    int
	SampleRate float64
	WindowType window.Type
	Scaling    Scaling
}

// NewParameters creates an STFT configuration with spectrum scaling.
func NewParameters(windowSize, hopSize int, sampleRate float64, windowType window.Type) Parameters {
	return Parameters{
		WindowSize: windowSize,
		HopSize:    hopSize,
		SampleRate: sampleRate,
		WindowType: windowType,
		Scaling:    ScalingSpectrum,
	}
}

// Validate checks the configuration for internal consistency.
//
// Checks run in a fixed order and the first failure wins, keeping diagnostics
// deterministic for any combination of invalid fields.
func (p Parameters) Validate() error {
	if p.WindowSize <= 0 {
		return ErrWindowSizeInvalid
	}

	if p.HopSize <= 0 {
		return ErrHopSizeInvalid
	}

	if p.HopSize > p.WindowSize {
		return ErrHopExceedsWindow
	}

	if p.SampleRate <= 0 {
		return ErrSampleRateInvalid
	}

	switch p.Scaling {
	case ScalingSpectrum, ScalingPSD:
	default:
		return ErrScalingInvalid
	}

	return nil
}

// OverlapPercentage returns the frame overlap in percent.
func (p Parameters) OverlapPercentage() float64 {
	if p.WindowSize <= 0 {
		return 0
	}

	return (1 - float64(p.HopSize)/float64(p.WindowSize)) * 100
}

// FrameTime returns the time advance between consecutive frames in seconds.
func (p Parameters) FrameTime() float64 {
	if p.SampleRate <= 0 {
		return 0
	}

	return float64(p.HopSize) / p.SampleRate
}

// FrequencyResolution returns the bin spacing in Hz.
func (p Parameters) FrequencyResolution() float64 {
	if p.WindowSize <= 0 {
		return 0
	}

	return p.SampleRate / float64(p.WindowSize)
}

// FrameCount returns the number of analysis frames for an input of the given
// length, or 0 if the input is shorter than the window.
func (p Parameters) FrameCount(inputLength int) int {
	if p.WindowSize <= 0 || p.HopSize <= 0 || inputLength < p.WindowSize {
		return 0
	}

	return (inputLength-p.WindowSize)/p.HopSize + 1
}

// FrequencyBinCount returns the number of retained non-redundant bins,
// covering frequencies 0..Nyquist.
func (p Parameters) FrequencyBinCount() int {
	if p.WindowSize <= 0 {
		return 0
	}

	return p.WindowSize/2 + 1
}
