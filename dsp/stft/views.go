package stft

import (
	"math"

	"github.com/cwbudde/algo-stft/dsp/core"
	"github.com/cwbudde/algo-stft/dsp/spectrum"
)

const (
	// powerReferenceScale matches the reference tool's empirical dB level.
	// The value is part of the compatibility contract; do not derive it.
	powerReferenceScale = 1e7
	// powerFloor keeps the logarithm finite for exact-zero bins. Applied
	// before the log, never after.
	powerFloor = 1e-20
)

// Magnitude returns a fresh |X| matrix derived from the spectrogram, or nil
// if the result is absent or empty.
//
// Views are recomputed on every call; the complex spectrogram stays the
// single source of truth and returned matrices share no storage with it.
func (r *Result) Magnitude() [][]float64 {
	if r == nil || len(r.Spectrogram) == 0 {
		return nil
	}

	out := make([][]float64, len(r.Spectrogram))
	for f, row := range r.Spectrogram {
		out[f] = spectrum.Magnitude(row)
	}

	return out
}

// Phase returns a fresh arg(X) matrix in radians, range [-pi, pi], or nil if
// the result is absent or empty.
func (r *Result) Phase() [][]float64 {
	if r == nil || len(r.Spectrogram) == 0 {
		return nil
	}

	out := make([][]float64, len(r.Spectrogram))
	for f, row := range r.Spectrogram {
		out[f] = spectrum.Phase(row)
	}

	return out
}

// PowerDB returns a fresh power matrix in dB, or nil if the result is absent
// or empty. Exact-zero bins clamp to 10*log10(powerFloor) instead of -Inf.
func (r *Result) PowerDB() [][]float64 {
	if r == nil || len(r.Spectrogram) == 0 {
		return nil
	}

	out := make([][]float64, len(r.Spectrogram))
	for f, row := range r.Spectrogram {
		power := spectrum.Power(row)
		for i, p := range power {
			power[i] = core.LinearPowerToDB(math.Max(p*powerReferenceScale, powerFloor))
		}

		out[f] = power
	}

	return out
}
