package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies an analysis window function.
type Type int

const (
	// TypeHann is the periodic (DFT-even) Hann window.
	TypeHann Type = iota
)

// Option configures window generation.
type Option func(*config)

type config struct {
	energyNorm bool
}

// WithEnergyNorm scales coefficients so that sum(w[n]^2) == 1.
//
// This is the normalization the STFT pipeline relies on; no other window-sum
// quantity affects output scaling.
func WithEnergyNorm() Option {
	return func(c *config) {
		c.energyNorm = true
	}
}

// Generate returns window coefficients of the given length.
//
// Unknown window types fall back to Hann. This is deliberate permissiveness:
// callers holding a tag from a newer enum revision still get a usable taper
// instead of a failure.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)

	switch t {
	case TypeHann:
		fillHann(out)
	default:
		fillHann(out)
	}

	if cfg.energyNorm {
		normalizeEnergy(out)
	}

	return out
}

// Hann returns periodic Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// fillHann writes the periodic (DFT-even) Hann form, w[n] = 0.5*(1 - cos(2*pi*n/L)).
// The denominator is L, not L-1; the symmetric form does not bit-match the
// reference spectra this library targets.
func fillHann(out []float64) {
	l := float64(len(out))
	for n := range out {
		out[n] = 0.5 * (1 - math.Cos(2*math.Pi*float64(n)/l))
	}
}

func normalizeEnergy(coeffs []float64) {
	norm := math.Sqrt(Energy(coeffs))
	if norm == 0 {
		return
	}

	inv := 1 / norm
	for i := range coeffs {
		coeffs[i] *= inv
	}
}

// Energy returns sum(w[n]^2) of the coefficients.
func Energy(coeffs []float64) float64 {
	sum := 0.0
	for _, c := range coeffs {
		sum += c * c
	}

	return sum
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
