package frequency

import (
	"math/cmplx"

	"github.com/cwbudde/algo-stft/dsp/core"
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	DC_dB    float64
	Sum      float64 // sum of magnitudes
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	Average  float64
	Energy   float64 // sum of squared magnitudes
	Power    float64
	// PeakFrequency is the frequency of the strongest bin in Hz.
	PeakFrequency float64
	// Centroid is the spectral centroid in Hz.
	Centroid float64
}

// binFreq returns the frequency in Hz of a given bin index.
// fftSize = 2 * (len(magnitude) - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes frequency-domain statistics from a magnitude spectrum
// (linear scale, NOT dB).
//
// The magnitude slice represents bins from 0 (DC) to Nyquist (one-sided
// spectrum, length = FFTSize/2 + 1). The frequency of bin i is:
//
//	f_i = i * sampleRate / (2 * (len(magnitude) - 1))
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{DC_dB: core.LinearToDB(0)}
	}

	var s Stats
	s.BinCount = n
	s.DC = magnitude[0]
	s.DC_dB = core.LinearToDB(s.DC)

	s.Min = magnitude[0]
	s.Max = magnitude[0]
	for i, v := range magnitude {
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}
	s.Average = s.Sum / float64(n)
	s.Power = s.Energy / float64(n)

	if n > 1 {
		s.PeakFrequency = binFreq(s.MaxBin, sampleRate, n)
		s.Centroid = centroid(magnitude, sampleRate, s.Sum)
	}

	return s
}

// CalculateFromComplex converts a complex spectrum to magnitude (absolute value)
// and delegates to [Calculate].
func CalculateFromComplex(spectrum []complex128, sampleRate float64) Stats {
	mag := make([]float64, len(spectrum))
	for i, c := range spectrum {
		mag[i] = cmplx.Abs(c)
	}
	return Calculate(mag, sampleRate)
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate float64, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}
	return weightedSum / sumMag
}
