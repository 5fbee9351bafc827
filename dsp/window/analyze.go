package window

// Analysis holds informational properties of a window.
//
// These quantities describe the window; none of them participate in STFT
// output scaling, which is fixed by energy normalization alone.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Energy is sum(w[n]^2).
	Energy float64
}

// Analyze computes informational properties of the given window coefficients.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0

	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	a := Analysis{
		CoherentGain: sum / float64(n),
		Energy:       sumSq,
	}

	if sum != 0 {
		a.ENBW = float64(n) * sumSq / (sum * sum)
	}

	return a
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
