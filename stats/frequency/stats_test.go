package frequency

import (
	"math"
	"testing"
)

func TestCalculateBasics(t *testing.T) {
	// 5 bins over a 8000 Hz sample rate: bin spacing 1000 Hz.
	mag := []float64{0.1, 0.2, 1.0, 0.2, 0.1}
	s := Calculate(mag, 8000)

	if s.BinCount != 5 {
		t.Fatalf("bin count=%d, want 5", s.BinCount)
	}

	if s.MaxBin != 2 || !almostEqual(s.Max, 1.0, 1e-12) {
		t.Fatalf("max=%v at bin %d", s.Max, s.MaxBin)
	}

	if !almostEqual(s.PeakFrequency, 2000, 1e-9) {
		t.Fatalf("peak frequency=%v, want 2000", s.PeakFrequency)
	}

	if !almostEqual(s.Sum, 1.6, 1e-12) {
		t.Fatalf("sum=%v, want 1.6", s.Sum)
	}

	if !almostEqual(s.Energy, 0.01+0.04+1+0.04+0.01, 1e-12) {
		t.Fatalf("energy=%v", s.Energy)
	}

	if !almostEqual(s.Average, 1.6/5, 1e-12) {
		t.Fatalf("average=%v", s.Average)
	}

	// Symmetric spectrum: centroid sits at the center bin frequency.
	if !almostEqual(s.Centroid, 2000, 1e-9) {
		t.Fatalf("centroid=%v, want 2000", s.Centroid)
	}
}

func TestCalculateEmptyAndDC(t *testing.T) {
	s := Calculate(nil, 8000)
	if s.BinCount != 0 || !math.IsInf(s.DC_dB, -1) {
		t.Fatalf("unexpected empty stats: %+v", s)
	}

	s = Calculate([]float64{0.5}, 8000)
	if s.BinCount != 1 || s.PeakFrequency != 0 || s.Centroid != 0 {
		t.Fatalf("unexpected DC-only stats: %+v", s)
	}
}

func TestCalculateFromComplex(t *testing.T) {
	bins := []complex128{1 + 0i, 0 + 2i, -3 + 0i}
	s := CalculateFromComplex(bins, 8000)

	if s.MaxBin != 2 || !almostEqual(s.Max, 3, 1e-12) {
		t.Fatalf("max=%v at bin %d", s.Max, s.MaxBin)
	}

	if !almostEqual(s.Sum, 6, 1e-12) {
		t.Fatalf("sum=%v, want 6", s.Sum)
	}
}

func TestCentroidEdgeCases(t *testing.T) {
	if got := Centroid([]float64{1}, 8000); got != 0 {
		t.Fatalf("single-bin centroid=%v, want 0", got)
	}

	if got := Centroid([]float64{0, 0, 0}, 8000); got != 0 {
		t.Fatalf("silent centroid=%v, want 0", got)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
