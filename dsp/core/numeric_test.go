package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1)=%v, want 1", got)
	}

	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1)=%v, want 0", got)
	}

	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Fatalf("Clamp with swapped bounds=%v, want 0.5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected nearly equal within eps")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected not nearly equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero comparison with default epsilon")
	}
}

func TestDBConversionsRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -20, 0, 6, 20} {
		lin := DBToLinear(db)
		if !NearlyEqual(LinearToDB(lin), db, 1e-9) {
			t.Fatalf("amplitude round trip failed for %v dB", db)
		}

		pow := DBPowerToLinear(db)
		if !NearlyEqual(LinearPowerToDB(pow), db, 1e-9) {
			t.Fatalf("power round trip failed for %v dB", db)
		}
	}
}

func TestDBEdgeCases(t *testing.T) {
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 44100 || cfg.BlockSize != 1024 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(48000), WithBlockSize(2048))
	if cfg.SampleRate != 48000 || cfg.BlockSize != 2048 {
		t.Fatalf("options not applied: %+v", cfg)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(-1), WithBlockSize(0), nil)
	if cfg.SampleRate != 44100 || cfg.BlockSize != 1024 {
		t.Fatalf("invalid options should keep defaults: %+v", cfg)
	}
}
