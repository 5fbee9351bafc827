package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-stft/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExamplePhase() {
	bins := []complex128{1 + 0i, 0 + 1i}
	phase := spectrum.Phase(bins)
	fmt.Printf("%.4f %.4f\n", phase[0], phase[1])
	// Output:
	// 0.0000 1.5708
}
