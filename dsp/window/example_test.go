package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-stft/dsp/window"
)

func ExampleGenerate() {
	w := window.Generate(window.TypeHann, 8)
	fmt.Printf("%.3f %.3f %.3f\n", w[0], w[2], w[4])
	// Output:
	// 0.000 0.500 1.000
}

func ExampleGenerate_energyNorm() {
	w := window.Generate(window.TypeHann, 1024, window.WithEnergyNorm())
	fmt.Printf("energy: %.6f\n", window.Energy(w))
	// Output:
	// energy: 1.000000
}

func ExampleAnalyze() {
	a := window.Analyze(window.Generate(window.TypeHann, 1024))
	fmt.Printf("coherent gain: %.2f ENBW: %.2f\n", a.CoherentGain, a.ENBW)
	// Output:
	// coherent gain: 0.50 ENBW: 1.50
}
