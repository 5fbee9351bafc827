// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides the
// per-bin extraction primitives (magnitude, power, phase) that spectrogram
// views are built from.
package spectrum
