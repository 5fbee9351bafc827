// Package stft computes the Short-Time Fourier Transform of real-valued
// signals.
//
// The pipeline slices the input into overlapping frames, applies an
// energy-normalized analysis window, transforms each frame with an external
// FFT backend, and keeps the non-redundant bins 0..Nyquist. Output scaling
// follows the 1/N forward-transform convention so that spectra numerically
// match the scipy reference this library targets.
//
// Magnitude, phase, and power-in-dB views are derived from the complex
// spectrogram on demand; the spectrogram is the single source of truth and
// views are never cached.
package stft
