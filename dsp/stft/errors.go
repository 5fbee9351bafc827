package stft

import "errors"

// Validation and pipeline diagnostics. Validate checks parameters in a fixed
// order, so for any invalid configuration the first failing check below
// determines the returned error.
var (
	ErrWindowSizeInvalid = errors.New("window size must be greater than 0")
	ErrHopSizeInvalid    = errors.New("hop size must be greater than 0")
	ErrHopExceedsWindow  = errors.New("hop size must be less than or equal to window size")
	ErrSampleRateInvalid = errors.New("sample rate must be greater than 0")
	ErrScalingInvalid    = errors.New("scaling mode invalid")

	ErrInputNil         = errors.New("input data must not be nil")
	ErrInputTooShort    = errors.New("input data too short for window size")
	ErrWindowGeneration = errors.New("failed to generate window function")
)
