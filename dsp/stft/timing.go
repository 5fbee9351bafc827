package stft

import "time"

// TimingResult reports the monotonic wall-clock duration of exactly one
// pipeline invocation. It carries no copy of the spectrogram; the wrapped
// call's result and error stand on their own.
type TimingResult struct {
	ExecutionTime time.Duration
}

// PerformTimed invokes Perform exactly once and measures its duration.
//
// The timing is captured whether or not the wrapped call succeeds; inputs and
// pipeline behavior are untouched and nothing is retried.
func PerformTimed(input []float64, p Parameters) (*Result, TimingResult, error) {
	start := time.Now()
	result, err := Perform(input, p)

	return result, TimingResult{ExecutionTime: time.Since(start)}, err
}
