package workload

import "time"

// Result is the outcome of one workload run. Elapsed is measured with the
// monotonic clock, from immediately before the first task starts to
// immediately after the last worker is joined.
type Result struct {
	Elapsed   time.Duration
	Completed int64

	// Checksum carries a value derived from the computed work, so the work
	// feeding it can never be eliminated as dead.
	Checksum int64
}

// Millis returns the elapsed time in milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}

// Workload is one benchmark scenario. Each run constructs and tears down its
// own queue, pool and counters; nothing is shared between runs, and there is
// no cancellation: a hung task stalls the run, which is a bug to find rather
// than a condition to recover from.
type Workload interface {
	Name() string
	Run() (Result, error)
}
