package bench

import (
	"fmt"
	"time"
)

// Result is one labeled timing measurement over a repeat loop.
type Result struct {
	Label   string
	Elapsed time.Duration
	Repeats int
}

// AvgSeconds returns the average seconds per operation, computed as
// elapsed-microseconds / (1e6 × repeats) — the reporting formula of the
// reference programs. A zero repeat count yields 0.
func (r Result) AvgSeconds() float64 {
	if r.Repeats <= 0 {
		return 0
	}

	return float64(r.Elapsed.Microseconds()) / (1e6 * float64(r.Repeats))
}

// String renders the timing line printed by every benchmark command.
func (r Result) String() string {
	return fmt.Sprintf("%s: %g s (average per op)", r.Label, r.AvgSeconds())
}

// Run invokes fn repeats times, timing the whole loop as one
// measurement.
func Run(label string, repeats int, fn func()) Result {
	start := time.Now()
	for i := 0; i < repeats; i++ {
		fn()
	}

	return Result{Label: label, Elapsed: time.Since(start), Repeats: repeats}
}

// RunEach invokes setup then fn repeats times, accumulating only the
// time spent in fn. setup may be nil.
func RunEach(label string, repeats int, setup, fn func()) Result {
	var elapsed time.Duration

	for i := 0; i < repeats; i++ {
		if setup != nil {
			setup()
		}

		start := time.Now()
		fn()
		elapsed += time.Since(start)
	}

	return Result{Label: label, Elapsed: elapsed, Repeats: repeats}
}
