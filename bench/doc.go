// Package bench is the small timing harness shared by the aubench
// subcommands: run a function a fixed number of times, accumulate
// elapsed wall-clock time, and report the average seconds per operation
// in the reference programs' output format.
//
// Two loop shapes are provided. Run times the whole repeat loop in one
// measurement — right for cheap, side-effect-free calls. RunEach times
// each iteration separately around an untimed setup step, so input
// regeneration (e.g. reseeding and refilling the sort array) never
// pollutes the measurement.
//
// The harness is intentionally wall-clock based and single-threaded;
// for statistically rigorous numbers use the testing.B benchmarks that
// accompany each algorithm package instead.
package bench
