// Package gen provides the synthetic input generators shared by the
// benchmark commands: sequential integer slices, seeded pseudo-random
// integer refills, and random alphanumeric strings.
//
// Determinism policy (mirrors the conventions used throughout this
// module):
//
//   - New(seed) is fully deterministic: the same seed yields the same
//     stream on every platform. seed == 0 maps to a fixed default so the
//     zero value stays reproducible rather than silently time-based.
//   - Sort benchmarks reseed with SortSeed (42) before every repeat so
//     the three sorts are measured against identical input.
//   - String benchmarks intentionally use a fresh non-deterministic seed
//     from SecureSeed, so those runs are not reproducible bit-for-bit.
//
// math/rand.Rand is not goroutine-safe; do not share a returned *Rand
// across goroutines.
package gen
