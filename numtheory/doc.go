// Package numtheory implements the extended Euclidean algorithm and
// recursive modular exponentiation, the two number-theoretic routines
// used by the cryptography chapter.
//
// Both are deterministic pure functions over int64 with recursion depth
// bounded by the bit length of their inputs.
package numtheory
