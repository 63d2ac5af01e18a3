// Package algorithmsunlocked is a collection of self-contained,
// textbook-style algorithm implementations with matching micro-benchmark
// commands — searching, sorting, string alignment and number theory.
//
// 🚀 What is in the box?
//
//	Each algorithm family lives in its own small package:
//		• search/    — linear, sentinel, recursive and binary search over []int
//		• sorting/   — selection, insertion and merge sort (in place, ascending)
//		• lcs/       — longest common subsequence table + reconstruction
//		• transform/ — minimum-cost edit script table, reconstruction, application
//		• match/     — finite-automaton substring matching over arbitrary alphabets
//		• numtheory/ — extended Euclid and modular exponentiation
//		• gen/       — deterministic and seeded-random input generators
//		• bench/     — the shared timing-loop harness used by the commands
//
// ✨ Why keep the naive variants?
//
//   - They are the point: every routine is a direct, readable rendition
//     of the textbook pseudocode, preserved quirks included (the plain
//     linear search returns the *last* match — see search/doc.go).
//   - Each package is pure Go with no shared state, safe to lift out and
//     read on its own.
//
// The cmd/aubench binary exposes one subcommand per benchmark program:
//
//	aubench search 100000 50000
//	aubench sort 10000 5
//	aubench lcs 1000 5
//	aubench transform 1000 5
//	aubench match 10000 20 5
//	aubench euclid 30 18
//	aubench modexp 259 269 493
//
// Every subcommand validates its positional integer arguments, generates
// synthetic input, times the algorithm over a repeat loop and prints the
// average seconds per operation plus an accumulated checksum used to
// defeat dead-code elimination.
package algorithmsunlocked
