// Package search implements the classic array-search variants:
// plain linear scan, early-exit linear scan, sentinel scan, recursive
// linear scan, and iterative/recursive binary search over ascending data.
//
// All functions operate on []int and return the index of a matching
// element, or NotFound (-1) when the value is absent.
//
// ⚠️ One deliberate asymmetry is preserved from the reference text:
// Linear scans the whole slice and returns the index of the *last*
// occurrence, whereas BetterLinear, Sentinel and RecursiveLinear stop at
// the *first*. All four agree on found vs not-found; they only disagree
// on which index is reported when the value occurs more than once. This
// is a behavioral contract, not a bug to fix.
//
// Complexity:
//
//   - Linear family: O(n) time, O(1) space
//   - Binary family: O(log n) time; input must be sorted ascending
package search
