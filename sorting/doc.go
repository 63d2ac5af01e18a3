// Package sorting implements the textbook comparison sorts — selection,
// insertion and merge sort — over []int, in place and ascending.
//
// Merge sort follows the classic sentinel formulation: each merge copies
// the two sorted runs into auxiliary buffers padded with math.MaxInt so
// the merge loop needs no exhaustion checks.
//
// IsSorted reports whether a slice is monotonically non-decreasing; the
// benchmark commands treat a false result after sorting as a fatal
// logic defect, not a recoverable condition.
//
// Complexity:
//
//   - Selection: O(n²) comparisons, O(1) space
//   - Insertion: O(n²) worst case, O(n) on nearly-sorted input
//   - Merge:     O(n log n) time, O(n) auxiliary space
package sorting
