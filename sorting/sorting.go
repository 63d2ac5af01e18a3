package sorting

import "math"

// Selection sorts a in place, ascending. Each of the n passes swaps the
// minimum of the unsorted suffix into position i.
//
// Complexity: O(n²) time, O(1) space.
func Selection(a []int) {
	n := len(a)

	for i := 0; i < n; i++ {
		smallest := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[smallest] {
				smallest = j
			}
		}
		a[i], a[smallest] = a[smallest], a[i]
	}
}

// Insertion sorts a in place, ascending, shifting each new key leftward
// past larger predecessors.
//
// Complexity: O(n²) worst case, O(1) space.
func Insertion(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

// Merge sorts a in place, ascending, by recursive merge sort over the
// inclusive index range [0, len(a)-1].
//
// Complexity: O(n log n) time, O(n) auxiliary space.
func Merge(a []int) {
	if len(a) < 2 {
		return
	}
	mergeSort(a, 0, len(a)-1)
}

// mergeSort recursively sorts the inclusive range a[p..r].
func mergeSort(a []int, p, r int) {
	// One or zero elements are already sorted.
	if p >= r {
		return
	}

	q := (p + r) / 2

	mergeSort(a, p, q)
	mergeSort(a, q+1, r)
	merge(a, p, q, r)
}

// merge combines the sorted runs a[p..q] and a[q+1..r] into a[p..r].
// Both runs are copied into auxiliary buffers terminated with a
// math.MaxInt sentinel, so the merge loop never checks for exhaustion.
func merge(a []int, p, q, r int) {
	n1 := q - p + 1
	n2 := r - q

	// Extra slot in each buffer holds the sentinel.
	left := make([]int, n1+1)
	copy(left, a[p:q+1])
	left[n1] = math.MaxInt

	right := make([]int, n2+1)
	copy(right, a[q+1:r+1])
	right[n2] = math.MaxInt

	i, j := 0, 0
	for k := p; k <= r; k++ {
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
	}
}

// IsSorted reports whether a is monotonically non-decreasing. Empty and
// single-element slices are sorted.
//
// Complexity: O(n) time, O(1) space.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}

	return true
}
