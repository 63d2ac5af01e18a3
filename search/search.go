package search

// NotFound is returned by every search variant when x is absent.
const NotFound = -1

// Linear scans the full slice and returns the index of the last
// occurrence of x, or NotFound. It never exits early; see the package
// documentation for why the last-match behavior is kept.
//
// Complexity: O(n) time, O(1) space.
func Linear(a []int, x int) int {
	answer := NotFound

	for i := 0; i < len(a); i++ {
		if a[i] == x {
			answer = i
		}
	}

	return answer
}

// BetterLinear returns the index of the first occurrence of x, exiting
// as soon as a match is found, or NotFound.
//
// Complexity: O(n) time, O(1) space.
func BetterLinear(a []int, x int) int {
	for i := 0; i < len(a); i++ {
		if a[i] == x {
			return i
		}
	}

	return NotFound
}

// Sentinel returns the index of the first occurrence of x, or NotFound.
// It temporarily overwrites the final element with x so the scan loop
// needs no bounds check, then restores it before returning. The slice
// is mutated during the call but left unchanged on return; it must be
// non-empty.
//
// Complexity: O(n) time, O(1) space.
func Sentinel(a []int, x int) int {
	n := len(a)
	last := a[n-1]
	a[n-1] = x

	i := 0
	for a[i] != x {
		i++
	}

	// Restore the displaced final element.
	a[n-1] = last

	// A hit before the final slot is always real; a hit at the final
	// slot is real only if the original value there was x.
	if i < n-1 || a[n-1] == x {
		return i
	}

	return NotFound
}

// RecursiveLinear is BetterLinear expressed as tail recursion on the
// current index i. Call with i = 0 to scan the whole slice.
//
// Complexity: O(n) time, O(n) stack.
func RecursiveLinear(a []int, i, x int) int {
	if i > len(a)-1 {
		return NotFound
	}

	if a[i] == x {
		return i
	}

	return RecursiveLinear(a, i+1, x)
}

// Binary returns an index holding x in the ascending-sorted slice a,
// or NotFound. It maintains an inclusive index range [p, r] and narrows
// it by comparing against the midpoint.
//
// Complexity: O(log n) time, O(1) space.
func Binary(a []int, x int) int {
	p, r := 0, len(a)-1

	for p <= r {
		q := (p + r) / 2

		if a[q] == x {
			return q
		}

		if a[q] > x {
			r = q - 1
		} else {
			p = q + 1
		}
	}

	return NotFound
}

// RecursiveBinary is Binary expressed as recursion on the inclusive
// index range [p, r]. Call with p = 0, r = len(a)-1 to search the whole
// slice; the slice must be sorted ascending.
//
// Complexity: O(log n) time, O(log n) stack.
func RecursiveBinary(a []int, p, r, x int) int {
	if p > r {
		return NotFound
	}

	q := (p + r) / 2

	if a[q] == x {
		return q
	}

	if a[q] > x {
		return RecursiveBinary(a, p, q-1, x)
	}

	return RecursiveBinary(a, q+1, r, x)
}
