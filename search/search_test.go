package search_test

import (
	"testing"

	"github.com/joshuanunn/algorithms-unlocked/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearch_UniqueValue verifies that all four linear variants and both
// binary variants return the same index when x occurs exactly once.
func TestSearch_UniqueValue(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	x := 6

	assert.Equal(t, 6, search.Linear(a, x), "Linear must find the unique occurrence")
	assert.Equal(t, 6, search.BetterLinear(a, x), "BetterLinear must find the unique occurrence")
	assert.Equal(t, 6, search.Sentinel(a, x), "Sentinel must find the unique occurrence")
	assert.Equal(t, 6, search.RecursiveLinear(a, 0, x), "RecursiveLinear must find the unique occurrence")
	assert.Equal(t, 6, search.Binary(a, x), "Binary must find the unique occurrence")
	assert.Equal(t, 6, search.RecursiveBinary(a, 0, len(a)-1, x), "RecursiveBinary must find the unique occurrence")
}

// TestSearch_Absent verifies that every variant returns NotFound for a
// value not present in the slice.
func TestSearch_Absent(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	x := 42

	assert.Equal(t, search.NotFound, search.Linear(a, x))
	assert.Equal(t, search.NotFound, search.BetterLinear(a, x))
	assert.Equal(t, search.NotFound, search.Sentinel(a, x))
	assert.Equal(t, search.NotFound, search.RecursiveLinear(a, 0, x))
	assert.Equal(t, search.NotFound, search.Binary(a, x))
	assert.Equal(t, search.NotFound, search.RecursiveBinary(a, 0, len(a)-1, x))
}

// TestLinear_LastMatchContract pins the deliberate divergence: with
// duplicates, Linear reports the last index while the early-exit
// variants report the first. This is specified behavior, not a bug.
func TestLinear_LastMatchContract(t *testing.T) {
	a := []int{5, 1, 5, 3, 5, 9}
	x := 5

	assert.Equal(t, 4, search.Linear(a, x), "plain linear search reports the last occurrence")
	assert.Equal(t, 0, search.BetterLinear(a, x), "better linear search reports the first occurrence")
	assert.Equal(t, 0, search.Sentinel(a, x), "sentinel search reports the first occurrence")
	assert.Equal(t, 0, search.RecursiveLinear(a, 0, x), "recursive linear search reports the first occurrence")
}

// TestSentinel_RestoresLastElement ensures the sentinel technique leaves
// the input slice unchanged, whether or not the value is found.
func TestSentinel_RestoresLastElement(t *testing.T) {
	a := []int{3, 1, 4, 1, 5}

	_ = search.Sentinel(a, 99)
	assert.Equal(t, []int{3, 1, 4, 1, 5}, a, "absent value: slice must be restored")

	_ = search.Sentinel(a, 4)
	assert.Equal(t, []int{3, 1, 4, 1, 5}, a, "present value: slice must be restored")
}

// TestSentinel_MatchAtLastIndex disambiguates the real final element
// from the injected sentinel.
func TestSentinel_MatchAtLastIndex(t *testing.T) {
	a := []int{3, 1, 4, 1, 5}

	assert.Equal(t, 4, search.Sentinel(a, 5), "real match at the final index must be reported")
	assert.Equal(t, search.NotFound, search.Sentinel(a, 6), "sentinel-only hit must report NotFound")
}

// TestBinary_EdgeRanges exercises the inclusive [p, r] narrowing at both
// ends of a sorted slice and on single-element input.
func TestBinary_EdgeRanges(t *testing.T) {
	a := []int{2, 4, 6, 8, 10, 12}

	assert.Equal(t, 0, search.Binary(a, 2), "first element")
	assert.Equal(t, 5, search.Binary(a, 12), "last element")
	assert.Equal(t, search.NotFound, search.Binary(a, 1), "below range")
	assert.Equal(t, search.NotFound, search.Binary(a, 13), "above range")
	assert.Equal(t, search.NotFound, search.Binary(a, 7), "between elements")

	single := []int{7}
	assert.Equal(t, 0, search.Binary(single, 7))
	assert.Equal(t, search.NotFound, search.Binary(single, 8))
}

// TestBinary_AgreesWithRecursive cross-checks the iterative and
// recursive binary searches over every value in and around a sorted
// slice.
func TestBinary_AgreesWithRecursive(t *testing.T) {
	a := make([]int, 101)
	for i := range a {
		a[i] = 2 * i // even values 0..200
	}

	for x := -1; x <= 201; x++ {
		got := search.Binary(a, x)
		want := search.RecursiveBinary(a, 0, len(a)-1, x)
		require.Equal(t, want, got, "iterative and recursive binary search must agree for x=%d", x)

		if got != search.NotFound {
			require.Equal(t, x, a[got], "returned index must hold x=%d", x)
		}
	}
}

// TestSearch_EmptySlice verifies NotFound on empty input for the
// variants that accept it (Sentinel requires a non-empty slice).
func TestSearch_EmptySlice(t *testing.T) {
	var a []int

	assert.Equal(t, search.NotFound, search.Linear(a, 1))
	assert.Equal(t, search.NotFound, search.BetterLinear(a, 1))
	assert.Equal(t, search.NotFound, search.RecursiveLinear(a, 0, 1))
	assert.Equal(t, search.NotFound, search.Binary(a, 1))
	assert.Equal(t, search.NotFound, search.RecursiveBinary(a, 0, len(a)-1, 1))
}
