package numtheory

// ModExp computes (x^d) mod n by recursive square-and-multiply on the
// exponent: d == 0 yields 1, an even d squares the half-exponent
// result, and an odd d additionally multiplies by x. Intermediate
// products are reduced mod n at every step.
//
// Complexity: O(log d) recursion depth.
func ModExp(x, d, n int64) int64 {
	if d == 0 {
		return 1
	}

	if d%2 == 0 {
		z := ModExp(x, d/2, n)

		return (z * z) % n
	}

	z := ModExp(x, (d-1)/2, n)

	return (z * z % n * x) % n
}
