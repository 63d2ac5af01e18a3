package numtheory

// Euclid computes the greatest common divisor g of a and b together
// with Bézout coefficients i, j satisfying g == a*i + b*j.
//
// The recursion bottoms out at b == 0 with (a, 1, 0); otherwise the
// coefficients of Euclid(b, a mod b) are back-substituted as i = j' and
// j = i' - (a/b)*j'.
//
// Complexity: O(log min(a, b)) recursion depth.
func Euclid(a, b int64) (g, i, j int64) {
	if b == 0 {
		return a, 1, 0
	}

	g, prevI, prevJ := Euclid(b, a%b)
	i = prevJ
	j = prevI - (a/b)*prevJ

	return g, i, j
}
