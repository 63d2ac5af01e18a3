package numtheory_test

import (
	"fmt"

	"github.com/joshuanunn/algorithms-unlocked/numtheory"
)

// ExampleEuclid computes gcd(30, 18) with its Bézout coefficients.
func ExampleEuclid() {
	g, i, j := numtheory.Euclid(30, 18)
	fmt.Printf("gcd: %d i: %d j: %d\n", g, i, j)
	// Output:
	// gcd: 6 i: -1 j: 2
}

// ExampleModExp computes the book's RSA-chapter example.
func ExampleModExp() {
	fmt.Printf("z: %d\n", numtheory.ModExp(259, 269, 493))
	// Output:
	// z: 327
}
