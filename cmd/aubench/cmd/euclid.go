package cmd

import (
	"fmt"

	"github.com/joshuanunn/algorithms-unlocked/numtheory"
	"github.com/spf13/cobra"
)

var euclidCmd = &cobra.Command{
	Use:   "euclid <integer_a> <integer_b>",
	Short: "Compute gcd(a, b) with Bézout coefficients",
	Long: `Run the extended Euclidean algorithm on two non-negative integers and
print the greatest common divisor g with coefficients i, j satisfying
g = a*i + b*j.`,
	Args: cobra.ExactArgs(2),
	RunE: runEuclid,
}

func init() {
	rootCmd.AddCommand(euclidCmd)
}

func runEuclid(cmd *cobra.Command, args []string) error {
	a, err := parseNonNegative("integer_a", args[0])
	if err != nil {
		return err
	}
	b, err := parseNonNegative("integer_b", args[1])
	if err != nil {
		return err
	}

	g, i, j := numtheory.Euclid(a, b)
	fmt.Printf("gcd: %d i: %d j: %d\n", g, i, j)

	return nil
}
