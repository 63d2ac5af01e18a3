package cmd

import (
	"fmt"

	"github.com/joshuanunn/algorithms-unlocked/numtheory"
	"github.com/spf13/cobra"
)

var modexpCmd = &cobra.Command{
	Use:   "modexp <integer_x> <integer_d> <integer_n>",
	Short: "Compute (x^d) mod n",
	Long: `Run recursive square-and-multiply modular exponentiation on three
non-negative integers and print z = (x^d) mod n.`,
	Args: cobra.ExactArgs(3),
	RunE: runModExp,
}

func init() {
	rootCmd.AddCommand(modexpCmd)
}

func runModExp(cmd *cobra.Command, args []string) error {
	x, err := parseNonNegative("integer_x", args[0])
	if err != nil {
		return err
	}
	d, err := parseNonNegative("integer_d", args[1])
	if err != nil {
		return err
	}
	n, err := parseNonNegative("integer_n", args[2])
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("integer_n must be >= 1, got %d", n)
	}

	fmt.Printf("z: %d\n", numtheory.ModExp(x, d, n))

	return nil
}
