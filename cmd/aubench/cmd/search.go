package cmd

import (
	"fmt"

	"github.com/joshuanunn/algorithms-unlocked/bench"
	"github.com/joshuanunn/algorithms-unlocked/gen"
	"github.com/joshuanunn/algorithms-unlocked/search"
	"github.com/spf13/cobra"
)

// searchRepeats is the fixed repeat count of the search benchmark; it
// is not configurable in the reference program either.
const searchRepeats = 100_000

var searchCmd = &cobra.Command{
	Use:   "search <array_size> <search_value>",
	Short: "Benchmark the six search variants over a sequential array",
	Long: `Build an array of sequential integers [0..array_size-1] and time each
search variant looking up search_value over a fixed repeat loop.

The plain linear search deliberately reports the last match; see the
search package documentation.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	size, err := parseArraySize(args[0])
	if err != nil {
		return err
	}
	value, err := parseSearchValue(args[1])
	if err != nil {
		return err
	}

	arr := gen.Sequential(size)

	// Accumulate returned indexes so no search can be optimised away.
	dummy := 0

	results := []bench.Result{
		bench.Run("Linear search", searchRepeats, func() {
			dummy += search.Linear(arr, value)
		}),
		bench.Run("Better linear search", searchRepeats, func() {
			dummy += search.BetterLinear(arr, value)
		}),
		bench.Run("Sentinel linear search", searchRepeats, func() {
			dummy += search.Sentinel(arr, value)
		}),
		bench.Run("Recursive linear search", searchRepeats, func() {
			dummy += search.RecursiveLinear(arr, 0, value)
		}),
		bench.Run("Binary search", searchRepeats, func() {
			dummy += search.Binary(arr, value)
		}),
		bench.Run("Recursive binary search", searchRepeats, func() {
			dummy += search.RecursiveBinary(arr, 0, len(arr)-1, value)
		}),
	}

	for _, r := range results {
		fmt.Println(r)
	}
	fmt.Println(dummy)

	return nil
}
