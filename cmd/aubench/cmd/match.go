package cmd

import (
	"fmt"

	"github.com/joshuanunn/algorithms-unlocked/bench"
	"github.com/joshuanunn/algorithms-unlocked/gen"
	"github.com/joshuanunn/algorithms-unlocked/match"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <string_length> <pattern_length> <repeat_count>",
	Short: "Benchmark finite-automaton substring matching",
	Long: `Generate a random alphanumeric text of string_length and cut a pattern
of pattern_length from a random offset, guaranteeing at least one
occurrence. Time, separately, building the automaton state table and
scanning the text against it.`,
	Args: cobra.ExactArgs(3),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	length, err := parseStringLength("string_length", args[0])
	if err != nil {
		return err
	}
	patternLen, err := parseStringLength("pattern_length", args[1])
	if err != nil {
		return err
	}
	repeats, err := parseRepeatCount(args[2])
	if err != nil {
		return err
	}

	if patternLen > length {
		return fmt.Errorf("pattern_length must be shorter or equal to string_length, got %d > %d",
			patternLen, length)
	}

	rng := gen.New(gen.SecureSeed())
	text := gen.Alphanumeric(length, rng)

	// Cut the pattern from the text at a random offset so a match is
	// guaranteed.
	start := rng.Intn(length - patternLen + 1)
	pattern := text[start : start+patternLen]

	var (
		st     *match.StateTable
		shifts []int
	)

	tableResult := bench.Run("Time to compute State table", repeats, func() {
		st, err = match.NewStateTable(text, pattern)
	})
	if err != nil {
		return err
	}
	scanResult := bench.Run("Time to find substring matches", repeats, func() {
		shifts = st.Find(text)
	})

	// Fold the occurrence count into the checksum, one per repeat.
	dummy := repeats * len(shifts)

	fmt.Println("The pattern occurs with shifts:", shifts)
	fmt.Println(tableResult)
	fmt.Println(scanResult)
	fmt.Println(dummy)

	return nil
}
