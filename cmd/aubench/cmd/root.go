package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aubench",
	Short: "Textbook algorithm micro-benchmarks",
	Long: `Self-contained micro-benchmarks for textbook algorithms: searching,
sorting, string alignment and number theory. Each subcommand parses its
positional integer arguments, generates synthetic input, runs the
algorithm variants a fixed number of times and prints the average
seconds per operation plus an accumulated checksum.

Examples:
  aubench search 100000 50000      # six search variants over a sequential array
  aubench sort 10000 5             # selection/insertion/merge over seeded random input
  aubench lcs 1000 5               # longest common subsequence of two random strings
  aubench transform 1000 5         # minimum-cost edit script round-trip
  aubench match 10000 20 5         # finite-automaton substring matching
  aubench euclid 30 18             # extended Euclid
  aubench modexp 259 269 493       # modular exponentiation`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; any failure is reported on stderr and
// terminates the process with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
