package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "peg-game-solver",
	Short: "Solve triangular peg solitaire boards",
	Long: `peg-game-solver finds a sequence of jumps that reduces a triangular
peg board (4, 5, or 6 rows) from one removed peg down to a single
remaining peg, or reports that no such sequence exists.

Positions are numbered row-major from the apex:

          0
        1   2
      3   4   5
    6   7   8   9`,
}

// Execute runs the root command. Argument and search errors exit with
// status 1; an unsolvable board is an ordinary outcome and exits 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}
