package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chrisdana/peg-game-solver/internal/board"
	"github.com/chrisdana/peg-game-solver/internal/solver"
	"github.com/spf13/cobra"
)

var countTimeout time.Duration

func init() {
	countCmd := &cobra.Command{
		Use:   "count <rows> <hole>",
		Short: "Count all solutions from a starting hole",
		Long: `Count every distinct jump sequence that reduces the board to a single
peg, starting from a full board with the given peg removed. Unlike solve,
the search does not stop at the first solution.

Example:
  peg-game-solver count 5 0`,
		Args: cobra.ExactArgs(2),
		RunE: runCount,
	}

	countCmd.Flags().DurationVar(&countTimeout, "timeout", 0, "Search timeout (0 = none)")

	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("row count must be a number, got %q", args[0])
	}
	if err := board.ValidateRows(rows); err != nil {
		return err
	}

	topo := board.NewTopology(rows)

	hole, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("starting hole must be a number, got %q", args[1])
	}
	if hole < 0 || hole >= topo.Positions {
		return fmt.Errorf("starting hole %d out of range [0, %d)", hole, topo.Positions)
	}

	s := solver.New(topo, &solver.Options{Timeout: countTimeout})
	n, err := s.Count(hole)
	if err != nil {
		return err
	}

	fmt.Printf("%d solutions from starting hole %d (%d states expanded)\n", n, hole, s.Nodes())
	return nil
}
