package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chrisdana/peg-game-solver/internal/board"
	"github.com/chrisdana/peg-game-solver/internal/config"
	"github.com/chrisdana/peg-game-solver/internal/solver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	allHoles   bool
	memo       bool
	showBoard  bool
	quiet      bool
	timeout    time.Duration
	configFile string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [rows]",
		Short: "Find a jump sequence leaving a single peg",
		Long: `Solve a triangular peg board with the given number of rows (4-6).

Each symmetry-distinct starting hole is tried in turn; the first solution
found is printed as a numbered move list.

Examples:
  peg-game-solver solve 5
  peg-game-solver solve 6 --memo --board
  peg-game-solver solve --config solve.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVar(&allHoles, "all-holes", false, "Try every starting hole, not just symmetry representatives")
	solveCmd.Flags().BoolVar(&memo, "memo", false, "Skip board states already proven unsolvable")
	solveCmd.Flags().BoolVar(&showBoard, "board", false, "Render the board before each attempt")
	solveCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the solution or failure message")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "Search timeout per starting hole (0 = none)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "Settings file (yaml)")

	rootCmd.AddCommand(solveCmd)
}

// parseRows resolves the row count from the positional argument, falling
// back to the settings file.
func parseRows(args []string, settings *config.Settings) (int, error) {
	if len(args) == 1 {
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("row count must be a number, got %q", args[0])
		}
		return rows, nil
	}
	if settings != nil && settings.Rows != 0 {
		return settings.Rows, nil
	}
	return 0, errors.New("row count required (argument or config file)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var settings *config.Settings
	if configFile != "" {
		var err error
		settings, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	// File values apply only where the flag was not given explicitly.
	if settings != nil {
		if !cmd.Flags().Changed("all-holes") {
			allHoles = settings.AllHoles
		}
		if !cmd.Flags().Changed("memo") {
			memo = settings.Memo
		}
		if !cmd.Flags().Changed("board") {
			showBoard = settings.Board
		}
		if !cmd.Flags().Changed("quiet") {
			quiet = settings.Quiet
		}
		if !cmd.Flags().Changed("timeout") {
			d, err := settings.ParseTimeout()
			if err != nil {
				return err
			}
			timeout = d
		}
	}

	rows, err := parseRows(args, settings)
	if err != nil {
		return err
	}
	if err := board.ValidateRows(rows); err != nil {
		return err
	}

	if quiet {
		log.SetLevel(logrus.WarnLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	topo := board.NewTopology(rows)
	s := solver.New(topo, &solver.Options{
		TryAllHoles: allHoles,
		Memo:        memo,
		Timeout:     timeout,
	})

	var result *solver.Result
	for _, hole := range s.StartingHoles() {
		log.Infof("trying initial state with peg %d removed", hole)
		if showBoard {
			fmt.Println("Board state (0 - Hole, 1 - Peg):")
			fmt.Print(board.Render(board.Full(topo.Positions).Without(hole), rows))
		}

		res, err := s.SolveFrom(hole)
		if errors.Is(err, solver.ErrUnsolvable) {
			log.Infof("no solution found from this starting position (%d states expanded)", s.Nodes())
			continue
		}
		if err != nil {
			return err
		}

		result = res
		break
	}

	if result == nil {
		fmt.Println("Unable to solve puzzle.")
		return nil
	}

	log.Debugf("expanded %d states", result.Nodes)
	fmt.Println("Solution:")
	for i, m := range result.Moves {
		fmt.Printf("Move %d: %s\n", i+1, m)
	}
	return nil
}
