package solver

import (
	"context"
	"errors"

	"github.com/chrisdana/peg-game-solver/internal/board"
)

var (
	ErrUnsolvable = errors.New("no move sequence leaves a single peg")
	ErrTimeout    = errors.New("solver timeout exceeded")
)

// Solver finds jump sequences that reduce a board to a single peg by
// exhaustive depth-first backtracking. It is not safe for concurrent use:
// the move path and memo are shared across a search.
type Solver struct {
	topo    *board.Topology
	options *Options

	// path is the move accumulator for the search in progress: a move is
	// appended on descent and truncated off when its branch is abandoned.
	path []Move

	// failed holds memoized dead states when Options.Memo is set.
	// It persists across starting holes: a state unsolvable from one
	// start is unsolvable from any.
	failed stateSet

	// nodes counts states expanded since the last SolveFrom or Count.
	nodes int
}

// Result is a completed solve: the starting hole, the winning move sequence
// (always Positions-2 moves long), and the number of states expanded.
type Result struct {
	Hole  int
	Moves []Move
	Nodes int
}

// New creates a solver over the given topology.
func New(t *board.Topology, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		topo:    t,
		options: options,
	}

	if options.Memo {
		s.failed = make(stateSet)
	}

	return s
}

// StartingHoles returns the starting holes Solve will try, in order. With
// TryAllHoles set this is every position; otherwise it walks the top
// rows/2+1 rows and the left-to-center columns of each, relying on the
// board's mirror symmetry to cover every distinct class.
func (s *Solver) StartingHoles() []int {
	if s.options.TryAllHoles {
		holes := make([]int, s.topo.Positions)
		for i := range holes {
			holes[i] = i
		}
		return holes
	}

	var holes []int
	for i := 0; i <= s.topo.Rows/2; i++ {
		for j := 0; j <= (i+1)/2; j++ {
			holes = append(holes, board.Triangular(i)+j)
		}
	}
	return holes
}

// Solve tries each candidate starting hole in order and returns the first
// solution found. Returns ErrUnsolvable if every candidate exhausts, or
// ErrTimeout if the deadline expires first.
func (s *Solver) Solve() (*Result, error) {
	for _, hole := range s.StartingHoles() {
		res, err := s.SolveFrom(hole)
		if errors.Is(err, ErrUnsolvable) {
			continue
		}
		return res, err
	}
	return nil, ErrUnsolvable
}

// SolveFrom searches from a full board with the peg at hole removed.
func (s *Solver) SolveFrom(hole int) (*Result, error) {
	ctx, cancel := s.makeContext()
	defer cancel()

	initial := board.Full(s.topo.Positions).Without(hole)
	s.path = s.path[:0]
	s.nodes = 0

	if !s.search(ctx, initial) {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, ErrUnsolvable
	}

	moves := make([]Move, len(s.path))
	copy(moves, s.path)
	return &Result{Hole: hole, Moves: moves, Nodes: s.nodes}, nil
}

// search implements the recursive backtracking descent. It reports whether
// a solution was found; on success s.path holds the winning sequence.
func (s *Solver) search(ctx context.Context, state board.State) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	s.nodes++

	if state.Pegs() == 1 {
		return true
	}

	for _, m := range LegalMoves(s.topo, state) {
		// Each level works on its own derived snapshot; abandoning a
		// branch needs no undo beyond truncating the path.
		next := Apply(state, m)

		if s.failed != nil && s.failed.has(next) {
			continue
		}

		s.path = append(s.path, m)
		if s.search(ctx, next) {
			return true
		}
		s.path = s.path[:len(s.path)-1]

		// A subtree abandoned because the deadline expired is not
		// proven dead; only record genuine exhaustion.
		if s.failed != nil && ctx.Err() == nil {
			s.failed.add(next)
		}
	}

	return false
}

// Count exhaustively counts the distinct move sequences that reduce the
// board with the given starting hole to one peg. Unlike SolveFrom it never
// stops at the first solution, and memoization is disabled: skipping a
// revisited state would drop the sequences that pass through it.
func (s *Solver) Count(hole int) (int, error) {
	ctx, cancel := s.makeContext()
	defer cancel()

	initial := board.Full(s.topo.Positions).Without(hole)
	s.nodes = 0

	n := s.countFrom(ctx, initial)
	if ctx.Err() != nil {
		return 0, ErrTimeout
	}
	return n, nil
}

func (s *Solver) countFrom(ctx context.Context, state board.State) int {
	select {
	case <-ctx.Done():
		return 0
	default:
	}

	s.nodes++

	if state.Pegs() == 1 {
		return 1
	}

	total := 0
	for _, m := range LegalMoves(s.topo, state) {
		total += s.countFrom(ctx, Apply(state, m))
	}
	return total
}

// Nodes returns the number of states expanded by the most recent
// SolveFrom or Count call.
func (s *Solver) Nodes() int {
	return s.nodes
}

// makeContext derives the search context from the configured timeout.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
