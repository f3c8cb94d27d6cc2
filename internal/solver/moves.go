package solver

import (
	"github.com/chrisdana/peg-game-solver/internal/board"
)

// LegalMoves returns every legal jump available in the given state, in
// deterministic order: ascending source position, then the topology's
// adjacency order for the midpoint. The solver explores moves in exactly
// this order, so it determines which solution is found first.
//
// The slice is built fresh on every call; nothing is cached across states.
func LegalMoves(t *board.Topology, s board.State) []Move {
	var moves []Move

	for src := 0; src < t.Positions; src++ {
		if !s.Has(src) {
			continue
		}
		srcRow := board.RowOf(src)

		for _, mid := range t.Neighbors(src) {
			if !s.Has(mid) {
				continue
			}
			midRow := board.RowOf(mid)

			// Reflect src through mid. Diagonal jumps (different rows)
			// land one index further than horizontal ones because the
			// row below is one position wider.
			var dest int
			if srcRow != midRow {
				dest = 2*mid - src + 1
			} else {
				dest = 2*mid - src
			}

			if dest < 0 {
				continue
			}
			// The landing hole must be exactly one more step past the
			// midpoint along the same line.
			if !t.Adjacent(mid, dest) {
				continue
			}
			// A hole adjacent to src is not collinear: rules out wrap
			// jumps such as 4 over 2 into 1.
			if t.Adjacent(src, dest) {
				continue
			}
			// A horizontal jump must stay on its row; otherwise a
			// diagonal adjacency of mid could be misread as horizontal.
			if srcRow == midRow && board.RowOf(dest) != midRow {
				continue
			}
			if s.Has(dest) {
				continue
			}

			moves = append(moves, NewMove(src, mid, dest))
		}
	}

	return moves
}

// Apply returns the state after making move m: the source and midpoint pegs
// are removed and a peg is placed at the destination. The input state is not
// modified.
func Apply(s board.State, m Move) board.State {
	return s.Without(m.Src()).Without(m.Mid()).With(m.Dest())
}
