package solver

import "github.com/chrisdana/peg-game-solver/internal/board"

// stateSet records board states proven unsolvable. Whether a state can be
// reduced to one peg depends only on the state itself, never on how it was
// reached, so entries stay valid across starting holes.
type stateSet map[board.State]struct{}

func (ss stateSet) add(s board.State) {
	ss[s] = struct{}{}
}

func (ss stateSet) has(s board.State) bool {
	_, ok := ss[s]
	return ok
}
