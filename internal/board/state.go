package board

import "math/bits"

// State is the complete peg/hole configuration of a board at one instant.
// Bit i set means position i holds a peg. A 6-row board needs 21 bits, so
// uint32 covers every supported size.
//
// State is a value type: derive new states with With/Without rather than
// mutating in place, so each search level owns an independent snapshot.
type State uint32

// Full returns the state with a peg in every one of n positions.
func Full(n int) State {
	return State(1<<n) - 1
}

// Has reports whether position pos holds a peg.
func (s State) Has(pos int) bool {
	return s>>pos&1 == 1
}

// With returns a copy of s with a peg placed at pos.
func (s State) With(pos int) State {
	return s | 1<<pos
}

// Without returns a copy of s with the peg at pos removed.
func (s State) Without(pos int) State {
	return s &^ (1 << pos)
}

// Pegs returns the number of pegs on the board.
func (s State) Pegs() int {
	return bits.OnesCount32(uint32(s))
}
