package solver

import "fmt"

// Move is a single peg jump packed into one integer: the peg at Src leaps
// over the peg at Mid into the empty hole at Dest, removing Src and Mid and
// placing a peg at Dest.
//
// Schema: three 5-bit position fields, Src highest. A 6-row board tops out
// at position 20, so 5 bits per field is enough.
//
//	14    9     4
//	 SSSSS MMMMM DDDDD
type Move uint16

const posBits = 5
const posMask = 1<<posBits - 1

// NewMove packs a (src, mid, dest) jump.
func NewMove(src, mid, dest int) Move {
	return Move(src<<(2*posBits) | mid<<posBits | dest)
}

// Src returns the position the jumping peg starts from.
func (m Move) Src() int {
	return int(m >> (2 * posBits) & posMask)
}

// Mid returns the position of the peg being jumped over and removed.
func (m Move) Mid() int {
	return int(m >> posBits & posMask)
}

// Dest returns the position the jumping peg lands on.
func (m Move) Dest() int {
	return int(m & posMask)
}

// String renders the jump as "src --> dest"; the midpoint is implied.
func (m Move) String() string {
	return fmt.Sprintf("%d --> %d", m.Src(), m.Dest())
}
