package board

// Supported board sizes. A 6-row triangle has 21 positions, which keeps
// every board state within a uint32.
const (
	MinRows = 4
	MaxRows = 6

	// MaxPositions is the position count of the largest supported board.
	MaxPositions = MaxRows * (MaxRows + 1) / 2
)

// Topology describes the adjacency structure of a triangular peg board.
// Positions are numbered row-major from the apex:
//
//	      0
//	    1   2
//	  3   4   5
//	6   7   8   9
//
// Topology is immutable after construction — it is safe to share the same
// pointer across all solver invocations for a given row count.
type Topology struct {
	// Rows is the number of rows the board was built with.
	Rows int

	// Positions is the total position count, Triangular(Rows).
	Positions int

	// neighbors[p] lists the positions directly adjacent to p, in the
	// order edges were added during construction. A position has at most
	// 6 neighbors; edge and corner positions have fewer.
	neighbors [][]int
}

// Triangular returns the n-th triangular number n·(n+1)/2.
// It is both the first position index of row n and the position count
// of an n+1 row board.
func Triangular(n int) int {
	return n * (n + 1) / 2
}

// posToRow is a precomputed position-to-row table covering the largest
// supported board. Row membership is the floored positive root of
// r*r + r - 2*pos = 0; walking the triangular numbers avoids the float
// round-trip.
var posToRow [MaxPositions]int

func init() {
	row := 0
	for pos := 0; pos < MaxPositions; pos++ {
		if pos == Triangular(row+1) {
			row++
		}
		posToRow[pos] = row
	}
}

// RowOf returns the row a position lies on. pos must be in
// [0, MaxPositions).
func RowOf(pos int) int {
	return posToRow[pos]
}

// NewTopology builds the adjacency structure for a board with the given
// number of rows. Callers must validate rows with ValidateRows first;
// NewTopology assumes it.
//
// Each position connects to its lower-left and lower-right diagonal
// neighbors (when not on the last row) and to its immediate right
// neighbor (when not last in its row). Every edge is added in both
// directions, and each pair exactly once, so the relation is symmetric
// by construction.
func NewTopology(rows int) *Topology {
	n := Triangular(rows)
	t := &Topology{
		Rows:      rows,
		Positions: n,
		neighbors: make([][]int, n),
	}

	for i := 0; i < rows; i++ {
		for j := 0; j <= i; j++ {
			pos := Triangular(i) + j
			if i < rows-1 {
				t.addEdge(pos, pos+i+1) // lower-left
				t.addEdge(pos, pos+i+2) // lower-right
			}
			if j < i {
				t.addEdge(pos, pos+1) // right
			}
		}
	}

	return t
}

// addEdge connects a and b in both directions.
func (t *Topology) addEdge(a, b int) {
	t.neighbors[a] = append(t.neighbors[a], b)
	t.neighbors[b] = append(t.neighbors[b], a)
}

// Neighbors returns the positions adjacent to pos, in construction order.
// The returned slice is owned by the Topology and must not be modified.
func (t *Topology) Neighbors(pos int) []int {
	return t.neighbors[pos]
}

// Adjacent reports whether a and b share an edge.
func (t *Topology) Adjacent(a, b int) bool {
	if a < 0 || a >= t.Positions || b < 0 || b >= t.Positions {
		return false
	}
	for _, nb := range t.neighbors[a] {
		if nb == b {
			return true
		}
	}
	return false
}
