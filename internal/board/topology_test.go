package board

import "testing"

func TestTriangular(t *testing.T) {
	want := []int{0, 1, 3, 6, 10, 15, 21}
	for n, w := range want {
		if got := Triangular(n); got != w {
			t.Errorf("Triangular(%d) = %d, want %d", n, got, w)
		}
	}
}

func TestRowOf(t *testing.T) {
	cases := []struct {
		pos, row int
	}{
		{0, 0},
		{1, 1}, {2, 1},
		{3, 2}, {5, 2},
		{6, 3}, {9, 3},
		{10, 4}, {14, 4},
		{15, 5}, {20, 5},
	}
	for _, c := range cases {
		if got := RowOf(c.pos); got != c.row {
			t.Errorf("RowOf(%d) = %d, want %d", c.pos, got, c.row)
		}
	}
}

func TestValidateRows(t *testing.T) {
	for _, rows := range []int{4, 5, 6} {
		if err := ValidateRows(rows); err != nil {
			t.Errorf("ValidateRows(%d) = %v, want nil", rows, err)
		}
	}
	for _, rows := range []int{3, 7, 0, -1} {
		if err := ValidateRows(rows); err == nil {
			t.Errorf("ValidateRows(%d) = nil, want error", rows)
		}
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	for rows := MinRows; rows <= MaxRows; rows++ {
		topo := NewTopology(rows)
		for a := 0; a < topo.Positions; a++ {
			for b := 0; b < topo.Positions; b++ {
				if topo.Adjacent(a, b) != topo.Adjacent(b, a) {
					t.Errorf("rows=%d: adjacency of %d,%d not symmetric", rows, a, b)
				}
			}
		}
	}
}

func TestDegreeBounds(t *testing.T) {
	for rows := MinRows; rows <= MaxRows; rows++ {
		topo := NewTopology(rows)
		for pos := 0; pos < topo.Positions; pos++ {
			if d := len(topo.Neighbors(pos)); d > 6 {
				t.Errorf("rows=%d: position %d has degree %d, want <= 6", rows, pos, d)
			}
		}

		// The apex and the two ends of the last row have only two
		// neighbors each.
		for _, corner := range []int{0, Triangular(rows - 1), Triangular(rows) - 1} {
			if d := len(topo.Neighbors(corner)); d != 2 {
				t.Errorf("rows=%d: corner %d has degree %d, want 2", rows, corner, d)
			}
		}
	}
}

func TestFourRowAdjacency(t *testing.T) {
	want := [][]int{
		{1, 2},
		{0, 3, 4, 2},
		{0, 1, 4, 5},
		{1, 6, 7, 4},
		{1, 2, 3, 7, 8, 5},
		{2, 4, 8, 9},
		{3, 7},
		{3, 4, 6, 8},
		{4, 5, 7, 9},
		{5, 8},
	}

	topo := NewTopology(4)
	if topo.Positions != 10 {
		t.Fatalf("Positions = %d, want 10", topo.Positions)
	}
	for pos, w := range want {
		got := topo.Neighbors(pos)
		if len(got) != len(w) {
			t.Fatalf("Neighbors(%d) = %v, want %v", pos, got, w)
		}
		for i := range w {
			if got[i] != w[i] {
				t.Errorf("Neighbors(%d) = %v, want %v", pos, got, w)
				break
			}
		}
	}
}
