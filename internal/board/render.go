package board

import "strings"

// Render returns a human-readable triangle of 0/1 digits for a state on an
// n-row board: 0 marks a hole, 1 a peg, rows indented to form a triangle.
func Render(s State, rows int) string {
	var sb strings.Builder

	pos := 0
	for r := 0; r < rows; r++ {
		sb.WriteString(strings.Repeat(" ", rows-r-1))
		for j := 0; j <= r; j++ {
			if s.Has(pos) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if j < r {
				sb.WriteByte(' ')
			}
			pos++
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns the state of an n-row board as a flat digit string,
// position 0 first.
func String(s State, rows int) string {
	n := Triangular(rows)
	var sb strings.Builder
	sb.Grow(n)

	for pos := 0; pos < n; pos++ {
		if s.Has(pos) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
