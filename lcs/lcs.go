package lcs

import (
	"fmt"
	"strings"
)

// Table holds the computed LCS lengths for a pair of strings.
// The cells slice is a flat row-major buffer of height*width ints;
// height = len(X)+1 and width = len(Y)+1 include the zero boundary row
// and column. A Table is built once by New and read-only afterwards.
type Table struct {
	height int
	width  int
	x, y   string
	cells  []int
}

// New builds the LCS table for x and y.
//
// Complexity: O(m·n) time and memory.
func New(x, y string) *Table {
	t := &Table{
		height: len(x) + 1,
		width:  len(y) + 1,
		x:      x,
		y:      y,
	}
	// Zero-initialized buffer already encodes the boundary row/column.
	t.cells = make([]int, t.height*t.width)
	t.compute()

	return t
}

// coord maps a (row, column) pair onto the flat buffer.
func (t *Table) coord(i, j int) int {
	return j + i*t.width
}

// compute fills the interior of the table. Each cell is written strictly
// after its up, left and up-left neighbors.
func (t *Table) compute() {
	for i := 1; i < t.height; i++ {
		for j := 1; j < t.width; j++ {
			if t.x[i-1] == t.y[j-1] {
				t.cells[t.coord(i, j)] = t.cells[t.coord(i-1, j-1)] + 1
			} else {
				up := t.cells[t.coord(i-1, j)]
				left := t.cells[t.coord(i, j-1)]
				if up > left {
					t.cells[t.coord(i, j)] = up
				} else {
					t.cells[t.coord(i, j)] = left
				}
			}
		}
	}
}

// Len returns the length of the longest common subsequence, the value
// of the bottom-right cell.
//
// Complexity: O(1).
func (t *Table) Len() int {
	return t.cells[t.coord(t.height-1, t.width-1)]
}

// Assemble reconstructs one longest common subsequence by walking
// backward from (m, n). Which of several equal-length subsequences is
// returned follows the documented tie-break: on a mismatch the walk
// moves left only when the left cell is strictly larger, otherwise up.
//
// Complexity: O(m+n) steps.
func (t *Table) Assemble() string {
	var sb strings.Builder
	t.assemble(&sb, t.height-1, t.width-1)

	return sb.String()
}

// assemble recursively appends the subsequence for cell (i, j) to sb.
func (t *Table) assemble(sb *strings.Builder, i, j int) {
	switch {
	case t.cells[t.coord(i, j)] == 0:
		// Nothing in common; emit nothing.
	case t.x[i-1] == t.y[j-1]:
		t.assemble(sb, i-1, j-1)
		sb.WriteByte(t.x[i-1])
	case t.cells[t.coord(i, j-1)] > t.cells[t.coord(i-1, j)]:
		t.assemble(sb, i, j-1)
	default:
		t.assemble(sb, i-1, j)
	}
}

// String renders the table as an aligned grid, one row per line, for
// debugging and the worked examples.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.height; i++ {
		for j := 0; j < t.width; j++ {
			fmt.Fprintf(&sb, "%3d", t.cells[t.coord(i, j)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
