package transform

import (
	"fmt"
	"strings"
)

// Table holds the parallel cost and operation grids for transforming x
// into y under a fixed cost set. Both grids are flat row-major buffers
// of height*width cells; height = len(x)+1, width = len(y)+1. A Table
// is built once by New and read-only afterwards.
type Table struct {
	height int
	width  int
	x, y   string
	costs  Costs
	cost   []int
	op     []Op
}

// New builds the cost and op tables for transforming x into y.
//
// Complexity: O(m·n) time and memory.
func New(x, y string, costs Costs) *Table {
	t := &Table{
		height: len(x) + 1,
		width:  len(y) + 1,
		x:      x,
		y:      y,
		costs:  costs,
	}
	t.cost = make([]int, t.height*t.width)
	t.op = make([]Op, t.height*t.width)
	t.compute()

	return t
}

// coord maps a (row, column) pair onto the flat buffers.
func (t *Table) coord(i, j int) int {
	return j + i*t.width
}

// compute fills the boundary and interior of both tables. Candidates
// are evaluated copy/replace first, then delete, then insert; a later
// candidate displaces the current best only on strict improvement.
func (t *Table) compute() {
	t.cost[t.coord(0, 0)] = 0
	t.op[t.coord(0, 0)] = Op{Kind: NoOp, Char: '-'}

	// Column 0: delete every source prefix character.
	for i := 1; i < t.height; i++ {
		t.cost[t.coord(i, 0)] = i * t.costs.Delete
		t.op[t.coord(i, 0)] = Op{Kind: Delete, Char: t.x[i-1]}
	}

	// Row 0: insert every target prefix character.
	for j := 1; j < t.width; j++ {
		t.cost[t.coord(0, j)] = j * t.costs.Insert
		t.op[t.coord(0, j)] = Op{Kind: Insert, Char: t.y[j-1]}
	}

	for i := 1; i < t.height; i++ {
		for j := 1; j < t.width; j++ {
			k := t.coord(i, j)

			// Candidate i: copy or replace from the diagonal.
			if t.x[i-1] == t.y[j-1] {
				t.cost[k] = t.cost[t.coord(i-1, j-1)] + t.costs.Copy
				t.op[k] = Op{Kind: Copy, Char: t.y[j-1]}
			} else {
				t.cost[k] = t.cost[t.coord(i-1, j-1)] + t.costs.Replace
				t.op[k] = Op{Kind: Replace, Char: t.y[j-1]}
			}

			// Candidate ii: delete from above.
			if c := t.cost[t.coord(i-1, j)] + t.costs.Delete; c < t.cost[k] {
				t.cost[k] = c
				t.op[k] = Op{Kind: Delete, Char: t.x[i-1]}
			}

			// Candidate iii: insert from the left.
			if c := t.cost[t.coord(i, j-1)] + t.costs.Insert; c < t.cost[k] {
				t.cost[k] = c
				t.op[k] = Op{Kind: Insert, Char: t.y[j-1]}
			}
		}
	}
}

// Cost returns the minimum total cost of transforming x into y, the
// value of the bottom-right cell.
//
// Complexity: O(1).
func (t *Table) Cost() int {
	return t.cost[t.coord(t.height-1, t.width-1)]
}

// Assemble reconstructs one minimum-cost edit script by following the
// recorded operations backward from (m, n) to the no-op at (0, 0). The
// script is returned in forward application order, the terminating NoOp
// first.
//
// Complexity: O(m+n) steps.
func (t *Table) Assemble() []Op {
	ops := make([]Op, 0, t.height+t.width)

	return t.assemble(ops, t.height-1, t.width-1)
}

// assemble recursively appends the script for cell (i, j) to ops.
func (t *Table) assemble(ops []Op, i, j int) []Op {
	o := t.op[t.coord(i, j)]

	switch o.Kind {
	case NoOp:
		return append(ops, o)
	case Copy, Replace:
		ops = t.assemble(ops, i-1, j-1)
	case Delete:
		ops = t.assemble(ops, i-1, j)
	default: // Insert
		ops = t.assemble(ops, i, j-1)
	}

	return append(ops, o)
}

// Apply replays an edit script left to right over the source string x
// and returns the transformed result. Copy consumes and emits the
// current source character, Replace consumes it and emits the op's
// character, Insert emits without consuming, Delete consumes without
// emitting, and NoOp does nothing.
//
// Complexity: O(len(ops)).
func Apply(x string, ops []Op) string {
	var sb strings.Builder
	pos := 0

	for _, o := range ops {
		switch o.Kind {
		case Copy:
			sb.WriteByte(x[pos])
			pos++
		case Replace:
			sb.WriteByte(o.Char)
			pos++
		case Insert:
			sb.WriteByte(o.Char)
		case Delete:
			pos++
		case NoOp:
			// Script terminator; nothing to do.
		}
	}

	return sb.String()
}

// String renders the combined cost:op grid, one row per line, for
// debugging and the worked examples.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.height; i++ {
		for j := 0; j < t.width; j++ {
			k := t.coord(i, j)
			fmt.Fprintf(&sb, "%7d %s:%c", t.cost[k], t.op[k].Kind, t.op[k].Char)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
