// Package transform computes a minimum-cost edit script between two
// strings — the sequence of copy / replace / insert / delete operations
// turning a source X into a target Y — and applies such scripts.
//
// Two parallel (m+1)×(n+1) tables are built in flat row-major buffers:
// cost[i][j] is the minimum total cost of transforming the first i
// characters of X into the first j characters of Y, and op[i][j] records
// the last operation of one optimal script. Row 0 accumulates insert
// costs, column 0 delete costs, and cell (0,0) is the terminating no-op.
//
// The interior recurrence evaluates copy-or-replace (depending on
// character equality) from the diagonal, then delete from above, then
// insert from the left, keeping the first minimum: later candidates win
// only on strict improvement, so the evaluation order is the tie-break
// and is part of the contract.
//
// Assemble walks the op table backward from (m,n) to the no-op and
// returns the script in forward order; Apply replays it left to right
// over X. For every input pair, Apply(x, table.Assemble()) == y — the
// benchmark command verifies this round-trip and treats a mismatch as a
// fatal logic defect.
//
// Complexity: O(m·n) time and memory to build; O(m+n) to reconstruct
// and apply.
package transform
