// Package match finds substring occurrences with a precomputed
// finite-automaton state table, scanning the text in a single pass with
// no backtracking.
//
// The table has |P|+1 states — state k means "the last k characters
// read match the first k characters of the pattern" — over the alphabet
// of distinct characters appearing in the text. next[state][c] is the
// length of the longest pattern prefix that is a suffix of the state's
// matched prefix extended by c, computed by the naive suffix search, so
// construction is O(|P|²·Σ) by definition. Scanning is then O(|T|) with
// a single state variable; reaching the accept state |P| at position i
// reports the shift i+1-|P|.
//
// Columns are indexed by first appearance of each character in the
// text, keeping table layout and rendering deterministic for a given
// input.
//
// Reference example: T = "GTAACAGTAAACG", P = "AAC" matches at shifts
// 2 and 9.
package match
