package match

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPatternTooLong indicates the pattern is longer than the text it
// should be located in.
var ErrPatternTooLong = errors.New("match: pattern must be no longer than the text")

// StateTable is the automaton transition table for one text/pattern
// pair: states are rows, the distinct characters of the text are
// columns, and next holds rows*cols entries in flat row-major order.
// Built once by NewStateTable and reused across scans of the same text.
type StateTable struct {
	pattern string
	states  int // len(pattern) + 1
	cols    int // number of distinct characters in the text

	next      []int
	charIndex map[byte]int
	indexChar []byte
}

// NewStateTable builds the transition table for locating pattern within
// text. The alphabet is the set of distinct characters of text, indexed
// in order of first appearance. Returns ErrPatternTooLong when the
// pattern cannot fit in the text.
//
// Complexity: O(|P|²·Σ) time, O(|P|·Σ) memory.
func NewStateTable(text, pattern string) (*StateTable, error) {
	if len(pattern) > len(text) {
		return nil, ErrPatternTooLong
	}

	st := &StateTable{
		pattern:   pattern,
		states:    len(pattern) + 1,
		charIndex: make(map[byte]int),
	}

	// Index distinct text characters by first appearance.
	for i := 0; i < len(text); i++ {
		c := text[i]
		if _, seen := st.charIndex[c]; !seen {
			st.charIndex[c] = len(st.indexChar)
			st.indexChar = append(st.indexChar, c)
		}
	}
	st.cols = len(st.indexChar)

	st.next = make([]int, st.states*st.cols)
	st.compute()

	return st, nil
}

// coord maps a (state, column) pair onto the flat table.
func (st *StateTable) coord(state, col int) int {
	return col + state*st.cols
}

// compute fills the transition table. For each state k and character c,
// the next state is the length of the longest prefix of the pattern
// that is a suffix of pattern[:k] + c, found by shrinking i from its
// maximum possible value.
func (st *StateTable) compute() {
	p := st.pattern

	for state := 0; state < st.states; state++ {
		for col, c := range st.indexChar {
			pka := p[:state] + string(c)

			i := len(pka)
			if i > len(p) {
				i = len(p)
			}

			for i > 0 && p[:i] != pka[len(pka)-i:] {
				i--
			}

			st.next[st.coord(state, col)] = i
		}
	}
}

// Next returns the successor of state on reading c. Characters outside
// the text's alphabet cannot occur when scanning the text the table was
// built from; they reset to state 0.
//
// Complexity: O(1).
func (st *StateTable) Next(state int, c byte) int {
	col, ok := st.charIndex[c]
	if !ok {
		return 0
	}

	return st.next[st.coord(state, col)]
}

// Find scans text through the automaton and returns the 0-based shifts
// of every occurrence of the pattern. An empty pattern matches at every
// position.
//
// Complexity: O(|T|) time.
func (st *StateTable) Find(text string) []int {
	var shifts []int
	state := 0

	for i := 0; i < len(text); i++ {
		state = st.Next(state, text[i])
		if state == len(st.pattern) {
			shifts = append(shifts, i+1-len(st.pattern))
		}
	}

	return shifts
}

// String renders the transition table with character column headers and
// state row labels, for debugging and the worked examples.
func (st *StateTable) String() string {
	var sb strings.Builder

	sb.WriteString("      ")
	for _, c := range st.indexChar {
		fmt.Fprintf(&sb, "%4c", c)
	}
	sb.WriteByte('\n')

	for state := 0; state < st.states; state++ {
		fmt.Fprintf(&sb, "%4d |", state)
		for col := 0; col < st.cols; col++ {
			fmt.Fprintf(&sb, "%4d", st.next[st.coord(state, col)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
