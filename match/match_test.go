package match_test

import (
	"strings"
	"testing"

	"github.com/joshuanunn/algorithms-unlocked/gen"
	"github.com/joshuanunn/algorithms-unlocked/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveShifts is the reference oracle: every index where pattern occurs
// as a contiguous substring of text.
func naiveShifts(text, pattern string) []int {
	var shifts []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			shifts = append(shifts, i)
		}
	}

	return shifts
}

// TestStateTable_BookExample pins the worked example shifts.
func TestStateTable_BookExample(t *testing.T) {
	st, err := match.NewStateTable("GTAACAGTAAACG", "AAC")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 9}, st.Find("GTAACAGTAAACG"))
}

// TestStateTable_PatternTooLong verifies the sentinel error.
func TestStateTable_PatternTooLong(t *testing.T) {
	_, err := match.NewStateTable("AB", "ABC")
	assert.ErrorIs(t, err, match.ErrPatternTooLong)
}

// TestStateTable_Overlapping checks overlapping occurrences are all
// reported; the automaton never backtracks past them.
func TestStateTable_Overlapping(t *testing.T) {
	st, err := match.NewStateTable("AAAAA", "AA")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, st.Find("AAAAA"))
}

// TestStateTable_NoMatch covers a pattern built from text characters
// that never occurs in order.
func TestStateTable_NoMatch(t *testing.T) {
	st, err := match.NewStateTable("ABCABC", "CBA")
	require.NoError(t, err)

	assert.Empty(t, st.Find("ABCABC"))
}

// TestStateTable_MatchAtEnds covers occurrences at shift 0 and at the
// final possible shift.
func TestStateTable_MatchAtEnds(t *testing.T) {
	st, err := match.NewStateTable("ABXXAB", "AB")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 4}, st.Find("ABXXAB"))
}

// TestStateTable_AgainstNaive cross-checks against the quadratic oracle
// on random inputs with a small alphabet to force repeats.
func TestStateTable_AgainstNaive(t *testing.T) {
	rng := gen.New(23)
	const alphabet = "AB"

	randomWord := func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}

	for trial := 0; trial < 40; trial++ {
		text := randomWord(60)
		pattern := randomWord(1 + rng.Intn(4))

		st, err := match.NewStateTable(text, pattern)
		require.NoError(t, err)
		require.Equal(t, naiveShifts(text, pattern), st.Find(text),
			"mismatch for T=%q P=%q", text, pattern)
	}
}

// TestStateTable_PatternFromText mirrors the benchmark command: a
// pattern cut from the text itself must be found at its cut position.
func TestStateTable_PatternFromText(t *testing.T) {
	rng := gen.New(29)
	text := gen.Alphanumeric(200, rng)

	start := 57
	pattern := text[start : start+10]

	st, err := match.NewStateTable(text, pattern)
	require.NoError(t, err)

	shifts := st.Find(text)
	assert.Contains(t, shifts, start, "pattern must be found where it was cut from")
}

// TestStateTable_NextUnknownCharacter confirms characters outside the
// text alphabet reset the automaton.
func TestStateTable_NextUnknownCharacter(t *testing.T) {
	st, err := match.NewStateTable("ABAB", "AB")
	require.NoError(t, err)

	assert.Equal(t, 1, st.Next(0, 'A'))
	assert.Equal(t, 2, st.Next(1, 'B'))
	assert.Equal(t, 0, st.Next(1, 'Z'), "unknown character resets to state 0")
}

// TestStateTable_String spot-checks the rendering header and row count.
func TestStateTable_String(t *testing.T) {
	st, err := match.NewStateTable("AB", "AB")
	require.NoError(t, err)

	out := st.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per state")
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "B")
}
