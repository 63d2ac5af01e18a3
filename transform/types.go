package transform

// Kind enumerates the edit operations recorded in the op table.
type Kind int

const (
	// Copy takes the current source character unchanged.
	Copy Kind = iota
	// Replace substitutes the op's character for the current source character.
	Replace
	// Insert emits the op's character without consuming source input.
	Insert
	// Delete consumes the current source character without emitting.
	Delete
	// NoOp terminates a script; it sits at table cell (0,0).
	NoOp
)

// String returns the short label used in table rendering.
func (k Kind) String() string {
	switch k {
	case Copy:
		return "cpy"
	case Replace:
		return "rep"
	case Insert:
		return "ins"
	case Delete:
		return "del"
	case NoOp:
		return "---"
	default:
		return "???"
	}
}

// Op is a single edit operation together with the character it applies
// on: the target character for Copy/Replace/Insert, the source
// character for Delete, and '-' for NoOp.
type Op struct {
	Kind Kind
	Char byte
}

// Costs holds the per-operation costs used to score a script. Costs may
// be negative; the book scores a copy at -1 to reward keeping
// characters.
type Costs struct {
	Copy    int
	Replace int
	Delete  int
	Insert  int
}

// DefaultCosts returns the cost set used in the book and by the
// benchmark command: copy -1, replace 1, delete 2, insert 2.
func DefaultCosts() Costs {
	return Costs{Copy: -1, Replace: 1, Delete: 2, Insert: 2}
}
