// Package automaton simulates elementary one-dimensional cellular automata.
//
// A Rule is one of Wolfram's 256 two-state, three-neighbor rules. Bit i of the
// rule number is the next cell value for neighborhood pattern i, where
// pattern = left<<2 | center<<1 | right. The ring wraps: cell 0's left
// neighbor is the last cell and vice versa.
package automaton

// Rule is a Wolfram rule number.
type Rule uint8

// Table is the next-state lookup for each 3-bit neighborhood pattern.
type Table [neighborhoodPatterns]uint8

// State is one time step of the ring. Every cell is 0 or 1.
type State []uint8

// History is the ordered space-time evolution, seed first.
type History []State

// Table extracts the rule's eight output bits.
func (r Rule) Table() Table {
	var t Table
	for i := range neighborhoodPatterns {
		t[i] = uint8(r>>i) & 1
	}
	return t
}

// Seed returns an all-zero state of the given width with the cell at
// width/2 (floor) set to 1.
func Seed(width int) State {
	if width <= 0 {
		return State{}
	}
	s := make(State, width)
	s[width/centerDivisor] = 1
	return s
}

// Step computes the successor of src into dst and returns dst.
// dst must have the same length as src and must not alias it.
func Step(t *Table, dst, src State) State {
	n := len(src)
	if n == 0 {
		return dst[:0]
	}
	for i := range n {
		left := src[(i-1+n)%n]
		right := src[(i+1)%n]
		pattern := left<<leftShift | src[i]<<centerShift | right
		dst[i] = t[pattern]
	}
	return dst[:n]
}

// Simulate runs rule from the single-seed state and returns the full
// history. The seed is always the first row, so steps < 1 still yields a
// one-row history; steps is not otherwise validated.
func Simulate(rule Rule, width, steps int) History {
	table := rule.Table()

	rows := max(steps, 1)
	if width < 0 {
		width = 0
	}

	// One backing array keeps the rows contiguous.
	cells := make([]uint8, rows*width)
	history := make(History, rows)

	history[0] = State(cells[:width:width])
	copy(history[0], Seed(width))

	for i := 1; i < rows; i++ {
		row := State(cells[i*width : (i+1)*width : (i+1)*width])
		history[i] = Step(&table, row, history[i-1])
	}
	return history
}

// Width returns the ring width of h, or 0 for an empty history.
func (h History) Width() int {
	if len(h) == 0 {
		return 0
	}
	return len(h[0])
}

// Ones counts the live cells in s.
func (s State) Ones() int {
	n := 0
	for _, c := range s {
		n += int(c)
	}
	return n
}
