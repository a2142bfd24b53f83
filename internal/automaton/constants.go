package automaton

// Elementary automaton constants
const (
	// neighborhoodPatterns is the number of distinct 3-cell binary neighborhoods.
	neighborhoodPatterns = 8

	// Bit positions of each neighbor within a pattern index.
	leftShift   = 2
	centerShift = 1

	// centerDivisor locates the seed cell (floor division).
	centerDivisor = 2
)

// Default simulation dimensions
const (
	DefaultWidth = 128
	DefaultSteps = 600
)
