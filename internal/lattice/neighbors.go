package lattice

// The offset tables are written out in full rather than generated by
// nested loops: evaluation is order-independent, and the flat tables keep
// the neighborhood definition readable next to the counting code.

var mooreOffsets = [26][3]int{
	{-1, -1, -1},
	{-1, -1, 0},
	{-1, -1, 1},
	{-1, 0, -1},
	{-1, 0, 0},
	{-1, 0, 1},
	{-1, 1, -1},
	{-1, 1, 0},
	{-1, 1, 1},
	{0, -1, -1},
	{0, -1, 0},
	{0, -1, 1},
	{0, 0, -1},
	{0, 0, 1},
	{0, 1, -1},
	{0, 1, 0},
	{0, 1, 1},
	{1, -1, -1},
	{1, -1, 0},
	{1, -1, 1},
	{1, 0, -1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, -1},
	{1, 1, 0},
	{1, 1, 1},
}

var vonNeumannOffsets = [6][3]int{
	{0, -1, 0},
	{0, 1, 0},
	{-1, 0, 0},
	{1, 0, 0},
	{0, 0, -1},
	{0, 0, 1},
}

// MooreOffsets returns the 26 Moore neighborhood offsets.
func MooreOffsets() [26][3]int { return mooreOffsets }

// VonNeumannOffsets returns the 6 Von Neumann neighborhood offsets.
func VonNeumannOffsets() [6][3]int { return vonNeumannOffsets }
