package grid

// State is the binary state of a single cell.
type State uint8

const (
	// Free cells may be traversed by a path.
	Free State = iota
	// Blocked cells are obstacles no path may pass through.
	Blocked
)

// String returns "free" or "blocked".
func (s State) String() string {
	if s == Blocked {
		return "blocked"
	}
	return "free"
}

// Glyphs used by Parse and String.
const (
	GlyphFree    = '.'
	GlyphBlocked = '#'
)

// Grid is an immutable R×C obstacle mask.
// cells holds one State per cell in row-major order: index = row*cols + col.
type Grid struct {
	rows, cols int
	cells      []State
}
