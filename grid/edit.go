package grid

// WithCell returns a copy of g with cell (r,c) set to s.
// Returns ErrOutOfBounds if (r,c) is outside the grid.
// Complexity: O(R×C) time and memory (copy-on-write).
func (g *Grid) WithCell(r, c int, s State) (*Grid, error) {
	if !g.InBounds(r, c) {
		return nil, ErrOutOfBounds
	}
	next := g.clone()
	next.cells[next.Index(r, c)] = s
	return next, nil
}

// Toggle returns a copy of g with cell (r,c) flipped between Free and Blocked.
// Returns ErrOutOfBounds if (r,c) is outside the grid.
func (g *Grid) Toggle(r, c int) (*Grid, error) {
	if !g.InBounds(r, c) {
		return nil, ErrOutOfBounds
	}
	s := Blocked
	if g.cells[g.Index(r, c)] == Blocked {
		s = Free
	}
	return g.WithCell(r, c, s)
}

// Cleared returns an all-free grid with the same dimensions as g.
func (g *Grid) Cleared() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: make([]State, len(g.cells))}
}

// Equal reports whether g and other have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}
