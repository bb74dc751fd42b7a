package grid

import (
	"fmt"
	"strings"
)

// New returns an all-free grid with the given dimensions.
// Returns ErrEmptyGrid if rows or cols is less than one.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	return &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}, nil
}

// FromMask builds a Grid from a rectangular 2D slice. Zero is free, any other
// value is blocked. The input is deep-copied.
// Returns ErrEmptyGrid if mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func FromMask(mask [][]int) (*Grid, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mask[r][c] != 0 {
				g.cells[g.Index(r, c)] = Blocked
			}
		}
	}
	return g, nil
}

// Parse builds a Grid from text rows. '.' is free; '#', 'x' and 'X' are
// blocked. Surrounding whitespace on each row is ignored.
//
//	g, _ := grid.Parse([]string{
//		"...",
//		".#.",
//		"...",
//	})
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSpace(line))
	}
	if len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := &Grid{rows: len(rows), cols: cols, cells: make([]State, len(rows)*cols)}
	for r, row := range rows {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c, ch := range row {
			switch ch {
			case GlyphFree:
			case GlyphBlocked, 'x', 'X':
				g.cells[g.Index(r, c)] = Blocked
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrInvalidCell, ch, r, c)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// State returns the state of cell (r,c). Out-of-range cells report Blocked,
// since no path can pass through them.
func (g *Grid) State(r, c int) State {
	if !g.InBounds(r, c) {
		return Blocked
	}
	return g.cells[g.Index(r, c)]
}

// Blocked reports whether (r,c) is an obstacle (or outside the grid).
func (g *Grid) Blocked(r, c int) bool { return g.State(r, c) == Blocked }

// Free reports whether (r,c) is inside the grid and free.
func (g *Grid) Free(r, c int) bool { return g.State(r, c) == Free }

// Origin returns the top-left coordinate (0,0).
func (g *Grid) Origin() (r, c int) { return 0, 0 }

// Destination returns the bottom-right coordinate (R-1,C-1).
func (g *Grid) Destination() (r, c int) { return g.rows - 1, g.cols - 1 }

// IsCorner reports whether (r,c) is the origin or the destination.
func (g *Grid) IsCorner(r, c int) bool {
	return (r == 0 && c == 0) || (r == g.rows-1 && c == g.cols-1)
}

// BlockedCount returns the number of obstacle cells.
// Complexity: O(R×C).
func (g *Grid) BlockedCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Blocked {
			n++
		}
	}
	return n
}

// Mask returns a deep copy of the grid as a 2D slice: 0 free, 1 blocked.
// Complexity: O(R×C) time and memory.
func (g *Grid) Mask() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			if g.cells[g.Index(r, c)] == Blocked {
				out[r][c] = 1
			}
		}
	}
	return out
}

// String renders the grid with one line per row, '.' free and '#' blocked.
// The result round-trips through Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[g.Index(r, c)] == Blocked {
				sb.WriteByte(GlyphBlocked)
			} else {
				sb.WriteByte(GlyphFree)
			}
		}
	}
	return sb.String()
}

// Index maps (r,c) to a row-major index: r*C + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}
