package paths

import (
	"errors"
	"fmt"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
)

var (
	// ErrDimensionMismatch indicates a count table whose shape differs from the grid.
	ErrDimensionMismatch = errors.New("paths: table dimensions do not match grid")

	// ErrSaturated indicates a count table whose values overflowed uint64.
	ErrSaturated = errors.New("paths: count table saturated; sampling weights are inexact")

	// ErrInconsistentTable indicates a table that was not computed from the grid
	// it is sampled against.
	ErrInconsistentTable = errors.New("paths: count table does not correspond to grid")
)

// Coord is a (row, col) cell coordinate.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(r,c)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Path is an ordered sequence of coordinates from the origin to the
// destination; each consecutive pair differs by one step down or right.
// A Path returned by Sample is never modified afterwards.
type Path []Coord

// Len returns the number of coordinates in p.
func (p Path) Len() int { return len(p) }

// Index returns the position of c in p, or -1 if c is not on the path.
// Complexity: O(len(p)).
func (p Path) Index(c Coord) int {
	for i, q := range p {
		if q == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c lies on p.
func (p Path) Contains(c Coord) bool { return p.Index(c) >= 0 }

// Prefix returns a copy of the first n coordinates of p.
// n is clamped to [0, len(p)].
func (p Path) Prefix(n int) Path {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	out := make(Path, n)
	copy(out, p[:n])
	return out
}

// Valid reports whether p is a complete monotone path through free cells of
// g: it starts at the origin, ends at the destination and every step moves
// +1 in exactly one of row or col.
// Complexity: O(len(p)).
func (p Path) Valid(g *grid.Grid) bool {
	if g == nil || len(p) != g.Rows()+g.Cols()-1 {
		return false
	}
	dr, dc := g.Destination()
	if p[0] != (Coord{}) || p[len(p)-1] != (Coord{Row: dr, Col: dc}) {
		return false
	}
	for i, c := range p {
		if !g.Free(c.Row, c.Col) {
			return false
		}
		if i == 0 {
			continue
		}
		prev := p[i-1]
		down := c.Row == prev.Row+1 && c.Col == prev.Col
		right := c.Col == prev.Col+1 && c.Row == prev.Row
		if !down && !right {
			return false
		}
	}
	return true
}

// Table is the path-count table produced by Count. It is freshly allocated
// per call and never modified afterwards.
// counts holds one value per cell in row-major order.
type Table struct {
	rows, cols int
	counts     []uint64
	saturated  bool
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// At returns the number of monotone paths from the origin to (r,c).
// Coordinates outside the table report 0.
func (t *Table) At(r, c int) uint64 {
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols {
		return 0
	}
	return t.counts[r*t.cols+c]
}

// Total returns the number of paths reaching the destination; 0 if none exist.
func (t *Table) Total() uint64 {
	return t.At(t.rows-1, t.cols-1)
}

// Saturated reports whether any count overflowed and was clamped.
func (t *Table) Saturated() bool { return t.saturated }

// Values returns a deep copy of the table as a 2D slice.
// Complexity: O(R·C) time and memory.
func (t *Table) Values() [][]uint64 {
	out := make([][]uint64, t.rows)
	for r := range out {
		out[r] = make([]uint64, t.cols)
		copy(out[r], t.counts[r*t.cols:(r+1)*t.cols])
	}
	return out
}

// matches reports whether t has the same shape as g.
func (t *Table) matches(g *grid.Grid) bool {
	return t.rows == g.Rows() && t.cols == g.Cols()
}
