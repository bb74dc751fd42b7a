package paths

import (
	"math"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
)

// Sample draws one monotone path from the origin to the destination of g,
// uniformly among all t.Total() paths.
//
// The walk starts at the destination and moves backward. At (r,c) the
// predecessor "above" is eligible iff r>0 and T[r-1][c]>0, "left" iff c>0
// and T[r][c-1]>0. With both eligible it moves up with probability
// T[r-1][c]/(T[r-1][c]+T[r][c-1]); with one eligible it takes it.
// Each visited cell is prepended, so the result runs origin → destination
// and has exactly R+C-1 coordinates.
//
// t must be the table Count produced for g. A nil src uses a deterministic
// default stream (see NewSource).
//
// Returns:
//   - (nil, nil) when t.Total() == 0: no path exists.
//   - ErrDimensionMismatch when t and g differ in shape.
//   - ErrSaturated when the total itself overflowed. Overflow confined to
//     cells that cannot reach the destination does not matter: a clamped
//     count propagates to every cell it feeds, so an exact total implies
//     exact weights along every walk back from the destination.
//   - ErrInconsistentTable when the walk strands before the origin.
//
// Complexity: O(R+C) time and memory.
func Sample(g *grid.Grid, t *Table, src Source) (Path, error) {
	if !t.matches(g) {
		return nil, ErrDimensionMismatch
	}
	if t.Total() == 0 {
		return nil, nil
	}
	if t.saturated && t.Total() == math.MaxUint64 {
		return nil, ErrSaturated
	}
	if src == nil {
		src = NewSource(0)
	}

	r, c := t.rows-1, t.cols-1
	n := r + c + 1
	// Filled from the back so the result needs no reversal.
	out := make(Path, n)
	k := n - 1
	for r > 0 || c > 0 {
		out[k] = Coord{Row: r, Col: c}
		k--

		var up, left uint64
		if r > 0 {
			up = t.At(r-1, c)
		}
		if c > 0 {
			left = t.At(r, c-1)
		}

		switch {
		case up > 0 && left > 0:
			if src.Float64() < float64(up)/float64(up+left) {
				r--
			} else {
				c--
			}
		case up > 0:
			r--
		case left > 0:
			c--
		default:
			// Only reachable when t was not computed from g.
			return nil, ErrInconsistentTable
		}
	}
	out[0] = Coord{}
	return out, nil
}
