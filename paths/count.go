package paths

import (
	"math"
	"math/bits"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
)

// Count computes the path-count table for g.
//
// T[r][c] is the number of monotone (down/right) paths from (0,0) to (r,c)
// that visit free cells only. A blocked origin yields an all-zero table;
// that is the answer, not an error. The corner invariant (origin and
// destination free) is not checked here.
//
// Cells are filled row-major, so both predecessors of (r,c) are final before
// (r,c) is visited. Overflowing sums are clamped to math.MaxUint64 and the
// table is marked Saturated.
//
// Complexity: O(R·C) time, O(R·C) memory.
func Count(g *grid.Grid) *Table {
	rows, cols := g.Rows(), g.Cols()
	t := &Table{rows: rows, cols: cols, counts: make([]uint64, rows*cols)}
	if g.Blocked(0, 0) {
		return t
	}

	t.counts[0] = 1
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 && c == 0 {
				continue
			}
			i := r*cols + c
			if g.Blocked(r, c) {
				t.counts[i] = 0
				continue
			}
			var sum uint64
			if r > 0 {
				sum = t.counts[i-cols]
			}
			if c > 0 {
				var carry uint64
				sum, carry = bits.Add64(sum, t.counts[i-1], 0)
				if carry != 0 {
					sum = math.MaxUint64
					t.saturated = true
				}
			}
			t.counts[i] = sum
		}
	}
	return t
}
