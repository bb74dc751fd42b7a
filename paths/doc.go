// Package paths counts and samples monotone lattice paths through an
// obstacle grid ("Unique Paths II").
//
// 🚀 What is computed?
//
//	A monotone path moves only down (row+1) or right (col+1) from the origin
//	(0,0) to the destination (R-1,C-1) and never enters a blocked cell.
//
//	  • Count builds the table T where T[r][c] is the number of monotone
//	    paths from the origin to (r,c) through free cells.
//	  • Sample draws one path uniformly at random among all T[R-1][C-1]
//	    paths, without enumerating them.
//
// Algorithm outline (Count):
//  1. If the origin is blocked, return an all-zero table.
//  2. T[0][0] = 1.
//  3. Row-major over every cell: blocked ⇒ 0; otherwise
//     T[r][c] = T[r-1][c] (r>0) + T[r][c-1] (c>0).
//
// Algorithm outline (Sample):
//  1. If T[R-1][C-1] == 0, return an empty path.
//  2. Walk backward from the destination. When both predecessors have
//     non-zero counts, step up with probability up/(up+left), otherwise
//     take the only predecessor available.
//  3. Prepend every visited cell; stop at the origin.
//
//	At each branch the split matches the number of paths threading through
//	each predecessor, so every complete path is equally likely.
//
// ⚙️ Usage:
//
//	g, _ := grid.Parse([]string{"...", ".#.", "..."})
//	t := paths.Count(g)
//	fmt.Println(t.Total()) // 2
//	p, err := paths.Sample(g, t, paths.NewSource(42))
//
// Performance:
//
//   - Count:  O(R·C) time, O(R·C) memory.
//   - Sample: O(R+C) time, O(R+C) memory.
//
// Limits:
//
//	Counts are uint64. Sums that overflow are clamped to math.MaxUint64 and
//	the table reports Saturated(); every grid up to 34×34 is exact.
//	Sample refuses a table whose total is clamped (ErrSaturated) and
//	samples normally when only unreachable dead ends overflowed.
package paths
