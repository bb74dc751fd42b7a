// Package grid models a rectangular obstacle grid for lattice path problems.
//
// What:
//
//   - Grid is an immutable R×C mask of Free and Blocked cells, stored row-major.
//   - Cells are addressed by (row, col); (0,0) is the origin, (R-1,C-1) the destination.
//   - Edits (WithCell, Toggle, Cleared) return a new Grid and never touch the receiver.
//
// Why:
//
//   - Path counting tables are pure functions of the grid; immutable snapshots
//     make "recompute on every change" the only possible lifecycle.
//
// Complexity:
//
//   - New, FromMask, Parse, WithCell, Toggle, Cleared: O(R×C) time and memory.
//   - State, Blocked, InBounds, Index, Coordinate:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a textual row contains an unknown glyph.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// The package does not enforce that the origin and destination are free;
// that is the caller's invariant (see package session).
package grid
