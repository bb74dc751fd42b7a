// Package uniquepaths counts, samples and animates monotone paths through a
// rectangular grid with obstacles.
//
// 🚀 What is it?
//
//	A small engine plus a terminal front end:
//		• grid:    immutable R×C obstacle grids, parsing and copy-on-write edits
//		• paths:   the path-count table (exact up to 34×34) and uniform sampling
//		• reveal:  a cancel-and-replace sequencer emitting one cell per tick
//		• session: editable state tying the three together, safe for concurrent use
//		• render:  lipgloss drawing of the grid, counts and revealed path
//
// A path starts at the top-left cell, ends at the bottom-right cell and moves
// only right or down through free cells. Every such path has R+C-1 cells.
//
// Quick ASCII example:
//
//	S . .        1 1 1
//	. x .   =>   1 0 1   =>   2 paths
//	. . E        1 1 2
//
// The uniquepaths command (cmd/uniquepaths) exposes count, sample and
// animate subcommands driven by flags or a YAML file.
//
//	go install github.com/GreenMarioh/unique-paths-visualizer/cmd/uniquepaths@latest
package uniquepaths
