package paths_test

import (
	"testing"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
	"github.com/GreenMarioh/unique-paths-visualizer/paths"
)

// benchGrid builds an n×n grid with a diagonal stripe of obstacles every
// third cell, leaving the corners free.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	mask := make([][]int, n)
	for r := range mask {
		mask[r] = make([]int, n)
		for c := range mask[r] {
			if (r+2*c)%7 == 3 {
				mask[r][c] = 1
			}
		}
	}
	mask[0][0], mask[n-1][n-1] = 0, 0
	g, err := grid.FromMask(mask)
	if err != nil {
		b.Fatalf("FromMask failed: %v", err)
	}
	return g
}

func benchmarkCount(b *testing.B, n int) {
	g := benchGrid(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = paths.Count(g)
	}
}

// BenchmarkCount_12 covers the largest size the visualizer allows.
func BenchmarkCount_12(b *testing.B) { benchmarkCount(b, 12) }

// BenchmarkCount_34 covers the largest exact size.
func BenchmarkCount_34(b *testing.B) { benchmarkCount(b, 34) }

// BenchmarkSample_12 measures one backward walk on a 12×12 grid.
func BenchmarkSample_12(b *testing.B) {
	g := benchGrid(b, 12)
	t := paths.Count(g)
	src := paths.NewSource(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := paths.Sample(g, t, src); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}
