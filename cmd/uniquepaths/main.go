// Command uniquepaths counts monotone paths through an obstacle grid, samples
// one uniformly at random and animates it in the terminal.
//
// Usage:
//
//	uniquepaths count   --rows 4 --cols 5 --obstacle 1,1 --obstacle 2,3
//	uniquepaths sample  --grid maze.txt --seed 42
//	uniquepaths animate --config visualizer.yaml --delay 150ms
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
