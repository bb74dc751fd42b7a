package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenMarioh/unique-paths-visualizer/session"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestCount_Default(t *testing.T) {
	out, _, err := run(t, "count")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Unique Paths: 252")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	var last []string
	for _, l := range lines {
		if f := strings.Fields(l); len(f) == 6 && f[0] == "1" && f[1] == "6" {
			last = f
		}
	}
	assert.Equal(t, []string{"1", "6", "21", "56", "126", "252"}, last)
}

func TestCount_Obstacle(t *testing.T) {
	out, _, err := run(t, "count", "--rows", "3", "--cols", "3", "--obstacle", "1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Unique Paths: 2")
	assert.Contains(t, out, "1 0 1")
}

func TestCount_DimensionOutOfRange(t *testing.T) {
	_, _, err := run(t, "count", "--rows", "1", "--cols", "3")
	require.ErrorIs(t, err, session.ErrDimensionOutOfRange)

	_, _, err = run(t, "count", "--rows", "20", "--cols", "20")
	require.ErrorIs(t, err, session.ErrDimensionOutOfRange)

	out, _, err := run(t, "count", "--rows", "20", "--cols", "20", "--max-dim", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Unique Paths: 35345263800")
}

func TestCount_BadObstacle(t *testing.T) {
	_, _, err := run(t, "count", "--obstacle", "1;1")
	require.ErrorIs(t, err, errBadObstacle)

	_, _, err = run(t, "count", "--rows", "3", "--cols", "3", "--obstacle", "5,5")
	require.Error(t, err)
}

func TestCount_GridFile(t *testing.T) {
	p := writeFile(t, "maze.txt", "...\n.#.\n\n...\n")
	out, _, err := run(t, "count", "--grid", p)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Unique Paths: 2")
}

func TestCount_ConfigFile(t *testing.T) {
	p := writeFile(t, "cfg.yaml", `
rows: 3
cols: 4
obstacles:
  - [0, 1]
log_level: error
`)
	out, _, err := run(t, "count", "--config", p)
	require.NoError(t, err)
	// Only the left column is open from the start, so paths go down first.
	assert.Contains(t, out, "Total Unique Paths: 4")

	// Flags win over the file.
	out, _, err = run(t, "count", "--config", p, "--cols", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Unique Paths: 2")
}

func TestSample_Seeded(t *testing.T) {
	a, _, err := run(t, "sample", "--rows", "4", "--cols", "4", "--seed", "7")
	require.NoError(t, err)
	b, _, err := run(t, "sample", "--rows", "4", "--cols", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	first := strings.SplitN(a, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(first, "(0,0) -> "))
	assert.True(t, strings.HasSuffix(first, " -> (3,3)"))
	assert.Contains(t, a, "Current path: 7 steps")
}

func TestSample_NoPath(t *testing.T) {
	out, _, err := run(t, "sample", "--grid", writeFile(t, "wall.txt", ".#\n#.\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "no path")
	assert.Contains(t, out, "Total Unique Paths: 0")
}

func TestAnimate(t *testing.T) {
	out, _, err := run(t, "animate", "--rows", "2", "--cols", "3", "--delay", "0s", "--no-clear", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Total Unique Paths: 3"))
	assert.Contains(t, out, "Current path: 1 steps (animating...)")
	assert.Contains(t, out, "Current path: 4 steps\n")
	assert.NotContains(t, out, clearScreen)
}

func TestAnimate_NoPath(t *testing.T) {
	_, _, err := run(t, "animate", "--grid", writeFile(t, "wall.txt", ".#\n#.\n"), "--delay", "0s")
	require.ErrorIs(t, err, session.ErrNoPaths)
}

func TestLogLevel(t *testing.T) {
	_, errOut, err := run(t, "count", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configured")

	_, _, err = run(t, "count", "--log-level", "loud")
	require.Error(t, err)
}

// TestAnimate_PlainOutput redraws in place only on a terminal; a buffer
// gets appended frames without escape codes.
func TestAnimate_PlainOutput(t *testing.T) {
	out, _, err := run(t, "animate", "--rows", "2", "--cols", "2", "--delay", "0s", "--seed", "3")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, 3, strings.Count(out, "Total Unique Paths: 2"))

	assert.False(t, isTerminal(&bytes.Buffer{}))
	f, err := os.Create(filepath.Join(t.TempDir(), "frames.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestCount_GridConflicts(t *testing.T) {
	p := writeFile(t, "maze.txt", "...\n.#.\n...\n")

	_, _, err := run(t, "count", "--grid", p, "--rows", "4")
	require.ErrorIs(t, err, errGridConflict)
	assert.Contains(t, err.Error(), "--rows")

	_, _, err = run(t, "count", "--grid", p, "--cols", "4", "--obstacle", "1,2")
	require.ErrorIs(t, err, errGridConflict)
	assert.Contains(t, err.Error(), "--cols, --obstacle")

	cfg := writeFile(t, "cfg.yaml", "grid: [\"..\", \"..\"]\nobstacles: [[0, 1]]\n")
	_, _, err = run(t, "count", "--config", cfg)
	require.ErrorIs(t, err, errGridConflict)
}
