package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
	"github.com/GreenMarioh/unique-paths-visualizer/session"
)

var (
	errBadObstacle  = errors.New("obstacle must be written as row,col")
	errGridConflict = errors.New("a grid layout already fixes the size and obstacles")
)

// Config is the CLI configuration. It is read from YAML and then overridden
// by any flag given on the command line. A Grid layout sets the size and the
// obstacles itself: Rows and Cols are then unused and Obstacles must be empty.
type Config struct {
	Rows       int           `yaml:"rows"`
	Cols       int           `yaml:"cols"`
	MaxDim     int           `yaml:"max_dim"`
	Obstacles  [][]int       `yaml:"obstacles"`
	Grid       []string      `yaml:"grid"`
	Delay      time.Duration `yaml:"delay"`
	Seed       int64         `yaml:"seed"`
	ShowCounts bool          `yaml:"show_counts"`
	LogLevel   string        `yaml:"log_level"`
}

// defaultConfig mirrors session.DefaultConfig.
func defaultConfig() Config {
	d := session.DefaultConfig()
	return Config{
		Rows:     d.Rows,
		Cols:     d.Cols,
		MaxDim:   d.MaxDim,
		Delay:    d.Delay,
		LogLevel: "warn",
	}
}

// loadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// buildGrid returns the configured grid: the textual layout when present,
// otherwise a Rows×Cols grid with the listed obstacles.
func (c Config) buildGrid() (*grid.Grid, error) {
	if len(c.Grid) > 0 {
		if len(c.Obstacles) > 0 {
			return nil, fmt.Errorf("%w: obstacles", errGridConflict)
		}
		return grid.Parse(c.Grid)
	}
	g, err := grid.New(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	for _, rc := range c.Obstacles {
		if len(rc) != 2 {
			return nil, fmt.Errorf("%w: got %v", errBadObstacle, rc)
		}
		if g, err = g.WithCell(rc[0], rc[1], grid.Blocked); err != nil {
			return nil, fmt.Errorf("obstacle %v: %w", rc, err)
		}
	}
	return g, nil
}

// sessionConfig converts c for session.New, sized to g.
func (c Config) sessionConfig(g *grid.Grid) session.Config {
	sc := session.DefaultConfig()
	sc.Rows, sc.Cols = g.Rows(), g.Cols()
	if c.MaxDim > 0 {
		sc.MaxDim = c.MaxDim
	}
	sc.Delay = c.Delay
	sc.Seed = c.Seed
	sc.ShowCounts = c.ShowCounts
	return sc
}

// parseObstacle parses "r,c".
func parseObstacle(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", errBadObstacle, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errBadObstacle, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errBadObstacle, s)
	}
	return []int{r, c}, nil
}

// readGridFile reads a '.'/'#' layout, skipping blank lines.
func readGridFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	var lines []string
	for _, l := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
