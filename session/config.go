package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/GreenMarioh/unique-paths-visualizer/reveal"
)

// Defaults mirror the visualizer's input fields.
const (
	DefaultRows   = 6
	DefaultCols   = 6
	DefaultMinDim = 2
	DefaultMaxDim = 12
)

var (
	// ErrDimensionOutOfRange indicates a row or column count outside [MinDim, MaxDim].
	ErrDimensionOutOfRange = errors.New("session: grid dimension out of range")
	// ErrInvalidConfig indicates inconsistent bounds or a negative delay.
	ErrInvalidConfig = errors.New("session: invalid config")
	// ErrNoPaths indicates an animation was requested on a grid with no path.
	ErrNoPaths = errors.New("session: no path from start to end")
)

// Config holds the caller-side settings of a Session.
type Config struct {
	// Rows and Cols are the initial grid dimensions.
	Rows, Cols int
	// MinDim and MaxDim bound both dimensions for New, Resize and Load.
	MinDim, MaxDim int
	// Delay is the pause between revealed path cells.
	Delay time.Duration
	// Seed fixes the sampling stream; 0 seeds from the wall clock.
	Seed int64
	// ShowCounts is the initial state of the count overlay.
	ShowCounts bool
}

// DefaultConfig returns a 6×6 grid bounded to 2..12 with the default reveal delay.
func DefaultConfig() Config {
	return Config{
		Rows:   DefaultRows,
		Cols:   DefaultCols,
		MinDim: DefaultMinDim,
		MaxDim: DefaultMaxDim,
		Delay:  reveal.DefaultDelay,
	}
}

// Validate checks bounds, dimensions and delay.
func (c Config) Validate() error {
	if c.MinDim < 1 || c.MaxDim < c.MinDim {
		return fmt.Errorf("%w: bounds [%d,%d]", ErrInvalidConfig, c.MinDim, c.MaxDim)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalidConfig, c.Delay)
	}
	return c.checkDims(c.Rows, c.Cols)
}

func (c Config) checkDims(rows, cols int) error {
	if rows < c.MinDim || rows > c.MaxDim || cols < c.MinDim || cols > c.MaxDim {
		return fmt.Errorf("%w: %dx%d not within [%d,%d]", ErrDimensionOutOfRange, rows, cols, c.MinDim, c.MaxDim)
	}
	return nil
}
