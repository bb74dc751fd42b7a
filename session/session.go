// Package session holds the state a visualizer keeps around the path engine:
// the editable grid, its count table, the sampled path and the reveal in
// progress.
//
// A Session enforces the caller-side rules the engine leaves out: the start
// and end cells stay free, dimensions stay within the configured bounds, and
// every edit recomputes the table and discards any path or animation.
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
	"github.com/GreenMarioh/unique-paths-visualizer/paths"
	"github.com/GreenMarioh/unique-paths-visualizer/reveal"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for edits and animations.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock drives reveal timing from c instead of the wall clock.
func WithClock(c reveal.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithSource overrides the sampling source chosen from Config.Seed. The
// given source then serves RandomPath and every Animate call.
func WithSource(src paths.Source) Option {
	return func(s *Session) {
		s.src = src
		s.fixedSrc = true
	}
}

// Session is safe for concurrent use.
type Session struct {
	cfg    Config
	logger *slog.Logger
	clock  reveal.Clock
	seq    *reveal.Sequencer

	mu         sync.Mutex
	seed       int64
	src        paths.Source
	fixedSrc   bool
	runs       uint64
	stopAnim   context.CancelCauseFunc
	grid       *grid.Grid
	table      *paths.Table
	path       paths.Path
	revealed   paths.Path
	step       int
	gen        uint64
	showCounts bool
}

// New validates cfg and returns a Session with an all-free grid.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, showCounts: cfg.ShowCounts, step: -1}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !s.fixedSrc {
		s.seed = cfg.Seed
		if s.seed == 0 {
			s.seed = time.Now().UnixNano()
		}
		s.src = paths.NewSource(s.seed)
	}
	seqOpts := []reveal.Option{reveal.WithDelay(cfg.Delay), reveal.WithLogger(s.logger)}
	if s.clock != nil {
		seqOpts = append(seqOpts, reveal.WithClock(s.clock))
	}
	s.seq = reveal.New(seqOpts...)

	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.replaceLocked(g, "init")
	s.mu.Unlock()
	return s, nil
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

//----------------------------------------------------------------------------//
// Edits
//----------------------------------------------------------------------------//

// Resize replaces the grid with an all-free rows×cols grid.
// Returns ErrDimensionOutOfRange outside [MinDim, MaxDim].
func (s *Session) Resize(rows, cols int) error {
	if err := s.cfg.checkDims(rows, cols); err != nil {
		return err
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(g, "resize")
	return nil
}

// Toggle flips cell (r,c). The start and end cells cannot be edited; for
// them Toggle returns false and leaves the session untouched.
func (s *Session) Toggle(r, c int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid.IsCorner(r, c) {
		return false, nil
	}
	g, err := s.grid.Toggle(r, c)
	if err != nil {
		return false, err
	}
	s.replaceLocked(g, "toggle")
	return true, nil
}

// Paint sets cell (r,c) to blocked or free, as a drag stroke does. Corners
// are ignored, as are cells already in the requested state.
func (s *Session) Paint(r, c int, blocked bool) (bool, error) {
	state := grid.Free
	if blocked {
		state = grid.Blocked
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid.IsCorner(r, c) {
		return false, nil
	}
	if !s.grid.InBounds(r, c) {
		return false, grid.ErrOutOfBounds
	}
	if s.grid.State(r, c) == state {
		return false, nil
	}
	g, err := s.grid.WithCell(r, c, state)
	if err != nil {
		return false, err
	}
	s.replaceLocked(g, "paint")
	return true, nil
}

// Clear removes every obstacle, keeping the dimensions.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(s.grid.Cleared(), "clear")
}

// Load replaces the grid with g, forcing the start and end cells free.
// Returns ErrDimensionOutOfRange if g does not fit the configured bounds.
func (s *Session) Load(g *grid.Grid) error {
	if err := s.cfg.checkDims(g.Rows(), g.Cols()); err != nil {
		return err
	}
	g, err := g.WithCell(0, 0, grid.Free)
	if err != nil {
		return err
	}
	dr, dc := g.Destination()
	if g, err = g.WithCell(dr, dc, grid.Free); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(g, "load")
	return nil
}

// replaceLocked installs g, recomputes the table and drops any path or
// reveal derived from the previous grid. s.mu must be held.
func (s *Session) replaceLocked(g *grid.Grid, reason string) {
	s.cancelAnimLocked(reveal.ErrStopped)
	s.seq.Stop()
	s.grid = g
	s.table = paths.Count(g)
	s.path = nil
	s.revealed = nil
	s.step = -1
	s.gen++
	s.logger.Debug("grid updated",
		"reason", reason,
		"rows", g.Rows(),
		"cols", g.Cols(),
		"blocked", g.BlockedCount(),
		"total", s.table.Total(),
		"saturated", s.table.Saturated(),
	)
}

//----------------------------------------------------------------------------//
// Paths
//----------------------------------------------------------------------------//

// RandomPath samples a new path and reveals it at once. It returns an empty
// path when no path exists.
func (s *Session) RandomPath() (paths.Path, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAnimLocked(reveal.ErrStopped)
	s.seq.Stop()
	p, err := paths.Sample(s.grid, s.table, s.src)
	if err != nil {
		return nil, err
	}
	s.gen++
	s.path = p
	s.revealed = p
	s.step = len(p) - 1
	return p, nil
}

// Animate samples a fresh path and reveals it through the sequencer, calling
// emit after each frame has been recorded. It blocks until the reveal ends.
// A running animation is replaced; an edit or RandomPath during the reveal,
// or before its first frame, stops it and Animate returns reveal.ErrStopped.
// Returns ErrNoPaths when the grid has no path.
//
// Unless WithSource was given, each call samples from its own stream derived
// from the seed and the run number, so with a fixed Config.Seed the n-th
// animation always shows the same path.
func (s *Session) Animate(ctx context.Context, emit func(reveal.Frame)) error {
	s.mu.Lock()
	if s.table.Total() == 0 {
		s.mu.Unlock()
		return ErrNoPaths
	}
	src := s.src
	if !s.fixedSrc {
		s.runs++
		src = paths.DeriveSource(s.seed, s.runs)
	}
	p, err := paths.Sample(s.grid, s.table, src)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.cancelAnimLocked(reveal.ErrSuperseded)
	animCtx, cancel := context.WithCancelCause(ctx)
	s.stopAnim = cancel
	s.gen++
	gen := s.gen
	s.path = p
	s.revealed = nil
	s.step = -1
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.gen == gen {
			s.stopAnim = nil
		}
		s.mu.Unlock()
		cancel(nil)
	}()

	s.logger.Info("animating path", "steps", len(p))
	return s.seq.Play(animCtx, p, func(f reveal.Frame) {
		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.revealed = f.Revealed
		s.step = f.Index
		s.mu.Unlock()
		if emit != nil {
			emit(f)
		}
	})
}

// cancelAnimLocked ends the animation started by the last Animate, even if
// its reveal has not begun yet. s.mu must be held.
func (s *Session) cancelAnimLocked(cause error) {
	if s.stopAnim != nil {
		s.stopAnim(cause)
		s.stopAnim = nil
	}
}

// Stop halts a running animation, keeping the cells revealed so far.
func (s *Session) Stop() {
	s.mu.Lock()
	s.cancelAnimLocked(reveal.ErrStopped)
	s.mu.Unlock()
	s.seq.Stop()
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// Grid returns the current grid snapshot.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Table returns the count table of the current grid.
func (s *Session) Table() *paths.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Total returns the number of paths from start to end.
func (s *Session) Total() uint64 { return s.Table().Total() }

// Path returns the last sampled path, or nil.
func (s *Session) Path() paths.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Revealed returns the part of the path shown so far.
func (s *Session) Revealed() paths.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed
}

// Step returns the index of the most recently revealed cell, or -1.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Animating reports whether a reveal is in progress.
func (s *Session) Animating() bool { return s.seq.Active() }

// ShowCounts reports whether the count overlay is on.
func (s *Session) ShowCounts() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showCounts
}

// SetShowCounts turns the count overlay on or off.
func (s *Session) SetShowCounts(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showCounts = on
}
