package reveal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/GreenMarioh/unique-paths-visualizer/paths"
)

var (
	// ErrSuperseded is returned by a Play that was replaced by a newer Play.
	ErrSuperseded = errors.New("reveal: superseded by a newer animation")
	// ErrStopped is returned by a Play that was cancelled through Stop.
	ErrStopped = errors.New("reveal: animation stopped")
)

// DefaultDelay is the pause before each coordinate is revealed.
const DefaultDelay = 100 * time.Millisecond

const (
	panicDelayNegative = "reveal: WithDelay: delay must be non-negative"
	panicClockNil      = "reveal: WithClock: clock must not be nil"
)

// Frame is one step of a reveal.
type Frame struct {
	// Index of the coordinate revealed by this frame (0 = origin).
	Index int
	// Coord is path[Index].
	Coord paths.Coord
	// Revealed is a copy of path[:Index+1].
	Revealed paths.Path
	// Done is true on the frame that reveals the last coordinate.
	Done bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithDelay sets the pause before each frame. Panics if d is negative.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic(panicDelayNegative)
	}
	return func(s *Sequencer) { s.delay = d }
}

// WithClock replaces the wall clock, typically with a manual one in tests.
// Panics if c is nil.
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicClockNil)
	}
	return func(s *Sequencer) { s.clock = c }
}

// WithLogger sets the logger for run lifecycle events. nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequencer) { s.logger = l }
}

// Sequencer reveals a path one coordinate per tick. At most one reveal is
// active: a new Play cancels the running one and waits for it to unwind
// before starting. All methods are safe for concurrent use.
type Sequencer struct {
	clock  Clock
	delay  time.Duration
	logger *slog.Logger

	// admit serializes the cancel-wait-start handoff between Plays.
	admit sync.Mutex

	mu     sync.Mutex
	run    *run
	step   int
	nextID uint64
}

type run struct {
	id     uint64
	cancel context.CancelCauseFunc
	done   chan struct{}
}

// New returns a Sequencer with DefaultDelay and the wall clock unless
// overridden by opts.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		clock: RealClock{},
		delay: DefaultDelay,
		step:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Delay returns the configured pause between frames.
func (s *Sequencer) Delay() time.Duration { return s.delay }

// Play reveals path in order, origin first, and blocks until the reveal ends.
// Before each coordinate it waits one delay, then calls emit with the frame.
// emit runs on the caller's goroutine and must not call Play.
//
// Returns:
//   - nil once the last coordinate has been emitted, or at once for an empty path.
//   - ErrSuperseded if another Play replaced this one.
//   - ErrStopped if Stop was called.
//   - ctx.Err() (or its cause) if ctx was cancelled.
func (s *Sequencer) Play(ctx context.Context, path paths.Path, emit func(Frame)) error {
	if len(path) == 0 {
		return nil
	}
	r, runCtx := s.begin(ctx)
	defer s.end(r)

	log := s.logger.With("run", r.id)
	log.Debug("reveal started", "steps", len(path), "delay", s.delay)

	for i, c := range path {
		t := s.clock.NewTimer(s.delay)
		select {
		case <-runCtx.Done():
			t.Stop()
			err := context.Cause(runCtx)
			log.Debug("reveal cancelled", "step", i, "reason", err)
			return err
		case <-t.C():
		}

		// Stop cancels under mu, so a run stopped after its timer fired
		// never records the step.
		s.mu.Lock()
		if runCtx.Err() != nil {
			s.mu.Unlock()
			return context.Cause(runCtx)
		}
		s.step = i
		s.mu.Unlock()

		if emit != nil {
			emit(Frame{
				Index:    i,
				Coord:    c,
				Revealed: path.Prefix(i + 1),
				Done:     i == len(path)-1,
			})
		}
	}
	log.Debug("reveal finished", "steps", len(path))
	return nil
}

// Stop cancels the active reveal, if any, and resets Step to -1.
// It does not wait for the cancelled Play to return.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != nil {
		s.run.cancel(ErrStopped)
	}
	s.step = -1
}

// Active reports whether a reveal is in progress.
func (s *Sequencer) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run != nil
}

// Step returns the index of the most recently revealed coordinate, or -1 if
// nothing has been revealed since the last Play started or Stop was called.
func (s *Sequencer) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// begin cancels any active run, waits for it to unwind and registers a new one.
func (s *Sequencer) begin(ctx context.Context) (*run, context.Context) {
	s.admit.Lock()
	defer s.admit.Unlock()

	s.mu.Lock()
	prev := s.run
	s.mu.Unlock()
	if prev != nil {
		prev.cancel(ErrSuperseded)
		<-prev.done
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	s.mu.Lock()
	s.nextID++
	r := &run{id: s.nextID, cancel: cancel, done: make(chan struct{})}
	s.run = r
	s.step = -1
	s.mu.Unlock()
	return r, runCtx
}

func (s *Sequencer) end(r *run) {
	r.cancel(nil)
	s.mu.Lock()
	if s.run == r {
		s.run = nil
	}
	s.mu.Unlock()
	close(r.done)
}
