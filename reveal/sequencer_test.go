package reveal_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenMarioh/unique-paths-visualizer/paths"
	"github.com/GreenMarioh/unique-paths-visualizer/reveal"
)

//----------------------------------------------------------------------------//
// Test clocks
//----------------------------------------------------------------------------//

// manualTimer fires only when the test calls fire.
type manualTimer struct {
	ch       chan time.Time
	mu       sync.Mutex
	stopped  bool
	duration time.Duration
}

func (t *manualTimer) C() <-chan time.Time { return t.ch }

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

func (t *manualTimer) fire() { t.ch <- time.Time{} }

// manualClock hands every new timer to the test through timers.
type manualClock struct {
	timers chan *manualTimer
}

func newManualClock() *manualClock {
	return &manualClock{timers: make(chan *manualTimer, 64)}
}

func (c *manualClock) NewTimer(d time.Duration) reveal.Timer {
	t := &manualTimer{ch: make(chan time.Time, 1), duration: d}
	c.timers <- t
	return t
}

// next waits for the sequencer to arm its next timer.
func (c *manualClock) next(t *testing.T) *manualTimer {
	t.Helper()
	select {
	case tm := <-c.timers:
		return tm
	case <-time.After(2 * time.Second):
		t.Fatal("sequencer never armed a timer")
		return nil
	}
}

// instantClock fires every timer immediately and records requested delays.
type instantClock struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (c *instantClock) NewTimer(d time.Duration) reveal.Timer {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()
	t := &manualTimer{ch: make(chan time.Time, 1), duration: d}
	t.fire()
	return t
}

func samplePath() paths.Path {
	return paths.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
}

func recv(t *testing.T, ch <-chan reveal.Frame) reveal.Frame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
		return reveal.Frame{}
	}
}

func recvErr(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return")
		return nil
	}
}

//----------------------------------------------------------------------------//
// Tests
//----------------------------------------------------------------------------//

// TestPlay_OrderAndPrefixes checks frames arrive in path order with growing
// prefixes and a single Done frame at the end.
func TestPlay_OrderAndPrefixes(t *testing.T) {
	clk := &instantClock{}
	seq := reveal.New(reveal.WithClock(clk), reveal.WithDelay(25*time.Millisecond))
	path := samplePath()

	var frames []reveal.Frame
	err := seq.Play(context.Background(), path, func(f reveal.Frame) {
		frames = append(frames, f)
	})
	require.NoError(t, err)
	require.Len(t, frames, len(path))

	want := make([]reveal.Frame, len(path))
	for i := range path {
		want[i] = reveal.Frame{
			Index:    i,
			Coord:    path[i],
			Revealed: path.Prefix(i + 1),
			Done:     i == len(path)-1,
		}
	}
	if diff := cmp.Diff(want, frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(path)-1, seq.Step())
	assert.False(t, seq.Active())

	clk.mu.Lock()
	defer clk.mu.Unlock()
	require.Len(t, clk.delays, len(path))
	for _, d := range clk.delays {
		assert.Equal(t, 25*time.Millisecond, d)
	}
}

// TestPlay_FramesDoNotAlias verifies frames own their prefix.
func TestPlay_FramesDoNotAlias(t *testing.T) {
	seq := reveal.New(reveal.WithClock(&instantClock{}))
	path := samplePath()
	var first reveal.Frame
	require.NoError(t, seq.Play(context.Background(), path, func(f reveal.Frame) {
		if f.Index == 0 {
			first = f
		}
	}))
	first.Revealed[0] = paths.Coord{Row: 7, Col: 7}
	assert.Equal(t, paths.Coord{}, path[0])
}

// TestPlay_OneFramePerTick ensures nothing is emitted before its timer fires.
func TestPlay_OneFramePerTick(t *testing.T) {
	clk := newManualClock()
	seq := reveal.New(reveal.WithClock(clk))
	path := samplePath()

	frames := make(chan reveal.Frame, len(path))
	errc := make(chan error, 1)
	go func() {
		errc <- seq.Play(context.Background(), path, func(f reveal.Frame) { frames <- f })
	}()

	for i := range path {
		tm := clk.next(t)
		assert.Equal(t, reveal.DefaultDelay, tm.duration)
		select {
		case f := <-frames:
			t.Fatalf("frame %d emitted before tick %d", f.Index, i)
		default:
		}
		assert.True(t, seq.Active())
		tm.fire()
		f := recv(t, frames)
		assert.Equal(t, i, f.Index)
	}
	require.NoError(t, recvErr(t, errc))
}

// TestPlay_EmptyPath returns immediately without frames.
func TestPlay_EmptyPath(t *testing.T) {
	seq := reveal.New(reveal.WithClock(newManualClock()))
	called := false
	err := seq.Play(context.Background(), nil, func(reveal.Frame) { called = true })
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, -1, seq.Step())
}

// TestPlay_NilEmit still tracks the step.
func TestPlay_NilEmit(t *testing.T) {
	seq := reveal.New(reveal.WithClock(&instantClock{}))
	require.NoError(t, seq.Play(context.Background(), samplePath(), nil))
	assert.Equal(t, 4, seq.Step())
}

// TestPlay_ContextCancel stops at the next suspension point.
func TestPlay_ContextCancel(t *testing.T) {
	clk := newManualClock()
	seq := reveal.New(reveal.WithClock(clk))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan reveal.Frame, 8)
	errc := make(chan error, 1)
	go func() {
		errc <- seq.Play(ctx, samplePath(), func(f reveal.Frame) { frames <- f })
	}()

	clk.next(t).fire()
	recv(t, frames)
	tm := clk.next(t)
	cancel()

	err := recvErr(t, errc)
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, tm.stopped, "pending timer must be stopped")
	assert.Equal(t, 0, seq.Step())
	assert.False(t, seq.Active())
}

// TestStop cancels the active run and resets the step.
func TestStop(t *testing.T) {
	clk := newManualClock()
	seq := reveal.New(reveal.WithClock(clk))

	frames := make(chan reveal.Frame, 8)
	errc := make(chan error, 1)
	go func() {
		errc <- seq.Play(context.Background(), samplePath(), func(f reveal.Frame) { frames <- f })
	}()

	clk.next(t).fire()
	recv(t, frames)
	clk.next(t)
	seq.Stop()

	require.ErrorIs(t, recvErr(t, errc), reveal.ErrStopped)
	assert.Equal(t, -1, seq.Step())
	assert.False(t, seq.Active())

	// Stop with nothing running is a no-op.
	seq.Stop()
}

// TestPlay_Supersede replaces a running reveal with a new one.
func TestPlay_Supersede(t *testing.T) {
	clk := newManualClock()
	seq := reveal.New(reveal.WithClock(clk))

	first := samplePath()
	second := paths.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}

	aFrames := make(chan reveal.Frame, 8)
	aErr := make(chan error, 1)
	go func() {
		aErr <- seq.Play(context.Background(), first, func(f reveal.Frame) { aFrames <- f })
	}()
	clk.next(t).fire()
	recv(t, aFrames)
	clk.next(t) // A is now parked on its second tick

	bFrames := make(chan reveal.Frame, 8)
	bErr := make(chan error, 1)
	go func() {
		bErr <- seq.Play(context.Background(), second, func(f reveal.Frame) { bFrames <- f })
	}()

	require.ErrorIs(t, recvErr(t, aErr), reveal.ErrSuperseded)

	for i := range second {
		clk.next(t).fire()
		f := recv(t, bFrames)
		assert.Equal(t, second[i], f.Coord)
	}
	require.NoError(t, recvErr(t, bErr))
	assert.Equal(t, len(second)-1, seq.Step())

	select {
	case f := <-aFrames:
		t.Fatalf("superseded reveal emitted frame %d", f.Index)
	default:
	}
}

// TestOptions covers defaults and invalid option values.
func TestOptions(t *testing.T) {
	seq := reveal.New()
	assert.Equal(t, reveal.DefaultDelay, seq.Delay())
	assert.Equal(t, -1, seq.Step())
	assert.False(t, seq.Active())

	assert.Panics(t, func() { reveal.WithDelay(-time.Second) })
	assert.Panics(t, func() { reveal.WithClock(nil) })
	assert.NotPanics(t, func() { reveal.New(reveal.WithLogger(nil)) })
}

// TestRealClock exercises the wall-clock adapter with a tiny delay.
func TestRealClock(t *testing.T) {
	seq := reveal.New(reveal.WithDelay(time.Millisecond))
	n := 0
	err := seq.Play(context.Background(), samplePath(), func(reveal.Frame) { n++ })
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	tm := reveal.RealClock{}.NewTimer(time.Hour)
	assert.True(t, tm.Stop())
}
