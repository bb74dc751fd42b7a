package reveal

import "time"

// Clock creates timers. Tests substitute a manual clock so reveal timing is
// driven step by step instead of by wall time.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// Timer is the subset of *time.Timer the sequencer needs.
type Timer interface {
	// C delivers the fire time once the timer expires.
	C() <-chan time.Time
	// Stop prevents the timer from firing. It reports whether the timer was active.
	Stop() bool
}

// RealClock is a Clock backed by package time.
type RealClock struct{}

// NewTimer wraps time.NewTimer.
func (RealClock) NewTimer(d time.Duration) Timer {
	return &realTimer{timer: time.NewTimer(d)}
}

type realTimer struct {
	timer *time.Timer
}

func (t *realTimer) C() <-chan time.Time { return t.timer.C }
func (t *realTimer) Stop() bool          { return t.timer.Stop() }
