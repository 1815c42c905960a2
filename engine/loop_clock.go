package engine

import "time"

// LoopClock is a caret.FrameClock for hosts that own their event loop.
// The consumer registers the next frame callback with RequestFrame; the
// host loop calls Fire once per iteration, typically off a ticker. At most
// one callback is pending; Fire with nothing pending is a no-op, so a loop
// may tick faster than frames are requested.
//
// LoopClock is not safe for concurrent use: RequestFrame and Fire must run
// on the same goroutine, which is exactly the cooperative single-threaded
// model the animator assumes.
type LoopClock struct {
	pending func(now time.Time)
}

// NewLoopClock creates an empty loop clock.
func NewLoopClock() *LoopClock {
	return &LoopClock{}
}

// RequestFrame registers fn to run on the next Fire.
func (c *LoopClock) RequestFrame(fn func(now time.Time)) {
	c.pending = fn
}

// Fire runs the pending callback, if any, with the given timestamp. The
// callback is cleared before it runs so it can re-request the next frame.
func (c *LoopClock) Fire(now time.Time) {
	fn := c.pending
	if fn == nil {
		return
	}
	c.pending = nil
	fn(now)
}

// Pending reports whether a frame callback is waiting.
func (c *LoopClock) Pending() bool {
	return c.pending != nil
}
