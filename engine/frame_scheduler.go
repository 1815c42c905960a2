package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameScheduler is a self-arming real-time caret.FrameClock for hosts
// without their own loop. Each RequestFrame arms a one-shot timer; because
// the consumer re-requests only after its callback completes, frames never
// overlap. Stop drops any armed timer and rejects further requests.
type FrameScheduler struct {
	clock    Clock
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped atomic.Bool
}

// NewFrameScheduler creates a scheduler firing roughly every interval.
// A non-positive interval falls back to DefaultFrameInterval; a nil clock
// falls back to the system clock.
func NewFrameScheduler(clock Clock, interval time.Duration) *FrameScheduler {
	if clock == nil {
		clock = NewSystemClock()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameScheduler{clock: clock, interval: interval}
}

// RequestFrame arms a timer to invoke fn after the frame interval. Calls
// after Stop are ignored.
func (s *FrameScheduler) RequestFrame(fn func(now time.Time)) {
	if s.stopped.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(s.interval, func() {
		if s.stopped.Load() {
			return
		}
		fn(s.clock.Now())
	})
}

// Stop cancels any pending frame and blocks future requests. Idempotent.
func (s *FrameScheduler) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
}
