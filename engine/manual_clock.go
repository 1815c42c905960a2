package engine

import (
	"sync"
	"time"
)

// ManualClock is a controllable time source for tests and scripted drivers.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set replaces the current time. Moving it backward is allowed; the
// animator clamps negative frame deltas to zero.
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the current time forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
