// Package audio provides optional typewriter-style key-click feedback for
// the demo editor. Tones are generated procedurally; there are no assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickFreq     = 880.0
	clickDuration = 40 * time.Millisecond
)

// Clicker plays a short sine click per keypress. A disabled or
// uninitialized clicker is a cheap no-op, so callers never need to guard.
type Clicker struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
	ready   bool
}

// NewClicker creates a clicker. Volume is 0.0-1.0.
func NewClicker(enabled bool, volume float64) *Clicker {
	return &Clicker{enabled: enabled, volume: volume}
}

// Init brings up the speaker. Failure is non-fatal for callers; the demo
// runs silent without audio.
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled || c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// Click plays one key click.
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready || c.volume <= 0 {
		return
	}

	tone, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(clickDuration), tone),
		Base:     2,
		Volume:   gain(c.volume),
	})
}

// Close tears down the speaker.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}

// gain maps linear 0-1 volume onto the exponential scale effects.Volume
// expects, with full volume at 0 dB-equivalent.
func gain(v float64) float64 {
	if v >= 1 {
		return 0
	}
	return math.Log2(v)
}
