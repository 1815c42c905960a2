// Package caret implements a frame-driven caret animator: it samples the
// true caret location of a text-editing surface once per frame, glides a
// rendered caret icon toward it with a time-bounded interpolation, and
// replaces the hard on/off blink with a sinusoidal fade.
//
// The package is host-agnostic. The editing surface, rectangle measurement,
// render target, pointer state, and frame clock are all injected through
// small interfaces (see host.go), so the animator can run against a DOM-like
// editor, a terminal host, or scripted fakes in tests.
package caret

// Point is a physical screen position in the host's coordinate space.
type Point struct {
	Left float64
	Top  float64
}

// Position is the logical character-grid location of the true caret.
// It changes on typing, arrow keys and clicks, but not on scroll or zoom.
type Position struct {
	Line   int
	Column int
}

// Rect is a measured caret rectangle in screen coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Height float64
}

// NodePoint addresses a location inside the host document: an opaque node
// handle plus a character offset within it.
type NodePoint struct {
	Node   any
	Offset int
}

// Selection is the host's current text selection. For an ordinary caret the
// selection is collapsed and Anchor equals Focus; for an active selection
// Focus is the end the caret logically sits at.
type Selection struct {
	Anchor    NodePoint
	Focus     NodePoint
	Collapsed bool
}

// Probe is a measurement range handed to the host. Start and End may be the
// same point (zero-width probe) or one unit apart, which coerces a bounding
// rectangle out of positions some hosts refuse to measure as empty ranges.
type Probe struct {
	Start NodePoint
	End   NodePoint
}

// Frame carries the visual properties written to the render target every
// frame, whether or not they changed.
type Frame struct {
	Left    float64
	Top     float64
	Width   float64
	Height  float64
	Opacity float64
}

// Config is the externally owned, read-only animation configuration.
type Config struct {
	// FadePeriodSeconds is the duration of one full opacity oscillation.
	FadePeriodSeconds float64

	// FadeDelaySeconds is the solid window after a caret move before the
	// fade cycle begins.
	FadeDelaySeconds float64

	// MovementDurationMs is the glide duration restarted on every logical
	// caret move. Zero disables interpolation (the icon always snaps).
	MovementDurationMs float64

	// CaretWidthPx is the rendered icon width.
	CaretWidthPx float64
}

// DefaultConfig matches the stock plugin settings.
var DefaultConfig = Config{
	FadePeriodSeconds:  1.2,
	FadeDelaySeconds:   0.4,
	MovementDurationMs: 80,
	CaretWidthPx:       1,
}

// withDefaults clamps out-of-range values to their documented bounds.
func (c Config) withDefaults() Config {
	if c.FadePeriodSeconds <= 0 {
		c.FadePeriodSeconds = DefaultConfig.FadePeriodSeconds
	}
	if c.FadeDelaySeconds < 0 {
		c.FadeDelaySeconds = 0
	}
	if c.MovementDurationMs < 0 {
		c.MovementDurationMs = 0
	}
	if c.CaretWidthPx < 1 {
		c.CaretWidthPx = 1
	}
	return c
}
