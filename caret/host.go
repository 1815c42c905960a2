package caret

import "time"

// TextSurface is the editing surface the animator observes. Both accessors
// are re-evaluated every frame; either may report nothing while the editor
// is detached or mid-teardown.
type TextSurface interface {
	// CurrentSelection returns the active selection, if any.
	CurrentSelection() (Selection, bool)

	// ActiveView returns the focused editor view, or nil.
	ActiveView() EditorView
}

// EditorView is a handle to one editor pane.
type EditorView interface {
	// CaretPosition returns the logical caret location. ok is false when
	// the view cannot resolve a caret this frame.
	CaretPosition() (pos Position, ok bool)

	// ContainerFocused reports whether the view's container has focus.
	ContainerFocused() bool
}

// RangeMeasurer produces the bounding rectangle of a probe range in screen
// coordinates. It may fail on invalid or stale node handles; the animator
// recovers with its last-known-good rectangle.
type RangeMeasurer interface {
	Measure(p Probe) (Rect, error)
}

// RenderTarget is the overlay element standing in for the native caret.
// Apply is called every frame while visible; implementations are expected
// to tolerate redundant writes.
type RenderTarget interface {
	Apply(f Frame)
	SetVisible(visible bool)

	// Remove releases the overlay on teardown.
	Remove()
}

// PointerState exposes the host's mouse-button state, polled once per frame.
// Optional; a nil pointer behaves as never pressed.
type PointerState interface {
	Pressed() bool
}

// FrameClock schedules a single callback for the next display refresh.
// There is no fixed-rate guarantee; the animator re-requests a frame after
// each tick completes, so callbacks never overlap.
type FrameClock interface {
	RequestFrame(fn func(now time.Time))
}
