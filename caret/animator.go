package caret

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Deps are the collaborators injected into an Animator. Surface, Measurer,
// Target and Clock are required; Pointer is optional. Log should be a
// configured logger or zerolog.Nop() when diagnostics are unwanted.
type Deps struct {
	Surface  TextSurface
	Measurer RangeMeasurer
	Target   RenderTarget
	Clock    FrameClock
	Pointer  PointerState
	Log      zerolog.Logger
}

// Animator owns the per-frame caret animation pipeline. There is exactly one
// instance per plugin and all state is mutated only from the frame callback,
// so no locking is needed beyond the running flag.
type Animator struct {
	surface  TextSurface
	measurer RangeMeasurer
	target   RenderTarget
	clock    FrameClock
	pointer  PointerState
	log      zerolog.Logger
	cfg      Config

	running atomic.Bool

	// Frame timing
	lastTick time.Time
	ticked   bool

	// Motion state. Invariant: remainingMoveMs >= 0, and when it is 0 the
	// icon point equals the true point exactly.
	iconPoint     Point
	prevIconPoint Point
	truePoint     Point
	prevTruePoint Point
	logical       Position
	prevLogical   Position
	remainingMove float64 // ms

	// Fade state: opacity is a pure function of now - fadeCycleStart.
	fadeCycleStart time.Time

	// Sampler state
	lastGood Point
	height   float64

	// primed flips on the first visible frame; the icon is initialized to
	// the true point so startup never glides in from the origin.
	primed bool

	shown bool

	// Pointer bookkeeping, polled once per frame. Reserved extension point
	// (e.g. suppressing animation during drag-selection); nothing reads
	// these yet.
	mouseDown        bool
	mouseUpThisFrame bool
}

// New builds an Animator. The render target is created by the host and
// handed over here; Stop removes it.
func New(deps Deps, cfg Config) (*Animator, error) {
	switch {
	case deps.Surface == nil:
		return nil, errors.New("caret: nil TextSurface")
	case deps.Measurer == nil:
		return nil, errors.New("caret: nil RangeMeasurer")
	case deps.Target == nil:
		return nil, errors.New("caret: nil RenderTarget")
	case deps.Clock == nil:
		return nil, errors.New("caret: nil FrameClock")
	}
	if deps.Pointer == nil {
		deps.Pointer = nopPointer{}
	}
	return &Animator{
		surface:  deps.Surface,
		measurer: deps.Measurer,
		target:   deps.Target,
		clock:    deps.Clock,
		pointer:  deps.Pointer,
		log:      deps.Log,
		cfg:      cfg.withDefaults(),
	}, nil
}

// Config returns the effective (clamped) configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// Start hides the overlay and requests the first frame. Idempotent.
func (a *Animator) Start() {
	if !a.running.CompareAndSwap(false, true) {
		return
	}
	a.shown = false
	a.target.SetVisible(false)
	a.clock.RequestFrame(a.tick)
}

// Stop cancels further scheduling and removes the render target. A frame
// already scheduled may still fire but returns without running the pipeline
// or rescheduling. Idempotent.
func (a *Animator) Stop() {
	if !a.running.CompareAndSwap(true, false) {
		return
	}
	a.target.Remove()
}

// tick is the frame callback. Any panic in the pipeline is logged and
// swallowed; the next frame is always requested while running. A single bad
// frame must never stop the animation.
func (a *Animator) tick(now time.Time) {
	if !a.running.Load() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Interface("panic", r).Msg("caret frame recovered")
		}
		if a.running.Load() {
			a.clock.RequestFrame(a.tick)
		}
	}()
	a.frame(now)
}

// frame runs the pipeline: timing, pointer poll, legality gate, sampler,
// motion, fade, render write. State flows strictly forward; previous-value
// fields are rotated at the end.
func (a *Animator) frame(now time.Time) {
	elapsed := a.frameElapsed(now)

	pressed := a.pointer.Pressed()
	a.mouseUpThisFrame = a.mouseDown && !pressed
	a.mouseDown = pressed
	defer func() { a.mouseUpThisFrame = false }()

	sel, pos, visible := a.caretVisible()
	if !visible {
		// Gated, not an error: hide and freeze. No sampler, motion or
		// fade state advances this frame.
		a.setVisible(false)
		return
	}
	a.setVisible(true)

	a.truePoint = a.sample(sel)
	a.logical = pos

	var opacity float64
	if !a.primed {
		a.primed = true
		a.iconPoint = a.truePoint
		a.remainingMove = 0
		a.fadeCycleStart = now
		opacity = 1
	} else {
		if a.logical != a.prevLogical {
			a.remainingMove = a.cfg.MovementDurationMs
		}
		a.stepMotion(elapsed)
		opacity = a.stepFade(now)
	}

	a.target.Apply(Frame{
		Left:    a.iconPoint.Left,
		Top:     a.iconPoint.Top,
		Width:   a.cfg.CaretWidthPx,
		Height:  a.height,
		Opacity: opacity,
	})

	a.prevIconPoint = a.iconPoint
	a.prevTruePoint = a.truePoint
	a.prevLogical = a.logical
}

// frameElapsed returns milliseconds since the previous tick, clamped to >= 0
// in case the wall clock was adjusted backward. The first tick reports 0.
// Timing state advances every tick, including gated ones.
func (a *Animator) frameElapsed(now time.Time) float64 {
	if !a.ticked {
		a.ticked = true
		a.lastTick = now
		return 0
	}
	d := now.Sub(a.lastTick)
	a.lastTick = now
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}

func (a *Animator) setVisible(v bool) {
	if a.shown == v {
		return
	}
	a.shown = v
	a.target.SetVisible(v)
}

type nopPointer struct{}

func (nopPointer) Pressed() bool { return false }
