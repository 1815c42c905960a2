package caret

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/smooth-caret/engine"
)

// nodeID is the opaque node handle used by the fakes.
type nodeID int

func selAt(line, col int) Selection {
	np := NodePoint{Node: nodeID(line), Offset: col}
	return Selection{Anchor: np, Focus: np, Collapsed: true}
}

type fakeView struct {
	pos     Position
	posOK   bool
	focused bool
}

func (v *fakeView) CaretPosition() (Position, bool) { return v.pos, v.posOK }
func (v *fakeView) ContainerFocused() bool          { return v.focused }

type fakeSurface struct {
	sel   Selection
	selOK bool
	view  *fakeView
}

func (s *fakeSurface) CurrentSelection() (Selection, bool) { return s.sel, s.selOK }

func (s *fakeSurface) ActiveView() EditorView {
	if s.view == nil {
		return nil
	}
	return s.view
}

type fakeMeasurer struct {
	rect  Rect
	err   error
	fn    func(Probe) (Rect, error) // overrides rect/err when set
	calls []Probe
}

func (m *fakeMeasurer) Measure(p Probe) (Rect, error) {
	m.calls = append(m.calls, p)
	if m.fn != nil {
		return m.fn(p)
	}
	return m.rect, m.err
}

type fakeTarget struct {
	frames   []Frame
	visible  bool
	visCalls int
	removed  bool
}

func (t *fakeTarget) Apply(f Frame) { t.frames = append(t.frames, f) }

func (t *fakeTarget) SetVisible(visible bool) {
	t.visible = visible
	t.visCalls++
}

func (t *fakeTarget) Remove() { t.removed = true }

func (t *fakeTarget) lastFrame(tb testing.TB) Frame {
	tb.Helper()
	if len(t.frames) == 0 {
		tb.Fatal("no frames written to render target")
	}
	return t.frames[len(t.frames)-1]
}

type fakePointer struct {
	pressed bool
}

func (p *fakePointer) Pressed() bool { return p.pressed }

// harness wires an Animator to scripted fakes and drives frames with
// explicit timestamps through a LoopClock.
type harness struct {
	surface  *fakeSurface
	view     *fakeView
	measurer *fakeMeasurer
	target   *fakeTarget
	pointer  *fakePointer
	clock    *engine.LoopClock
	anim     *Animator
	now      time.Time
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()

	view := &fakeView{posOK: true, focused: true}
	h := &harness{
		surface:  &fakeSurface{sel: selAt(0, 0), selOK: true, view: view},
		view:     view,
		measurer: &fakeMeasurer{rect: Rect{Left: 10, Top: 5, Height: 1}},
		target:   &fakeTarget{},
		pointer:  &fakePointer{},
		clock:    engine.NewLoopClock(),
		now:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	anim, err := New(Deps{
		Surface:  h.surface,
		Measurer: h.measurer,
		Target:   h.target,
		Clock:    h.clock,
		Pointer:  h.pointer,
		Log:      zerolog.Nop(),
	}, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	h.anim = anim
	anim.Start()
	return h
}

// step advances time by d and fires the pending frame.
func (h *harness) step(t *testing.T, d time.Duration) {
	t.Helper()
	h.now = h.now.Add(d)
	if !h.clock.Pending() {
		t.Fatal("no frame pending")
	}
	h.clock.Fire(h.now)
}

// moveCaret updates the logical position and selection together, the way a
// real host would on a caret move.
func (h *harness) moveCaret(line, col int) {
	h.view.pos = Position{Line: line, Column: col}
	h.surface.sel = selAt(line, col)
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

var testConfig = Config{
	FadePeriodSeconds:  1,
	FadeDelaySeconds:   0,
	MovementDurationMs: 100,
	CaretWidthPx:       2,
}
