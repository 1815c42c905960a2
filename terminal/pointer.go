package terminal

import "github.com/gdamore/tcell/v2"

// buttonMask covers the actual mouse buttons, excluding wheel flags.
const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// Pointer adapts tcell mouse events into the caret.PointerState the
// animator polls once per frame. The host loop feeds it events; the
// animator only ever reads the latest state, so ordering between a mouse
// event and a frame tick does not matter.
type Pointer struct {
	pressed bool
}

// NewPointer creates a released pointer.
func NewPointer() *Pointer {
	return &Pointer{}
}

// HandleEvent records the button state of a mouse event.
func (p *Pointer) HandleEvent(ev *tcell.EventMouse) {
	p.pressed = ev.Buttons()&buttonMask != 0
}

// Pressed implements caret.PointerState.
func (p *Pointer) Pressed() bool {
	return p.pressed
}
