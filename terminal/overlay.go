package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/smooth-caret/caret"
)

// Default overlay palette. The background fallback matches the demo's
// Tokyo Night base so blending against unset cells stays coherent.
var (
	DefaultCaretColor = colorful.Color{R: 1.0, G: 0.65, B: 0.0} // orange
	DefaultBackground = colorful.Color{R: 26 / 255.0, G: 27 / 255.0, B: 38 / 255.0}
)

// Overlay is the caret.RenderTarget for a tcell screen. Terminals have no
// alpha channel, so opacity is simulated: the caret color is blended toward
// each cell's background by the opacity factor and painted as the cell
// background, preserving the rune underneath.
//
// Apply and SetVisible only record state; Draw paints it. The host loop
// calls Draw after each animator frame, once the text has been redrawn.
type Overlay struct {
	screen     tcell.Screen
	color      colorful.Color
	background colorful.Color

	visible bool
	frame   caret.Frame
}

// NewOverlay creates an overlay painting onto screen with the default
// palette.
func NewOverlay(screen tcell.Screen) *Overlay {
	return &Overlay{
		screen:     screen,
		color:      DefaultCaretColor,
		background: DefaultBackground,
	}
}

// SetColor replaces the caret color.
func (o *Overlay) SetColor(c colorful.Color) {
	o.color = c
}

// Apply implements caret.RenderTarget. Values are written every frame and
// are cheap to store; painting happens in Draw.
func (o *Overlay) Apply(f caret.Frame) {
	o.frame = f
}

// SetVisible implements caret.RenderTarget.
func (o *Overlay) SetVisible(visible bool) {
	o.visible = visible
}

// Remove implements caret.RenderTarget. After removal the overlay never
// paints again.
func (o *Overlay) Remove() {
	o.visible = false
	o.screen = nil
}

// Visible reports whether the overlay would paint.
func (o *Overlay) Visible() bool {
	return o.visible && o.screen != nil
}

// Frame returns the last applied frame.
func (o *Overlay) Frame() caret.Frame {
	return o.frame
}

// Draw paints the caret cells. The fractional icon point rounds to the
// nearest cell; width and height below one cell clamp to one.
func (o *Overlay) Draw() {
	if !o.Visible() {
		return
	}

	x := int(math.Round(o.frame.Left))
	y := int(math.Round(o.frame.Top))
	w := int(o.frame.Width)
	if w < 1 {
		w = 1
	}
	h := int(o.frame.Height)
	if h < 1 {
		h = 1
	}

	width, height := o.screen.Size()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if col < 0 || col >= width || row < 0 || row >= height {
				continue
			}
			mainc, combc, style, _ := o.screen.GetContent(col, row)
			_, bg, _ := style.Decompose()
			blend := o.cellBackground(bg).BlendRgb(o.color, o.frame.Opacity)
			o.screen.SetContent(col, row, mainc, combc, style.Background(toTcell(blend)))
		}
	}
}

// cellBackground converts a cell's background to a blendable color, falling
// back to the palette background for default/unset cells.
func (o *Overlay) cellBackground(bg tcell.Color) colorful.Color {
	if bg == tcell.ColorDefault {
		return o.background
	}
	hex := bg.TrueColor().Hex()
	if hex < 0 {
		return o.background
	}
	return colorful.Color{
		R: float64((hex>>16)&0xff) / 255.0,
		G: float64((hex>>8)&0xff) / 255.0,
		B: float64(hex&0xff) / 255.0,
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
