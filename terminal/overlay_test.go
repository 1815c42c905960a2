package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/smooth-caret/caret"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(20, 5)
	t.Cleanup(screen.Fini)
	return screen
}

func cellBg(t *testing.T, screen tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestOverlayFullOpacityPaintsCaretColor(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Apply(caret.Frame{Left: 2, Top: 1, Width: 1, Height: 1, Opacity: 1})
	o.Draw()

	want := toTcell(DefaultCaretColor)
	if got := cellBg(t, screen, 2, 1); got != want {
		t.Fatalf("bg = %v, want caret color %v", got, want)
	}
}

func TestOverlayZeroOpacityPaintsBackground(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Apply(caret.Frame{Left: 2, Top: 1, Width: 1, Height: 1, Opacity: 0})
	o.Draw()

	want := toTcell(DefaultBackground)
	if got := cellBg(t, screen, 2, 1); got != want {
		t.Fatalf("bg = %v, want background %v", got, want)
	}
}

func TestOverlayPreservesUnderlyingRune(t *testing.T) {
	screen := newTestScreen(t)
	screen.SetContent(2, 1, 'x', nil, tcell.StyleDefault)

	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Apply(caret.Frame{Left: 2, Top: 1, Width: 1, Height: 1, Opacity: 1})
	o.Draw()

	mainc, _, _, _ := screen.GetContent(2, 1)
	if mainc != 'x' {
		t.Fatalf("rune = %q, want 'x'", mainc)
	}
}

func TestOverlayRoundsFractionalPosition(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Apply(caret.Frame{Left: 2.6, Top: 0.4, Width: 1, Height: 1, Opacity: 1})
	o.Draw()

	want := toTcell(DefaultCaretColor)
	if got := cellBg(t, screen, 3, 0); got != want {
		t.Fatalf("fractional point did not round to (3, 0)")
	}
}

func TestOverlayWidthPaintsMultipleCells(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Apply(caret.Frame{Left: 1, Top: 1, Width: 2, Height: 1, Opacity: 1})
	o.Draw()

	want := toTcell(DefaultCaretColor)
	for x := 1; x <= 2; x++ {
		if got := cellBg(t, screen, x, 1); got != want {
			t.Fatalf("cell (%d, 1) not painted", x)
		}
	}
}

func TestOverlayHiddenDoesNotPaint(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.Apply(caret.Frame{Left: 2, Top: 1, Width: 1, Height: 1, Opacity: 1})
	o.SetVisible(false)
	o.Draw()

	if got := cellBg(t, screen, 2, 1); got == toTcell(DefaultCaretColor) {
		t.Fatal("hidden overlay painted")
	}
}

func TestOverlayClipsOutOfBounds(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Apply(caret.Frame{Left: -3, Top: 99, Width: 2, Height: 1, Opacity: 1})
	o.Draw() // must not panic
}

func TestOverlayRemoveIsTerminal(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOverlay(screen)
	o.SetVisible(true)
	o.Remove()

	if o.Visible() {
		t.Fatal("overlay visible after Remove")
	}
	o.Apply(caret.Frame{Left: 1, Top: 1, Width: 1, Height: 1, Opacity: 1})
	o.SetVisible(true)
	o.Draw() // must not panic with a released screen
}
