package terminal

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/smooth-caret/caret"
)

// Measurer resolves probe ranges against a Surface. Coordinates are screen
// cells: x accumulates rune display widths (wide glyphs count double), y is
// the line row, height is one cell. OriginX/OriginY offset the text area on
// the screen (gutter, margins).
type Measurer struct {
	surface *Surface
	OriginX float64
	OriginY float64
}

// NewMeasurer creates a measurer over the given surface.
func NewMeasurer(surface *Surface) *Measurer {
	return &Measurer{surface: surface}
}

// Measure implements caret.RangeMeasurer. Stale or foreign node handles
// fail with an error; the animator bridges those frames with its
// last-known-good rectangle.
func (m *Measurer) Measure(p caret.Probe) (caret.Rect, error) {
	ref, ok := p.Start.Node.(lineRef)
	if !ok {
		return caret.Rect{}, fmt.Errorf("measure: unknown node handle %T", p.Start.Node)
	}
	line := m.surface.Line(ref.Line)
	if line == nil {
		return caret.Rect{}, fmt.Errorf("measure: stale line handle %d", ref.Line)
	}

	col := p.Start.Offset
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}

	x := 0
	for _, r := range line[:col] {
		x += runewidth.RuneWidth(r)
	}

	return caret.Rect{
		Left:   m.OriginX + float64(x),
		Top:    m.OriginY + float64(ref.Line),
		Height: 1,
	}, nil
}
