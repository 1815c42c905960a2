// Package terminal is the tcell reference host for the caret animator: an
// editable text surface, a probe measurer, and a caret overlay that
// simulates opacity by blending colors into screen cells.
package terminal

import (
	"github.com/lixenwraith/smooth-caret/caret"
)

// lineRef is the opaque node handle the surface hands out in selections.
// It addresses a line; the probe offset addresses a column within it.
type lineRef struct {
	Line int
}

// Surface is a minimal editable text buffer implementing both
// caret.TextSurface and caret.EditorView. It exists to exercise the
// animator's contracts, not to be a text editor.
type Surface struct {
	lines   [][]rune
	pos     caret.Position
	anchor  *caret.Position // selection anchor, nil when collapsed
	focused bool
}

// NewSurface creates a surface pre-filled with the given lines.
func NewSurface(text []string) *Surface {
	lines := make([][]rune, 0, len(text))
	for _, l := range text {
		lines = append(lines, []rune(l))
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	return &Surface{lines: lines, focused: true}
}

// CurrentSelection implements caret.TextSurface. The anchor is the fixed
// selection end, the focus follows the caret.
func (s *Surface) CurrentSelection() (caret.Selection, bool) {
	focus := caret.NodePoint{Node: lineRef{Line: s.pos.Line}, Offset: s.pos.Column}
	anchor := focus
	collapsed := true
	if s.anchor != nil && *s.anchor != s.pos {
		anchor = caret.NodePoint{Node: lineRef{Line: s.anchor.Line}, Offset: s.anchor.Column}
		collapsed = false
	}
	return caret.Selection{Anchor: anchor, Focus: focus, Collapsed: collapsed}, true
}

// ActiveView implements caret.TextSurface.
func (s *Surface) ActiveView() caret.EditorView {
	return s
}

// CaretPosition implements caret.EditorView.
func (s *Surface) CaretPosition() (caret.Position, bool) {
	return s.pos, true
}

// ContainerFocused implements caret.EditorView.
func (s *Surface) ContainerFocused() bool {
	return s.focused
}

// SetFocused toggles the focus flag feeding the legality gate.
func (s *Surface) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports the current focus flag.
func (s *Surface) Focused() bool {
	return s.focused
}

// LineCount returns the number of buffer lines.
func (s *Surface) LineCount() int {
	return len(s.lines)
}

// Line returns the runes of line n, or nil when out of range.
func (s *Surface) Line(n int) []rune {
	if n < 0 || n >= len(s.lines) {
		return nil
	}
	return s.lines[n]
}

// Caret returns the logical caret position.
func (s *Surface) Caret() caret.Position {
	return s.pos
}

// Insert places r at the caret and advances the column. Any selection
// collapses.
func (s *Surface) Insert(r rune) {
	line := s.lines[s.pos.Line]
	col := s.pos.Column
	line = append(line[:col:col], append([]rune{r}, line[col:]...)...)
	s.lines[s.pos.Line] = line
	s.pos.Column++
	s.anchor = nil
}

// Newline splits the current line at the caret.
func (s *Surface) Newline() {
	line := s.lines[s.pos.Line]
	col := s.pos.Column
	rest := append([]rune(nil), line[col:]...)
	s.lines[s.pos.Line] = line[:col]
	s.lines = append(s.lines[:s.pos.Line+1:s.pos.Line+1],
		append([][]rune{rest}, s.lines[s.pos.Line+1:]...)...)
	s.pos.Line++
	s.pos.Column = 0
	s.anchor = nil
}

// Backspace deletes the rune before the caret, joining lines at column 0.
func (s *Surface) Backspace() {
	s.anchor = nil
	if s.pos.Column > 0 {
		line := s.lines[s.pos.Line]
		col := s.pos.Column
		s.lines[s.pos.Line] = append(line[:col-1], line[col:]...)
		s.pos.Column--
		return
	}
	if s.pos.Line == 0 {
		return
	}
	prev := s.lines[s.pos.Line-1]
	s.pos.Column = len(prev)
	s.lines[s.pos.Line-1] = append(prev, s.lines[s.pos.Line]...)
	s.lines = append(s.lines[:s.pos.Line], s.lines[s.pos.Line+1:]...)
	s.pos.Line--
}

// Move shifts the caret by whole lines and columns, clamping to the buffer.
// With extend the selection anchor stays put (set on first extension);
// without it any selection collapses.
func (s *Surface) Move(dLine, dCol int, extend bool) {
	if extend {
		if s.anchor == nil {
			a := s.pos
			s.anchor = &a
		}
	} else {
		s.anchor = nil
	}

	s.pos.Line += dLine
	if s.pos.Line < 0 {
		s.pos.Line = 0
	}
	if s.pos.Line >= len(s.lines) {
		s.pos.Line = len(s.lines) - 1
	}

	s.pos.Column += dCol
	if s.pos.Column < 0 {
		s.pos.Column = 0
	}
	if max := len(s.lines[s.pos.Line]); s.pos.Column > max {
		s.pos.Column = max
	}
}
