package caret

// caretVisible is the legality gate, re-evaluated level-triggered every
// frame. The caret is visible iff a selection with resolvable anchor and
// focus nodes exists, an editor view is active, its container is focused,
// and the view can report a caret position.
func (a *Animator) caretVisible() (Selection, Position, bool) {
	sel, ok := a.surface.CurrentSelection()
	if !ok || sel.Anchor.Node == nil || sel.Focus.Node == nil {
		return Selection{}, Position{}, false
	}
	view := a.surface.ActiveView()
	if view == nil || !view.ContainerFocused() {
		return Selection{}, Position{}, false
	}
	pos, ok := view.CaretPosition()
	if !ok {
		return Selection{}, Position{}, false
	}
	return sel, pos, true
}
