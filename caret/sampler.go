package caret

// buildProbe picks the measurement range for the current selection. An
// active selection is anchored at its focus end, where the caret logically
// sits. A collapsed caret at offset 0 probes forward one unit: some hosts
// refuse to measure an empty range at the very start of a node.
func buildProbe(sel Selection) Probe {
	if sel.Collapsed && sel.Focus.Offset == 0 {
		return Probe{
			Start: sel.Focus,
			End:   NodePoint{Node: sel.Focus.Node, Offset: 1},
		}
	}
	return Probe{Start: sel.Focus, End: sel.Focus}
}

// sample measures the true caret rectangle and applies the last-known-good
// fallback policy. A (0,0) rectangle is ambiguous: it is accepted as a real
// document-origin caret only when no prior non-origin measurement exists,
// otherwise it is treated as a failed measurement and substituted. The
// returned point is therefore never the origin once any real position has
// been observed.
func (a *Animator) sample(sel Selection) Point {
	rect, err := a.measurer.Measure(buildProbe(sel))
	if err != nil {
		// Transient failure: bridge with the cached rectangle, height
		// unchanged.
		a.log.Debug().Err(err).Msg("caret measurement failed, using last known rect")
		return a.lastGood
	}

	if rect.Left == 0 && rect.Top == 0 {
		if rect.Height > 0 {
			a.height = rect.Height
		}
		if a.lastGood != (Point{}) {
			return a.lastGood
		}
		// Cold start: no evidence of any prior non-origin position.
		return Point{}
	}

	a.lastGood = Point{Left: rect.Left, Top: rect.Top}
	a.height = rect.Height
	return a.lastGood
}
