package caret

// stepMotion advances the icon toward the true point. Each frame consumes a
// fraction of the remaining move duration rather than of a fixed total,
// giving a fast-start, slow-finish glide without an easing table. When no
// motion is in flight the icon snaps: screen-only moves (scroll, zoom) never
// glide, only logical caret moves do, because only those reset the timer.
func (a *Animator) stepMotion(elapsedMs float64) {
	inFlight := a.remainingMove > 0 && a.iconPoint != a.truePoint
	if !inFlight {
		a.iconPoint = a.truePoint
		a.remainingMove = 0
		return
	}

	fraction := 1.0
	if elapsedMs < a.remainingMove {
		fraction = elapsedMs / a.remainingMove
	}
	a.iconPoint.Left += fraction * (a.truePoint.Left - a.iconPoint.Left)
	a.iconPoint.Top += fraction * (a.truePoint.Top - a.iconPoint.Top)

	a.remainingMove -= elapsedMs
	if a.remainingMove <= 0 {
		// Countdown exhausted: land exactly, no residual drift.
		a.remainingMove = 0
		a.iconPoint = a.truePoint
	}
}
