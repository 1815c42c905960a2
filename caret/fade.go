package caret

import (
	"math"
	"time"
)

// stepFade computes this frame's opacity. Any screen movement of the true
// caret restarts the cycle and forces the icon solid; otherwise opacity
// follows a sinusoid over the configured period, after an initial solid
// delay window.
func (a *Animator) stepFade(now time.Time) float64 {
	if a.truePoint != a.prevTruePoint {
		a.fadeCycleStart = now
		return 1
	}
	sinceCycleMs := float64(now.Sub(a.fadeCycleStart)) / float64(time.Millisecond)
	return opacityAt(sinceCycleMs, a.cfg.FadePeriodSeconds*1000, a.cfg.FadeDelaySeconds*1000)
}

// opacityAt is the fade law: solid during the delay window, then
// sin(2π·phase)·0.5+0.5 over each period, oscillating fully between 0 and 1.
func opacityAt(sinceCycleMs, periodMs, delayMs float64) float64 {
	elapsed := sinceCycleMs - delayMs
	if elapsed < 0 {
		return 1
	}
	phase := math.Mod(elapsed, periodMs) / periodMs
	return math.Sin(phase*2*math.Pi)*0.5 + 0.5
}
