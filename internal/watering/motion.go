package watering

import "time"

// AutoReleaseThreshold is the indicator position at which a held charge is
// released automatically.
const AutoReleaseThreshold = 0.99

// Advance moves the indicator forward for the time the input was held.
// The result is clamped to [0, 1] and never moves backwards. reachedEnd
// tells the caller to force a release.
func Advance(pos float64, held time.Duration, speed float64) (next float64, reachedEnd bool) {
	if held < 0 {
		held = 0
	}
	next = clamp01(pos + speed*held.Seconds())
	if next < pos {
		next = clamp01(pos)
	}
	return next, next >= AutoReleaseThreshold
}

// ResetPosition is the indicator position at the start of every charge.
const ResetPosition = 0.0

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
