package watering

// Outcome is the scored tier of a single release.
type Outcome int

const (
	OutcomeBad Outcome = iota
	OutcomeGood
	OutcomePerfect
)

// String returns the outcome label used in logs and events.
func (o Outcome) String() string {
	switch o {
	case OutcomeBad:
		return "bad"
	case OutcomeGood:
		return "good"
	case OutcomePerfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the outcome makes the plant grow.
func (o Outcome) Succeeded() bool {
	return o == OutcomeGood || o == OutcomePerfect
}

// ZoneConfig describes the scored intervals on the watering bar.
// GreenStart..GreenEnd is the perfect interval; Margin widens it on both
// sides into the good interval.
type ZoneConfig struct {
	GreenStart float64 `yaml:"green_zone_start"`
	GreenEnd   float64 `yaml:"green_zone_end"`
	Margin     float64 `yaml:"yellow_zone_margin"`
}

// Bounds returns the edges of the good interval, clamped to [0, 1].
func (z ZoneConfig) Bounds() (yellowStart, yellowEnd float64) {
	return max(0, z.GreenStart-z.Margin), min(1, z.GreenEnd+z.Margin)
}

// Classify maps a released indicator position to its outcome.
// Both edges of the green interval count as perfect; the outer edges of the
// yellow interval count as good.
func Classify(pos float64, z ZoneConfig) Outcome {
	if pos >= z.GreenStart && pos <= z.GreenEnd {
		return OutcomePerfect
	}

	yellowStart, yellowEnd := z.Bounds()
	if (pos >= yellowStart && pos < z.GreenStart) || (pos > z.GreenEnd && pos <= yellowEnd) {
		return OutcomeGood
	}

	return OutcomeBad
}

// Attempt is the ephemeral record of one release, used only to update
// the counters.
type Attempt struct {
	Position float64
	Outcome  Outcome
}
