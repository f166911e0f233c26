package watering

import (
	"time"

	"github.com/abhisek/sprout/internal/aptitude"
)

const (
	// precisionWeight scales the perfect-hit ratio into precision points.
	precisionWeight = 15.0

	// maxPatience caps the patience score.
	maxPatience = 10.0

	// Persistence points for a grown plant versus a withered one.
	persistenceGrown    = 10.0
	persistenceWithered = 5.0
)

// Counters accumulate per-attempt statistics for one session.
// They are reset on session start and never decremented.
type Counters struct {
	PerfectHits   int
	GoodHits      int
	TotalAttempts int

	StartedAt time.Time
	EndedAt   time.Time
}

// Record counts one release. Bad releases still count as attempts.
func (c *Counters) Record(o Outcome) {
	c.TotalAttempts++
	switch o {
	case OutcomePerfect:
		c.PerfectHits++
	case OutcomeGood:
		c.GoodHits++
	}
}

// Precision returns the share of attempts that were perfect, 0 when there
// were no attempts.
func (c Counters) Precision() float64 {
	if c.TotalAttempts == 0 {
		return 0
	}
	return float64(c.PerfectHits) / float64(c.TotalAttempts)
}

// Accuracy returns the share of attempts that made the plant grow.
func (c Counters) Accuracy() float64 {
	if c.TotalAttempts == 0 {
		return 0
	}
	return float64(c.PerfectHits+c.GoodHits) / float64(c.TotalAttempts)
}

// Finalize derives the aptitude scores of a finished session.
// patienceBaseline is the attempt count that still earns full patience.
func Finalize(c Counters, elapsed time.Duration, finalStage, stageCount, patienceBaseline int) aptitude.Scores {
	patience := maxPatience - float64(c.TotalAttempts-patienceBaseline)
	patience = min(max(patience, 0), maxPatience)

	persistence := persistenceWithered
	if IsGrown(finalStage, stageCount) {
		persistence = persistenceGrown
	}

	return aptitude.Scores{
		Precision:   c.Precision() * precisionWeight,
		Patience:    patience,
		Persistence: persistence,
		Elapsed:     elapsed,
	}
}
