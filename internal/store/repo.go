package store

import (
	"context"
	"time"
)

// Score event kinds.
const (
	KindArea  = "area"
	KindTrait = "trait"
)

// ScoreEventData is one additive delta to an aptitude area or trait.
type ScoreEventData struct {
	Kind   string // KindArea or KindTrait
	Name   string
	Amount float64
	Source string // game that produced the delta
}

// ProfileRepo stores the player's aptitude deltas and settings.
type ProfileRepo interface {
	// AppendScore records a delta. Deltas are never updated in place.
	AppendScore(ctx context.Context, data ScoreEventData) error

	// Totals sums every delta of the given kind, keyed by name.
	Totals(ctx context.Context, kind string) (map[string]float64, error)

	// Setting returns the value stored under key, or ok=false.
	Setting(ctx context.Context, key string) (value string, ok bool, err error)

	// SetSetting stores or replaces the value under key.
	SetSetting(ctx context.Context, key, value string) error

	// Reset deletes every score, setting, challenge and report.
	Reset(ctx context.Context) error
}

// ChallengeEventData captures one finished mini-game session.
type ChallengeEventData struct {
	SessionID     string
	Game          string
	Victory       bool
	FinalStage    int
	StageCount    int
	LivesLeft     int
	TotalAttempts int
	PerfectHits   int
	GoodHits      int
	Precision     float64
	Patience      float64
	Persistence   float64
	Duration      time.Duration
}

// ChallengeEvent is a stored ChallengeEventData.
type ChallengeEvent struct {
	ChallengeEventData
	Sequence  int64
	Timestamp time.Time
}

// ChallengeStats aggregates the challenge history.
type ChallengeStats struct {
	Played        int
	Victories     int
	TotalAttempts int
	PerfectHits   int
	BestPrecision float64
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
}

// ChallengeRepo keeps the history of finished challenges.
type ChallengeRepo interface {
	AppendChallenge(ctx context.Context, data ChallengeEventData) error

	// Recent returns matching challenges, newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]ChallengeEvent, error)

	Stats(ctx context.Context) (ChallengeStats, error)
}

// ReportData is a generated career report.
type ReportData struct {
	Version         int      `json:"version"`
	TopArea         string   `json:"top_area"`
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	SuggestedFields []string `json:"suggested_fields"`
	Encouragement   string   `json:"encouragement"`

	// Model is the LLM that wrote the report; empty when Offline.
	Model   string `json:"model,omitempty"`
	Offline bool   `json:"offline"`
}

// Report is a stored career report.
type Report struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      ReportData
}

// ReportRepo caches generated career reports.
type ReportRepo interface {
	// Save stores a new report.
	Save(ctx context.Context, r *Report) error

	// Latest returns the most recent report, or nil if none exist.
	Latest(ctx context.Context) (*Report, error)

	// Prune deletes all but the N most recent reports.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	LLMRequestEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStats aggregates LLM calls made for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// EventRepo provides access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns matching LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates LLM calls grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}
