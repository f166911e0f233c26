// Package advisor writes the career report shown on the report screen.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/llm"
	"github.com/abhisek/sprout/internal/store"
)

const (
	reportVersion = 1
	keepReports   = 5
	maxTokens     = 600
	purpose       = "career_report"
)

// ErrNoScores is returned when the player has not earned any points yet.
var ErrNoScores = errors.New("play a game first: no aptitude scores yet")

// Input is everything the report is based on.
type Input struct {
	PlayerName string
	Totals     aptitude.Totals
	Stats      store.ChallengeStats
}

// ProfileReader is the part of the player profile a report is based on.
type ProfileReader interface {
	PlayerName(ctx context.Context) (string, error)
	Totals(ctx context.Context) (aptitude.Totals, error)
	Stats(ctx context.Context) (store.ChallengeStats, error)
}

// LoadInput gathers the report input from the profile.
func LoadInput(ctx context.Context, p ProfileReader) (Input, error) {
	name, err := p.PlayerName(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("load player name: %w", err)
	}
	totals, err := p.Totals(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("load totals: %w", err)
	}
	stats, err := p.Stats(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("load stats: %w", err)
	}
	return Input{PlayerName: name, Totals: totals, Stats: stats}, nil
}

// Service generates and caches career reports.
type Service struct {
	provider llm.Provider
	reports  store.ReportRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a Service. provider may be nil, in which case every
// report is built offline. reports may be nil to skip caching.
func NewService(provider llm.Provider, reports store.ReportRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{provider: provider, reports: reports, log: log, now: time.Now}
}

// Generate writes a fresh report and stores it. A provider failure falls
// back to an offline report rather than an error.
func (s *Service) Generate(ctx context.Context, in Input) (*store.Report, error) {
	if in.Totals.Max() <= 0 {
		return nil, ErrNoScores
	}

	data, err := s.ask(ctx, in)
	if err != nil {
		s.log.Warn("career report falling back to offline", "err", err)
		data = offlineReport(in)
	}

	rep := &store.Report{Timestamp: s.now(), Data: data}
	if s.reports != nil {
		if err := s.reports.Save(ctx, rep); err != nil {
			return rep, fmt.Errorf("save report: %w", err)
		}
		if err := s.reports.Prune(ctx, keepReports); err != nil {
			s.log.Warn("prune reports", "err", err)
		}
	}
	return rep, nil
}

// Latest returns the most recent stored report, or nil.
func (s *Service) Latest(ctx context.Context) (*store.Report, error) {
	if s.reports == nil {
		return nil, nil
	}
	return s.reports.Latest(ctx)
}

func (s *Service) ask(ctx context.Context, in Input) (store.ReportData, error) {
	if s.provider == nil {
		return store.ReportData{}, errors.New("no LLM provider configured")
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(in)}},
		Schema:      reportSchema,
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return store.ReportData{}, err
	}

	var out struct {
		Summary         string   `json:"summary"`
		Strengths       []string `json:"strengths"`
		SuggestedFields []string `json:"suggested_fields"`
		Encouragement   string   `json:"encouragement"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return store.ReportData{}, fmt.Errorf("decode report: %w", err)
	}

	return store.ReportData{
		Version:         reportVersion,
		TopArea:         string(in.Totals.TopArea()),
		Summary:         out.Summary,
		Strengths:       out.Strengths,
		SuggestedFields: out.SuggestedFields,
		Encouragement:   out.Encouragement,
		Model:           resp.Model,
	}, nil
}
