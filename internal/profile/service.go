package profile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/watering"
)

const (
	settingAvatar    = "avatar"
	settingName      = "player_name"
	settingInterests = "interests"

	// Score sources outside the mini-games.
	SourceAvatar       = "avatar"
	SourceRegistration = "registration"

	// Points awarded when an avatar is chosen and per declared interest.
	AvatarPrimaryBonus   = 5.0
	AvatarSecondaryBonus = 3.0
	InterestBonus        = 10.0

	// MaxNameLength is the longest player name accepted, in runes.
	MaxNameLength = 20

	// DefaultName is shown until the player picks a name.
	DefaultName = "Gardener"
)

var (
	// ErrInvalidAmount is returned for NaN or infinite score deltas.
	ErrInvalidAmount = errors.New("score amount must be a finite number")

	// ErrAlreadyRegistered is returned when interests were declared before.
	ErrAlreadyRegistered = errors.New("interests already registered")
)

// Service is the player's persistent aptitude profile. It implements
// watering.ProfileStore, watering.TraitRecorder and watering.ResultRecorder.
type Service struct {
	repo       store.ProfileRepo
	challenges store.ChallengeRepo
	game       string
}

var (
	_ watering.ProfileStore   = (*Service)(nil)
	_ watering.TraitRecorder  = (*Service)(nil)
	_ watering.ResultRecorder = (*Service)(nil)
)

// NewService creates a profile service. game tags every score delta and
// result with the mini-game that produced it.
func NewService(repo store.ProfileRepo, challenges store.ChallengeRepo, game string) *Service {
	return &Service{repo: repo, challenges: challenges, game: game}
}

// AddAptitudeScore adds amount to the running total of area.
func (s *Service) AddAptitudeScore(ctx context.Context, area aptitude.Area, amount float64) error {
	return s.addArea(ctx, area, amount, s.game)
}

func (s *Service) addArea(ctx context.Context, area aptitude.Area, amount float64, source string) error {
	if _, err := aptitude.ParseArea(string(area)); err != nil {
		return err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}
	return s.repo.AppendScore(ctx, store.ScoreEventData{
		Kind:   store.KindArea,
		Name:   string(area),
		Amount: amount,
		Source: source,
	})
}

// AddTraitScore adds amount to the running total of trait.
func (s *Service) AddTraitScore(ctx context.Context, trait aptitude.Trait, amount float64) error {
	if _, err := aptitude.ParseTrait(string(trait)); err != nil {
		return err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}
	return s.repo.AppendScore(ctx, store.ScoreEventData{
		Kind:   store.KindTrait,
		Name:   string(trait),
		Amount: amount,
		Source: s.game,
	})
}

// RecordResult appends a finished challenge to the history.
func (s *Service) RecordResult(ctx context.Context, r watering.Result) error {
	if s.challenges == nil {
		return nil
	}
	return s.challenges.AppendChallenge(ctx, store.ChallengeEventData{
		SessionID:     r.SessionID,
		Game:          s.game,
		Victory:       r.Victory,
		FinalStage:    r.FinalStage,
		StageCount:    r.StageCount,
		LivesLeft:     r.LivesLeft,
		TotalAttempts: r.Counters.TotalAttempts,
		PerfectHits:   r.Counters.PerfectHits,
		GoodHits:      r.Counters.GoodHits,
		Precision:     r.Scores.Precision,
		Patience:      r.Scores.Patience,
		Persistence:   r.Scores.Persistence,
		Duration:      r.Scores.Elapsed,
	})
}

// Totals returns the accumulated area and trait scores. Every known area
// and trait is present, unknown names in the store are ignored.
func (s *Service) Totals(ctx context.Context) (aptitude.Totals, error) {
	t := aptitude.NewTotals()

	areas, err := s.repo.Totals(ctx, store.KindArea)
	if err != nil {
		return t, fmt.Errorf("load area totals: %w", err)
	}
	for name, v := range areas {
		if a, err := aptitude.ParseArea(name); err == nil {
			t.Areas[a] = v
		}
	}

	traits, err := s.repo.Totals(ctx, store.KindTrait)
	if err != nil {
		return t, fmt.Errorf("load trait totals: %w", err)
	}
	for name, v := range traits {
		if tr, err := aptitude.ParseTrait(name); err == nil {
			t.Traits[tr] = v
		}
	}
	return t, nil
}

// Avatar returns the selected avatar, or the first one if none was chosen.
func (s *Service) Avatar(ctx context.Context) (Avatar, error) {
	v, ok, err := s.repo.Setting(ctx, settingAvatar)
	if err != nil {
		return Avatars[0], err
	}
	if !ok {
		return Avatars[0], nil
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return Avatars[0], nil
	}
	return AvatarByID(id), nil
}

// SetAvatar selects an avatar by ID and awards its area bonuses.
// Confirming the avatar that is already selected awards nothing.
func (s *Service) SetAvatar(ctx context.Context, id int) error {
	if id < 0 || id >= len(Avatars) {
		return fmt.Errorf("avatar %d out of range [0, %d]", id, len(Avatars)-1)
	}
	value := strconv.Itoa(id)
	current, ok, err := s.repo.Setting(ctx, settingAvatar)
	if err != nil {
		return err
	}
	if ok && current == value {
		return nil
	}

	a := Avatars[id]
	if err := s.addArea(ctx, a.PrimaryArea, AvatarPrimaryBonus, SourceAvatar); err != nil {
		return fmt.Errorf("award avatar bonus: %w", err)
	}
	if err := s.addArea(ctx, a.SecondaryArea, AvatarSecondaryBonus, SourceAvatar); err != nil {
		return fmt.Errorf("award avatar bonus: %w", err)
	}
	return s.repo.SetSetting(ctx, settingAvatar, value)
}

// RegisterInterests records the areas the player says they enjoy and
// awards InterestBonus to each. It can run once per profile.
func (s *Service) RegisterInterests(ctx context.Context, areas []aptitude.Area) error {
	if _, ok, err := s.repo.Setting(ctx, settingInterests); err != nil {
		return err
	} else if ok {
		return ErrAlreadyRegistered
	}

	var names []string
	seen := make(map[aptitude.Area]bool, len(areas))
	for _, a := range areas {
		if seen[a] {
			continue
		}
		if _, err := aptitude.ParseArea(string(a)); err != nil {
			return err
		}
		seen[a] = true
		names = append(names, string(a))
	}

	for _, name := range names {
		if err := s.addArea(ctx, aptitude.Area(name), InterestBonus, SourceRegistration); err != nil {
			return fmt.Errorf("award interest bonus: %w", err)
		}
	}
	return s.repo.SetSetting(ctx, settingInterests, strings.Join(names, ","))
}

// Interests returns the areas declared with RegisterInterests.
func (s *Service) Interests(ctx context.Context) ([]aptitude.Area, error) {
	v, ok, err := s.repo.Setting(ctx, settingInterests)
	if err != nil || !ok || v == "" {
		return nil, err
	}
	var areas []aptitude.Area
	for _, name := range strings.Split(v, ",") {
		if a, err := aptitude.ParseArea(name); err == nil {
			areas = append(areas, a)
		}
	}
	return areas, nil
}

// PlayerName returns the stored name, or DefaultName.
func (s *Service) PlayerName(ctx context.Context) (string, error) {
	v, ok, err := s.repo.Setting(ctx, settingName)
	if err != nil {
		return DefaultName, err
	}
	if !ok || v == "" {
		return DefaultName, nil
	}
	return v, nil
}

// SetPlayerName stores a trimmed, non-empty name.
func (s *Service) SetPlayerName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("player name is empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("player name longer than %d characters", MaxNameLength)
	}
	return s.repo.SetSetting(ctx, settingName, name)
}

// History returns the most recent finished challenges, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.ChallengeEvent, error) {
	if s.challenges == nil {
		return nil, nil
	}
	return s.challenges.Recent(ctx, store.QueryOpts{Limit: limit})
}

// Stats aggregates the challenge history.
func (s *Service) Stats(ctx context.Context) (store.ChallengeStats, error) {
	if s.challenges == nil {
		return store.ChallengeStats{}, nil
	}
	return s.challenges.Stats(ctx)
}

// Reset wipes the profile: scores, settings, history and reports.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
