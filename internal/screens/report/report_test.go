package report

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprout/internal/advisor"
	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/store"
)

func newTestScreen(t *testing.T) (*ReportScreen, *profile.Service) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:reportscreen_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	p := profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), "watering")
	a := advisor.NewService(nil, st.ReportRepo(), nil)
	return New(p, a), p
}

func TestNoScoresPromptsToPlay(t *testing.T) {
	s, _ := newTestScreen(t)
	require.NotNil(t, s.Init())
	assert.True(t, s.busy)
	assert.Contains(t, s.View(80, 30), "Writing your report")

	s.Update(s.latest())

	assert.False(t, s.busy)
	assert.True(t, s.noScore)
	assert.Empty(t, s.errMsg)
	assert.Contains(t, s.View(80, 30), "Play a game first")
}

func TestOfflineReportIsCached(t *testing.T) {
	s, p := newTestScreen(t)
	ctx := context.Background()
	require.NoError(t, p.AddAptitudeScore(ctx, aptitude.HealthMedicine, 20))
	require.NoError(t, p.AddTraitScore(ctx, aptitude.Patience, 10))

	s.Init()
	s.Update(s.latest())
	require.NotNil(t, s.report)
	first := s.report.ID

	view := s.View(100, 40)
	assert.Contains(t, view, "Health & Medicine")
	assert.Contains(t, view, "offline")
	assert.Contains(t, view, "Doctor")

	s.Update(s.latest())
	assert.Equal(t, first, s.report.ID, "the stored report is reused")
}

func TestRegenerate(t *testing.T) {
	s, p := newTestScreen(t)
	require.NoError(t, p.AddAptitudeScore(context.Background(), aptitude.SportsActivity, 5))
	s.Init()
	s.Update(s.latest())
	first := s.report.ID

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	require.NotNil(t, cmd)
	assert.True(t, s.busy)

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	assert.Nil(t, cmd, "no second request while one is running")

	s.Update(s.generate())
	assert.False(t, s.busy)
	assert.Greater(t, s.report.ID, first)
}

func TestInputGathersProfile(t *testing.T) {
	_, p := newTestScreen(t)
	ctx := context.Background()
	require.NoError(t, p.SetPlayerName(ctx, "Ana"))
	require.NoError(t, p.AddAptitudeScore(ctx, aptitude.CreativeArts, 7))

	in, err := advisor.LoadInput(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Ana", in.PlayerName)
	assert.Equal(t, 7.0, in.Totals.Areas[aptitude.CreativeArts])
	assert.Zero(t, in.Stats.Played)
}
