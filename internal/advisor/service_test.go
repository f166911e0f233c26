package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/llm"
	"github.com/abhisek/sprout/internal/store"
)

func sampleInput() Input {
	t := aptitude.NewTotals()
	t.Areas[aptitude.NaturalSciences] = 35
	t.Areas[aptitude.CreativeArts] = 12
	t.Traits[aptitude.Patience] = 10
	t.Traits[aptitude.AttentionToDetail] = 15
	return Input{
		PlayerName: "Ana",
		Totals:     t,
		Stats:      store.ChallengeStats{Played: 2, Victories: 1, PerfectHits: 3},
	}
}

func openReports(t *testing.T) store.ReportRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:advisor_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.ReportRepo()
}

const goodReport = `{
	"summary": "Ana loves plants.",
	"strengths": ["Patience", "Careful timing"],
	"suggested_fields": ["Botanist", "Gardener"],
	"encouragement": "Keep growing!"
}`

func TestGenerate_FromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodReport)})
	reports := openReports(t)
	svc := NewService(mock, reports, nil)

	rep, err := svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "Ana loves plants.", rep.Data.Summary)
	assert.Equal(t, []string{"Botanist", "Gardener"}, rep.Data.SuggestedFields)
	assert.Equal(t, string(aptitude.NaturalSciences), rep.Data.TopArea)
	assert.Equal(t, "mock", rep.Data.Model)
	assert.False(t, rep.Data.Offline)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, reportSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Player: Ana")
	assert.Contains(t, req.Messages[0].Content, "Strongest area: Natural Sciences")

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, rep.Data.Summary, latest.Data.Summary)
}

func TestGenerate_FallsBackOffline(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
	}{
		{"no provider", nil},
		{"provider error", llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})},
		{"schema violation", llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":"x"}`)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.provider, nil, nil)

			rep, err := svc.Generate(context.Background(), sampleInput())
			require.NoError(t, err)

			assert.True(t, rep.Data.Offline)
			assert.Equal(t, string(aptitude.NaturalSciences), rep.Data.TopArea)
			assert.Contains(t, rep.Data.Summary, "Ana")
			assert.Contains(t, rep.Data.SuggestedFields, "Botanist")
			assert.Equal(t, []string{"Notices small details", "Waits for the right moment"}, rep.Data.Strengths)
		})
	}
}

func TestGenerate_NoScores(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Generate(context.Background(), Input{PlayerName: "Ana", Totals: aptitude.NewTotals()})
	assert.ErrorIs(t, err, ErrNoScores)
}

func TestGenerate_PrunesOldReports(t *testing.T) {
	reports := openReports(t)
	svc := NewService(nil, reports, nil)

	for i := 0; i < keepReports+3; i++ {
		_, err := svc.Generate(context.Background(), sampleInput())
		require.NoError(t, err)
	}

	latest, err := reports.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.Data.Offline)
}

func TestTopTraits(t *testing.T) {
	tot := aptitude.NewTotals()
	tot.Traits[aptitude.Logic] = 3
	tot.Traits[aptitude.Patience] = 9
	tot.Traits[aptitude.Leadership] = 9
	tot.Traits[aptitude.Creativity] = 1

	got := topTraits(tot, 3)
	assert.Equal(t, []aptitude.Trait{aptitude.Patience, aptitude.Leadership, aptitude.Logic}, got)

	assert.Empty(t, topTraits(aptitude.NewTotals(), 3))
}

type fakeProfile struct {
	in  Input
	err error
}

func (f fakeProfile) PlayerName(context.Context) (string, error) { return f.in.PlayerName, nil }
func (f fakeProfile) Totals(context.Context) (aptitude.Totals, error) {
	return f.in.Totals, f.err
}
func (f fakeProfile) Stats(context.Context) (store.ChallengeStats, error) { return f.in.Stats, nil }

func TestLoadInput(t *testing.T) {
	want := sampleInput()
	got, err := LoadInput(context.Background(), fakeProfile{in: want})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = LoadInput(context.Background(), fakeProfile{in: want, err: errors.New("locked")})
	assert.ErrorContains(t, err, "load totals")
}
