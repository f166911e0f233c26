package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/watering"
)

func TestParseReleases(t *testing.T) {
	got, err := parseReleases(" 0.5, 0.3 ,0.9,")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.3, 0.9}, got)

	for _, bad := range []string{"", "abc", "1.5", "-0.1", ","} {
		_, err := parseReleases(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSimulate_Victory(t *testing.T) {
	var out bytes.Buffer
	res, err := simulate(watering.DefaultConfig(), []float64{0.5, 0.5, 0.5, 0.5}, nil, &out, logging.Discard())
	require.NoError(t, err)

	require.NotNil(t, res.result)
	assert.True(t, res.result.Victory)
	assert.Equal(t, 3, res.attempts, "releases after the session ends are ignored")
	assert.Equal(t, 3, res.result.Counters.PerfectHits)
	assert.InDelta(t, 35, res.result.Scores.Total(), 1e-9)
	assert.Equal(t, watering.PhaseVictory, res.session.Phase)

	assert.Contains(t, out.String(), "outcome perfect")
	assert.Contains(t, out.String(), "the plant is fully grown")
}

func TestSimulate_Withers(t *testing.T) {
	var out bytes.Buffer
	res, err := simulate(watering.DefaultConfig(), []float64{0.1, 0.95, 1.0}, nil, &out, logging.Discard())
	require.NoError(t, err)

	require.NotNil(t, res.result)
	assert.False(t, res.result.Victory)
	assert.Equal(t, 0, res.result.LivesLeft)
	assert.InDelta(t, 15, res.result.Scores.Total(), 1e-9)
	assert.Contains(t, out.String(), "the plant withered")
}

func TestSimulate_Unfinished(t *testing.T) {
	var out bytes.Buffer
	res, err := simulate(watering.DefaultConfig(), []float64{0.5}, nil, &out, logging.Discard())
	require.NoError(t, err)

	assert.Nil(t, res.result)
	assert.Equal(t, 1, res.session.Stage)
	assert.Equal(t, watering.PhaseIdle, res.session.Phase)

	var summary bytes.Buffer
	printResult(&summary, watering.DefaultConfig(), res, true)
	assert.Contains(t, summary.String(), "Session unfinished after 1 releases")
}

func TestSimulate_SavesToProfile(t *testing.T) {
	name := strings.NewReplacer("/", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering)
	var out bytes.Buffer
	_, err = simulate(watering.DefaultConfig(), []float64{0.5, 0.3, 0.5}, svc, &out, logging.Discard())
	require.NoError(t, err)

	ctx := context.Background()
	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	// Two perfect hits out of three: 10 precision, 10 patience, 10 persistence.
	assert.InDelta(t, 30, totals.Areas[aptitude.NaturalSciences], 1e-9)
	assert.InDelta(t, 10, totals.Traits[aptitude.AttentionToDetail], 1e-9)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Played)
	assert.Equal(t, 1, stats.Victories)
	assert.Equal(t, 3, stats.TotalAttempts)
}

func TestPrintResult(t *testing.T) {
	res, err := simulate(watering.DefaultConfig(), []float64{0.5, 0.5, 0.5}, nil, &bytes.Buffer{}, logging.Discard())
	require.NoError(t, err)

	var out bytes.Buffer
	printResult(&out, watering.DefaultConfig(), res, true)
	s := out.String()
	assert.Contains(t, s, "Victory")
	assert.Contains(t, s, "3/3")
	assert.Contains(t, s, "Natural Sciences")
	assert.Contains(t, s, "dry run")
}

func TestParseAvatar(t *testing.T) {
	id, err := parseAvatar("3")
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	id, err = parseAvatar("sunny")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = parseAvatar("dragon")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "🌱🌱…", truncate("🌱🌱🌱🌱", 3))
}

func TestParseAreas(t *testing.T) {
	got, err := parseAreas([]string{"natural_sciences,creative_arts", "sports_activity"})
	require.NoError(t, err)
	assert.Equal(t, []aptitude.Area{aptitude.NaturalSciences, aptitude.CreativeArts, aptitude.SportsActivity}, got)

	_, err = parseAreas([]string{"alchemy"})
	assert.Error(t, err)
}

func TestWriteVersion(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.0",
		Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}

	var buf bytes.Buffer
	writeVersion(&buf, info, "/tmp/sprout.db", watering.DefaultConfig())

	out := buf.String()
	assert.Contains(t, out, "sprout (devel)")
	assert.Contains(t, out, "go1.25.0")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "/tmp/sprout.db")
	assert.Contains(t, out, "stages:   3, lives: 3")
}

func TestWriteVersionWithoutBuildInfo(t *testing.T) {
	var buf bytes.Buffer
	writeVersion(&buf, nil, "sprout.db", watering.DefaultConfig())

	assert.NotContains(t, buf.String(), "go:")
	assert.Contains(t, buf.String(), "garden:   sprout.db")
}
