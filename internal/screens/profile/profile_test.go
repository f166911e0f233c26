package profile

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprout/internal/aptitude"
	prof "github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/store"
)

func newTestScreen(t *testing.T) (*ProfileScreen, *prof.Service) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:profilescreen_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := prof.NewService(st.ProfileRepo(), st.ChallengeRepo(), "watering")
	s := New(svc)
	s.Update(s.Init()())
	return s, svc
}

// run executes cmd and feeds its message back, following one reload.
func run(s *ProfileScreen, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 2; i++ {
		_, cmd = s.Update(cmd())
	}
}

func TestLoadShowsTotals(t *testing.T) {
	s, svc := newTestScreen(t)
	assert.Contains(t, s.View(100, 40), "No games yet")

	ctx := context.Background()
	require.NoError(t, svc.AddAptitudeScore(ctx, aptitude.CreativeArts, 12))
	require.NoError(t, svc.AddTraitScore(ctx, aptitude.Patience, 4))
	s.Update(s.Init()())

	require.True(t, s.loaded)
	assert.Equal(t, 12.0, s.data.Totals.Areas[aptitude.CreativeArts])
	view := s.View(100, 40)
	assert.Contains(t, view, "Creative Arts")
	assert.Contains(t, view, prof.DefaultName)
}

func TestAvatarBrowseThenChoose(t *testing.T) {
	s, svc := newTestScreen(t)
	ctx := context.Background()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Nil(t, cmd, "browsing does not store anything")
	assert.Equal(t, 1, s.pick)
	assert.Contains(t, s.View(100, 40), "Enter to choose")

	a, err := svc.Avatar(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, a.ID)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	run(s, cmd)

	a, err = svc.Avatar(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 1, s.data.Avatar.ID)
	assert.Equal(t, prof.AvatarPrimaryBonus, s.data.Totals.Areas[prof.Avatars[1].PrimaryArea])
	assert.Equal(t, prof.AvatarSecondaryBonus, s.data.Totals.Areas[prof.Avatars[1].SecondaryArea])
	assert.NotContains(t, s.View(100, 40), "Enter to choose")

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd, "confirming the current avatar again is a no-op")
}

func TestAvatarBrowseWraps(t *testing.T) {
	s, _ := newTestScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, len(prof.Avatars)-1, s.pick, "left from the first avatar wraps")
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 0, s.pick)
}

func TestEditName(t *testing.T) {
	s, svc := newTestScreen(t)

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	require.True(t, s.editing)
	assert.True(t, s.HandlesEscape())

	s.input.Model.SetValue("Ana")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, s.editing)
	run(s, cmd)

	name, err := svc.PlayerName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, "Ana", s.data.Name)
}

func TestEditNameCancel(t *testing.T) {
	s, svc := newTestScreen(t)

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	s.input.Model.SetValue("Zed")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	assert.Nil(t, cmd)
	assert.False(t, s.editing)
	assert.False(t, s.HandlesEscape())
	name, err := svc.PlayerName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, prof.DefaultName, name)
}

func TestSaveErrorShown(t *testing.T) {
	s, _ := newTestScreen(t)
	s.Update(savedMsg{Err: fmt.Errorf("disk full")})
	assert.Contains(t, s.View(100, 40), "disk full")
}
