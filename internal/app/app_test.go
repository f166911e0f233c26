package app

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screens/home"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/watering"
)

func testDeps(t *testing.T) home.Deps {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return home.Deps{
		Profile:  profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), "watering"),
		Watering: watering.DefaultConfig(),
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestBadgeShowsPlayer(t *testing.T) {
	m := newAppModel(testDeps(t), false)
	if !strings.Contains(m.badge, profile.DefaultName) {
		t.Errorf("badge %q should contain the default name", m.badge)
	}
}

func TestEnterOpensWateringAndEscLeaves(t *testing.T) {
	m := newAppModel(testDeps(t), false)

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting the first menu item should push a screen")
	}
	m, _ = update(m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}
	if got := m.router.Active().Title(); got != "Water the Plant" {
		t.Errorf("expected watering screen, got %q", got)
	}

	m, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("esc should produce PopScreenMsg")
	}
	m, _ = update(m, router.PopScreenMsg{})
	if m.router.Depth() != 1 {
		t.Errorf("expected depth 1 after pop, got %d", m.router.Depth())
	}
}

func TestEscAtHomeIsNoop(t *testing.T) {
	m := newAppModel(testDeps(t), false)
	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the home screen should do nothing")
	}
}

func TestViewRendersFrame(t *testing.T) {
	m := newAppModel(testDeps(t), false)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
	if !v.KeyboardEnhancements.ReportEventTypes {
		t.Error("expected key release events to be requested")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	_ = m.View()
}

func TestSplashReplacedByHome(t *testing.T) {
	m := newAppModel(testDeps(t), true)
	if got := m.router.Active().Title(); got != "" {
		t.Fatalf("expected splash first, got %q", got)
	}

	m, cmd := update(m, tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("a key on the splash should move on")
	}
	m, _ = update(m, cmd())
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("expected home after splash, got %q", got)
	}
}
