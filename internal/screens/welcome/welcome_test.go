package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestSeedlingGrows(t *testing.T) {
	w, _ := newTestWelcome()

	if w.frame() != 0 {
		t.Fatalf("expected first frame at start, got %d", w.frame())
	}
	sendTicks(w, 4)
	if w.frame() != 1 {
		t.Errorf("expected frame 1 after 400ms, got %d", w.frame())
	}
	sendTicks(w, 20)
	if w.frame() != len(growFrames)-1 {
		t.Errorf("expected last frame, got %d", w.frame())
	}
}

func TestBannerAppears(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should not be visible at start")
	}

	sendTicks(w, int(bannerAt/tickInterval))
	if !strings.Contains(w.View(80, 24), "press any key") {
		t.Error("hint should be visible once the banner shows")
	}
	if !strings.Contains(w.View(40, 24), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
}

func TestTicksStopAtTotalDuration(t *testing.T) {
	w, callCount := newTestWelcome()

	if cmd := sendTicks(w, 100); cmd != nil {
		t.Error("ticking should stop once the animation is done")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
}

func TestKeypressReplacesWithHome(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
