// Package profile shows the player's aptitude totals and lets them pick an
// avatar and a name.
package profile

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/aptitude"
	prof "github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
)

// historyLimit is how many recent games are listed.
const historyLimit = 5

type profileLoadedMsg struct {
	Avatar  prof.Avatar
	Name    string
	Totals  aptitude.Totals
	Stats   store.ChallengeStats
	History []store.ChallengeEvent
	Err     error
}

type savedMsg struct {
	Err error
}

// ProfileScreen displays the player's aptitude profile.
type ProfileScreen struct {
	svc    *prof.Service
	data   profileLoadedMsg
	loaded bool
	errMsg string

	// pick is the avatar being browsed; it is stored only on Enter.
	pick int

	editing bool
	input   components.TextInput
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.EscapeHandler = (*ProfileScreen)(nil)

// New creates a ProfileScreen backed by svc.
func New(svc *prof.Service) *ProfileScreen {
	return &ProfileScreen{svc: svc}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.load
}

func (s *ProfileScreen) load() tea.Msg {
	ctx := context.Background()
	var msg profileLoadedMsg
	var err error

	if msg.Avatar, err = s.svc.Avatar(ctx); err != nil {
		return profileLoadedMsg{Err: err}
	}
	if msg.Name, err = s.svc.PlayerName(ctx); err != nil {
		return profileLoadedMsg{Err: err}
	}
	if msg.Totals, err = s.svc.Totals(ctx); err != nil {
		return profileLoadedMsg{Err: err}
	}
	if msg.Stats, err = s.svc.Stats(ctx); err != nil {
		return profileLoadedMsg{Err: err}
	}
	if msg.History, err = s.svc.History(ctx, historyLimit); err != nil {
		return profileLoadedMsg{Err: err}
	}
	return msg
}

func (s *ProfileScreen) Title() string {
	return "My Aptitudes"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Browse avatars"},
		{Key: "Enter", Description: "Choose avatar"},
		{Key: "N", Description: "Change name"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEscape keeps the screen open while the name is being edited.
func (s *ProfileScreen) HandlesEscape() bool {
	return s.editing
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.data = msg
		s.pick = msg.Avatar.ID
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load

	case tea.KeyPressMsg:
		if s.editing {
			return s.updateEditing(msg)
		}
		switch msg.String() {
		case "left", "h":
			s.pick = wrapAvatar(s.pick - 1)
			return s, nil
		case "right", "l":
			s.pick = wrapAvatar(s.pick + 1)
			return s, nil
		case "enter":
			if s.pick != s.data.Avatar.ID {
				return s, s.setAvatar(s.pick)
			}
			return s, nil
		case "n":
			s.editing = true
			s.input = components.NewTextInput("Your name", s.data.Name, prof.MaxNameLength)
			return s, s.input.Init()
		}
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProfileScreen) updateEditing(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "enter":
		s.editing = false
		name := s.input.Value()
		return s, func() tea.Msg {
			return savedMsg{Err: s.svc.SetPlayerName(context.Background(), name)}
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// setAvatar stores the chosen avatar, which awards its area bonuses.
func (s *ProfileScreen) setAvatar(id int) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{Err: s.svc.SetAvatar(context.Background(), id)}
	}
}

func wrapAvatar(id int) int {
	n := len(prof.Avatars)
	return ((id % n) + n) % n
}
