// Package home holds the child picker and the per-child action menu.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/router"
	"github.com/mungbws1031/leo-study/internal/screen"
	"github.com/mungbws1031/leo-study/internal/screens"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

// HomeScreen lists the children.
type HomeScreen struct {
	svc      screens.Services
	children []profile.Child
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc screens.Services) *HomeScreen {
	children := svc.Profiles.All()
	items := make([]components.MenuItem, len(children))
	for i, c := range children {
		items[i] = components.MenuItem{Label: c.Name, Detail: c.Grade}
	}
	return &HomeScreen{
		svc:      svc,
		children: children,
		menu:     components.NewMenu("", items),
	}
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Title() string { return "누구의 과제를 만들까요?" }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch kmsg.String() {
	case "up", "k":
		h.menu.Up()
	case "down", "j":
		h.menu.Down()
	case "q":
		return h, tea.Quit
	case "enter":
		if len(h.children) == 0 {
			return h, nil
		}
		next := NewChild(h.svc, h.children[h.menu.Selected])
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(h.menu.RenderItems())
}
