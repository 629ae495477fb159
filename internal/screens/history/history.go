// Package history lists a child's saved missions.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	missions "github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/router"
	"github.com/mungbws1031/leo-study/internal/screen"
	"github.com/mungbws1031/leo-study/internal/screens"
	"github.com/mungbws1031/leo-study/internal/screens/missionview"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []missions.Entry
	Err     error
}

// HistoryScreen lists saved missions, newest first.
type HistoryScreen struct {
	svc      screens.Services
	child    profile.Child
	entries  []missions.Entry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc screens.Services, child profile.Child) *HistoryScreen {
	return &HistoryScreen{svc: svc, child: child}
}

func (s *HistoryScreen) Init() tea.Cmd {
	store, childID := s.svc.History, s.child.ID
	return func() tea.Msg {
		entries, err := store.List(childID)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		return historyLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "📚 " + s.child.Name + "의 과제 기록"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "보기"},
		{Key: "↑↓", Description: "이동"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.entries) {
				view := missionview.NewSaved(s.child, s.entries[s.selected])
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: view} }
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n오류: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  불러오는 중...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  아직 저장된 과제가 없어요!")
	}

	// Keep the selection visible.
	first := 0
	if rows := height - 1; rows > 0 && s.selected >= rows {
		first = s.selected - rows + 1
	}

	var b strings.Builder
	b.WriteString("\n")
	for i := first; i < len(s.entries) && i-first < height-1; i++ {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s📄 %s", prefix, s.entries[i].Label)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
