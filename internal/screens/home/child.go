package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/router"
	"github.com/mungbws1031/leo-study/internal/screen"
	"github.com/mungbws1031/leo-study/internal/screens"
	"github.com/mungbws1031/leo-study/internal/screens/history"
	"github.com/mungbws1031/leo-study/internal/screens/missionview"
	"github.com/mungbws1031/leo-study/internal/screens/report"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

const (
	itemMission = iota
	itemHistory
	itemReport
)

// ChildScreen offers today's mission, the history and the weekly report
// for one child. Left and right change the level; t cycles the theme.
type ChildScreen struct {
	svc   screens.Services
	child profile.Child
	menu  components.Menu
	level int
	theme int // 0 is random, otherwise an index into child.Themes plus one
}

var _ screen.Screen = (*ChildScreen)(nil)
var _ screen.KeyHintProvider = (*ChildScreen)(nil)

// NewChild creates a new ChildScreen.
func NewChild(svc screens.Services, child profile.Child) *ChildScreen {
	s := &ChildScreen{svc: svc, child: child, level: 1}
	s.menu = components.NewMenu("", s.items())
	return s
}

func (s *ChildScreen) items() []components.MenuItem {
	return []components.MenuItem{
		{Label: "🚀 오늘의 과제 만들기", Detail: s.missionDetail()},
		{Label: "📚 과제 기록"},
		{Label: "📊 주간 리포트"},
	}
}

func (s *ChildScreen) missionDetail() string {
	detail := mission.Levels[s.level].Label()
	if !s.themable() {
		return detail
	}
	if s.theme == 0 {
		return detail + " · 🎲 랜덤 테마"
	}
	return detail + " · " + s.child.Themes[s.theme-1]
}

// themable reports whether the child's category takes a theme choice.
func (s *ChildScreen) themable() bool {
	return s.child.Category != profile.CategoryPreschool && len(s.child.Themes) > 0
}

func (s *ChildScreen) selector() mission.ThemeSelector {
	if s.theme == 0 {
		return mission.RandomTheme()
	}
	return mission.SpecificTheme(s.child.Themes[s.theme-1])
}

func (s *ChildScreen) Init() tea.Cmd { return nil }

func (s *ChildScreen) Title() string {
	return s.child.Name + " · " + mission.Caption(s.svc.Clock())
}

func (s *ChildScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "←→", Description: "난이도"},
	}
	if s.themable() {
		hints = append(hints, layout.KeyHint{Key: "t", Description: "테마"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "선택"},
		layout.KeyHint{Key: "Esc", Description: "뒤로"},
	)
}

func (s *ChildScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.menu.Up()
	case "down", "j":
		s.menu.Down()
	case "left", "h":
		if s.level > 0 {
			s.level--
		}
	case "right", "l":
		if s.level < len(mission.Levels)-1 {
			s.level++
		}
	case "t":
		if s.themable() {
			s.theme = (s.theme + 1) % (len(s.child.Themes) + 1)
		}
	case "enter":
		return s, s.open()
	}
	s.menu.Items = s.items()
	return s, nil
}

func (s *ChildScreen) open() tea.Cmd {
	var next screen.Screen
	switch s.menu.Selected {
	case itemMission:
		next = missionview.NewGenerate(s.svc, s.child, mission.Levels[s.level], s.selector())
	case itemHistory:
		next = history.New(s.svc, s.child)
	case itemReport:
		next = report.New(s.svc, s.child)
	default:
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *ChildScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(s.menu.RenderItems())
}
