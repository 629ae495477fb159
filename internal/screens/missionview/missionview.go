// Package missionview shows a mission, either freshly generated or loaded
// from history.
package missionview

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/router"
	"github.com/mungbws1031/leo-study/internal/screen"
	"github.com/mungbws1031/leo-study/internal/screens"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

type generatedMsg struct {
	mission *mission.Mission
	err     error
}

type savedMsg struct {
	path string
	err  error
}

// Screen displays one mission.
type Screen struct {
	svc     screens.Services
	child   profile.Child
	level   mission.Level
	sel     mission.ThemeSelector
	title   string
	spinner spinner.Model

	mission *mission.Mission
	text    string
	pager   components.Pager
	width   int
	loading bool
	canSave bool
	status  string
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// NewGenerate creates a screen that generates today's mission on Init.
func NewGenerate(svc screens.Services, child profile.Child, level mission.Level, sel mission.ThemeSelector) *Screen {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.Selected
	return &Screen{
		svc:     svc,
		child:   child,
		level:   level,
		sel:     sel,
		title:   mission.Caption(svc.Clock()),
		spinner: s,
		loading: true,
	}
}

// NewSaved creates a read-only screen for a stored mission.
func NewSaved(child profile.Child, e history.Entry) *Screen {
	return &Screen{
		child: child,
		title: child.Name + " · " + e.Label,
		text:  e.Text,
	}
}

func (s *Screen) Init() tea.Cmd {
	if !s.loading {
		return nil
	}
	svc, child, level, sel := s.svc, s.child, s.level, s.sel
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx, cancel := svc.CallContext()
		defer cancel()
		m, err := svc.Missions.Generate(ctx, child, level, sel, svc.Clock())
		return generatedMsg{mission: m, err: err}
	})
}

func (s *Screen) Title() string { return s.title }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "스크롤"}}
	if s.canSave {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "저장"})
	}
	if s.canRetry() {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "다시 만들기"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "뒤로"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = describe(msg.err)
			return s, nil
		}
		s.mission = msg.mission
		s.text = msg.mission.Text
		s.canSave = true
		s.width = 0
		return s, nil

	case savedMsg:
		if msg.err != nil {
			s.status = theme.Failed.Render("저장 실패: " + msg.err.Error())
		} else {
			s.status = theme.Done.Render("✅ 저장 완료!")
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.pager.ScrollUp(1)
		case "down", "j":
			s.pager.ScrollDown(1)
		case "pgup":
			s.pager.ScrollUp(10)
		case "pgdown", "space":
			s.pager.ScrollDown(10)
		case "s":
			if s.canSave {
				return s, s.save()
			}
		case "r":
			if s.canRetry() {
				next := NewGenerate(s.svc, s.child, s.level, s.sel)
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
		return s, nil
	}

	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// canRetry is true once a generation attempt has finished. Saved
// missions have no generator and never retry.
func (s *Screen) canRetry() bool {
	return s.svc.Missions != nil && !s.loading
}

func (s *Screen) save() tea.Cmd {
	store, m := s.svc.History, s.mission
	return func() tea.Msg {
		path, err := store.Save(m.ChildID, m.Text, m.Day)
		return savedMsg{path: path, err: err}
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("\n\n%s %s", s.spinner.View(), "레오가 과제를 만들고 있어요... 🤔✨"))
	}

	if width != s.width {
		offset := s.pager.Offset()
		s.pager.SetContent(components.Markdown(s.text, width-2))
		s.pager.ScrollDown(offset)
		s.width = width
	}

	body := s.pager.View(height - 1)
	if s.status != "" {
		return body + "\n" + s.status
	}
	return body
}

func describe(err error) string {
	var gerr *mission.GenerationError
	if errors.As(err, &gerr) {
		return "과제를 만들지 못했어요: " + gerr.Err.Error()
	}
	return err.Error()
}
