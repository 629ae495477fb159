// Package report shows the weekly parent report for one child.
package report

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/profile"
	reports "github.com/mungbws1031/leo-study/internal/report"
	"github.com/mungbws1031/leo-study/internal/screen"
	"github.com/mungbws1031/leo-study/internal/screens"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

type reportMsg struct {
	report *reports.Report
	err    error
}

// ReportScreen builds the report on Init and shows it.
type ReportScreen struct {
	svc     screens.Services
	child   profile.Child
	spinner spinner.Model
	pager   components.Pager
	text    string
	width   int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(svc screens.Services, child profile.Child) *ReportScreen {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.Selected
	return &ReportScreen{svc: svc, child: child, spinner: s, loading: true}
}

func (s *ReportScreen) Init() tea.Cmd {
	svc, child := s.svc, s.child
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx, cancel := svc.CallContext()
		defer cancel()
		r, err := svc.Reports.Build(ctx, child, svc.Clock())
		return reportMsg{report: r, err: err}
	})
}

func (s *ReportScreen) Title() string {
	return "📊 " + s.child.Name + "의 주간 리포트"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "스크롤"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		s.loading = false
		if msg.err != nil {
			var gerr *reports.GenerationError
			if errors.As(msg.err, &gerr) {
				s.errMsg = "리포트를 만들지 못했어요: " + gerr.Err.Error()
			} else {
				s.errMsg = msg.err.Error()
			}
			return s, nil
		}
		s.text = msg.report.Text
		s.width = 0
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

func (s *ReportScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("\n\n%s 분석 중... 📊", s.spinner.View()))
	}
	if width != s.width {
		s.pager.SetContent(components.Markdown(s.text, width-2))
		s.width = width
	}
	return s.pager.View(height)
}
