package home

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/router"
	"github.com/mungbws1031/leo-study/internal/screens"
	"github.com/mungbws1031/leo-study/internal/screens/history"
	"github.com/mungbws1031/leo-study/internal/screens/missionview"
	"github.com/mungbws1031/leo-study/internal/screens/report"
)

func testServices() screens.Services {
	return screens.Services{
		Profiles: profile.NewStore(profile.Defaults(profile.Env{})),
		Now:      func() time.Time { return time.Date(2025, 3, 4, 9, 0, 0, 0, time.Local) },
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg
}

func TestHomeEnterPushesChild(t *testing.T) {
	h := New(testServices())
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := pushed(t, cmd)

	child, ok := msg.Screen.(*ChildScreen)
	if !ok {
		t.Fatalf("expected *ChildScreen, got %T", msg.Screen)
	}
	if child.child.ID != "seoa" {
		t.Errorf("child = %q, want seoa", child.child.ID)
	}
}

func TestHomeView(t *testing.T) {
	out := New(testServices()).View(60, 10)
	for _, want := range []string{"민준", "서아"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestChildLevelAndTheme(t *testing.T) {
	svc := testServices()
	minjun, _ := svc.Profiles.Get("minjun")
	s := NewChild(svc, minjun)

	if got := mission.Levels[s.level]; got != mission.LevelNormal {
		t.Fatalf("default level = %q", got)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := mission.Levels[s.level]; got != mission.LevelHard {
		t.Errorf("level after two rights = %q", got)
	}

	if !s.selector().Random() {
		t.Fatal("theme should start random")
	}
	s.Update(keyPress('t'))
	if got := s.selector().Theme; got != minjun.Themes[0] {
		t.Errorf("theme = %q, want %q", got, minjun.Themes[0])
	}
	for range minjun.Themes {
		s.Update(keyPress('t'))
	}
	if !s.selector().Random() {
		t.Error("theme should cycle back to random")
	}
}

func TestChildPreschoolHasNoThemeChoice(t *testing.T) {
	svc := testServices()
	seoa, _ := svc.Profiles.Get("seoa")
	s := NewChild(svc, seoa)

	s.Update(keyPress('t'))
	if !s.selector().Random() {
		t.Error("preschool theme should not change")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "t" {
			t.Error("preschool screen should not offer a theme key")
		}
	}
}

func TestChildOpensScreens(t *testing.T) {
	svc := testServices()
	minjun, _ := svc.Profiles.Get("minjun")

	tests := []struct {
		downs int
		check func(any) bool
	}{
		{0, func(s any) bool { _, ok := s.(*missionview.Screen); return ok }},
		{1, func(s any) bool { _, ok := s.(*history.HistoryScreen); return ok }},
		{2, func(s any) bool { _, ok := s.(*report.ReportScreen); return ok }},
	}
	for _, tt := range tests {
		s := NewChild(svc, minjun)
		for i := 0; i < tt.downs; i++ {
			s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		msg := pushed(t, cmd)
		if !tt.check(msg.Screen) {
			t.Errorf("item %d pushed %T", tt.downs, msg.Screen)
		}
	}
}
