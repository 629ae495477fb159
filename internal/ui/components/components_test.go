package components

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestProgressBarPercent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 6, 0},
		{3, 6, 0.5},
		{9, 6, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.done, tt.total, 40)
		if got := p.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBarView(t *testing.T) {
	out := NewProgressBar("이번 주", 2, 6, 40).View()
	if !strings.Contains(out, "이번 주") || !strings.Contains(out, "2/6") {
		t.Errorf("unexpected view %q", out)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu("", []MenuItem{{Label: "a", Disabled: true}, {Label: "b"}, {Label: "c", Disabled: true}, {Label: "d"}})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m.Selected = 3
	m.Up()
	if m.Selected != 1 {
		t.Fatalf("up from 3 = %d, want 1", m.Selected)
	}
	m.Up()
	if m.Selected != 1 {
		t.Fatalf("up past first enabled = %d, want 1", m.Selected)
	}
	m.Down()
	if m.Selected != 3 {
		t.Fatalf("down from 1 = %d, want 3", m.Selected)
	}
}

func TestMenuRender(t *testing.T) {
	m := NewMenu("누구의 과제?", []MenuItem{{Label: "민준", Detail: "초등 2학년"}, {Label: "서아"}})
	out := m.Render()
	for _, want := range []string{"누구의 과제?", "민준", "초등 2학년", "서아", "enter"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestWaitFinishesWithWorkError(t *testing.T) {
	boom := errors.New("boom")
	w := NewWait("생성 중", func() error { return boom })

	model, cmd := w.Update(workDoneMsg{err: boom})
	got := model.(Wait)
	if !got.done || !errors.Is(got.err, boom) {
		t.Fatalf("wait state = done:%v err:%v", got.done, got.err)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown("# 제목\n\n## 파닉스\n---\n**본문** 입니다", 40)
	for _, want := range []string{"제목", "파닉스", "─", "본문 입니다"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "**") || strings.Contains(out, "# ") {
		t.Error("markers should be stripped")
	}
}

func TestPagerScroll(t *testing.T) {
	p := NewPager("one\ntwo\nthree\nfour\n")
	if got := p.View(2); got != "one\ntwo" {
		t.Fatalf("initial view = %q", got)
	}

	p.ScrollDown(1)
	if got := p.View(2); got != "two\nthree" {
		t.Fatalf("after scroll down = %q", got)
	}

	p.ScrollDown(10)
	if p.Offset() != 3 || p.View(2) != "four" {
		t.Fatalf("scroll past end: offset %d view %q", p.Offset(), p.View(2))
	}

	p.ScrollUp(10)
	if p.Offset() != 0 {
		t.Fatalf("scroll past top: offset %d", p.Offset())
	}
	if p.View(0) != "" {
		t.Fatal("zero height should render nothing")
	}
}
