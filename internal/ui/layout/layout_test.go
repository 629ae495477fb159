package layout

import (
	"strings"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("2025년 03월 04일 화요일", 100)
	if !strings.Contains(out, "레오 학습 파트너") {
		t.Error("header missing app name")
	}
	if !strings.Contains(out, "화요일") {
		t.Error("header missing caption")
	}
}

func TestRenderHeaderNarrowWraps(t *testing.T) {
	out := RenderHeader(strings.Repeat("긴", 60), 30)
	if !strings.Contains(out, "레오 학습 파트너") {
		t.Error("narrow header should still show the app name")
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "enter", Description: "선택"}, {Key: "q", Description: "종료"}})
	for _, want := range []string{"enter", "선택", "q", "종료"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}
