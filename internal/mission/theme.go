package mission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mungbws1031/leo-study/internal/profile"
)

// ErrUnknownTheme is returned when a specific theme is not one of the
// child's preferred themes.
var ErrUnknownTheme = errors.New("theme not in child's preferred themes")

// ThemeSelector picks how missions are wrapped: either any one of the
// child's preferred themes, or exactly one named theme. The zero value is
// the random selector.
type ThemeSelector struct {
	Theme string
}

// RandomTheme lets the model choose among the preferred themes.
func RandomTheme() ThemeSelector { return ThemeSelector{} }

// SpecificTheme pins the mission to one theme.
func SpecificTheme(name string) ThemeSelector {
	return ThemeSelector{Theme: strings.TrimSpace(name)}
}

// Random reports whether the selector leaves the choice to the model.
func (s ThemeSelector) Random() bool { return s.Theme == "" }

func (s ThemeSelector) String() string {
	if s.Random() {
		return "random"
	}
	return s.Theme
}

func (s ThemeSelector) check(child profile.Child) error {
	if s.Random() || child.HasTheme(s.Theme) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTheme, s.Theme)
}

// wrapDirective is the prompt rule that frames every exercise in a theme.
func (s ThemeSelector) wrapDirective(child profile.Child) string {
	if !s.Random() {
		return fmt.Sprintf("모든 문제를 '%s' 상황으로만 포장하기 (다른 테마는 쓰지 않기)", s.Theme)
	}
	if len(child.Themes) == 1 {
		return fmt.Sprintf("모든 문제를 '%s' 상황으로 포장하기", child.Themes[0])
	}
	return fmt.Sprintf("다음 테마 중 하나를 골라 모든 문제를 포장하기: %s", strings.Join(child.Themes, ", "))
}
