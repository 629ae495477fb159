package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// RenderHeader renders the app banner: the app name on the left and the
// caption on the right.
func RenderHeader(caption string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	left := theme.Title.Render("🎮 레오 학습 파트너")
	right := theme.Subtitle.Render(caption)

	innerWidth := width - 4
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return theme.Card.Width(width).Render(left + "\n" + right)
	}
	return theme.Card.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders key hints.
func RenderFooter(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	return "  " + strings.Join(parts, "   ")
}
