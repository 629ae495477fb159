package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

// Markdown renders mission or report text for the terminal using the same
// line classes as the PDF export.
func Markdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	for _, line := range render.Parse(text) {
		switch line.Kind {
		case render.KindHeading1:
			b.WriteString(theme.Heading1.Render(line.Text))
		case render.KindHeading2:
			b.WriteString(theme.Heading2.Render(line.Text))
		case render.KindHeading3:
			b.WriteString(theme.Heading3.Render(line.Text))
		case render.KindRule:
			b.WriteString(theme.Rule.Render(strings.Repeat("─", width)))
		case render.KindSpace:
		default:
			b.WriteString(lipgloss.NewStyle().Width(width).Render(line.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}
