package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label    string
	Done     int
	Total    int
	ShowFrac bool
	Width    int
}

// NewProgressBar creates a progress bar for done out of total.
func NewProgressBar(label string, done, total int, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Done:     done,
		Total:    total,
		ShowFrac: true,
		Width:    width,
	}
}

// Percent is the filled fraction, clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Done) / float64(p.Total)
	return min(max(f, 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	fracWidth := 0
	if p.ShowFrac {
		fracWidth = 8 // "  10/10"
	}

	barWidth := max(p.Width-labelWidth-fracWidth, 4)
	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowFrac {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", p.Done, p.Total))
	}

	return result
}
