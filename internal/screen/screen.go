// Package screen holds the contract between the router and the pages of
// `leo app`.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mungbws1031/leo-study/internal/ui/layout"
)

// Screen is one page on the router stack: the child list, a child's menu,
// a mission, the history list or a weekly report.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the app header and footer.
	View(width, height int) string

	// Title is shown in the app header while the screen is on top.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
