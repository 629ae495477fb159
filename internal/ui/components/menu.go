package components

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

// ErrCancelled is returned when the user leaves a prompt without choosing.
var ErrCancelled = errors.New("cancelled")

// MenuItem represents a single item in a menu.
type MenuItem struct {
	Label    string
	Detail   string
	Disabled bool
}

// Menu is a vertical selection menu.
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	chosen   bool
	quit     bool
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(title string, items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Title:    title,
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Up()
	case "down", "j":
		m.Down()
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) && !m.Items[m.Selected].Disabled {
			m.chosen = true
			return m, tea.Quit
		}
	case "q", "esc", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

// Up moves the selection to the previous enabled item.
func (m *Menu) Up() {
	for i := m.Selected - 1; i >= 0; i-- {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Down moves the selection to the next enabled item.
func (m *Menu) Down() {
	for i := m.Selected + 1; i < len(m.Items); i++ {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Render draws the menu as plain lines.
func (m Menu) Render() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(theme.Title.Render(m.Title) + "\n\n")
	}
	b.WriteString(m.RenderItems())
	b.WriteString("\n" + layout.RenderFooter([]layout.KeyHint{
		{Key: "↑/↓", Description: "이동"},
		{Key: "enter", Description: "선택"},
		{Key: "q", Description: "취소"},
	}) + "\n")
	return b.String()
}

// RenderItems draws only the item lines, for embedding in a larger screen.
func (m Menu) RenderItems() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Detail != "" {
			label += "  " + theme.Subtitle.Render(item.Detail)
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Hint.Render("    "+item.Label) + "\n")
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ ") + theme.Selected.Render(label) + "\n")
		default:
			b.WriteString(theme.Unselected.Render("    "+label) + "\n")
		}
	}
	return b.String()
}

// View implements tea.Model.
func (m Menu) View() tea.View {
	if m.chosen || m.quit {
		return tea.NewView("")
	}
	return tea.NewView(m.Render())
}

// Choose runs the menu as a standalone program and returns the index of
// the chosen item.
func Choose(title string, items []MenuItem, opts ...tea.ProgramOption) (int, error) {
	final, err := tea.NewProgram(NewMenu(title, items), opts...).Run()
	if err != nil {
		return -1, err
	}
	m, ok := final.(Menu)
	if !ok || !m.chosen {
		return -1, ErrCancelled
	}
	return m.Selected, nil
}
