package components

import (
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

// ErrInterrupted is returned when the user presses ctrl+c while waiting.
var ErrInterrupted = errors.New("interrupted")

type workDoneMsg struct {
	err error
}

// Wait shows a spinner with a label while a blocking call runs.
type Wait struct {
	spinner spinner.Model
	label   string
	work    func() error
	done    bool
	err     error
}

// NewWait creates a Wait model around work.
func NewWait(label string, work func() error) Wait {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.Selected
	return Wait{spinner: s, label: label, work: work}
}

func (w Wait) Init() tea.Cmd {
	work := w.work
	return tea.Batch(w.spinner.Tick, func() tea.Msg {
		return workDoneMsg{err: work()}
	})
}

func (w Wait) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		w.done = true
		w.err = msg.err
		return w, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.done = true
			w.err = ErrInterrupted
			return w, tea.Quit
		}
	}
	var cmd tea.Cmd
	w.spinner, cmd = w.spinner.Update(msg)
	return w, cmd
}

func (w Wait) View() tea.View {
	if w.done {
		return tea.NewView("")
	}
	return tea.NewView(w.spinner.View() + " " + theme.Body.Render(w.label) + "\n")
}

// RunWait runs work behind a spinner and returns its error. The spinner
// program ends as soon as work returns.
func RunWait(label string, work func() error, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(NewWait(label, work), opts...).Run()
	if err != nil {
		return err
	}
	if w, ok := final.(Wait); ok {
		return w.err
	}
	return nil
}
