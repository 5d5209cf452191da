package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmState int

const (
	confirmPending confirmState = iota
	confirmAccepted
	confirmAborted
)

var confirmKeys = struct {
	yes, no, toggle, submit, abort key.Binding
}{
	yes:    key.NewBinding(key.WithKeys("y", "right", "l")),
	no:     key.NewBinding(key.WithKeys("n", "left", "h")),
	toggle: key.NewBinding(key.WithKeys("tab")),
	submit: key.NewBinding(key.WithKeys("enter")),
	abort:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
}

// ConfirmModel asks a destructive yes/no question. "No" is preselected.
type ConfirmModel struct {
	prompt string
	yes    bool
	state  confirmState
	theme  *Theme
}

// NewConfirm returns a model asking prompt.
func NewConfirm(theme *Theme, prompt string) ConfirmModel {
	return ConfirmModel{prompt: prompt, theme: theme}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update implements tea.Model. The program quits once answered.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(k, confirmKeys.yes):
		m.yes = true
	case key.Matches(k, confirmKeys.no):
		m.yes = false
	case key.Matches(k, confirmKeys.toggle):
		m.yes = !m.yes
	case key.Matches(k, confirmKeys.submit):
		m.state = confirmAccepted
		return m, tea.Quit
	case key.Matches(k, confirmKeys.abort):
		m.state = confirmAborted
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.Done() {
		return ""
	}

	button := func(label string, active bool) string {
		if active {
			return m.theme.ActiveButton.Render(label)
		}
		return m.theme.InactiveButton.Render(label)
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(m.prompt),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, button(" No ", !m.yes), "  ", button(" Yes ", m.yes)),
		"",
		m.theme.Subtle.Render("y/n to choose, enter to confirm, esc to cancel"),
	))
}

// YesSelected reports whether "Yes" is highlighted.
func (m ConfirmModel) YesSelected() bool { return m.yes }

// Aborted reports whether the prompt was dismissed without an answer.
func (m ConfirmModel) Aborted() bool { return m.state == confirmAborted }

// Done reports whether the prompt was answered or dismissed.
func (m ConfirmModel) Done() bool { return m.state != confirmPending }

// Result is true only for an explicit "Yes".
func (m ConfirmModel) Result() bool { return m.state == confirmAccepted && m.yes }

// Confirm runs the prompt as its own program.
func Confirm(theme *Theme, prompt string, opts ...tea.ProgramOption) (bool, error) {
	final, err := tea.NewProgram(NewConfirm(theme, prompt), opts...).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Result(), nil
}
