package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/burrow/internal/cli/styles"
)

func press(t *testing.T, m styles.ConfirmModel, keys ...tea.KeyMsg) (styles.ConfirmModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(styles.ConfirmModel)
		require.True(t, ok)
	}
	return m, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Reset?")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
	assert.NotNil(t, cmd)
}

func TestConfirmModel_YesThenEnter(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Reset?")

	m, _ = press(t, m, runeKey('y'))
	assert.True(t, m.YesSelected())
	assert.False(t, m.Done())
	assert.Contains(t, m.View(), "Reset?")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Result())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestConfirmModel_ArrowKeysToggle(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Reset?")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.YesSelected())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, m.YesSelected())
}

func TestConfirmModel_EscapeCancels(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Reset?")

	m, cmd := press(t, m, runeKey('y'), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Aborted())
	assert.False(t, m.Result())
	assert.NotNil(t, cmd)
}

func TestConfirmModel_IgnoresOtherMessages(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Reset?")

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.False(t, next.(styles.ConfirmModel).Done())
}

func TestConfirmModel_TabToggles(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Reset?")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.YesSelected())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.YesSelected())
}
