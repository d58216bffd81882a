package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WillyV3/pilotprogress/internal/progress"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ec9b0"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666"))
)

func newHoursInput() textinput.Model {
	t := textinput.New()
	t.Placeholder = "Hours flown"
	t.Prompt = "Hours: "
	t.CharLimit = 16
	t.Width = 16
	t.Cursor.Style = focusedStyle
	t.PromptStyle = blurredStyle
	t.TextStyle = blurredStyle
	return t
}

// focusHours puts the current value into the input and focuses it.
func focusHours(t textinput.Model, current progress.Hours) (textinput.Model, tea.Cmd) {
	t.SetValue(current.String())
	t.CursorEnd()
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle
	cmd := t.Focus()
	return t, tea.Batch(cmd, textinput.Blink)
}

func blurHours(t textinput.Model) textinput.Model {
	t.Blur()
	t.PromptStyle = blurredStyle
	t.TextStyle = blurredStyle
	return t
}
