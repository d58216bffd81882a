package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WillyV3/pilotprogress/internal/tracker"
	"github.com/WillyV3/pilotprogress/internal/ui"
)

const (
	minWidth       = 40
	minHeight      = 10
	contentPadding = 2
	nameWidth      = 18
	labelWidth     = 14
)

// barSet is the board's render target: it keeps the latest view per bar.
type barSet struct {
	views map[string]tracker.View
	hours tracker.HoursView
}

func newBarSet() *barSet {
	return &barSet{views: map[string]tracker.View{}}
}

func (b *barSet) RenderProgress(v tracker.View)     { b.views[v.Target] = v }
func (b *barSet) RenderHours(v tracker.HoursView) { b.hours = v }

type row struct {
	id    string
	title string
}

type model struct {
	ctx  context.Context
	agg  *tracker.Aggregator
	bars *barSet
	rows []row

	cursor  int
	input   textinput.Model
	editing bool

	width    int
	height   int
	ready    bool
	showHelp bool

	statusMsg   string
	statusUntil time.Time
}

func newModel(ctx context.Context, agg *tracker.Aggregator, bars *barSet) model {
	var rows []row
	for _, c := range agg.Board().Categories {
		for _, t := range c.Tasks {
			rows = append(rows, row{id: t.ID, title: t.Title})
		}
	}
	return model{
		ctx:   ctx,
		agg:   agg,
		bars:  bars,
		rows:  rows,
		input: newHoursInput(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minWidth)
		m.height = max(msg.Height, minHeight)
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.handleHoursKey(msg)
		}
		return m.handleKeyPress(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, keys.Reload):
		if err := m.agg.Load(m.ctx); err != nil {
			m.setStatus("Reload failed: " + err.Error())
		} else {
			m.setStatus("Progress reloaded")
		}

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Toggle):
		if m.cursor < len(m.rows) {
			r := m.rows[m.cursor]
			checked := !m.agg.IsChecked(r.id)
			if err := m.agg.Toggle(m.ctx, r.id, checked); err != nil {
				m.setStatus("Save failed: " + err.Error())
			} else if checked {
				m.setStatus("Task completed")
			} else {
				m.setStatus("Task reopened")
			}
		}

	case key.Matches(msg, keys.Hours):
		m.editing = true
		var cmd tea.Cmd
		m.input, cmd = focusHours(m.input, m.agg.Hours())
		return m, cmd
	}
	return m, nil
}

func (m model) handleHoursKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel):
		m.editing = false
		m.input = blurHours(m.input)
		return m, nil

	case key.Matches(msg, keys.Submit):
		h, err := m.agg.SetHours(m.ctx, m.input.Value())
		m.input.SetValue(h.String())
		m.editing = false
		m.input = blurHours(m.input)
		if err != nil {
			m.setStatus("Save failed: " + err.Error())
		} else {
			m.setStatus(fmt.Sprintf("Hours set to %s", h))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(2 * time.Second)
}

func (m model) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	var output strings.Builder
	output.WriteString(m.renderHeader())
	output.WriteString(m.renderCategories())
	output.WriteString(m.renderHours())
	output.WriteString(m.renderFooter())

	return lipgloss.NewStyle().Padding(0, 1).Render(output.String())
}

func (m model) barWidth() int {
	return max(m.width-nameWidth-labelWidth-contentPadding*2, 10)
}

func (m model) renderBar(v tracker.View) string {
	bar := ui.Bar(v.Band, m.barWidth())
	name := lipgloss.NewStyle().Width(nameWidth).Render(ui.Key.Render(v.Name))
	return fmt.Sprintf("%s %s %s", name, bar.ViewAs(v.Percent/100), ui.BandStyle(v.Band).Render(v.Label))
}

func (m model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4ec9b0")).
		Width(m.width - contentPadding).
		Align(lipgloss.Center)

	title := m.agg.Board().Title
	if title == "" {
		title = "Progress"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(ui.IconPlane + "  " + title))
	b.WriteString("\n\n")
	if v, ok := m.bars.views[tracker.OverallTarget]; ok {
		b.WriteString(m.renderBar(v))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m model) renderCategories() string {
	var b strings.Builder
	idx := 0
	for _, c := range m.agg.Board().Categories {
		if v, ok := m.bars.views[c.Key]; ok {
			b.WriteString(m.renderBar(v))
			b.WriteString("\n")
		}
		for range c.Tasks {
			b.WriteString(m.renderRow(m.rows[idx], idx == m.cursor))
			b.WriteString("\n")
			idx++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderRow(r row, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	checked := m.agg.IsChecked(r.id)
	contentStyle := ui.Text
	if checked {
		contentStyle = ui.Done
	}
	if selected {
		contentStyle = contentStyle.Bold(true)
	}

	return fmt.Sprintf("%s%s %s", cursor, ui.Checkbox(checked), contentStyle.Render(r.title))
}

func (m model) renderHours() string {
	hv := m.bars.hours
	if hv.Name == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderBar(hv.View))
	b.WriteString("\n")
	b.WriteString("  " + ui.RemainingStyle(hv.Achieved).Render(hv.Remaining))
	b.WriteString("\n")
	if m.editing {
		b.WriteString("  " + m.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) renderFooter() string {
	if m.showHelp {
		return m.renderHelp()
	}

	status := ""
	if time.Now().Before(m.statusUntil) {
		status = ui.Title.Render(m.statusMsg) + " "
	}

	hint := "? help | x toggle | h hours | q quit"
	if m.editing {
		hint = "enter save | esc cancel"
	}
	return status + ui.Muted.Render(hint)
}

func (m model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#999")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#666")).
		Padding(0, 1).
		Width(m.width - contentPadding*2)

	bindings := []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.Hours, keys.Submit, keys.Cancel, keys.Reload, keys.Help, keys.Quit}
	lines := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		lines = append(lines, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}
