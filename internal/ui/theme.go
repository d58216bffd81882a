package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	pp "github.com/WillyV3/pilotprogress/internal/progress"
)

// Pilotprogress theme (CLI + TUI).

const (
	IconPlane   = "✈️"
	IconBook    = "📘"
	IconClock   = "⏱️"
	IconTarget  = "🎯"
	IconDone    = "✅"
	IconUndo    = "↩️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTrash   = "🗑️"
	IconSparkle = "✨"
)

var (
	cPrimary = lipgloss.Color("#569cd6")
	cAccent  = lipgloss.Color("#4ec9b0")
	cText    = lipgloss.Color("#d4d4d4")
	cMuted   = lipgloss.Color("#666")
	cHint    = lipgloss.Color("#BBDEFB")
	cGood    = lipgloss.Color("#3CB371")
	cWarn    = lipgloss.Color("#FFCC00")
	cBad     = lipgloss.Color("#B30000")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Text  = lipgloss.NewStyle().Foreground(cText)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Hint  = lipgloss.NewStyle().Foreground(cHint)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Done = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)
)

// gradients mirror the bar colours: red, gold, green.
var gradients = map[pp.Band][2]string{
	pp.BandLow:  {"#B30000", "#FF6666"},
	pp.BandMid:  {"#FFCC00", "#FFEA80"},
	pp.BandHigh: {"#3CB371", "#66CDAA"},
}

// Bar returns a progress bar coloured for the band.
func Bar(b pp.Band, width int) progress.Model {
	g, ok := gradients[b]
	if !ok {
		g = gradients[pp.BandLow]
	}
	return progress.New(
		progress.WithGradient(g[0], g[1]),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// BandStyle colours text the way the band's bar is coloured.
func BandStyle(b pp.Band) lipgloss.Style {
	switch b {
	case pp.BandHigh:
		return Good
	case pp.BandMid:
		return Warn
	default:
		return Bad
	}
}

// RemainingStyle is green once the hours goal is achieved, light blue before.
func RemainingStyle(achieved bool) lipgloss.Style {
	if achieved {
		return Good
	}
	return Hint
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Checkbox renders a task's state marker.
func Checkbox(checked bool) string {
	if checked {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
