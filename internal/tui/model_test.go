package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/WillyV3/pilotprogress/internal/board"
	"github.com/WillyV3/pilotprogress/internal/progress"
	"github.com/WillyV3/pilotprogress/internal/storage"
	"github.com/WillyV3/pilotprogress/internal/tracker"
)

func newTestModel(t *testing.T) (model, *storage.Memory) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemory()
	bars := newBarSet()
	agg := tracker.New(board.Default(), store, bars, zerolog.Nop())
	if err := agg.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := newModel(ctx, agg, bars)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model), store
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleFromBoard(t *testing.T) {
	m, store := newTestModel(t)
	ctx := context.Background()

	m = press(t, m, runes("j"), runes("x"))
	id := board.Default().Categories[0].Tasks[1].ID
	if v, _, _ := store.Get(ctx, id); v != "true" {
		t.Fatalf("stored %s=%q, want true", id, v)
	}
	if m.bars.views["mainCourse"].Label != "11%" {
		t.Fatalf("main course label=%q, want 11%%", m.bars.views["mainCourse"].Label)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if v, _, _ := store.Get(ctx, id); v != "false" {
		t.Fatalf("stored %s=%q after second toggle, want false", id, v)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("k"), runes("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor=%d, want 0", m.cursor)
	}
	for i := 0; i < 100; i++ {
		m = press(t, m, runes("j"))
	}
	if m.cursor != len(m.rows)-1 {
		t.Fatalf("cursor=%d, want %d", m.cursor, len(m.rows)-1)
	}
}

func TestHoursEntryClamps(t *testing.T) {
	m, store := newTestModel(t)
	ctx := context.Background()

	m = press(t, m, runes("h"))
	if !m.editing {
		t.Fatalf("expected hours input to be focused")
	}
	m.input.SetValue("")
	m = press(t, m, runes("3"), runes("0"), runes("0"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.editing {
		t.Fatalf("input still focused after enter")
	}
	if v, _, _ := store.Get(ctx, progress.HoursKey); v != "250" {
		t.Fatalf("stored hours=%q, want 250", v)
	}
	if m.input.Value() != "250" {
		t.Fatalf("input=%q, want coerced 250", m.input.Value())
	}
	if !m.bars.hours.Achieved {
		t.Fatalf("hours view not achieved: %+v", m.bars.hours)
	}
	if !strings.Contains(m.View(), "Hours Achieved") {
		t.Fatalf("view missing achieved label")
	}
}

func TestHoursEntryCancel(t *testing.T) {
	m, store := newTestModel(t)
	m = press(t, m, runes("h"), runes("9"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing {
		t.Fatalf("still editing after esc")
	}
	if _, ok, _ := store.Get(context.Background(), progress.HoursKey); ok {
		t.Fatalf("cancel must not write hours")
	}
}

func TestQuitKeyIgnoredWhileEditing(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("h"))
	m = press(t, m, runes("q"))
	if !m.editing {
		t.Fatalf("editing ended on q")
	}
	if !strings.HasSuffix(m.input.Value(), "q") {
		t.Fatalf("input=%q, want q typed", m.input.Value())
	}
}

func TestViewShowsEveryBar(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Overall", "Main Course", "Theory Exams", "Flying Hours", "250 Hours Remaining", "First solo flight"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
