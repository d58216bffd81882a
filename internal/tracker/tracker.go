package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/WillyV3/pilotprogress/internal/board"
	"github.com/WillyV3/pilotprogress/internal/progress"
	"github.com/WillyV3/pilotprogress/internal/storage"
)

// ErrUnknownTask is returned when a toggle names a task the board lacks.
var ErrUnknownTask = errors.New("unknown task")

// Aggregator owns checklist and hours state for one board. It mirrors the
// store in memory and re-renders affected bars after every change. Not safe
// for concurrent use.
type Aggregator struct {
	board  *board.Board
	store  storage.Store
	render Renderer
	log    zerolog.Logger

	checked map[string]bool
	owner   map[string]int // task id -> category index
	hours   progress.Hours
}

func New(b *board.Board, store storage.Store, render Renderer, log zerolog.Logger) *Aggregator {
	if render == nil {
		render = Discard
	}
	a := &Aggregator{
		board:   b,
		store:   store,
		render:  render,
		log:     log.With().Str("component", "tracker").Logger(),
		checked: map[string]bool{},
		owner:   map[string]int{},
	}
	for ci, c := range b.Categories {
		for _, t := range c.Tasks {
			a.owner[t.ID] = ci
		}
	}
	if !b.WeightsBalanced() {
		a.log.Warn().Interface("weights", b.Weights()).Msg("board weights do not sum to 1")
	}
	return a
}

// Board returns the layout this aggregator tracks.
func (a *Aggregator) Board() *board.Board { return a.board }

// Load reads every task flag and the hours value from the store, then renders
// all bars. Missing keys mean unchecked and zero hours; stored hours outside
// [0, target] are clamped in memory but not written back.
func (a *Aggregator) Load(ctx context.Context) error {
	for id := range a.owner {
		v, ok, err := a.store.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("load task %s: %w", id, err)
		}
		a.checked[id] = ok && v == "true"
	}

	raw, ok, err := a.store.Get(ctx, progress.HoursKey)
	if err != nil {
		return fmt.Errorf("load hours: %w", err)
	}
	a.hours = 0
	if ok {
		a.hours = progress.ParseHours(raw, a.board.HoursTarget())
	}

	a.log.Debug().Int("tasks", len(a.owner)).Stringer("hours", a.hours).Msg("state loaded")
	a.renderAll()
	return nil
}

// Toggle sets a task's checked flag, persists it and re-renders its category
// and the overall score.
func (a *Aggregator) Toggle(ctx context.Context, taskID string, checked bool) error {
	ci, ok := a.owner[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if err := a.store.Set(ctx, taskID, strconv.FormatBool(checked)); err != nil {
		return fmt.Errorf("save task %s: %w", taskID, err)
	}
	a.checked[taskID] = checked

	a.log.Debug().Str("task", taskID).Bool("checked", checked).Msg("task toggled")
	a.render.RenderProgress(a.categoryView(ci))
	a.render.RenderProgress(a.overallView())
	return nil
}

// IsChecked reports the in-memory state of a task.
func (a *Aggregator) IsChecked(taskID string) bool {
	return a.checked[taskID]
}

// SetHours parses raw, coerces it into [0, target], persists the result and
// re-renders the hours bar and overall score. Bad input never fails; it is
// coerced. The stored value is returned so callers can echo it back. When the
// store write fails the previous value is kept and returned.
func (a *Aggregator) SetHours(ctx context.Context, raw string) (progress.Hours, error) {
	h, coerced := progress.CoerceHours(raw, a.board.HoursTarget())
	if coerced {
		a.log.Debug().Str("raw", raw).Stringer("hours", h).Msg("hours input coerced")
	}
	if err := a.store.Set(ctx, progress.HoursKey, h.String()); err != nil {
		return a.hours, fmt.Errorf("save hours: %w", err)
	}
	a.hours = h

	a.log.Debug().Stringer("hours", h).Msg("hours updated")
	a.render.RenderHours(a.hoursView())
	a.render.RenderProgress(a.overallView())
	return h, nil
}

// Hours returns the current clamped hours value.
func (a *Aggregator) Hours() progress.Hours { return a.hours }

// Reset clears the store and reloads, leaving every task unchecked and hours
// at zero.
func (a *Aggregator) Reset(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	a.log.Info().Msg("stored progress cleared")
	return a.Load(ctx)
}

// Snapshot returns the current view of every bar without rendering.
func (a *Aggregator) Snapshot() Snapshot {
	s := Snapshot{
		Categories: make([]View, 0, len(a.board.Categories)),
		Hours:      a.hoursView(),
		Overall:    a.overallView(),
	}
	for ci := range a.board.Categories {
		s.Categories = append(s.Categories, a.categoryView(ci))
	}
	return s
}

func (a *Aggregator) renderAll() {
	for ci := range a.board.Categories {
		a.render.RenderProgress(a.categoryView(ci))
	}
	a.render.RenderHours(a.hoursView())
	a.render.RenderProgress(a.overallView())
}

func (a *Aggregator) flags(ci int) []bool {
	tasks := a.board.Categories[ci].Tasks
	out := make([]bool, len(tasks))
	for i, t := range tasks {
		out[i] = a.checked[t.ID]
	}
	return out
}

func (a *Aggregator) categoryView(ci int) View {
	c := a.board.Categories[ci]
	pct := progress.CategoryRatio(a.flags(ci)) * 100
	return View{
		Target:  c.Key,
		Name:    c.Name,
		Percent: pct,
		Label:   progress.PercentLabel(pct),
		Band:    progress.BandFor(pct),
	}
}

func (a *Aggregator) hoursView() HoursView {
	target := a.board.HoursTarget()
	pct := progress.HoursPercent(a.hours, target)
	achieved := progress.Achieved(a.hours, target)
	var remainingBand progress.Band
	if achieved {
		remainingBand = progress.BandHigh
	}
	name := a.board.Hours.Name
	if name == "" {
		name = "Hours"
	}
	return HoursView{
		View: View{
			Target:  board.HoursWeightKey,
			Name:    name,
			Percent: pct,
			Label:   progress.HoursLabel(a.hours),
			Band:    progress.BandFor(pct),
		},
		Current:       a.hours,
		Goal:          target,
		Remaining:     progress.RemainingLabel(a.hours, target),
		RemainingBand: remainingBand,
		Achieved:      achieved,
	}
}

func (a *Aggregator) ratios() map[string]float64 {
	r := make(map[string]float64, len(a.board.Categories)+1)
	for ci, c := range a.board.Categories {
		r[c.Key] = progress.CategoryRatio(a.flags(ci))
	}
	r[board.HoursWeightKey] = progress.HoursRatio(a.hours, a.board.HoursTarget())
	return r
}

func (a *Aggregator) overallView() View {
	pct := progress.OverallPercent(a.ratios(), a.board.Weights())
	return View{
		Target:  OverallTarget,
		Name:    "Overall",
		Percent: pct,
		Label:   progress.PercentLabel(pct),
		Band:    progress.BandFor(pct),
	}
}
