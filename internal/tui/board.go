package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/WillyV3/pilotprogress/internal/board"
	"github.com/WillyV3/pilotprogress/internal/storage"
	"github.com/WillyV3/pilotprogress/internal/tracker"
)

// RunBoard loads stored progress and runs the full-screen board until quit.
func RunBoard(ctx context.Context, b *board.Board, store storage.Store, log zerolog.Logger, out io.Writer) error {
	bars := newBarSet()
	agg := tracker.New(b, store, bars, log)
	if err := agg.Load(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(newModel(ctx, agg, bars), tea.WithAltScreen(), tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
