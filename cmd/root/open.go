package root

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/WillyV3/pilotprogress/internal/board"
	"github.com/WillyV3/pilotprogress/internal/logger"
	"github.com/WillyV3/pilotprogress/internal/storage"
	"github.com/WillyV3/pilotprogress/internal/tracker"
)

func boardPath() (string, error) {
	if cfg.BoardPath != "" {
		return cfg.BoardPath, nil
	}
	return board.DefaultPath()
}

func loadBoard() (*board.Board, error) {
	path, err := boardPath()
	if err != nil {
		return nil, err
	}
	return board.Load(path)
}

func newLogger(quiet bool) (zerolog.Logger, io.Closer, error) {
	return logger.New(logger.Options{
		Level: cfg.LogLevel,
		JSON:  cfg.LogJSON,
		File:  cfg.LogFile,
		Quiet: quiet,
	})
}

type session struct {
	board *board.Board
	store storage.Store
	log   zerolog.Logger
}

// openSession loads the board, the store and a logger. Cleanup closes the
// store and log file.
func openSession(ctx context.Context, quiet bool) (*session, func(), error) {
	log, logCloser, err := newLogger(quiet)
	if err != nil {
		return nil, nil, err
	}
	b, err := loadBoard()
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}
	store, err := storage.Open(ctx, cfg.StoreOptions())
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}
	log.Debug().Str("store", cfg.StoreDriver).Int("tasks", b.TaskCount()).Msg("session opened")

	cleanup := func() {
		_ = store.Close()
		_ = logCloser.Close()
	}
	return &session{board: b, store: store, log: log}, cleanup, nil
}

// gate forwards renders only once opened, so a command can skip the full
// redraw that Load triggers and print just what its own mutation changes.
type gate struct {
	r    tracker.Renderer
	open bool
}

func (g *gate) RenderProgress(v tracker.View) {
	if g.open {
		g.r.RenderProgress(v)
	}
}

func (g *gate) RenderHours(v tracker.HoursView) {
	if g.open {
		g.r.RenderHours(v)
	}
}

// openTracker opens a session and loads stored progress into an aggregator
// that renders to r. With renderLoad false, the initial Load draws nothing.
func openTracker(ctx context.Context, r tracker.Renderer, renderLoad bool) (*tracker.Aggregator, func(), error) {
	s, cleanup, err := openSession(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	g := &gate{r: r, open: renderLoad}
	agg := tracker.New(s.board, s.store, g, s.log)
	if err := agg.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	g.open = true
	return agg, cleanup, nil
}
