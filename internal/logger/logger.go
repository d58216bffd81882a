package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options controls where and how logs are written.
type Options struct {
	Level string
	JSON  bool
	File  string
	// Quiet drops output when no File is set. The TUI owns the terminal, so
	// it logs only to a file.
	Quiet bool
}

// New builds the application logger. The returned closer releases the log
// file, if one was opened.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case opts.Quiet:
		return zerolog.Nop(), closer, nil
	}

	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    opts.File != "",
		}
	}

	l := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "pilotprogress").
		Logger()
	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
