package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pp.log")
	l, closer, err := New(Options{Level: "debug", JSON: true, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug().Str("task", "mc-first-solo").Msg("task toggled")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"level":"debug"`, `"task":"mc-first-solo"`, `"app":"pilotprogress"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %s", line, want)
		}
	}
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	l, _, err := New(Options{Level: "loud", JSON: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("level=%v, want info", l.GetLevel())
	}
}

func TestQuietWithoutFileDiscards(t *testing.T) {
	l, _, err := New(Options{Level: "debug", Quiet: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.GetLevel() != zerolog.Disabled {
		t.Fatalf("level=%v, want disabled", l.GetLevel())
	}
}
