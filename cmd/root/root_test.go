package root

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/config"
	"github.com/WillyV3/pilotprogress/internal/storage"
	"github.com/WillyV3/pilotprogress/internal/tracker"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev := cfg
	cfg = &config.Config{
		StoreDriver: storage.DriverJSON,
		StorePath:   filepath.Join(dir, "state.json"),
		BoardPath:   filepath.Join(dir, "board.yaml"),
		LogLevel:    "error",
	}
	t.Cleanup(func() { cfg = prev })
}

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckThenStatus(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, newCheckCmd(), "", "mc-first-solo")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Main Course") || !strings.Contains(out, "11%") {
		t.Fatalf("check output missing main course bar:\n%s", out)
	}
	if strings.Contains(out, "Theory Exams") {
		t.Fatalf("check must only print the bars it changed:\n%s", out)
	}

	out, err = run(t, newStatusCmd(), "")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{"Main Course", "Theory Exams", "Flying Hours", "250 Hours Remaining", "Overall"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status missing %q:\n%s", want, out)
		}
	}
}

func TestCheckUnknownTask(t *testing.T) {
	useTempConfig(t)

	_, err := run(t, newCheckCmd(), "", "nope")
	if !errors.Is(err, tracker.ErrUnknownTask) {
		t.Fatalf("err=%v, want ErrUnknownTask", err)
	}
}

func TestHoursCoerced(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, newHoursCmd(), "", "300")
	if err != nil {
		t.Fatalf("hours: %v", err)
	}
	if !strings.Contains(out, "250 Hours Achieved!") {
		t.Fatalf("missing achieved label:\n%s", out)
	}
	if !strings.Contains(out, "stored as 250") {
		t.Fatalf("missing coercion notice:\n%s", out)
	}
}

func TestHoursExactInputNotReported(t *testing.T) {
	useTempConfig(t)

	for _, raw := range []string{"100.0", "+5", " 12"} {
		out, err := run(t, newHoursCmd(), "", raw)
		if err != nil {
			t.Fatalf("hours %q: %v", raw, err)
		}
		if strings.Contains(out, "stored as") {
			t.Fatalf("hours %q reported as coerced:\n%s", raw, out)
		}
	}
}

func TestResetPrompt(t *testing.T) {
	useTempConfig(t)

	if _, err := run(t, newHoursCmd(), "", "40"); err != nil {
		t.Fatalf("hours: %v", err)
	}

	out, err := run(t, newResetCmd(), "n\n")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(out, "Cancelled") {
		t.Fatalf("expected cancel:\n%s", out)
	}

	out, err = run(t, newResetCmd(), "", "--yes")
	if err != nil {
		t.Fatalf("reset --yes: %v", err)
	}
	if !strings.Contains(out, "250 Hours Remaining") {
		t.Fatalf("hours not cleared:\n%s", out)
	}
}

func TestInitWritesBoard(t *testing.T) {
	useTempConfig(t)

	out, err := run(t, newInitCmd(), "")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, cfg.BoardPath) {
		t.Fatalf("init output missing path:\n%s", out)
	}

	out, err = run(t, newInitCmd(), "n\n")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "Cancelled") {
		t.Fatalf("expected overwrite prompt to cancel:\n%s", out)
	}

	if _, err := run(t, newListCmd(), ""); err != nil {
		t.Fatalf("list after init: %v", err)
	}
}
