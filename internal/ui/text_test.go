package ui

import (
	"bytes"
	"strings"
	"testing"

	pp "github.com/WillyV3/pilotprogress/internal/progress"
	"github.com/WillyV3/pilotprogress/internal/tracker"
)

func TestTextRendererLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	r.RenderProgress(tracker.View{Target: "mainCourse", Name: "Main Course", Percent: 40, Label: "40%", Band: pp.BandMid})
	r.RenderHours(tracker.HoursView{
		View:      tracker.View{Target: "hours", Name: "Flying Hours", Percent: 100, Label: "250 Hours", Band: pp.BandHigh},
		Remaining: "250 Hours Achieved! 🎉",
		Achieved:  true,
	})

	out := buf.String()
	for _, want := range []string{"Main Course", "40%", "Flying Hours", "250 Hours", "Achieved"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Fatalf("lines=%d, want 3", n)
	}
}

func TestBandStyleCoversEveryBand(t *testing.T) {
	for _, b := range []pp.Band{pp.BandLow, pp.BandMid, pp.BandHigh} {
		if _, ok := gradients[b]; !ok {
			t.Fatalf("no gradient for band %q", b)
		}
		if BandStyle(b).Render("x") == "" {
			t.Fatalf("empty render for band %q", b)
		}
	}
}
