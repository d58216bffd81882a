package ui

import (
	"fmt"
	"io"

	"github.com/WillyV3/pilotprogress/internal/tracker"
)

const textBarWidth = 30

// TextRenderer prints each rendered view as one line, with the hours
// remaining line beneath the hours bar.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) RenderProgress(v tracker.View) {
	fmt.Fprintln(r.w, r.line(v))
}

func (r *TextRenderer) RenderHours(v tracker.HoursView) {
	fmt.Fprintln(r.w, r.line(v.View))
	fmt.Fprintf(r.w, "  %s\n", RemainingStyle(v.Achieved).Render(v.Remaining))
}

func (r *TextRenderer) line(v tracker.View) string {
	bar := Bar(v.Band, textBarWidth)
	return fmt.Sprintf("%-18s %s %s", Key.Render(v.Name), bar.ViewAs(v.Percent/100), BandStyle(v.Band).Render(v.Label))
}
