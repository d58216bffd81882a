package tracker

import "github.com/WillyV3/pilotprogress/internal/progress"

// OverallTarget names the overall score in views.
const OverallTarget = "overall"

// View is what a renderer needs to draw one progress bar.
type View struct {
	Target  string // category key, board.HoursWeightKey or OverallTarget
	Name    string
	Percent float64
	Label   string
	Band    progress.Band
}

// HoursView adds the remaining/achieved line shown under the hours bar.
type HoursView struct {
	View
	Current       progress.Hours
	Goal          progress.Hours
	Remaining     string
	RemainingBand progress.Band // empty until the goal is reached
	Achieved      bool
}

// Renderer receives recomputed views after every state change.
type Renderer interface {
	RenderProgress(v View)
	RenderHours(v HoursView)
}

// Snapshot is every view at one point in time, in board order.
type Snapshot struct {
	Categories []View
	Hours      HoursView
	Overall    View
}

// Discard is a Renderer that drops everything.
var Discard Renderer = discard{}

type discard struct{}

func (discard) RenderProgress(View)  {}
func (discard) RenderHours(HoursView) {}
