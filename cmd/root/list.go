package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/tracker"
	"github.com/WillyV3/pilotprogress/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with their IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, cleanup, err := openTracker(cmd.Context(), tracker.Discard, false)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			snap := agg.Snapshot()
			for ci, c := range agg.Board().Categories {
				v := snap.Categories[ci]
				fmt.Fprintf(out, "%s %s\n", ui.H2.Render(c.Name), ui.BandStyle(v.Band).Render(v.Label))
				for _, t := range c.Tasks {
					title := ui.Text.Render(t.Title)
					if agg.IsChecked(t.ID) {
						title = ui.Done.Render(t.Title)
					}
					fmt.Fprintf(out, "  %s %-28s %s\n", ui.Checkbox(agg.IsChecked(t.ID)), ui.Muted.Render(t.ID), title)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, ui.LabelValue(ui.IconClock+" "+snap.Hours.Name, snap.Hours.Label+" "+ui.Muted.Render("("+snap.Hours.Remaining+")")))
			return nil
		},
	}

	return cmd
}
