package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/ui"
)

func newCheckCmd() *cobra.Command {
	return newToggleCmd("check <task_id>...", "Mark tasks as done", true)
}

func newUncheckCmd() *cobra.Command {
	return newToggleCmd("uncheck <task_id>...", "Mark tasks as not done", false)
}

func newToggleCmd(use, short string, checked bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task_id is required (see 'pilotprogress list')")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			agg, cleanup, err := openTracker(cmd.Context(), ui.NewTextRenderer(out), false)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, id := range args {
				if err := agg.Toggle(cmd.Context(), id, checked); err != nil {
					return err
				}
				if checked {
					fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Done"), ui.Muted.Render(id))
				} else {
					fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconUndo+" Reopened"), ui.Muted.Render(id))
				}
			}
			return nil
		},
	}

	return cmd
}
