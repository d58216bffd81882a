package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show every progress bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPlane, "Training Progress"))

			_, cleanup, err := openTracker(cmd.Context(), ui.NewTextRenderer(out), true)
			if err != nil {
				return err
			}
			defer cleanup()
			return nil
		},
	}

	return cmd
}
