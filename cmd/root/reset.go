package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all stored progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes && !confirm(cmd, "Clear all checked tasks and flying hours? (y/N): ") {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			agg, cleanup, err := openTracker(cmd.Context(), ui.NewTextRenderer(out), false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := agg.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Warn.Render(ui.IconTrash+" Progress cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	var response string
	fmt.Fscanln(cmd.InOrStdin(), &response)
	return response == "y" || response == "Y"
}
