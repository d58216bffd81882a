package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/progress"
	"github.com/WillyV3/pilotprogress/internal/ui"
)

func newHoursCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours <value>",
		Short: "Set total flying hours",
		Long: `Set the total flying hours logged so far.

Values are coerced rather than rejected: anything that is not a number, or is
negative, becomes 0, and anything above the target becomes the target.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("value is required")
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

			h, err := agg.SetHours(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if _, coerced := progress.CoerceHours(args[0], agg.Board().HoursTarget()); coerced {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %q stored as %s", ui.IconWarn, args[0], h)))
			}
			return nil
		},
	}

	return cmd
}
