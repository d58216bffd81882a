package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/board"
	"github.com/WillyV3/pilotprogress/internal/ui"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default board definition for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := boardPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				if !confirm(cmd, "Board file already exists. Overwrite? (y/N): ") {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			b := board.Default()
			if err := board.WriteFile(path, b); err != nil {
				return fmt.Errorf("failed to write board: %w", err)
			}

			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconSparkle+" Created board file:"), path)
			fmt.Fprintf(out, "  %s\n", ui.LabelValue("Categories", len(b.Categories)))
			fmt.Fprintf(out, "  %s\n", ui.LabelValue("Tasks", b.TaskCount()))
			fmt.Fprintf(out, "  %s\n", ui.LabelValue("Hours target", b.HoursTarget()))
			fmt.Fprintln(out, "\nRun 'pilotprogress' to open the board.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite without asking")

	return cmd
}
