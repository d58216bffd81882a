package root

import (
	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard (default)",
		RunE:  runBoard,
	}

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, cleanup, err := openSession(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunBoard(ctx, s.board, s.store, s.log, cmd.OutOrStdout())
}
