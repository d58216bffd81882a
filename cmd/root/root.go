package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WillyV3/pilotprogress/internal/config"
	"github.com/WillyV3/pilotprogress/internal/ui"
)

const Version = "1.0.0"

var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:           "pilotprogress",
	Short:         "Track pilot training progress from the terminal",
	Long:          "pilotprogress tracks course milestones, theory exams and flying hours, and rolls them into one weighted completion score.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "State store (json|sqlite|redis|memory)")
	flags.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "State file for the json and sqlite stores")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis store")
	flags.StringVar(&cfg.BoardPath, "board", cfg.BoardPath, "Board definition (YAML)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newBoardCmd(),
		newStatusCmd(),
		newListCmd(),
		newCheckCmd(),
		newUncheckCmd(),
		newHoursCmd(),
		newResetCmd(),
		newInitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
