package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tb",
	Short:         "TreeBuddy — eco-habit tracker that grows a tree",
	Long:          "TreeBuddy is a local-first CLI/TUI for daily eco-actions: complete your plan, earn XP, keep the streak and grow your tree.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTodayCmd(),
		newLogCmd(),
		newStatusCmd(),
		newCatalogCmd(),
		newStagesCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
