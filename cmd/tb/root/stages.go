package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/engine"
	"github.com/nikitosruban007/treebuddy/internal/ui"
)

func newStagesCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "Show the tree stage table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			language, err := resolveLanguage(cfg, lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTree, "Tree stages"))
			for _, s := range engine.TreeStages {
				band := fmt.Sprintf("%d+", s.MinXP)
				if !s.Unbounded() {
					band = fmt.Sprintf("%d–%d", s.MinXP, s.MaxXP)
				}
				fmt.Fprintf(out, "%s lvl %d %s %s\n", s.Image, s.Level, ui.Key.Render(s.DisplayName(language)), ui.Muted.Render(band+" XP"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language (ua|en)")

	return cmd
}
