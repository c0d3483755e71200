package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/catalog"
	"github.com/nikitosruban007/treebuddy/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List eco-task definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			language, err := resolveLanguage(cfg, lang)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTree, "Eco-task catalog"))
			for _, t := range cat.All() {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(t.ID), t.Title(string(language)), ui.Gold.Render(fmt.Sprintf("+%d XP", t.XPReward)))
				fmt.Fprintf(out, "  %s\n", ui.Muted.Render(t.Description(string(language))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language (ua|en)")

	return cmd
}
