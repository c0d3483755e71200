package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive daily board (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			language, err := resolveLanguage(cfg, lang)
			if err != nil {
				return err
			}

			return tui.RunBoard(ctx, svc, cfg.UserSeed, language, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language (ua|en)")

	return cmd
}
