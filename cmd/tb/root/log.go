package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/ui"
)

func newLogCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "log <taskId>",
		Short: "Record a completed eco-action",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("taskId is required")
			}
			return nil
		},
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

			res, err := svc.Complete(ctx, args[0], cfg.UserSeed, language)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" "+res.TaskID)+" "+ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, res.StreakCount)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language (ua|en)")

	return cmd
}
