package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/engine"
	"github.com/nikitosruban007/treebuddy/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show tree stage, XP, streak and community totals",
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

			u, err := svc.UserRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}
			stage := engine.StageByXP(u.XP)
			percent := engine.ProgressToNextLevel(u.XP)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(stage.Image, "My Tree"))
			fmt.Fprintln(out, ui.LabelValue("Stage", fmt.Sprintf("%s (lvl %d)", stage.DisplayName(language), stage.Level)))
			fmt.Fprintln(out, ui.LabelValue("XP", u.XP))
			fmt.Fprintln(out, ui.LabelValue("Progress", ui.ProgressBar(percent, 24)))
			if !stage.Unbounded() {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("   next stage at %d XP", stage.MaxXP+1)))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, u.StreakCount)))
			if u.LastActionDateKey != "" {
				fmt.Fprintln(out, ui.LabelValue("Last action", u.LastActionDateKey))
			}
			fmt.Fprintln(out, "")

			comm, err := svc.CommunityRepo().Get(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconGlobe+" Shared tree"))
			fmt.Fprintln(out, ui.LabelValue("Total XP", comm.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Total actions", comm.TotalActions))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconDone+" Actions by task"))
			for _, task := range svc.Catalog().All() {
				n, err := svc.CompletionRepo().CountByTask(ctx, task.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(task.Title(string(language))), ui.Muted.Render(fmt.Sprintf("%d", n)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language (ua|en)")

	return cmd
}
