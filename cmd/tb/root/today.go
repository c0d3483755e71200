package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikitosruban007/treebuddy/internal/dates"
	"github.com/nikitosruban007/treebuddy/internal/engine"
	"github.com/nikitosruban007/treebuddy/internal/ui"
)

func newTodayCmd() *cobra.Command {
	var dateKey string
	var lang string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the daily plan and progress",
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

			now := time.Now()
			key := dateKey
			if key == "" {
				key = dates.TodayKey(now)
			}

			plan, err := svc.DailyPlan(ctx, key, cfg.UserSeed, language)
			if err != nil {
				return err
			}
			log, err := svc.CompletionRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			summary := engine.SummarizeDay(plan, log, key)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSprout, "Eco tasks — "+key))
			for _, inst := range plan {
				progress := engine.DailyProgress(log, key, inst.TaskID)
				check := ui.Muted.Render("○")
				if progress >= inst.RequiredCount {
					check = ui.Good.Render("●")
				}
				fmt.Fprintf(out, "%s [%s] %s %s\n", check, inst.TaskID, ui.DifficultyText(string(inst.DifficultyLabel)),
					ui.Muted.Render(fmt.Sprintf("(+%d XP each)", inst.XPPerCompletion)))
				fmt.Fprintf(out, "   %s — %d/%d\n", inst.ConditionText, progress, inst.RequiredCount)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Done", fmt.Sprintf("%d/%d (%d completions)", summary.DoneTasks, summary.TotalTasks, summary.TotalCompletions)))
			if key == dates.TodayKey(now) {
				left := dates.FormatDurationShort(dates.MsUntilTomorrow(now), string(language))
				fmt.Fprintln(out, ui.LabelValue("Time left", ui.IconClock+" "+left))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateKey, "date", "", "Date key (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language (ua|en)")

	return cmd
}
