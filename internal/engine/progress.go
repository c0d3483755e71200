package engine

import (
	"github.com/nikitosruban007/treebuddy/internal/dates"
	"github.com/nikitosruban007/treebuddy/internal/storage"
)

// DailyProgress counts completions of taskID on the calendar day named by
// dateKey. Records whose timestamp does not parse are skipped; one corrupt
// row must never break a whole summary.
func DailyProgress(log []storage.Completion, dateKey, taskID string) int {
	count := 0
	for _, c := range log {
		if c.TaskID != taskID {
			continue
		}
		t, ok := dates.ToTime(c.CompletedAt)
		if !ok {
			continue
		}
		if dates.IsSameKey(t, dateKey) {
			count++
		}
	}
	return count
}

// DailySummary aggregates one day's progress against a plan.
type DailySummary struct {
	DoneTasks        int
	TotalTasks       int
	TotalCompletions int
}

// SummarizeDay computes the summary for dateKey. A task is done once its
// count reaches its required count; TotalCompletions is the raw sum,
// uncapped. Log entries for tasks outside the plan are ignored.
func SummarizeDay(plan []DailyTaskInstance, log []storage.Completion, dateKey string) DailySummary {
	s := DailySummary{TotalTasks: len(plan)}
	for _, inst := range plan {
		progress := DailyProgress(log, dateKey, inst.TaskID)
		s.TotalCompletions += progress
		if progress >= inst.RequiredCount {
			s.DoneTasks++
		}
	}
	return s
}
