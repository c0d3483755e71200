package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/nikitosruban007/treebuddy/internal/catalog"
	"github.com/nikitosruban007/treebuddy/internal/dates"
	"github.com/nikitosruban007/treebuddy/internal/storage"
)

type Service struct {
	db          *sql.DB
	cat         *catalog.Catalog
	users       *storage.UserRepo
	completions *storage.CompletionRepo
	planCache   *storage.PlanCacheRepo
	community   *storage.CommunityRepo

	// now is swapped in tests to pin the calendar day.
	now func() time.Time
}

func NewService(db *sql.DB, cat *catalog.Catalog) *Service {
	return &Service{
		db:          db,
		cat:         cat,
		users:       storage.NewUserRepo(db),
		completions: storage.NewCompletionRepo(db),
		planCache:   storage.NewPlanCacheRepo(db),
		community:   storage.NewCommunityRepo(db),
		now:         time.Now,
	}
}

func (s *Service) Catalog() *catalog.Catalog               { return s.cat }
func (s *Service) UserRepo() *storage.UserRepo             { return s.users }
func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }
func (s *Service) CommunityRepo() *storage.CommunityRepo   { return s.community }

// DailyPlan returns the plan for (dateKey, userSeed, lang), reading the
// persisted cache first. The cache is purely an optimization: a hit is
// equal to a fresh computation, and a corrupt entry is treated as a miss
// and overwritten. An empty dateKey means today.
func (s *Service) DailyPlan(ctx context.Context, dateKey, userSeed string, lang Language) ([]DailyTaskInstance, error) {
	if dateKey == "" {
		dateKey = dates.TodayKey(s.now())
	}
	if userSeed == "" {
		userSeed = GuestSeed
	}
	key := PlanCacheKey(userSeed, dateKey, lang)

	if raw, ok, err := s.planCache.Get(ctx, key); err != nil {
		return nil, err
	} else if ok {
		var plan []DailyTaskInstance
		if err := json.Unmarshal([]byte(raw), &plan); err == nil && ValidatePlan(plan) == nil {
			return plan, nil
		}
		// Corrupt cache entry: fall through and regenerate.
	}

	plan, err := ComputeDailyPlan(s.cat, dateKey, userSeed, lang)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	if err := s.planCache.Set(ctx, key, string(data)); err != nil {
		return nil, err
	}
	return plan, nil
}

type CompleteResult struct {
	TaskID      string
	XPAwarded   int
	StreakCount int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// NotInPlanError is returned when a completion is logged for a task that
// is not part of today's plan.
type NotInPlanError struct {
	TaskID  string
	DateKey string
}

func (e NotInPlanError) Error() string {
	return "task " + e.TaskID + " is not in the plan for " + e.DateKey
}

// Complete records one completion of taskID for today: appends the event
// to the log, adds its XP, advances the streak and the shared-tree totals.
// User-state mutation and the log append commit atomically.
func (s *Service) Complete(ctx context.Context, taskID, userSeed string, lang Language) (*CompleteResult, error) {
	now := s.now()
	today := dates.TodayKey(now)
	yesterday := dates.YesterdayKey(now)

	plan, err := s.DailyPlan(ctx, today, userSeed, lang)
	if err != nil {
		return nil, err
	}
	var inst *DailyTaskInstance
	for i := range plan {
		if plan[i].TaskID == taskID {
			inst = &plan[i]
			break
		}
	}
	if inst == nil {
		// Catalog lookup still distinguishes a typo from an off-plan task.
		if _, err := s.cat.Get(taskID); err != nil {
			return nil, err
		}
		return nil, NotInPlanError{TaskID: taskID, DateKey: today}
	}
	xp := inst.XPPerCompletion

	var res CompleteResult
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		users := storage.NewUserRepo(tx)
		completions := storage.NewCompletionRepo(tx)
		community := storage.NewCommunityRepo(tx)

		u, err := users.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		levelBefore := StageByXP(u.XP).Level

		if _, err := completions.Insert(ctx, taskID, now, xp); err != nil {
			return err
		}

		u.XP += xp
		u.StreakCount = NextStreak(u.LastActionDateKey, u.StreakCount, today, yesterday)
		u.LastActionDateKey = today
		if err := users.Update(ctx, u); err != nil {
			return err
		}

		if err := community.Increment(ctx, xp); err != nil {
			return err
		}

		levelAfter := StageByXP(u.XP).Level
		res = CompleteResult{
			TaskID:      taskID,
			XPAwarded:   xp,
			StreakCount: u.StreakCount,
			LevelBefore: levelBefore,
			LevelAfter:  levelAfter,
			LevelUp:     levelAfter > levelBefore,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
