package engine

import (
	"fmt"

	"github.com/nikitosruban007/treebuddy/internal/catalog"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// DailyTaskInstance is one entry of a user's daily plan. Instances are
// immutable once computed; JSON field names are part of the persisted
// plan-cache format.
type DailyTaskInstance struct {
	TaskID          string     `json:"taskId"`
	RequiredCount   int        `json:"requiredCount"`
	XPPerCompletion int        `json:"xpPerCompletion"`
	DifficultyLabel Difficulty `json:"labelKey"`
	ConditionText   string     `json:"conditionText"`
}

// GuestSeed is the fallback plan seed for anonymous use.
const GuestSeed = "guest"

// HashSeed is the rolling hash behind hard-task selection:
// h = (h*31 + byte) mod 2^32. The algorithm is a compatibility contract —
// the same user must get the same plan for the same day on any device, so
// it must never be swapped for a different hash. Accumulation is over raw
// bytes, which matches the historical per-code-unit hash for the ASCII
// seeds (uids, emails, guest) and YYYY-MM-DD date keys actually issued;
// non-ASCII seeds would select differently and must not be introduced.
func HashSeed(input string) uint32 {
	var h uint32
	for i := 0; i < len(input); i++ {
		h = h*31 + uint32(input[i])
	}
	return h
}

// PlanCacheKey returns the persistence key for a (seed, date, language)
// plan.
func PlanCacheKey(userSeed, dateKey string, lang Language) string {
	return fmt.Sprintf("%s:%s:%s", userSeed, dateKey, lang)
}

// ComputeDailyPlan derives the plan for one user and calendar day: three
// tasks, one per difficulty, with the hard slot chosen by the seed hash.
// Pure and deterministic; byte-identical output for identical inputs.
func ComputeDailyPlan(cat *catalog.Catalog, dateKey, userSeed string, lang Language) ([]DailyTaskInstance, error) {
	if userSeed == "" {
		userSeed = GuestSeed
	}
	if !lang.IsValid() {
		lang = DefaultLanguage
	}

	easy, err := cat.Get(catalog.TaskRecycling)
	if err != nil {
		return nil, err
	}

	h := HashSeed(userSeed + ":" + dateKey)
	hardTaskID := catalog.TaskWatering
	if h%2 == 0 {
		hardTaskID = catalog.TaskPlanting
	}
	hard, err := cat.Get(hardTaskID)
	if err != nil {
		return nil, err
	}

	plan := []DailyTaskInstance{
		{
			TaskID:          easy.ID,
			RequiredCount:   1,
			XPPerCompletion: easy.XPReward,
			DifficultyLabel: DifficultyEasy,
			ConditionText:   conditionText(DifficultyEasy, easy.ID, lang),
		},
		{
			TaskID:          catalog.TaskWaste,
			RequiredCount:   3,
			XPPerCompletion: 5,
			DifficultyLabel: DifficultyMedium,
			ConditionText:   conditionText(DifficultyMedium, catalog.TaskWaste, lang),
		},
		{
			TaskID:          hard.ID,
			RequiredCount:   1,
			XPPerCompletion: hard.XPReward,
			DifficultyLabel: DifficultyHard,
			ConditionText:   conditionText(DifficultyHard, hard.ID, lang),
		},
	}
	return plan, nil
}

func conditionText(d Difficulty, taskID string, lang Language) string {
	ua := lang != LanguageEN
	switch d {
	case DifficultyEasy:
		if ua {
			return "Знайди й відсортуй вторсировину (1 раз)"
		}
		return "Find and sort recyclables (1 time)"
	case DifficultyMedium:
		if ua {
			return "Прибери 3 об’єкти сміття (3 підтвердження)"
		}
		return "Pick up 3 pieces of litter (3 verifications)"
	default:
		if taskID == catalog.TaskPlanting {
			if ua {
				return "Посади дерево або саджанець (1 раз)"
			}
			return "Plant a tree or a sapling (1 time)"
		}
		if ua {
			return "Полий будь-яку рослину (1 раз)"
		}
		return "Water any plant (1 time)"
	}
}

// ValidatePlan checks the structural invariants of a plan: exactly three
// instances labelled easy, medium, hard in order, with positive counts and
// XP. Cached plans failing this are discarded as corrupt.
func ValidatePlan(plan []DailyTaskInstance) error {
	if len(plan) != 3 {
		return fmt.Errorf("plan has %d tasks, want 3", len(plan))
	}
	want := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	for i, inst := range plan {
		if inst.TaskID == "" {
			return fmt.Errorf("plan task %d has empty id", i)
		}
		if inst.DifficultyLabel != want[i] {
			return fmt.Errorf("plan task %d has label %q, want %q", i, inst.DifficultyLabel, want[i])
		}
		if inst.RequiredCount < 1 {
			return fmt.Errorf("plan task %d has requiredCount %d", i, inst.RequiredCount)
		}
		if inst.XPPerCompletion < 1 {
			return fmt.Errorf("plan task %d has xpPerCompletion %d", i, inst.XPPerCompletion)
		}
	}
	return nil
}
