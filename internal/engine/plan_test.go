package engine

import (
	"context"
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/nikitosruban007/treebuddy/internal/catalog"
	"github.com/nikitosruban007/treebuddy/internal/storage"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Default())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, testCatalog(t))
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func TestHashSeed(t *testing.T) {
	if got := HashSeed(""); got != 0 {
		t.Fatalf("HashSeed(\"\")=%d, want 0", got)
	}
	if got := HashSeed("a"); got != 97 {
		t.Fatalf("HashSeed(a)=%d, want 97", got)
	}
	if got := HashSeed("ab"); got != 97*31+98 {
		t.Fatalf("HashSeed(ab)=%d, want %d", got, 97*31+98)
	}
}

func TestComputeDailyPlanDeterminism(t *testing.T) {
	cat := testCatalog(t)

	first, err := ComputeDailyPlan(cat, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := ComputeDailyPlan(cat, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different plans:\n%v\n%v", first, second)
	}
}

func TestComputeDailyPlanShape(t *testing.T) {
	cat := testCatalog(t)
	seeds := []string{"", "guest", "demo", "user@example.com", "a-very-long-user-identifier"}
	dates := []string{"2024-01-01", "2024-02-29", "2025-12-31"}

	for _, seed := range seeds {
		for _, dateKey := range dates {
			plan, err := ComputeDailyPlan(cat, dateKey, seed, LanguageUA)
			if err != nil {
				t.Fatalf("compute(%q,%q): %v", seed, dateKey, err)
			}
			if err := ValidatePlan(plan); err != nil {
				t.Fatalf("plan(%q,%q) invalid: %v", seed, dateKey, err)
			}
			if plan[0].TaskID != catalog.TaskRecycling {
				t.Fatalf("easy slot=%q, want recycling", plan[0].TaskID)
			}
			if plan[1].TaskID != catalog.TaskWaste || plan[1].RequiredCount != 3 || plan[1].XPPerCompletion != 5 {
				t.Fatalf("medium slot=%+v", plan[1])
			}
			if plan[2].TaskID != catalog.TaskPlanting && plan[2].TaskID != catalog.TaskWatering {
				t.Fatalf("hard slot=%q", plan[2].TaskID)
			}
		}
	}
}

func TestHardVariantFollowsSeedHash(t *testing.T) {
	cat := testCatalog(t)

	plan, err := ComputeDailyPlan(cat, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	want := catalog.TaskWatering
	if HashSeed("user-1:2024-01-01")%2 == 0 {
		want = catalog.TaskPlanting
	}
	if plan[2].TaskID != want {
		t.Fatalf("hard task=%q, want %q", plan[2].TaskID, want)
	}
}

func TestConditionTextLocalization(t *testing.T) {
	cat := testCatalog(t)

	en, err := ComputeDailyPlan(cat, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("compute en: %v", err)
	}
	if en[0].ConditionText != "Find and sort recyclables (1 time)" {
		t.Fatalf("en easy condition=%q", en[0].ConditionText)
	}

	ua, err := ComputeDailyPlan(cat, "2024-01-01", "user-1", LanguageUA)
	if err != nil {
		t.Fatalf("compute ua: %v", err)
	}
	if ua[0].ConditionText != "Знайди й відсортуй вторсировину (1 раз)" {
		t.Fatalf("ua easy condition=%q", ua[0].ConditionText)
	}
	if ua[0].TaskID != en[0].TaskID || ua[2].TaskID != en[2].TaskID {
		t.Fatalf("language changed task selection: ua=%v en=%v", ua, en)
	}
}

func TestDailyPlanCacheEqualsFreshCompute(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	first, err := svc.DailyPlan(ctx, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	cached, err := svc.DailyPlan(ctx, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("cached plan: %v", err)
	}
	fresh, err := ComputeDailyPlan(svc.Catalog(), "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("fresh compute: %v", err)
	}
	if !reflect.DeepEqual(first, cached) || !reflect.DeepEqual(cached, fresh) {
		t.Fatalf("cache diverged:\nfirst=%v\ncached=%v\nfresh=%v", first, cached, fresh)
	}
}

func TestDailyPlanCorruptCacheRegenerates(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	key := PlanCacheKey("user-1", "2024-01-01", LanguageEN)
	cache := storage.NewPlanCacheRepo(svc.db)
	if err := cache.Set(ctx, key, "{not valid json"); err != nil {
		t.Fatalf("seed corrupt cache: %v", err)
	}

	plan, err := svc.DailyPlan(ctx, "2024-01-01", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("plan after corruption: %v", err)
	}
	if err := ValidatePlan(plan); err != nil {
		t.Fatalf("regenerated plan invalid: %v", err)
	}

	raw, ok, err := cache.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("cache get after regen: ok=%v err=%v", ok, err)
	}
	var stored []DailyTaskInstance
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored cache still corrupt: %v", err)
	}
	if !reflect.DeepEqual(stored, plan) {
		t.Fatalf("stored plan differs from returned plan")
	}
}

func TestDailyPlanDefaultsDateToToday(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	fixed := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	implicit, err := svc.DailyPlan(ctx, "", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("implicit plan: %v", err)
	}
	explicit, err := svc.DailyPlan(ctx, "2024-06-15", "user-1", LanguageEN)
	if err != nil {
		t.Fatalf("explicit plan: %v", err)
	}
	if !reflect.DeepEqual(implicit, explicit) {
		t.Fatalf("empty dateKey did not resolve to today")
	}
}
