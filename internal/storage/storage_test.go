package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) (ctx context.Context, users *UserRepo, completions *CompletionRepo, cache *PlanCacheRepo, community *CommunityRepo) {
	t.Helper()
	ctx = context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return ctx, NewUserRepo(db), NewCompletionRepo(db), NewPlanCacheRepo(db), NewCommunityRepo(db)
}

func TestUserGetOrCreateMain(t *testing.T) {
	ctx, users, _, _, _ := openTestDB(t)

	u, err := users.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if u.Key != MainUserKey || u.XP != 0 || u.StreakCount != 0 || u.LastActionDateKey != "" {
		t.Fatalf("fresh user=%+v", u)
	}

	u.XP = 42
	u.StreakCount = 3
	u.LastActionDateKey = "2024-01-01"
	if err := users.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}

	again, err := users.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.XP != 42 || again.StreakCount != 3 || again.LastActionDateKey != "2024-01-01" {
		t.Fatalf("reloaded user=%+v", again)
	}
}

func TestCompletionLogInsertionOrder(t *testing.T) {
	ctx, _, completions, _, _ := openTestDB(t)

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 3)
	// Insert out of timestamp order; the log must keep insertion order.
	for _, ts := range []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour)} {
		id, err := completions.Insert(ctx, "task_waste", ts, 5)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if id == "" {
			t.Fatalf("empty id")
		}
		ids = append(ids, id)
	}

	log, err := completions.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(log) != 3 {
		t.Fatalf("len=%d, want 3", len(log))
	}
	for i, c := range log {
		if c.ID != ids[i] {
			t.Fatalf("log[%d].ID=%s, want %s (insertion order)", i, c.ID, ids[i])
		}
	}

	n, err := completions.CountByTask(ctx, "task_waste")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count=%d, want 3", n)
	}
}

func TestPlanCacheRoundTrip(t *testing.T) {
	ctx, _, _, cache, _ := openTestDB(t)

	if _, ok, err := cache.Get(ctx, "seed:2024-01-01:en"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	if err := cache.Set(ctx, "seed:2024-01-01:en", `[{"taskId":"task_recycling"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	plan, ok, err := cache.Get(ctx, "seed:2024-01-01:en")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if plan != `[{"taskId":"task_recycling"}]` {
		t.Fatalf("plan=%q", plan)
	}

	if err := cache.Set(ctx, "seed:2024-01-01:en", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	plan, _, _ = cache.Get(ctx, "seed:2024-01-01:en")
	if plan != `[]` {
		t.Fatalf("overwritten plan=%q", plan)
	}
}

func TestCommunityIncrement(t *testing.T) {
	ctx, _, _, _, community := openTestDB(t)

	c, err := community.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.TotalXP != 0 || c.TotalActions != 0 {
		t.Fatalf("fresh community=%+v", c)
	}

	if err := community.Increment(ctx, 10); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := community.Increment(ctx, 5); err != nil {
		t.Fatalf("increment: %v", err)
	}

	c, err = community.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.TotalXP != 15 || c.TotalActions != 2 {
		t.Fatalf("community=%+v, want {15 2}", c)
	}
}
