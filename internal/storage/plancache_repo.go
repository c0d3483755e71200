package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// PlanCacheRepo persists computed daily plans keyed by seed:date:language.
// Entries are a pure optimization; a missing or corrupt row just means the
// plan is recomputed.
type PlanCacheRepo struct {
	db DBTX
}

func NewPlanCacheRepo(db DBTX) *PlanCacheRepo {
	return &PlanCacheRepo{db: db}
}

// Get returns the cached plan JSON for key, or ok=false on a miss.
func (r *PlanCacheRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT plan FROM plan_cache WHERE key = ?`, key)
	var plan string
	if err := row.Scan(&plan); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("plan cache get: %w", err)
	}
	return plan, true, nil
}

// Set stores the plan JSON for key, replacing any previous entry.
func (r *PlanCacheRepo) Set(ctx context.Context, key string, plan string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plan_cache (key, plan) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET plan = excluded.plan
	`, key, plan)
	if err != nil {
		return fmt.Errorf("plan cache set: %w", err)
	}
	return nil
}
