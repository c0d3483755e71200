package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user (
			key TEXT PRIMARY KEY,
			xp INTEGER DEFAULT 0,
			streak_count INTEGER DEFAULT 0,
			last_action_date_key TEXT DEFAULT '',
			created_at TEXT NOT NULL
		);`,
		// Append-only action log. Timestamps are stored as RFC3339 text;
		// readers skip rows that fail to parse instead of erroring.
		`CREATE TABLE IF NOT EXISTS completions (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			xp_earned INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS plan_cache (
			key TEXT PRIMARY KEY,
			plan TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS community (
			key TEXT PRIMARY KEY,
			total_xp INTEGER DEFAULT 0,
			total_actions INTEGER DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_task_id ON completions(task_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
