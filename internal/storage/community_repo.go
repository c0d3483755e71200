package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const communityKey = "shared_tree"

// CommunityRepo tracks the shared-tree totals every completion feeds into.
type CommunityRepo struct {
	db DBTX
}

func NewCommunityRepo(db DBTX) *CommunityRepo {
	return &CommunityRepo{db: db}
}

func (r *CommunityRepo) Get(ctx context.Context) (Community, error) {
	row := r.db.QueryRowContext(ctx, `SELECT total_xp, total_actions FROM community WHERE key = ?`, communityKey)
	var c Community
	if err := row.Scan(&c.TotalXP, &c.TotalActions); err != nil {
		if err == sql.ErrNoRows {
			return Community{}, nil
		}
		return Community{}, fmt.Errorf("community get: %w", err)
	}
	return c, nil
}

// Increment adds one action worth xp to the shared totals.
func (r *CommunityRepo) Increment(ctx context.Context, xp int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO community (key, total_xp, total_actions) VALUES (?, ?, 1)
		ON CONFLICT(key) DO UPDATE SET
			total_xp = total_xp + excluded.total_xp,
			total_actions = total_actions + 1
	`, communityKey, xp)
	if err != nil {
		return fmt.Errorf("community increment: %w", err)
	}
	return nil
}
