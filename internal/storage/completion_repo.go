package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

// Insert appends a completion event and returns its id. The log is
// append-only: nothing ever updates or deletes rows here.
// The timestamp keeps its zone offset: day counting works on the writer's
// local calendar components, and normalizing to UTC would shift events near
// local midnight onto the wrong day.
func (r *CompletionRepo) Insert(ctx context.Context, taskID string, completedAt time.Time, xpEarned int) (string, error) {
	id := ulid.Make().String()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completions (id, task_id, completed_at, xp_earned)
		VALUES (?, ?, ?, ?)
	`, id, taskID, completedAt.Format(time.RFC3339), xpEarned)
	if err != nil {
		return "", fmt.Errorf("completion insert: %w", err)
	}
	return id, nil
}

// ListAll returns the full log in insertion order.
func (r *CompletionRepo) ListAll(ctx context.Context) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, completed_at, xp_earned
		FROM completions
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.TaskID, &c.CompletedAt, &c.XPEarned); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

// CountByTask returns the number of logged events for one task.
func (r *CompletionRepo) CountByTask(ctx context.Context, taskID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM completions
		WHERE task_id = ?
	`, taskID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}
