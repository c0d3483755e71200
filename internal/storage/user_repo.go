package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const MainUserKey = "main_user"

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, key string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, xp, streak_count, last_action_date_key, created_at
		FROM user
		WHERE key = ?
	`, key)

	var u User
	if err := row.Scan(&u.Key, &u.XP, &u.StreakCount, &u.LastActionDateKey, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) GetOrCreateMain(ctx context.Context) (*User, error) {
	u, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, `INSERT INTO user (key, created_at) VALUES (?, ?)`, MainUserKey, createdAt); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *UserRepo) Update(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user
		SET xp = ?, streak_count = ?, last_action_date_key = ?
		WHERE key = ?
	`, u.XP, u.StreakCount, u.LastActionDateKey, u.Key)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}
