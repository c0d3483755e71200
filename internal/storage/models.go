package storage

// User is the persisted progression state for one local profile.
// LastActionDateKey is empty until the first completion is logged.
type User struct {
	Key               string
	XP                int
	StreakCount       int
	LastActionDateKey string
	CreatedAt         string
}

// Completion is one append-only entry of the action log. CompletedAt is an
// RFC3339 string; it stays a string here so a single corrupt row degrades
// to an excluded record rather than a failed query.
type Completion struct {
	ID          string
	TaskID      string
	CompletedAt string
	XPEarned    int
}

// Community is the shared-tree aggregate across all contributors.
type Community struct {
	TotalXP      int
	TotalActions int
}
