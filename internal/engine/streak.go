package engine

// NextStreak computes the streak value after a completion on the day named
// by today. Multiple completions on the same day keep the streak; a
// completion the day after the last action extends it; any gap (or no
// prior action, lastActionDateKey == "") resets it to 1.
func NextStreak(lastActionDateKey string, previousStreak int, today, yesterday string) int {
	switch lastActionDateKey {
	case today:
		return previousStreak
	case yesterday:
		return previousStreak + 1
	default:
		return 1
	}
}
