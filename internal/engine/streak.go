package engine

import (
	"maps"
	"time"
)

// DaysBetween counts calendar days from a to b in loc. Dates are compared at
// midnight so DST shifts don't change the count.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// UpdateStreaks returns a copy of current with activityType advanced.
// Login streaks follow the calendar: same day leaves the count as stored, the
// next day extends it, a longer gap restarts at 1. Every other type counts each call.
func UpdateStreaks(current map[string]int, activityType string, lastActivity *time.Time, now time.Time, loc *time.Location) map[string]int {
	streaks := maps.Clone(current)
	if streaks == nil {
		streaks = map[string]int{}
	}
	if activityType != LoginActivity {
		streaks[activityType]++
		return streaks
	}
	if lastActivity == nil {
		streaks[activityType] = 1
		return streaks
	}
	switch diff := DaysBetween(*lastActivity, now, loc); {
	case diff <= 0:
	case diff == 1:
		streaks[activityType]++
	default:
		streaks[activityType] = 1
	}
	return streaks
}
