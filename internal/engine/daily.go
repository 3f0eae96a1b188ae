package engine

import "time"

const DefaultDailyGoal = 3

// AdvanceDailyProgress counts one more action toward the daily goal. lastCounted
// is when the previous action was counted; the count restarts when it is unset
// or falls on an earlier local day than now.
func AdvanceDailyProgress(progress int, lastCounted *time.Time, now time.Time, loc *time.Location) int {
	if lastCounted == nil || DaysBetween(*lastCounted, now, loc) != 0 {
		progress = 0
	}
	return progress + 1
}
