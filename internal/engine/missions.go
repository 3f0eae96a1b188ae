package engine

import (
	"time"

	"github.com/limbo/nestling/pkg/entity"
)

const DailyMissionCount = 3

// DayWindow returns local midnight of now's day and the following midnight.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := now.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func NextMidnight(now time.Time, loc *time.Location) time.Time {
	_, next := DayWindow(now, loc)
	return next
}

// ApplyMissionProgress sets progress (capped at the goal) and completes the mission
// the first time the goal is reached. The returned credit is non-zero only on that
// first completion, so repeated updates never pay twice.
func ApplyMissionProgress(m entity.UserMission, progress int, now time.Time) (entity.UserMission, int) {
	m.Progress = min(max(progress, 0), m.Mission.Goal)
	if m.IsCompleted || m.Progress < m.Mission.Goal {
		return m, 0
	}
	m.IsCompleted = true
	completedAt := now
	m.CompletedAt = &completedAt
	return m, m.Mission.Points
}
