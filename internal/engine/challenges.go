package engine

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

type ChallengeTemplate struct {
	Category entity.ChallengeCategory
	Title    string
	Goal     int
	Reward   int
	// Activity log kind counted inside the week. Empty for consistency,
	// which reads the login streak instead.
	EventKind string
}

var challengeTemplates = []ChallengeTemplate{
	{Category: entity.ChallengeSleep, Title: "Log sleep every night this week", Goal: 7, Reward: 50, EventKind: KindSleep},
	{Category: entity.ChallengeMemory, Title: "Save 3 memories with photos", Goal: 3, Reward: 30, EventKind: KindPhotoMemory},
	{Category: entity.ChallengeConsistency, Title: "Check in 7 days in a row", Goal: 7, Reward: 40},
}

func ChallengeTemplates() []ChallengeTemplate { return challengeTemplates }

// WeekWindow returns the local week containing now: Sunday 00:00 through
// Saturday 23:59:59.999.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d-int(local.Weekday()), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

func ChallengeID(category entity.ChallengeCategory, weekStart time.Time) string {
	return fmt.Sprintf("%s-%s", category, weekStart.Format("2006-01-02"))
}

// WeeklyChallenges instantiates the templates for the week containing now.
func WeeklyChallenges(now time.Time, loc *time.Location) []entity.WeeklyChallenge {
	start, end := WeekWindow(now, loc)
	res := make([]entity.WeeklyChallenge, 0, len(challengeTemplates))
	for _, t := range challengeTemplates {
		res = append(res, entity.WeeklyChallenge{
			ID:        ChallengeID(t.Category, start),
			Category:  t.Category,
			Title:     t.Title,
			Goal:      t.Goal,
			Reward:    t.Reward,
			WeekStart: start,
			WeekEnd:   end,
		})
	}
	return res
}

// FindWeeklyChallenge resolves a challenge id of the current week. Ids of past
// weeks are rejected so rewards can't be claimed late.
func FindWeeklyChallenge(id string, now time.Time, loc *time.Location) (entity.WeeklyChallenge, ChallengeTemplate, error) {
	for i, ch := range WeeklyChallenges(now, loc) {
		if ch.ID == id {
			return ch, challengeTemplates[i], nil
		}
	}
	return entity.WeeklyChallenge{}, ChallengeTemplate{}, errorvalues.ErrUnknownChallenge
}

// ChallengeProgress caps the measured value at the goal. count is the number of
// qualifying events inside the week; consistency uses loginStreak instead.
func ChallengeProgress(ch entity.WeeklyChallenge, count, loginStreak int) entity.ChallengeProgress {
	value := count
	if ch.Category == entity.ChallengeConsistency {
		value = loginStreak
	}
	progress := min(max(value, 0), ch.Goal)
	return entity.ChallengeProgress{
		WeeklyChallenge: ch,
		Progress:        progress,
		IsCompleted:     progress >= ch.Goal,
	}
}
