package engine

import (
	"maps"

	"github.com/limbo/nestling/pkg/entity"
)

// Counters is the one snapshot every badge and achievement predicate reads.
type Counters struct {
	Points          int
	Level           int
	Streaks         map[string]int
	TotalActivities int
	TotalMemories   int
	TotalMilestones int
	BadgeCount      int
}

func (c Counters) streak(activity string) int {
	return c.Streaks[activity]
}

type BadgeRule struct {
	ID        entity.BadgeID
	Predicate func(c Counters) bool
}

type AchievementRule struct {
	ID        entity.AchievementID
	Predicate func(c Counters) bool
}

func atLeast(get func(c Counters) int, n int) func(c Counters) bool {
	return func(c Counters) bool { return get(c) >= n }
}

var (
	memoryCount    = func(c Counters) int { return c.TotalMemories }
	activityCount  = func(c Counters) int { return c.TotalActivities }
	milestoneCount = func(c Counters) int { return c.TotalMilestones }
	loginStreak    = func(c Counters) int { return c.streak(LoginActivity) }
	levelOf        = func(c Counters) int { return c.Level }
	pointsOf       = func(c Counters) int { return c.Points }
	badgesOwned    = func(c Counters) int { return c.BadgeCount }
)

var badgeRules = []BadgeRule{
	{ID: "first-memory", Predicate: atLeast(memoryCount, 1)},
	{ID: "memory-master", Predicate: atLeast(memoryCount, 50)},
	{ID: "week-streak", Predicate: atLeast(loginStreak, 7)},
	{ID: "month-streak", Predicate: atLeast(loginStreak, 30)},
	{ID: "milestone-master", Predicate: atLeast(milestoneCount, 10)},
	{ID: "milestone-legend", Predicate: atLeast(milestoneCount, 25)},
	{ID: "consistency-queen", Predicate: atLeast(loginStreak, 90)},
	{ID: "baby-whisperer", Predicate: atLeast(activityCount, 100)},
	{ID: "heart-warrior", Predicate: atLeast(levelOf, 5)},
	{ID: "star-collector", Predicate: atLeast(badgesOwned, 5)},
	{ID: "level_5", Predicate: atLeast(levelOf, 5)},
	{ID: "level_10", Predicate: atLeast(levelOf, 10)},
	{ID: "points_500", Predicate: atLeast(pointsOf, 500)},
	{ID: "points_1000", Predicate: atLeast(pointsOf, 1000)},
	{ID: "points_2000", Predicate: atLeast(pointsOf, 2000)},
}

var achievementRules = []AchievementRule{
	{ID: "first-memory", Predicate: atLeast(memoryCount, 1)},
	{ID: "week-consistent", Predicate: atLeast(levelOf, 2)},
	{ID: "milestone-master", Predicate: atLeast(levelOf, 5)},
	{ID: "star-collector", Predicate: atLeast(pointsOf, 1000)},
	{ID: "consistency-queen", Predicate: atLeast(levelOf, 10)},
}

func BadgeRules() []BadgeRule { return badgeRules }

func AchievementRules() []AchievementRule { return achievementRules }

// EvaluateBadges returns ids of rules that hold for c and are not in owned, in table order.
func EvaluateBadges(c Counters, owned []entity.BadgeID) []entity.BadgeID {
	have := make(map[entity.BadgeID]struct{}, len(owned))
	for _, b := range owned {
		have[b] = struct{}{}
	}
	unlocked := make([]entity.BadgeID, 0)
	for _, r := range badgeRules {
		if _, ok := have[r.ID]; ok {
			continue
		}
		if r.Predicate(c) {
			unlocked = append(unlocked, r.ID)
			have[r.ID] = struct{}{}
		}
	}
	return unlocked
}

func EvaluateAchievements(c Counters, owned []entity.AchievementID) []entity.AchievementID {
	have := make(map[entity.AchievementID]struct{}, len(owned))
	for _, a := range owned {
		have[a] = struct{}{}
	}
	unlocked := make([]entity.AchievementID, 0)
	for _, r := range achievementRules {
		if _, ok := have[r.ID]; ok {
			continue
		}
		if r.Predicate(c) {
			unlocked = append(unlocked, r.ID)
			have[r.ID] = struct{}{}
		}
	}
	return unlocked
}

// ApplyRule credits the action's points to the profile snapshot and evaluates
// badges and achievements over the resulting totals. The profile isn't modified.
// Streaks are taken as already updated by the caller.
func ApplyRule(p *entity.Profile, action Action) entity.RuleResult {
	oldLevel := CalculateLevel(p.Points)
	newPoints := p.Points + action.PointReward
	if newPoints < 0 {
		newPoints = 0
	}
	newLevel := CalculateLevel(newPoints)

	c := Counters{
		Points:          newPoints,
		Level:           newLevel,
		Streaks:         p.Streaks,
		TotalActivities: p.TotalActivities,
		TotalMemories:   p.TotalMemories,
		TotalMilestones: p.TotalMilestones,
		BadgeCount:      len(p.Badges),
	}
	newBadges := EvaluateBadges(c, p.Badges)
	newAchievements := EvaluateAchievements(c, p.Achievements)

	badges := make([]entity.BadgeID, 0, len(p.Badges)+len(newBadges))
	badges = append(append(badges, p.Badges...), newBadges...)
	achievements := make([]entity.AchievementID, 0, len(p.Achievements)+len(newAchievements))
	achievements = append(append(achievements, p.Achievements...), newAchievements...)

	streaks := maps.Clone(p.Streaks)
	if streaks == nil {
		streaks = map[string]int{}
	}

	return entity.RuleResult{
		Points:          newPoints,
		Level:           newLevel,
		LevelUp:         newLevel > oldLevel,
		Badges:          badges,
		NewBadges:       newBadges,
		Achievements:    achievements,
		NewAchievements: newAchievements,
		Streaks:         streaks,
	}
}
