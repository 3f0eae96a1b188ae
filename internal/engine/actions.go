package engine

import (
	errorvalues "github.com/limbo/nestling/internal/error_values"
)

const LoginActivity = "login"

// Event kinds recorded to the activity log; weekly challenges count them.
const (
	KindMemory      = "memory"
	KindPhotoMemory = "memory_photo"
	KindActivity    = "activity"
	KindMilestone   = "milestone"
	KindSleep       = "sleep"
	KindLogin       = "login"
)

// Action is a point-granting trigger coming from the rest of the app.
type Action struct {
	ID            string
	PointReward   int
	ConditionName string
	// Streak counter bumped by this action.
	ActivityType string
	// Activity log kind, empty when the action isn't counted by challenges.
	EventKind string
}

var actions = map[string]Action{
	"memory_created": {
		ID: "memory_created", PointReward: 10, ConditionName: "totalMemories",
		ActivityType: "memory", EventKind: KindMemory,
	},
	"photo_memory_created": {
		ID: "photo_memory_created", PointReward: 15, ConditionName: "totalMemories",
		ActivityType: "memory", EventKind: KindPhotoMemory,
	},
	"activity_logged": {
		ID: "activity_logged", PointReward: 5, ConditionName: "totalActivities",
		ActivityType: "activity", EventKind: KindActivity,
	},
	"milestone_reached": {
		ID: "milestone_reached", PointReward: 20, ConditionName: "totalMilestones",
		ActivityType: "milestone", EventKind: KindMilestone,
	},
	"sleep_logged": {
		ID: "sleep_logged", PointReward: 5, ConditionName: "totalActivities",
		ActivityType: "sleep", EventKind: KindSleep,
	},
	"daily_login": {
		ID: "daily_login", PointReward: 2, ConditionName: "loginStreak",
		ActivityType: LoginActivity, EventKind: KindLogin,
	},
}

func LookupAction(id string) (Action, error) {
	a, ok := actions[id]
	if !ok {
		return Action{}, errorvalues.ErrUnknownAction
	}
	return a, nil
}
