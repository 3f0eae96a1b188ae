package entity

import (
	"time"

	"github.com/google/uuid"
)

// BadgeID is the canonical badge identifier. Legacy storage shapes are normalized
// to it by the repository layer.
type BadgeID string

type AchievementID string

type Profile struct {
	UserID          uuid.UUID       `json:"uid"`
	Points          int             `json:"points"`
	Level           int             `json:"level"`
	Badges          []BadgeID       `json:"badges"`
	Achievements    []AchievementID `json:"achievements"`
	Streaks         map[string]int  `json:"streaks"`
	TotalActivities int             `json:"total_activities"`
	TotalMemories   int             `json:"total_memories"`
	TotalMilestones int             `json:"total_milestones"`
	DailyGoal       int             `json:"daily_goal"`
	DailyProgress   int             `json:"daily_progress"`
	DailyProgressAt *time.Time      `json:"daily_progress_at,omitempty"`
	LastLoginAt     *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Counters are produced by the rest of the app (memories, activities, milestones)
// and handed to the engine as inputs.
type Counters struct {
	TotalActivities int `json:"total_activities" validate:"min=0"`
	TotalMemories   int `json:"total_memories" validate:"min=0"`
	TotalMilestones int `json:"total_milestones" validate:"min=0"`
}

type RuleResult struct {
	Points          int             `json:"points"`
	Level           int             `json:"level"`
	LevelUp         bool            `json:"level_up"`
	Badges          []BadgeID       `json:"badges"`
	NewBadges       []BadgeID       `json:"new_badges"`
	Achievements    []AchievementID `json:"achievements"`
	NewAchievements []AchievementID `json:"new_achievements"`
	Streaks         map[string]int  `json:"streaks"`
}

type ItemType string

const (
	ItemTheme      ItemType = "theme"
	ItemFeature    ItemType = "feature"
	ItemBonus      ItemType = "bonus"
	ItemConsumable ItemType = "consumable"
)

type ShopItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        ItemType  `json:"type"`
	Price       int       `json:"price"`
	Stock       *int      `json:"stock,omitempty"`
	IsLimited   bool      `json:"is_limited"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserPurchase struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	ItemID      uuid.UUID `json:"item_id"`
	PointsSpent int       `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

type PurchaseResult struct {
	Purchase  *UserPurchase `json:"purchase"`
	NewPoints int           `json:"new_points"`
	Item      *ShopItem     `json:"item"`
}

type MissionDefinition struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Goal        int       `json:"goal"`
	Points      int       `json:"points"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
}

type UserMission struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"uid"`
	MissionID   uuid.UUID         `json:"mission_id"`
	Mission     MissionDefinition `json:"mission"`
	Progress    int               `json:"progress"`
	IsCompleted bool              `json:"is_completed"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	ExpiresAt   time.Time         `json:"expires_at"`
	CreatedAt   time.Time         `json:"created_at"`
}

type ChallengeCategory string

const (
	ChallengeSleep       ChallengeCategory = "sleep"
	ChallengeMemory      ChallengeCategory = "memory"
	ChallengeConsistency ChallengeCategory = "consistency"
)

type WeeklyChallenge struct {
	ID        string            `json:"id"`
	Category  ChallengeCategory `json:"category"`
	Title     string            `json:"title"`
	Goal      int               `json:"goal"`
	Reward    int               `json:"reward"`
	WeekStart time.Time         `json:"week_start"`
	WeekEnd   time.Time         `json:"week_end"`
}

type ChallengeProgress struct {
	WeeklyChallenge
	Progress    int  `json:"progress"`
	IsCompleted bool `json:"is_completed"`
	IsClaimed   bool `json:"is_claimed"`
}

type ChallengeClaim struct {
	UserID      uuid.UUID `json:"uid"`
	ChallengeID string    `json:"challenge_id"`
	WeekStart   time.Time `json:"week_start"`
	Points      int       `json:"points"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

type SpecialEvent struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	StartsAt    time.Time        `json:"starts_at"`
	EndsAt      time.Time        `json:"ends_at"`
	IsActive    bool             `json:"is_active"`
	Challenges  []EventChallenge `json:"challenges"`
}

type EventChallenge struct {
	ID      string    `json:"id"`
	EventID uuid.UUID `json:"event_id"`
	Title   string    `json:"title"`
	Goal    int       `json:"goal"`
	Points  int       `json:"points"`
}

type UserEvent struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"uid"`
	EventID   uuid.UUID      `json:"event_id"`
	Progress  map[string]int `json:"progress"`
	Completed []string       `json:"completed"`
	JoinedAt  time.Time      `json:"joined_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type RankingEntry struct {
	UserID    uuid.UUID `json:"uid"`
	Week      int       `json:"week"`
	Year      int       `json:"year"`
	Points    int       `json:"points"`
	Rank      int       `json:"rank"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ActivityEvent struct {
	UserID    uuid.UUID `json:"uid"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type AIRewardType string

const (
	AIRewardTip           AIRewardType = "tip"
	AIRewardActivity      AIRewardType = "activity"
	AIRewardMilestone     AIRewardType = "milestone"
	AIRewardEncouragement AIRewardType = "encouragement"
)

type AIRewardUnlock struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"uid"`
	RewardType  AIRewardType `json:"reward_type"`
	PointsSpent int          `json:"points_spent"`
	CreatedAt   time.Time    `json:"created_at"`
}

type AIRewardResult struct {
	Unlock    *AIRewardUnlock `json:"unlock"`
	NewPoints int             `json:"new_points"`
}
