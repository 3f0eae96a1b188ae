package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/nestling/pkg/entity"
)

type TriggerActionRequest struct {
	ActionID string `validate:"required,slug,max=64"`
	Counters entity.Counters
}

type MissionProgressRequest struct {
	MissionID uuid.UUID
	Progress  int `validate:"min=0"`
}

type EventProgressRequest struct {
	EventID     uuid.UUID
	ChallengeID string `validate:"required,slug,max=64"`
	Progress    int    `validate:"min=0"`
}

type RewardsServiceI interface {
	// Applies a point-granting action to the user's profile and returns what changed.
	// Counters replace the stored ones before rules are evaluated
	TriggerAction(ctx context.Context, uid uuid.UUID, req *TriggerActionRequest) (*entity.RuleResult, error)
	// Returns stored profile, or a zero profile if the user has none yet
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
}

type ShopServiceI interface {
	ListItems(ctx context.Context) ([]*entity.ShopItem, error)
	// Debits item price and records the purchase. Fails without side effects on
	// insufficient balance, exhausted stock or repeated purchase of a unique item
	PurchaseItem(ctx context.Context, uid, itemID uuid.UUID) (*entity.PurchaseResult, error)
	ListPurchases(ctx context.Context, uid uuid.UUID) ([]*entity.UserPurchase, error)
}

type MissionsServiceI interface {
	// Returns today's missions, assigning a new batch on the first call of the day
	GenerateDailyMissions(ctx context.Context, uid uuid.UUID) ([]*entity.UserMission, error)
	// Stores progress and credits mission points once, when the goal is first reached
	UpdateMissionProgress(ctx context.Context, uid uuid.UUID, req *MissionProgressRequest) (*entity.UserMission, error)
}

type ChallengesServiceI interface {
	GetWeeklyChallenges(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeProgress, error)
	ClaimWeeklyChallenge(ctx context.Context, uid uuid.UUID, challengeID string) (*entity.ChallengeClaim, error)
}

type EventsServiceI interface {
	JoinEvent(ctx context.Context, uid, eventID uuid.UUID) (*entity.UserEvent, error)
	UpdateEventProgress(ctx context.Context, uid uuid.UUID, req *EventProgressRequest) (*entity.UserEvent, error)
	GetUserEvents(ctx context.Context, uid uuid.UUID) ([]*entity.UserEvent, error)
}

type RankingServiceI interface {
	// Stores the user's point total for the current week and re-ranks the week
	UpdateWeeklyRanking(ctx context.Context, uid uuid.UUID, points int) error
	GetWeeklyRanking(ctx context.Context, limit int) ([]entity.RankingEntry, error)
}

type AIRewardsServiceI interface {
	UnlockReward(ctx context.Context, uid uuid.UUID, rewardType entity.AIRewardType) (*entity.AIRewardResult, error)
	ListUnlocks(ctx context.Context, uid uuid.UUID) ([]*entity.AIRewardUnlock, error)
}
