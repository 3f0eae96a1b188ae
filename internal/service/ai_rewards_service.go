package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type AIRewardsService struct {
	store   repository.StoreI
	clock   *Clock
	metrics *metrics.Metrics
}

func NewAIRewardsService(store repository.StoreI, clock *Clock, m *metrics.Metrics) *AIRewardsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &AIRewardsService{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

func (as *AIRewardsService) UnlockReward(ctx context.Context, uid uuid.UUID, rewardType entity.AIRewardType) (*entity.AIRewardResult, error) {
	cost, err := engine.AIRewardCost(rewardType)
	if err != nil {
		return nil, err
	}
	var result entity.AIRewardResult
	err = as.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		profile, err := repos.Profiles.Lock(ctx, uid)
		if err != nil {
			return err
		}
		if err = engine.Debit(profile, cost); err != nil {
			return err
		}
		if err = repos.Profiles.Save(ctx, profile); err != nil {
			return err
		}
		unlock := entity.AIRewardUnlock{
			UserID:      uid,
			RewardType:  rewardType,
			PointsSpent: cost,
		}
		if err = repos.AIRewards.Create(ctx, &unlock); err != nil {
			return err
		}
		if err = syncWeeklyRanking(ctx, repos, uid, profile.Points, as.clock.now()); err != nil {
			return err
		}
		result = entity.AIRewardResult{
			Unlock:    &unlock,
			NewPoints: profile.Points,
		}
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}
	as.metrics.PointsDebited("ai_reward", cost)
	return &result, nil
}

func (as *AIRewardsService) ListUnlocks(ctx context.Context, uid uuid.UUID) ([]*entity.AIRewardUnlock, error) {
	unlocks, err := as.store.Repos().AIRewards.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return unlocks, nil
}
