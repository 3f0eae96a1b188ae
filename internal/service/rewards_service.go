package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type RewardsService struct {
	store   repository.StoreI
	clock   *Clock
	metrics *metrics.Metrics
}

func NewRewardsService(store repository.StoreI, clock *Clock, m *metrics.Metrics) *RewardsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &RewardsService{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

func (rs *RewardsService) TriggerAction(ctx context.Context, uid uuid.UUID, req *TriggerActionRequest) (*entity.RuleResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	action, err := engine.LookupAction(req.ActionID)
	if err != nil {
		return nil, err
	}
	now := rs.clock.now()
	var result entity.RuleResult
	err = rs.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		profile, err := repos.Profiles.Lock(ctx, uid)
		if err != nil {
			return err
		}
		profile.TotalActivities = req.Counters.TotalActivities
		profile.TotalMemories = req.Counters.TotalMemories
		profile.TotalMilestones = req.Counters.TotalMilestones

		isLogin := action.ActivityType == engine.LoginActivity
		var lastActivity *time.Time
		if isLogin {
			lastActivity = profile.LastLoginAt
		}
		profile.Streaks = engine.UpdateStreaks(profile.Streaks, action.ActivityType, lastActivity, now, rs.clock.Location)

		result = engine.ApplyRule(profile, action)
		profile.Points = result.Points
		profile.Level = result.Level
		profile.Badges = result.Badges
		profile.Achievements = result.Achievements
		profile.Streaks = result.Streaks
		if isLogin {
			profile.LastLoginAt = &now
		} else {
			profile.DailyProgress = engine.AdvanceDailyProgress(profile.DailyProgress, profile.DailyProgressAt, now, rs.clock.Location)
			profile.DailyProgressAt = &now
		}

		if action.EventKind != "" {
			err = repos.Activity.Record(ctx, &entity.ActivityEvent{
				UserID:    uid,
				Kind:      action.EventKind,
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
		}
		if err = repos.Profiles.Save(ctx, profile); err != nil {
			return err
		}
		return syncWeeklyRanking(ctx, repos, uid, profile.Points, now)
	})
	if err != nil {
		return nil, serviceError(err)
	}
	rs.metrics.ActionApplied(action.ID)
	rs.metrics.PointsCredited("action", action.PointReward)
	badges := make([]string, 0, len(result.NewBadges))
	for _, b := range result.NewBadges {
		badges = append(badges, string(b))
	}
	rs.metrics.BadgesUnlocked(badges)
	return &result, nil
}

func (rs *RewardsService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	profile, err := rs.store.Repos().Profiles.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return &entity.Profile{
				UserID:       uid,
				Level:        engine.CalculateLevel(0),
				Badges:       []entity.BadgeID{},
				Achievements: []entity.AchievementID{},
				Streaks:      map[string]int{},
				DailyGoal:    engine.DefaultDailyGoal,
			}, nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return profile, nil
}
