package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type MissionsService struct {
	store   repository.StoreI
	clock   *Clock
	metrics *metrics.Metrics
}

func NewMissionsService(store repository.StoreI, clock *Clock, m *metrics.Metrics) *MissionsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &MissionsService{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

func (ms *MissionsService) GenerateDailyMissions(ctx context.Context, uid uuid.UUID) ([]*entity.UserMission, error) {
	dayStart, nextMidnight := engine.DayWindow(ms.clock.now(), ms.clock.Location)
	var missions []*entity.UserMission
	err := ms.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		if _, err := repos.Profiles.Lock(ctx, uid); err != nil {
			return err
		}
		if err := repos.Missions.LockDay(ctx, uid, dayStart); err != nil {
			return err
		}
		assigned, err := repos.Missions.ListAssigned(ctx, uid, dayStart, nextMidnight)
		if err != nil {
			return err
		}
		if len(assigned) > 0 {
			missions = assigned
			return nil
		}
		defs, err := repos.Missions.ActiveDefinitions(ctx, engine.DailyMissionCount)
		if err != nil {
			return err
		}
		missions = make([]*entity.UserMission, 0, len(defs))
		for _, def := range defs {
			m := entity.UserMission{
				UserID:    uid,
				MissionID: def.ID,
				Mission:   *def,
				ExpiresAt: nextMidnight,
			}
			if err = repos.Missions.Assign(ctx, &m); err != nil {
				return err
			}
			missions = append(missions, &m)
		}
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}
	return missions, nil
}

func (ms *MissionsService) UpdateMissionProgress(ctx context.Context, uid uuid.UUID, req *MissionProgressRequest) (*entity.UserMission, error) {
	if req.Progress < 0 {
		return nil, errorvalues.ErrInvalidProgress
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := ms.clock.now()
	var (
		updated entity.UserMission
		credit  int
	)
	err := ms.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		profile, err := repos.Profiles.Lock(ctx, uid)
		if err != nil {
			return err
		}
		mission, err := repos.Missions.LockAssignment(ctx, uid, req.MissionID, now)
		if err != nil {
			return err
		}
		updated, credit = engine.ApplyMissionProgress(*mission, req.Progress, now)
		if err = repos.Missions.SaveAssignment(ctx, &updated); err != nil {
			return err
		}
		if credit == 0 {
			return nil
		}
		engine.Credit(profile, credit)
		if err = repos.Profiles.Save(ctx, profile); err != nil {
			return err
		}
		return syncWeeklyRanking(ctx, repos, uid, profile.Points, now)
	})
	if err != nil {
		return nil, serviceError(err)
	}
	if credit > 0 {
		ms.metrics.MissionCompleted()
		ms.metrics.PointsCredited("mission", credit)
	}
	return &updated, nil
}
