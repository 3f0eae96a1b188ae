package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type RankingService struct {
	store repository.StoreI
	clock *Clock
}

func NewRankingService(store repository.StoreI, clock *Clock) *RankingService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &RankingService{
		store: store,
		clock: clock,
	}
}

// UpdateWeeklyRanking records points as the user's total for the current week.
// Operations that change a balance already do this inside their own transaction.
func (rs *RankingService) UpdateWeeklyRanking(ctx context.Context, uid uuid.UUID, points int) error {
	now := rs.clock.now()
	err := rs.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		if _, err := repos.Profiles.Lock(ctx, uid); err != nil {
			return err
		}
		return syncWeeklyRanking(ctx, repos, uid, points, now)
	})
	return serviceError(err)
}

// syncWeeklyRanking upserts the user's entry and re-ranks the week. Callers hold
// the user's profile lock, so entries follow the order in which the user's
// operations commit.
func syncWeeklyRanking(ctx context.Context, repos *repository.Repos, uid uuid.UUID, points int, now time.Time) error {
	year, week := engine.ISOWeekOf(now)
	if err := repos.Rankings.LockWeek(ctx, year, week); err != nil {
		return err
	}
	err := repos.Rankings.Upsert(ctx, &entity.RankingEntry{
		UserID: uid,
		Year:   year,
		Week:   week,
		Points: points,
	})
	if err != nil {
		return err
	}
	entries, err := repos.Rankings.ListWeek(ctx, year, week)
	if err != nil {
		return err
	}
	return repos.Rankings.SetRanks(ctx, year, week, engine.RankEntries(entries))
}

func (rs *RankingService) GetWeeklyRanking(ctx context.Context, limit int) ([]entity.RankingEntry, error) {
	year, week := engine.ISOWeekOf(rs.clock.now())
	entries, err := rs.store.Repos().Rankings.Top(ctx, year, week, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}
