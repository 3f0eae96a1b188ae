package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type ChallengesService struct {
	store   repository.StoreI
	clock   *Clock
	metrics *metrics.Metrics
}

func NewChallengesService(store repository.StoreI, clock *Clock, m *metrics.Metrics) *ChallengesService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &ChallengesService{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

func (cs *ChallengesService) GetWeeklyChallenges(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeProgress, error) {
	now := cs.clock.now()
	repos := cs.store.Repos()
	loginStreak := 0
	profile, err := repos.Profiles.GetByUserID(ctx, uid)
	switch {
	case err == nil:
		loginStreak = profile.Streaks[engine.LoginActivity]
	case !errors.Is(err, errorvalues.ErrProfileNotFound):
		return nil, errors.New("repository error: " + err.Error())
	}
	challenges := engine.WeeklyChallenges(now, cs.clock.Location)
	claimed, err := repos.Claims.ListForWeek(ctx, uid, challenges[0].WeekStart)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	templates := engine.ChallengeTemplates()
	res := make([]entity.ChallengeProgress, 0, len(challenges))
	for i, ch := range challenges {
		count, err := countForTemplate(ctx, repos, uid, templates[i], ch.WeekStart, ch.WeekEnd)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		progress := engine.ChallengeProgress(ch, count, loginStreak)
		progress.IsClaimed = slices.Contains(claimed, ch.ID)
		res = append(res, progress)
	}
	return res, nil
}

func (cs *ChallengesService) ClaimWeeklyChallenge(ctx context.Context, uid uuid.UUID, challengeID string) (*entity.ChallengeClaim, error) {
	now := cs.clock.now()
	ch, tmpl, err := engine.FindWeeklyChallenge(challengeID, now, cs.clock.Location)
	if err != nil {
		return nil, err
	}
	var claim entity.ChallengeClaim
	err = cs.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		profile, err := repos.Profiles.Lock(ctx, uid)
		if err != nil {
			return err
		}
		count, err := countForTemplate(ctx, repos, uid, tmpl, ch.WeekStart, ch.WeekEnd)
		if err != nil {
			return err
		}
		progress := engine.ChallengeProgress(ch, count, profile.Streaks[engine.LoginActivity])
		if !progress.IsCompleted {
			return errorvalues.ErrChallengeIncomplete
		}
		claim = entity.ChallengeClaim{
			UserID:      uid,
			ChallengeID: ch.ID,
			WeekStart:   ch.WeekStart,
			Points:      ch.Reward,
		}
		if err = repos.Claims.Create(ctx, &claim); err != nil {
			return err
		}
		engine.Credit(profile, ch.Reward)
		if err = repos.Profiles.Save(ctx, profile); err != nil {
			return err
		}
		return syncWeeklyRanking(ctx, repos, uid, profile.Points, now)
	})
	if err != nil {
		return nil, serviceError(err)
	}
	cs.metrics.PointsCredited("challenge", claim.Points)
	return &claim, nil
}

// Consistency reads the login streak, so it has no events to count.
func countForTemplate(ctx context.Context, repos *repository.Repos, uid uuid.UUID, tmpl engine.ChallengeTemplate, from, to time.Time) (int, error) {
	if tmpl.EventKind == "" {
		return 0, nil
	}
	return repos.Activity.CountBetween(ctx, uid, tmpl.EventKind, from, to)
}
