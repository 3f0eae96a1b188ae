package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type EventsService struct {
	store   repository.StoreI
	clock   *Clock
	metrics *metrics.Metrics
}

func NewEventsService(store repository.StoreI, clock *Clock, m *metrics.Metrics) *EventsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &EventsService{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

// JoinEvent is idempotent: joining twice returns the existing participation.
func (es *EventsService) JoinEvent(ctx context.Context, uid, eventID uuid.UUID) (*entity.UserEvent, error) {
	now := es.clock.now()
	var participation entity.UserEvent
	err := es.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		if _, err := repos.Profiles.Lock(ctx, uid); err != nil {
			return err
		}
		event, err := repos.Events.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !engine.EventOpen(event, now) {
			return errorvalues.ErrEventClosed
		}
		participation = entity.UserEvent{
			UserID:  uid,
			EventID: eventID,
		}
		return repos.Events.CreateParticipation(ctx, &participation)
	})
	if err != nil {
		return nil, serviceError(err)
	}
	return &participation, nil
}

func (es *EventsService) UpdateEventProgress(ctx context.Context, uid uuid.UUID, req *EventProgressRequest) (*entity.UserEvent, error) {
	if req.Progress < 0 {
		return nil, errorvalues.ErrInvalidProgress
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := es.clock.now()
	var (
		updated entity.UserEvent
		credit  int
	)
	err := es.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		profile, err := repos.Profiles.Lock(ctx, uid)
		if err != nil {
			return err
		}
		event, err := repos.Events.GetEvent(ctx, req.EventID)
		if err != nil {
			return err
		}
		if !engine.EventOpen(event, now) {
			return errorvalues.ErrEventClosed
		}
		ch, ok := engine.FindEventChallenge(event, req.ChallengeID)
		if !ok {
			return errorvalues.ErrUnknownChallenge
		}
		participation, err := repos.Events.LockParticipation(ctx, uid, req.EventID)
		if err != nil {
			return err
		}
		updated, credit = engine.ApplyEventProgress(*participation, ch, req.Progress, now)
		if err = repos.Events.SaveParticipation(ctx, &updated); err != nil {
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
		es.metrics.PointsCredited("event", credit)
	}
	return &updated, nil
}

func (es *EventsService) GetUserEvents(ctx context.Context, uid uuid.UUID) ([]*entity.UserEvent, error) {
	events, err := es.store.Repos().Events.ListParticipations(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return events, nil
}
