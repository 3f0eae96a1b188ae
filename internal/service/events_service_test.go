package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/service"
	"github.com/limbo/nestling/pkg/entity"
)

func TestJoinEvent(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.December, 20, 12, 0, 0, 0, time.UTC)
	uid := uuid.New()
	repos, store := newRepoMocks(t)
	serv := service.NewEventsService(store, fixedClock(now), nil)
	ctx := context.Background()

	open := &entity.SpecialEvent{ID: uuid.New(), Title: "Winter week", StartsAt: now.Add(-24 * time.Hour), EndsAt: now.Add(24 * time.Hour), IsActive: true}
	ended := &entity.SpecialEvent{ID: uuid.New(), Title: "Autumn week", StartsAt: now.Add(-72 * time.Hour), EndsAt: now.Add(-time.Hour), IsActive: true}
	testCases := []struct {
		Desc         string
		EventID      uuid.UUID
		Err          error
		MockPrepFunc func()
	}{
		{
			Desc:    "joined",
			EventID: open.ID,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), open.ID).Return(open, nil)
				repos.events.EXPECT().CreateParticipation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ue *entity.UserEvent) error {
					ue.ID = uuid.New()
					ue.Progress = map[string]int{}
					ue.JoinedAt = now
					return nil
				})
			},
		},
		{
			Desc:    "event ended",
			EventID: ended.ID,
			Err:     errorvalues.ErrEventClosed,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), ended.ID).Return(ended, nil)
			},
		},
		{
			Desc:    "unknown event",
			EventID: uuid.Nil,
			Err:     errorvalues.ErrEventNotFound,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), uuid.Nil).Return(nil, errorvalues.ErrEventNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			ue, err := serv.JoinEvent(ctx, uid, tc.EventID)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, ue.UserID)
			assert.Equal(t, tc.EventID, ue.EventID)
			assert.NotEqual(t, uuid.Nil, ue.ID)
		})
	}
}

func TestUpdateEventProgress(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, time.December, 20, 12, 0, 0, 0, time.UTC)
	uid := uuid.New()
	repos, store := newRepoMocks(t)
	serv := service.NewEventsService(store, fixedClock(now), nil)
	ctx := context.Background()

	event := &entity.SpecialEvent{
		ID:       uuid.New(),
		Title:    "Winter week",
		StartsAt: now.Add(-24 * time.Hour),
		EndsAt:   now.Add(24 * time.Hour),
		IsActive: true,
	}
	event.Challenges = []entity.EventChallenge{
		{ID: "snow-photos", EventID: event.ID, Title: "Three snowy photos", Goal: 3, Points: 60},
	}
	participation := func(progress int, completed ...string) *entity.UserEvent {
		return &entity.UserEvent{
			ID:        uuid.New(),
			UserID:    uid,
			EventID:   event.ID,
			Progress:  map[string]int{"snow-photos": progress},
			Completed: completed,
		}
	}

	testCases := []struct {
		Desc         string
		Req          service.EventProgressRequest
		Err          error
		Completed    []string
		MockPrepFunc func()
	}{
		{
			Desc: "partial",
			Req:  service.EventProgressRequest{EventID: event.ID, ChallengeID: "snow-photos", Progress: 2},
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), event.ID).Return(event, nil)
				repos.events.EXPECT().LockParticipation(gomock.Any(), uid, event.ID).Return(participation(1), nil)
				repos.events.EXPECT().SaveParticipation(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:      "goal reached credits once",
			Req:       service.EventProgressRequest{EventID: event.ID, ChallengeID: "snow-photos", Progress: 3},
			Completed: []string{"snow-photos"},
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid, Points: 100, Level: 1}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), event.ID).Return(event, nil)
				repos.events.EXPECT().LockParticipation(gomock.Any(), uid, event.ID).Return(participation(2), nil)
				repos.events.EXPECT().SaveParticipation(gomock.Any(), gomock.Any()).Return(nil)
				repos.profiles.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entity.Profile) error {
					if p.Points != 160 || p.Level != 2 {
						t.Errorf("unexpected profile after credit: %d points, level %d", p.Points, p.Level)
					}
					return nil
				})
				expectRankingSync(t, repos, uid, 160)
			},
		},
		{
			Desc:      "already completed",
			Req:       service.EventProgressRequest{EventID: event.ID, ChallengeID: "snow-photos", Progress: 4},
			Completed: []string{"snow-photos"},
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid, Points: 160, Level: 2}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), event.ID).Return(event, nil)
				repos.events.EXPECT().LockParticipation(gomock.Any(), uid, event.ID).Return(participation(3, "snow-photos"), nil)
				repos.events.EXPECT().SaveParticipation(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc: "not joined",
			Req:  service.EventProgressRequest{EventID: event.ID, ChallengeID: "snow-photos", Progress: 1},
			Err:  errorvalues.ErrNotParticipating,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), event.ID).Return(event, nil)
				repos.events.EXPECT().LockParticipation(gomock.Any(), uid, event.ID).Return(nil, errorvalues.ErrNotParticipating)
			},
		},
		{
			Desc: "event ended for participant",
			Req:  service.EventProgressRequest{EventID: event.ID, ChallengeID: "snow-photos", Progress: 3},
			Err:  errorvalues.ErrEventClosed,
			MockPrepFunc: func() {
				ended := *event
				ended.EndsAt = now.Add(-time.Minute)
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), event.ID).Return(&ended, nil)
			},
		},
		{
			Desc: "unknown sub-challenge",
			Req:  service.EventProgressRequest{EventID: event.ID, ChallengeID: "sun-photos", Progress: 1},
			Err:  errorvalues.ErrUnknownChallenge,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid}, nil)
				repos.events.EXPECT().GetEvent(gomock.Any(), event.ID).Return(event, nil)
			},
		},
		{
			Desc: "negative progress",
			Req:  service.EventProgressRequest{EventID: event.ID, ChallengeID: "snow-photos", Progress: -2},
			Err:  errorvalues.ErrInvalidProgress,
			MockPrepFunc: func() {
			},
		},
		{
			Desc: "malformed challenge id",
			Req:  service.EventProgressRequest{EventID: event.ID, ChallengeID: "Snow Photos", Progress: 1},
			Err:  errorvalues.ErrValidation,
			MockPrepFunc: func() {
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			ue, err := serv.UpdateEventProgress(ctx, uid, &tc.Req)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Req.Progress, ue.Progress[tc.Req.ChallengeID])
			assert.Equal(t, tc.Completed, ue.Completed)
			assert.Equal(t, now, ue.UpdatedAt)
		})
	}
}

func TestGetUserEvents(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	repos, store := newRepoMocks(t)
	serv := service.NewEventsService(store, nil, nil)
	events := []*entity.UserEvent{{ID: uuid.New(), UserID: uid, EventID: uuid.New(), Progress: map[string]int{}}}

	repos.events.EXPECT().ListParticipations(gomock.Any(), uid).Return(events, nil)
	res, err := serv.GetUserEvents(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, events, res)
}
