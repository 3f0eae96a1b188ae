package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

func TestActivityLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivityRepo(mock)
	uid := uuid.New()
	now := time.Now()
	ctx := context.Background()
	t.Run("record", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO activity_events (user_id, kind, created_at) VALUES ($1, $2, $3);`)).
			WithArgs(uid, "sleep", now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Record(ctx, &entity.ActivityEvent{UserID: uid, Kind: "sleep", CreatedAt: now}))
	})
	t.Run("count", func(t *testing.T) {
		from := now.AddDate(0, 0, -3)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM activity_events`)).
			WithArgs(uid, "sleep", from, now).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
		count, err := repo.CountBetween(ctx, uid, "sleep", from, now)
		assert.NoError(t, err)
		assert.Equal(t, 4, count)
	})
	t.Run("record error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO activity_events`)).
			WithArgs(uid, "sleep", now).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Record(ctx, &entity.ActivityEvent{UserID: uid, Kind: "sleep", CreatedAt: now}))
	})
}

func TestChallengeClaims(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewChallengeClaimsRepo(mock)
	weekStart := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	claim := entity.ChallengeClaim{UserID: uuid.New(), ChallengeID: "sleep-2024-03-03", WeekStart: weekStart, Points: 50}
	query := regexp.QuoteMeta(`INSERT INTO challenge_claims (user_id, challenge_id, week_start, points)`)
	ctx := context.Background()
	t.Run("claimed", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(claim.UserID, claim.ChallengeID, claim.WeekStart, claim.Points).
			WillReturnRows(pgxmock.NewRows([]string{"claimed_at"}).AddRow(now))
		assert.NoError(t, repo.Create(ctx, &claim))
		assert.Equal(t, now, claim.ClaimedAt)
	})
	t.Run("claimed twice", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(claim.UserID, claim.ChallengeID, claim.WeekStart, claim.Points).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Create(ctx, &claim), errorvalues.ErrRewardClaimed)
	})
	t.Run("list for week", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT challenge_id FROM challenge_claims WHERE user_id = $1 AND week_start = $2;`)).
			WithArgs(claim.UserID, weekStart).
			WillReturnRows(pgxmock.NewRows([]string{"challenge_id"}).AddRow("sleep-2024-03-03"))
		ids, err := repo.ListForWeek(ctx, claim.UserID, weekStart)
		assert.NoError(t, err)
		assert.Equal(t, []string{"sleep-2024-03-03"}, ids)
	})
}

func TestAIRewardUnlocks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewAIRewardsRepo(mock)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("create", func(t *testing.T) {
		unlock := entity.AIRewardUnlock{ID: uuid.New(), UserID: uid, RewardType: entity.AIRewardTip, PointsSpent: 20}
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ai_reward_unlocks (id, user_id, reward_type, points_spent)`)).
			WithArgs(unlock.ID, uid, "tip", 20).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
		assert.NoError(t, repo.Create(ctx, &unlock))
		assert.Equal(t, now, unlock.CreatedAt)
	})
	t.Run("list", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM ai_reward_unlocks`)).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "reward_type", "points_spent", "created_at"}).
				AddRow(id, uid, "encouragement", 10, now))
		result, err := repo.ListByUser(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, []*entity.AIRewardUnlock{
			{ID: id, UserID: uid, RewardType: entity.AIRewardEncouragement, PointsSpent: 10, CreatedAt: now},
		}, result)
	})
}
