package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

var profileCols = []string{
	"user_id", "points", "level", "badges", "achievements", "streaks", "total_activities",
	"total_memories", "total_milestones", "daily_goal", "daily_progress", "daily_progress_at", "last_login_at", "created_at", "updated_at",
}

func TestLockProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewProfilesRepo(mock)
	uid := uuid.New()
	now := time.Now()
	insertQuery := regexp.QuoteMeta(`INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	selectQuery := regexp.QuoteMeta(`FROM profiles WHERE user_id = $1 FOR UPDATE;`)
	ctx := context.Background()
	t.Run("fresh profile", func(t *testing.T) {
		mock.ExpectExec(insertQuery).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(selectQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(profileCols).
				AddRow(uid, 0, 1, []byte(`[]`), []byte(`[]`), []byte(`{}`), 0, 0, 0, 3, 0, nil, nil, now, now))
		p, err := repo.Lock(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, uid, p.UserID)
		assert.Equal(t, 1, p.Level)
		assert.Empty(t, p.Badges)
		assert.Nil(t, p.LastLoginAt)
		assert.NotNil(t, p.Streaks)
	})
	t.Run("legacy badge shape", func(t *testing.T) {
		login := now.Add(-time.Hour)
		mock.ExpectExec(insertQuery).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(selectQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(profileCols).
				AddRow(uid, 320, 3,
					[]byte(`[{"id":"first-memory","name":"First memory"},"week-warrior",{"id":"first-memory"}]`),
					[]byte(`["memory-keeper"]`),
					[]byte(`{"login":4,"memory":12}`),
					20, 12, 1, 3, 2, &login, &login, now, now))
		p, err := repo.Lock(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, []entity.BadgeID{"first-memory", "week-warrior"}, p.Badges)
		assert.Equal(t, []entity.AchievementID{"memory-keeper"}, p.Achievements)
		assert.Equal(t, map[string]int{"login": 4, "memory": 12}, p.Streaks)
		assert.Equal(t, login, *p.LastLoginAt)
		assert.Equal(t, login, *p.DailyProgressAt)
	})
	t.Run("insert error", func(t *testing.T) {
		mock.ExpectExec(insertQuery).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.Lock(ctx, uid)
		assert.Error(t, err)
	})
	t.Run("select error", func(t *testing.T) {
		mock.ExpectExec(insertQuery).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(selectQuery).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.Lock(ctx, uid)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewProfilesRepo(mock)
	uid := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`FROM profiles WHERE user_id = $1;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(profileCols).
				AddRow(uid, 150, 2, []byte(`["first-memory"]`), []byte(`[]`), []byte(`{}`), 1, 1, 0, 3, 0, nil, nil, now, now))
		p, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 150, p.Points)
		assert.Equal(t, []entity.BadgeID{"first-memory"}, p.Badges)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserID(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	t.Run("broken json", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(profileCols).
				AddRow(uid, 0, 1, []byte(`{`), []byte(`[]`), []byte(`{}`), 0, 0, 0, 3, 0, nil, nil, now, now))
		_, err := repo.GetByUserID(ctx, uid)
		assert.Error(t, err)
	})
}

func TestSaveProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewProfilesRepo(mock)
	login := time.Now()
	profile := entity.Profile{
		UserID:          uuid.New(),
		Points:          170,
		Level:           2,
		Badges:          []entity.BadgeID{"first-memory"},
		Streaks:         map[string]int{"login": 2},
		TotalMemories:   1,
		TotalActivities: 4,
		DailyGoal:       3,
		DailyProgress:   1,
		DailyProgressAt: &login,
		LastLoginAt:     &login,
	}
	query := regexp.QuoteMeta(`UPDATE profiles SET points = $1`)
	ctx := context.Background()
	args := []any{
		profile.Points, profile.Level, `["first-memory"]`, `[]`, `{"login":2}`,
		profile.TotalActivities, profile.TotalMemories, profile.TotalMilestones,
		profile.DailyGoal, profile.DailyProgress, profile.DailyProgressAt, profile.LastLoginAt, profile.UserID,
	}
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Save(ctx, &profile)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Save(ctx, &profile)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		err := repo.Save(ctx, &profile)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
