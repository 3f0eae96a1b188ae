package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

const profileColumns = `user_id, points, level, badges, achievements, streaks, total_activities,
	total_memories, total_milestones, daily_goal, daily_progress, daily_progress_at, last_login_at, created_at, updated_at`

type ProfilesRepository struct {
	conn Querier
}

func NewProfilesRepo(conn Querier) *ProfilesRepository {
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Lock(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	_, err := pr.conn.Exec(ctx, `INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, uid)
	if err != nil {
		return nil, errors.New("creating profile error: " + err.Error())
	}
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 FOR UPDATE;`, uid)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("locking profile error: " + err.Error())
	}
	return profile, nil
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1;`, uid)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	return profile, nil
}

func (pr *ProfilesRepository) Save(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	badges := profile.Badges
	if badges == nil {
		badges = []entity.BadgeID{}
	}
	achievements := profile.Achievements
	if achievements == nil {
		achievements = []entity.AchievementID{}
	}
	streaks := profile.Streaks
	if streaks == nil {
		streaks = map[string]int{}
	}
	badgesJSON, err := encodeJSON(badges)
	if err != nil {
		return err
	}
	achievementsJSON, err := encodeJSON(achievements)
	if err != nil {
		return err
	}
	streaksJSON, err := encodeJSON(streaks)
	if err != nil {
		return err
	}
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET points = $1, level = $2, badges = $3, achievements = $4, streaks = $5,
		total_activities = $6, total_memories = $7, total_milestones = $8, daily_goal = $9, daily_progress = $10,
		daily_progress_at = $11, last_login_at = $12, updated_at = NOW() WHERE user_id = $13;`,
		profile.Points,
		profile.Level,
		badgesJSON,
		achievementsJSON,
		streaksJSON,
		profile.TotalActivities,
		profile.TotalMemories,
		profile.TotalMilestones,
		profile.DailyGoal,
		profile.DailyProgress,
		profile.DailyProgressAt,
		profile.LastLoginAt,
		profile.UserID,
	)
	if err != nil {
		return errors.New("saving profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var (
		p                                   entity.Profile
		badgesRaw, achievementsRaw, streaks []byte
	)
	err := row.Scan(
		&p.UserID,
		&p.Points,
		&p.Level,
		&badgesRaw,
		&achievementsRaw,
		&streaks,
		&p.TotalActivities,
		&p.TotalMemories,
		&p.TotalMilestones,
		&p.DailyGoal,
		&p.DailyProgress,
		&p.DailyProgressAt,
		&p.LastLoginAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Badges, err = decodeBadges(badgesRaw); err != nil {
		return nil, err
	}
	if p.Achievements, err = decodeAchievements(achievementsRaw); err != nil {
		return nil, err
	}
	if p.Streaks, err = decodeCounterMap(streaks); err != nil {
		return nil, err
	}
	return &p, nil
}
