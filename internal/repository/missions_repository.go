package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

const userMissionColumns = `um.id, um.user_id, um.mission_id, um.progress, um.is_completed, um.completed_at,
	um.expires_at, um.created_at, m.id, m.title, m.description, m.goal, m.points, m.sort_order, m.is_active`

type MissionsRepository struct {
	conn Querier
}

func NewMissionsRepo(conn Querier) *MissionsRepository {
	return &MissionsRepository{
		conn: conn,
	}
}

func (mr *MissionsRepository) LockDay(ctx context.Context, uid uuid.UUID, day time.Time) error {
	key := "missions:" + uid.String() + ":" + day.Format(time.DateOnly)
	_, err := mr.conn.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, key)
	if err != nil {
		return errors.New("locking mission day error: " + err.Error())
	}
	return nil
}

func (mr *MissionsRepository) ListAssigned(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.UserMission, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+userMissionColumns+`
		FROM user_missions um JOIN missions m ON m.id = um.mission_id
		WHERE um.user_id = $1 AND um.expires_at > $2 AND um.expires_at <= $3
		ORDER BY m.sort_order;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing assigned missions error: " + err.Error())
	}
	defer rows.Close()
	missions := make([]*entity.UserMission, 0)
	for rows.Next() {
		m, err := scanUserMission(rows)
		if err != nil {
			return nil, errors.New("user mission row parsing error: " + err.Error())
		}
		missions = append(missions, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user mission rows error: " + err.Error())
	}
	return missions, nil
}

func (mr *MissionsRepository) ActiveDefinitions(ctx context.Context, limit int) ([]*entity.MissionDefinition, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, title, description, goal, points, sort_order, is_active
		FROM missions WHERE is_active ORDER BY sort_order LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("listing mission definitions error: " + err.Error())
	}
	defer rows.Close()
	defs := make([]*entity.MissionDefinition, 0)
	for rows.Next() {
		d := entity.MissionDefinition{}
		err = rows.Scan(&d.ID, &d.Title, &d.Description, &d.Goal, &d.Points, &d.SortOrder, &d.IsActive)
		if err != nil {
			return nil, errors.New("mission definition row parsing error: " + err.Error())
		}
		defs = append(defs, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected mission definition rows error: " + err.Error())
	}
	return defs, nil
}

func (mr *MissionsRepository) Assign(ctx context.Context, mission *entity.UserMission) error {
	if mission.ID == uuid.Nil {
		mission.ID = uuid.New()
	}
	err := mr.conn.QueryRow(ctx, `INSERT INTO user_missions (id, user_id, mission_id, progress, is_completed, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;`,
		mission.ID,
		mission.UserID,
		mission.MissionID,
		mission.Progress,
		mission.IsCompleted,
		mission.ExpiresAt,
	).Scan(&mission.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrMissionNotFound
			}
		}
		return errors.New("assigning mission error: " + err.Error())
	}
	return nil
}

func (mr *MissionsRepository) LockAssignment(ctx context.Context, uid, missionID uuid.UUID, now time.Time) (*entity.UserMission, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+userMissionColumns+`
		FROM user_missions um JOIN missions m ON m.id = um.mission_id
		WHERE um.user_id = $1 AND um.mission_id = $2 AND um.expires_at > $3
		ORDER BY um.expires_at LIMIT 1 FOR UPDATE OF um;`, uid, missionID, now)
	m, err := scanUserMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMissionNotFound
		}
		return nil, errors.New("locking mission assignment error: " + err.Error())
	}
	return m, nil
}

func (mr *MissionsRepository) SaveAssignment(ctx context.Context, mission *entity.UserMission) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE user_missions SET progress = $1, is_completed = $2, completed_at = $3 WHERE id = $4;`,
		mission.Progress,
		mission.IsCompleted,
		mission.CompletedAt,
		mission.ID,
	)
	if err != nil {
		return errors.New("saving mission assignment error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMissionNotFound
	}
	return nil
}

func scanUserMission(row pgx.Row) (*entity.UserMission, error) {
	var m entity.UserMission
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.MissionID,
		&m.Progress,
		&m.IsCompleted,
		&m.CompletedAt,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.Mission.ID,
		&m.Mission.Title,
		&m.Mission.Description,
		&m.Mission.Goal,
		&m.Mission.Points,
		&m.Mission.SortOrder,
		&m.Mission.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
