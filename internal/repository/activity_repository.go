package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/nestling/pkg/entity"
)

type ActivityRepository struct {
	conn Querier
}

func NewActivityRepo(conn Querier) *ActivityRepository {
	return &ActivityRepository{
		conn: conn,
	}
}

func (ar *ActivityRepository) Record(ctx context.Context, event *entity.ActivityEvent) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO activity_events (user_id, kind, created_at) VALUES ($1, $2, $3);`,
		event.UserID,
		event.Kind,
		event.CreatedAt,
	)
	if err != nil {
		return errors.New("recording activity error: " + err.Error())
	}
	return nil
}

func (ar *ActivityRepository) CountBetween(ctx context.Context, uid uuid.UUID, kind string, from, to time.Time) (int, error) {
	var count int
	err := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM activity_events
		WHERE user_id = $1 AND kind = $2 AND created_at >= $3 AND created_at <= $4;`, uid, kind, from, to).Scan(&count)
	if err != nil {
		return 0, errors.New("counting activity error: " + err.Error())
	}
	return count, nil
}
