package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

const userEventColumns = `id, user_id, event_id, progress, completed, joined_at, updated_at`

type EventsRepository struct {
	conn Querier
}

func NewEventsRepo(conn Querier) *EventsRepository {
	return &EventsRepository{
		conn: conn,
	}
}

func (er *EventsRepository) GetEvent(ctx context.Context, id uuid.UUID) (*entity.SpecialEvent, error) {
	var event entity.SpecialEvent
	row := er.conn.QueryRow(ctx, `SELECT id, title, description, starts_at, ends_at, is_active FROM special_events WHERE id = $1;`, id)
	err := row.Scan(&event.ID, &event.Title, &event.Description, &event.StartsAt, &event.EndsAt, &event.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEventNotFound
		}
		return nil, errors.New("getting event error: " + err.Error())
	}
	rows, err := er.conn.Query(ctx, `SELECT id, event_id, title, goal, points FROM event_challenges
		WHERE event_id = $1 ORDER BY sort_order;`, id)
	if err != nil {
		return nil, errors.New("listing event challenges error: " + err.Error())
	}
	defer rows.Close()
	event.Challenges = make([]entity.EventChallenge, 0)
	for rows.Next() {
		ch := entity.EventChallenge{}
		if err = rows.Scan(&ch.ID, &ch.EventID, &ch.Title, &ch.Goal, &ch.Points); err != nil {
			return nil, errors.New("event challenge row parsing error: " + err.Error())
		}
		event.Challenges = append(event.Challenges, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected event challenge rows error: " + err.Error())
	}
	return &event, nil
}

func (er *EventsRepository) GetParticipation(ctx context.Context, uid, eventID uuid.UUID) (*entity.UserEvent, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+userEventColumns+` FROM user_events WHERE user_id = $1 AND event_id = $2;`, uid, eventID)
	ue, err := scanUserEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotParticipating
		}
		return nil, errors.New("getting participation error: " + err.Error())
	}
	return ue, nil
}

func (er *EventsRepository) LockParticipation(ctx context.Context, uid, eventID uuid.UUID) (*entity.UserEvent, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+userEventColumns+` FROM user_events WHERE user_id = $1 AND event_id = $2 FOR UPDATE;`, uid, eventID)
	ue, err := scanUserEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotParticipating
		}
		return nil, errors.New("locking participation error: " + err.Error())
	}
	return ue, nil
}

// CreateParticipation returns the existing row unchanged when the user has already joined.
func (er *EventsRepository) CreateParticipation(ctx context.Context, participation *entity.UserEvent) error {
	if participation.ID == uuid.Nil {
		participation.ID = uuid.New()
	}
	row := er.conn.QueryRow(ctx, `INSERT INTO user_events (id, user_id, event_id) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING `+userEventColumns+`;`,
		participation.ID,
		participation.UserID,
		participation.EventID,
	)
	ue, err := scanUserEvent(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrEventNotFound
			}
		}
		return errors.New("creating participation error: " + err.Error())
	}
	*participation = *ue
	return nil
}

func (er *EventsRepository) SaveParticipation(ctx context.Context, participation *entity.UserEvent) error {
	progress := participation.Progress
	if progress == nil {
		progress = map[string]int{}
	}
	completed := participation.Completed
	if completed == nil {
		completed = []string{}
	}
	progressJSON, err := encodeJSON(progress)
	if err != nil {
		return err
	}
	ct, err := er.conn.Exec(ctx, `UPDATE user_events SET progress = $1, completed = $2, updated_at = NOW() WHERE id = $3;`,
		progressJSON,
		completed,
		participation.ID,
	)
	if err != nil {
		return errors.New("saving participation error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotParticipating
	}
	return nil
}

func (er *EventsRepository) ListParticipations(ctx context.Context, uid uuid.UUID) ([]*entity.UserEvent, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+userEventColumns+` FROM user_events WHERE user_id = $1 ORDER BY joined_at;`, uid)
	if err != nil {
		return nil, errors.New("listing participations error: " + err.Error())
	}
	defer rows.Close()
	events := make([]*entity.UserEvent, 0)
	for rows.Next() {
		ue, err := scanUserEvent(rows)
		if err != nil {
			return nil, errors.New("participation row parsing error: " + err.Error())
		}
		events = append(events, ue)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected participation rows error: " + err.Error())
	}
	return events, nil
}

func scanUserEvent(row pgx.Row) (*entity.UserEvent, error) {
	var (
		ue       entity.UserEvent
		progress []byte
	)
	err := row.Scan(&ue.ID, &ue.UserID, &ue.EventID, &progress, &ue.Completed, &ue.JoinedAt, &ue.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if ue.Progress, err = decodeCounterMap(progress); err != nil {
		return nil, err
	}
	if ue.Completed == nil {
		ue.Completed = []string{}
	}
	return &ue, nil
}
