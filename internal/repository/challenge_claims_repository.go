package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

type ChallengeClaimsRepository struct {
	conn Querier
}

func NewChallengeClaimsRepo(conn Querier) *ChallengeClaimsRepository {
	return &ChallengeClaimsRepository{
		conn: conn,
	}
}

func (cr *ChallengeClaimsRepository) Create(ctx context.Context, claim *entity.ChallengeClaim) error {
	err := cr.conn.QueryRow(ctx, `INSERT INTO challenge_claims (user_id, challenge_id, week_start, points)
		VALUES ($1, $2, $3, $4) RETURNING claimed_at;`,
		claim.UserID,
		claim.ChallengeID,
		claim.WeekStart,
		claim.Points,
	).Scan(&claim.ClaimedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrRewardClaimed
			}
		}
		return errors.New("creating challenge claim error: " + err.Error())
	}
	return nil
}

func (cr *ChallengeClaimsRepository) ListForWeek(ctx context.Context, uid uuid.UUID, weekStart time.Time) ([]string, error) {
	rows, err := cr.conn.Query(ctx, `SELECT challenge_id FROM challenge_claims WHERE user_id = $1 AND week_start = $2;`, uid, weekStart)
	if err != nil {
		return nil, errors.New("listing challenge claims error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("challenge claim row parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected challenge claim rows error: " + err.Error())
	}
	return ids, nil
}
