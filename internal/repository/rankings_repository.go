package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/limbo/nestling/pkg/entity"
)

type RankingsRepository struct {
	conn Querier
}

func NewRankingsRepo(conn Querier) *RankingsRepository {
	return &RankingsRepository{
		conn: conn,
	}
}

func (rr *RankingsRepository) LockWeek(ctx context.Context, year, week int) error {
	_, err := rr.conn.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2);`, int32(year), int32(week))
	if err != nil {
		return errors.New("locking ranking week error: " + err.Error())
	}
	return nil
}

func (rr *RankingsRepository) Upsert(ctx context.Context, entry *entity.RankingEntry) error {
	err := rr.conn.QueryRow(ctx, `INSERT INTO weekly_rankings (user_id, year, week, points) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, year, week) DO UPDATE SET points = EXCLUDED.points, updated_at = NOW()
		RETURNING rank, updated_at;`,
		entry.UserID,
		entry.Year,
		entry.Week,
		entry.Points,
	).Scan(&entry.Rank, &entry.UpdatedAt)
	if err != nil {
		return errors.New("upserting ranking entry error: " + err.Error())
	}
	return nil
}

func (rr *RankingsRepository) ListWeek(ctx context.Context, year, week int) ([]entity.RankingEntry, error) {
	rows, err := rr.conn.Query(ctx, `SELECT user_id, year, week, points, rank, updated_at FROM weekly_rankings
		WHERE year = $1 AND week = $2;`, year, week)
	if err != nil {
		return nil, errors.New("listing ranking week error: " + err.Error())
	}
	return collectRanking(rows)
}

func (rr *RankingsRepository) SetRanks(ctx context.Context, year, week int, entries []entity.RankingEntry) error {
	if len(entries) == 0 {
		return nil
	}
	uids := make([]uuid.UUID, 0, len(entries))
	ranks := make([]int32, 0, len(entries))
	for _, e := range entries {
		uids = append(uids, e.UserID)
		ranks = append(ranks, int32(e.Rank))
	}
	_, err := rr.conn.Exec(ctx, `UPDATE weekly_rankings r SET rank = v.rank
		FROM unnest($1::uuid[], $2::int[]) AS v(user_id, rank)
		WHERE r.user_id = v.user_id AND r.year = $3 AND r.week = $4;`, uids, ranks, year, week)
	if err != nil {
		return errors.New("setting ranks error: " + err.Error())
	}
	return nil
}

func (rr *RankingsRepository) Top(ctx context.Context, year, week, limit int) ([]entity.RankingEntry, error) {
	rows, err := rr.conn.Query(ctx, `SELECT user_id, year, week, points, rank, updated_at FROM weekly_rankings
		WHERE year = $1 AND week = $2 ORDER BY rank, user_id LIMIT $3;`, year, week, limit)
	if err != nil {
		return nil, errors.New("listing ranking top error: " + err.Error())
	}
	return collectRanking(rows)
}

func collectRanking(rows pgx.Rows) ([]entity.RankingEntry, error) {
	defer rows.Close()
	entries := make([]entity.RankingEntry, 0)
	for rows.Next() {
		e := entity.RankingEntry{}
		if err := rows.Scan(&e.UserID, &e.Year, &e.Week, &e.Points, &e.Rank, &e.UpdatedAt); err != nil {
			return nil, errors.New("ranking row parsing error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected ranking rows error: " + err.Error())
	}
	return entries, nil
}
