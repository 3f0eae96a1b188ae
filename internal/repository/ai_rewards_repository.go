package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/limbo/nestling/pkg/entity"
)

type AIRewardsRepository struct {
	conn Querier
}

func NewAIRewardsRepo(conn Querier) *AIRewardsRepository {
	return &AIRewardsRepository{
		conn: conn,
	}
}

func (ar *AIRewardsRepository) Create(ctx context.Context, unlock *entity.AIRewardUnlock) error {
	if unlock.ID == uuid.Nil {
		unlock.ID = uuid.New()
	}
	err := ar.conn.QueryRow(ctx, `INSERT INTO ai_reward_unlocks (id, user_id, reward_type, points_spent)
		VALUES ($1, $2, $3, $4) RETURNING created_at;`,
		unlock.ID,
		unlock.UserID,
		string(unlock.RewardType),
		unlock.PointsSpent,
	).Scan(&unlock.CreatedAt)
	if err != nil {
		return errors.New("creating ai reward unlock error: " + err.Error())
	}
	return nil
}

func (ar *AIRewardsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.AIRewardUnlock, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, reward_type, points_spent, created_at FROM ai_reward_unlocks
		WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing ai reward unlocks error: " + err.Error())
	}
	defer rows.Close()
	unlocks := make([]*entity.AIRewardUnlock, 0)
	for rows.Next() {
		u := entity.AIRewardUnlock{}
		var rewardType string
		if err = rows.Scan(&u.ID, &u.UserID, &rewardType, &u.PointsSpent, &u.CreatedAt); err != nil {
			return nil, errors.New("ai reward unlock row parsing error: " + err.Error())
		}
		u.RewardType = entity.AIRewardType(rewardType)
		unlocks = append(unlocks, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected ai reward unlock rows error: " + err.Error())
	}
	return unlocks, nil
}
