package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/service"
	"github.com/limbo/nestling/pkg/entity"
)

func TestUnlockReward(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	repos, store := newRepoMocks(t)
	serv := service.NewAIRewardsService(store, nil, nil)
	ctx := context.Background()

	testCases := []struct {
		Desc         string
		Type         entity.AIRewardType
		Err          error
		NewPoints    int
		MockPrepFunc func()
	}{
		{
			Desc:      "tip unlocked",
			Type:      entity.AIRewardTip,
			NewPoints: 30,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid, Points: 50, Level: 1}, nil)
				repos.profiles.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				repos.aiRewards.EXPECT().Create(gomock.Any(), &entity.AIRewardUnlock{UserID: uid, RewardType: entity.AIRewardTip, PointsSpent: 20}).Return(nil)
				expectRankingSync(t, repos, uid, 30)
			},
		},
		{
			Desc: "insufficient balance",
			Type: entity.AIRewardMilestone,
			Err:  errorvalues.ErrInsufficientBalance,
			MockPrepFunc: func() {
				repos.profiles.EXPECT().Lock(gomock.Any(), uid).Return(&entity.Profile{UserID: uid, Points: 39, Level: 1}, nil)
			},
		},
		{
			Desc: "unknown reward",
			Type: "horoscope",
			Err:  errorvalues.ErrUnknownReward,
			MockPrepFunc: func() {
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := serv.UnlockReward(ctx, uid, tc.Type)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.NewPoints, res.NewPoints)
			assert.Equal(t, tc.Type, res.Unlock.RewardType)
		})
	}
}

func TestListUnlocks(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	repos, store := newRepoMocks(t)
	serv := service.NewAIRewardsService(store, nil, nil)
	unlocks := []*entity.AIRewardUnlock{{ID: uuid.New(), UserID: uid, RewardType: entity.AIRewardEncouragement, PointsSpent: 10}}

	repos.aiRewards.EXPECT().ListByUser(gomock.Any(), uid).Return(unlocks, nil)
	res, err := serv.ListUnlocks(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, unlocks, res)
}
