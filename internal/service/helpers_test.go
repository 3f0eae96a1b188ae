package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/internal/repository/mocks"
	"github.com/limbo/nestling/internal/service"
	"github.com/limbo/nestling/pkg/entity"
)

// txStore runs units of work directly against the mocked repositories.
type txStore struct {
	repos *repository.Repos
	txs   int
}

func (s *txStore) Repos() *repository.Repos {
	return s.repos
}

func (s *txStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repos) error) error {
	s.txs++
	return fn(ctx, s.repos)
}

type repoMocks struct {
	profiles  *mocks.MockProfilesRepositoryI
	shop      *mocks.MockShopRepositoryI
	missions  *mocks.MockMissionsRepositoryI
	events    *mocks.MockEventsRepositoryI
	rankings  *mocks.MockRankingsRepositoryI
	activity  *mocks.MockActivityRepositoryI
	claims    *mocks.MockChallengeClaimsRepositoryI
	aiRewards *mocks.MockAIRewardsRepositoryI
}

func newRepoMocks(t *testing.T) (*repoMocks, *txStore) {
	ctrl := gomock.NewController(t)
	m := &repoMocks{
		profiles:  mocks.NewMockProfilesRepositoryI(ctrl),
		shop:      mocks.NewMockShopRepositoryI(ctrl),
		missions:  mocks.NewMockMissionsRepositoryI(ctrl),
		events:    mocks.NewMockEventsRepositoryI(ctrl),
		rankings:  mocks.NewMockRankingsRepositoryI(ctrl),
		activity:  mocks.NewMockActivityRepositoryI(ctrl),
		claims:    mocks.NewMockChallengeClaimsRepositoryI(ctrl),
		aiRewards: mocks.NewMockAIRewardsRepositoryI(ctrl),
	}
	return m, &txStore{
		repos: &repository.Repos{
			Profiles:  m.profiles,
			Shop:      m.shop,
			Missions:  m.missions,
			Events:    m.events,
			Rankings:  m.rankings,
			Activity:  m.activity,
			Claims:    m.claims,
			AIRewards: m.aiRewards,
		},
	}
}

func fixedClock(now time.Time) *service.Clock {
	return &service.Clock{
		Location: time.UTC,
		Now:      func() time.Time { return now },
	}
}

// expectRankingSync expects the week's leaderboard to be rewritten with points
// as the user's total.
func expectRankingSync(t *testing.T, m *repoMocks, uid uuid.UUID, points int) {
	m.rankings.EXPECT().LockWeek(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.rankings.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entity.RankingEntry) error {
		assert.Equal(t, uid, e.UserID)
		assert.Equal(t, points, e.Points)
		return nil
	})
	m.rankings.EXPECT().ListWeek(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]entity.RankingEntry{{UserID: uid, Points: points}}, nil)
	m.rankings.EXPECT().SetRanks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}
