package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/nestling/pkg/entity"
)

type ProfilesRepositoryI interface {
	// Creates a zero profile if the user has none and locks the row until the
	// surrounding transaction ends
	Lock(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Reads profile without locking
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Persists every mutable profile field
	Save(ctx context.Context, profile *entity.Profile) error
}

type ShopRepositoryI interface {
	// Lists items available for purchase
	ListActive(ctx context.Context) ([]*entity.ShopItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error)
	// Reads item and locks its row, serializing purchases of the item across users
	LockItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error)
	// Counts purchases of the item by all users
	CountPurchases(ctx context.Context, itemID uuid.UUID) (int, error)
	HasPurchased(ctx context.Context, uid, itemID uuid.UUID) (bool, error)
	// Appends ledger entry. ID and CreatedAt are filled in
	CreatePurchase(ctx context.Context, purchase *entity.UserPurchase) error
	ListPurchases(ctx context.Context, uid uuid.UUID) ([]*entity.UserPurchase, error)
}

type MissionsRepositoryI interface {
	// Takes a transaction-scoped lock for user's mission batch of the day
	LockDay(ctx context.Context, uid uuid.UUID, day time.Time) error
	// Lists assignments expiring in (from, to]
	ListAssigned(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.UserMission, error)
	// Returns active mission definitions ordered by sort order
	ActiveDefinitions(ctx context.Context, limit int) ([]*entity.MissionDefinition, error)
	// Creates assignment. ID and CreatedAt are filled in
	Assign(ctx context.Context, mission *entity.UserMission) error
	// Reads unexpired assignment of the mission and locks it
	LockAssignment(ctx context.Context, uid, missionID uuid.UUID, now time.Time) (*entity.UserMission, error)
	SaveAssignment(ctx context.Context, mission *entity.UserMission) error
}

type EventsRepositoryI interface {
	// Reads event with its sub-challenges
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.SpecialEvent, error)
	GetParticipation(ctx context.Context, uid, eventID uuid.UUID) (*entity.UserEvent, error)
	LockParticipation(ctx context.Context, uid, eventID uuid.UUID) (*entity.UserEvent, error)
	// Creates participation with empty progress. ID and timestamps are filled in
	CreateParticipation(ctx context.Context, participation *entity.UserEvent) error
	SaveParticipation(ctx context.Context, participation *entity.UserEvent) error
	ListParticipations(ctx context.Context, uid uuid.UUID) ([]*entity.UserEvent, error)
}

type RankingsRepositoryI interface {
	// Takes a transaction-scoped lock on the week's leaderboard
	LockWeek(ctx context.Context, year, week int) error
	// Inserts or replaces user's point total for the week
	Upsert(ctx context.Context, entry *entity.RankingEntry) error
	ListWeek(ctx context.Context, year, week int) ([]entity.RankingEntry, error)
	SetRanks(ctx context.Context, year, week int, entries []entity.RankingEntry) error
	// Returns first entries of the week ordered by rank
	Top(ctx context.Context, year, week, limit int) ([]entity.RankingEntry, error)
}

type ActivityRepositoryI interface {
	Record(ctx context.Context, event *entity.ActivityEvent) error
	// Counts events of kind with created_at in [from, to]
	CountBetween(ctx context.Context, uid uuid.UUID, kind string, from, to time.Time) (int, error)
}

type ChallengeClaimsRepositoryI interface {
	// Records reward claim. Second claim of the same challenge fails with ErrRewardClaimed
	Create(ctx context.Context, claim *entity.ChallengeClaim) error
	// Lists ids of challenges claimed in the week starting at weekStart
	ListForWeek(ctx context.Context, uid uuid.UUID, weekStart time.Time) ([]string, error)
}

type AIRewardsRepositoryI interface {
	// Appends unlock entry. ID and CreatedAt are filled in
	Create(ctx context.Context, unlock *entity.AIRewardUnlock) error
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.AIRewardUnlock, error)
}

// Repos is a set of repositories sharing one connection or transaction.
type Repos struct {
	Profiles  ProfilesRepositoryI
	Shop      ShopRepositoryI
	Missions  MissionsRepositoryI
	Events    EventsRepositoryI
	Rankings  RankingsRepositoryI
	Activity  ActivityRepositoryI
	Claims    ChallengeClaimsRepositoryI
	AIRewards AIRewardsRepositoryI
}

type StoreI interface {
	// Repositories bound to the pool, for reads outside a transaction
	Repos() *Repos
	// Runs fn in one transaction. Commits if fn returns nil, rolls back otherwise
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repos) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is implemented by both the pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
