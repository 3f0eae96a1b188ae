package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/nestling/pkg/cleanup"
)

type Store struct {
	conn  PgConnection
	repos *Repos
}

func NewStore(cfg DBConfig) *Store {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection pool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &Store{
		conn:  pool,
		repos: newRepos(pool),
	}
}

func NewStoreWithConn(conn PgConnection) *Store {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for store: " + err.Error())
	}
	return &Store{
		conn:  conn,
		repos: newRepos(conn),
	}
}

func newRepos(q Querier) *Repos {
	return &Repos{
		Profiles:  NewProfilesRepo(q),
		Shop:      NewShopRepo(q),
		Missions:  NewMissionsRepo(q),
		Events:    NewEventsRepo(q),
		Rankings:  NewRankingsRepo(q),
		Activity:  NewActivityRepo(q),
		Claims:    NewChallengeClaimsRepo(q),
		AIRewards: NewAIRewardsRepo(q),
	}
}

func (s *Store) Repos() *Repos {
	return s.repos
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repos) error) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	// No-op once committed
	defer tx.Rollback(ctx)
	if err = fn(ctx, newRepos(tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}
