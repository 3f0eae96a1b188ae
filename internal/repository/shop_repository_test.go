package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

var shopItemCols = []string{"id", "name", "description", "item_type", "price", "stock", "is_limited", "is_active", "created_at"}

func TestListActiveItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewShopRepo(mock)
	stock := 100
	now := time.Now()
	items := []entity.ShopItem{
		{ID: uuid.New(), Name: "Pastel theme", Type: entity.ItemTheme, Price: 100, IsActive: true, CreatedAt: now},
		{ID: uuid.New(), Name: "Founders frame", Type: entity.ItemTheme, Price: 500, Stock: &stock, IsLimited: true, IsActive: true, CreatedAt: now},
	}
	query := regexp.QuoteMeta(`FROM shop_items WHERE is_active ORDER BY price, name;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(shopItemCols)
		for _, it := range items {
			rows.AddRow(it.ID, it.Name, it.Description, string(it.Type), it.Price, it.Stock, it.IsLimited, it.IsActive, it.CreatedAt)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.ListActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, len(items), len(result))
		for i := range result {
			assert.Equal(t, items[i], *result[i])
		}
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.ListActive(ctx)
		assert.Error(t, err)
	})
}

func TestLockItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewShopRepo(mock)
	id := uuid.New()
	query := regexp.QuoteMeta(`FROM shop_items WHERE id = $1 FOR UPDATE;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(shopItemCols).
				AddRow(id, "Extra AI tip", "", "consumable", 20, nil, false, true, time.Now()))
		item, err := repo.LockItem(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, entity.ItemConsumable, item.Type)
		assert.Nil(t, item.Stock)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.LockItem(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		_, err := repo.LockItem(ctx, id)
		assert.Error(t, err)
	})
}

func TestPurchaseCounters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewShopRepo(mock)
	uid, itemID := uuid.New(), uuid.New()
	ctx := context.Background()
	t.Run("count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM user_purchases WHERE item_id = $1;`)).
			WithArgs(itemID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
		count, err := repo.CountPurchases(ctx, itemID)
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
	})
	t.Run("has purchased", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM user_purchases WHERE user_id = $1 AND item_id = $2);`)).
			WithArgs(uid, itemID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		exists, err := repo.HasPurchased(ctx, uid, itemID)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
			WithArgs(itemID).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountPurchases(ctx, itemID)
		assert.Error(t, err)
	})
}

func TestCreatePurchase(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewShopRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO user_purchases (id, user_id, item_id, points_spent) VALUES ($1, $2, $3, $4) RETURNING created_at;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		p := entity.UserPurchase{ID: uuid.New(), UserID: uuid.New(), ItemID: uuid.New(), PointsSpent: 100}
		now := time.Now()
		mock.ExpectQuery(query).
			WithArgs(p.ID, p.UserID, p.ItemID, p.PointsSpent).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
		err := repo.CreatePurchase(ctx, &p)
		assert.NoError(t, err)
		assert.Equal(t, now, p.CreatedAt)
	})
	t.Run("generates id", func(t *testing.T) {
		p := entity.UserPurchase{UserID: uuid.New(), ItemID: uuid.New(), PointsSpent: 20}
		mock.ExpectQuery(query).
			WithArgs(pgxmock.AnyArg(), p.UserID, p.ItemID, p.PointsSpent).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		err := repo.CreatePurchase(ctx, &p)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
	})
	t.Run("FK violation", func(t *testing.T) {
		p := entity.UserPurchase{ID: uuid.New(), UserID: uuid.New(), ItemID: uuid.New(), PointsSpent: 20}
		mock.ExpectQuery(query).
			WithArgs(p.ID, p.UserID, p.ItemID, p.PointsSpent).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.CreatePurchase(ctx, &p)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
}

func TestListPurchases(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewShopRepo(mock)
	uid := uuid.New()
	query := regexp.QuoteMeta(`FROM user_purchases WHERE user_id = $1 ORDER BY created_at DESC;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		p := entity.UserPurchase{ID: uuid.New(), UserID: uid, ItemID: uuid.New(), PointsSpent: 150, CreatedAt: time.Now()}
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "item_id", "points_spent", "created_at"}).
				AddRow(p.ID, p.UserID, p.ItemID, p.PointsSpent, p.CreatedAt))
		result, err := repo.ListPurchases(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, []*entity.UserPurchase{&p}, result)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "item_id", "points_spent", "created_at"}))
		result, err := repo.ListPurchases(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}
