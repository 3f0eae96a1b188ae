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

const shopItemColumns = `id, name, description, item_type, price, stock, is_limited, is_active, created_at`

type ShopRepository struct {
	conn Querier
}

func NewShopRepo(conn Querier) *ShopRepository {
	return &ShopRepository{
		conn: conn,
	}
}

func (sr *ShopRepository) ListActive(ctx context.Context) ([]*entity.ShopItem, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+shopItemColumns+` FROM shop_items WHERE is_active ORDER BY price, name;`)
	if err != nil {
		return nil, errors.New("listing shop items error: " + err.Error())
	}
	defer rows.Close()
	items := make([]*entity.ShopItem, 0)
	for rows.Next() {
		item, err := scanShopItem(rows)
		if err != nil {
			return nil, errors.New("shop item row parsing error: " + err.Error())
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected shop item rows error: " + err.Error())
	}
	return items, nil
}

func (sr *ShopRepository) GetItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error) {
	item, err := scanShopItem(sr.conn.QueryRow(ctx, `SELECT `+shopItemColumns+` FROM shop_items WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting shop item error: " + err.Error())
	}
	return item, nil
}

func (sr *ShopRepository) LockItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error) {
	item, err := scanShopItem(sr.conn.QueryRow(ctx, `SELECT `+shopItemColumns+` FROM shop_items WHERE id = $1 FOR UPDATE;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("locking shop item error: " + err.Error())
	}
	return item, nil
}

func (sr *ShopRepository) CountPurchases(ctx context.Context, itemID uuid.UUID) (int, error) {
	var count int
	err := sr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM user_purchases WHERE item_id = $1;`, itemID).Scan(&count)
	if err != nil {
		return 0, errors.New("counting purchases error: " + err.Error())
	}
	return count, nil
}

func (sr *ShopRepository) HasPurchased(ctx context.Context, uid, itemID uuid.UUID) (bool, error) {
	var exists bool
	err := sr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM user_purchases WHERE user_id = $1 AND item_id = $2);`,
		uid,
		itemID,
	).Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if purchase exists error: " + err.Error())
	}
	return exists, nil
}

func (sr *ShopRepository) CreatePurchase(ctx context.Context, purchase *entity.UserPurchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	err := sr.conn.QueryRow(
		ctx,
		`INSERT INTO user_purchases (id, user_id, item_id, points_spent) VALUES ($1, $2, $3, $4) RETURNING created_at;`,
		purchase.ID,
		purchase.UserID,
		purchase.ItemID,
		purchase.PointsSpent,
	).Scan(&purchase.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrItemNotFound
			}
		}
		return errors.New("creating purchase error: " + err.Error())
	}
	return nil
}

func (sr *ShopRepository) ListPurchases(ctx context.Context, uid uuid.UUID) ([]*entity.UserPurchase, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, user_id, item_id, points_spent, created_at FROM user_purchases WHERE user_id = $1 ORDER BY created_at DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing purchases error: " + err.Error())
	}
	defer rows.Close()
	purchases := make([]*entity.UserPurchase, 0)
	for rows.Next() {
		p := entity.UserPurchase{}
		if err = rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.PointsSpent, &p.CreatedAt); err != nil {
			return nil, errors.New("purchase row parsing error: " + err.Error())
		}
		purchases = append(purchases, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected purchase rows error: " + err.Error())
	}
	return purchases, nil
}

func scanShopItem(row pgx.Row) (*entity.ShopItem, error) {
	var item entity.ShopItem
	var itemType string
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&itemType,
		&item.Price,
		&item.Stock,
		&item.IsLimited,
		&item.IsActive,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Type = entity.ItemType(itemType)
	return &item, nil
}
