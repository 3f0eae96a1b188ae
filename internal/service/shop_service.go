package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/pkg/entity"
)

type ShopService struct {
	store   repository.StoreI
	clock   *Clock
	metrics *metrics.Metrics
}

func NewShopService(store repository.StoreI, clock *Clock, m *metrics.Metrics) *ShopService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	if clock == nil {
		clock = NewClock(nil)
	}
	return &ShopService{
		store:   store,
		clock:   clock,
		metrics: m,
	}
}

func (ss *ShopService) ListItems(ctx context.Context) ([]*entity.ShopItem, error) {
	items, err := ss.store.Repos().Shop.ListActive(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return items, nil
}

func (ss *ShopService) PurchaseItem(ctx context.Context, uid, itemID uuid.UUID) (*entity.PurchaseResult, error) {
	var result entity.PurchaseResult
	// Profile first, then item: every transaction takes locks in this order.
	err := ss.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repos) error {
		profile, err := repos.Profiles.Lock(ctx, uid)
		if err != nil {
			return err
		}
		item, err := repos.Shop.LockItem(ctx, itemID)
		if err != nil {
			return err
		}
		if !item.IsActive {
			return errorvalues.ErrItemInactive
		}
		state := engine.PurchaseState{Balance: profile.Points}
		if item.IsLimited {
			if state.SoldCount, err = repos.Shop.CountPurchases(ctx, item.ID); err != nil {
				return err
			}
		}
		if engine.IsUniqueType(item.Type) {
			if state.AlreadyOwned, err = repos.Shop.HasPurchased(ctx, uid, item.ID); err != nil {
				return err
			}
		}
		if err = engine.CheckPurchase(item, state); err != nil {
			return err
		}
		if err = engine.Debit(profile, item.Price); err != nil {
			return err
		}
		if err = repos.Profiles.Save(ctx, profile); err != nil {
			return err
		}
		purchase := entity.UserPurchase{
			UserID:      uid,
			ItemID:      item.ID,
			PointsSpent: item.Price,
		}
		if err = repos.Shop.CreatePurchase(ctx, &purchase); err != nil {
			return err
		}
		if err = syncWeeklyRanking(ctx, repos, uid, profile.Points, ss.clock.now()); err != nil {
			return err
		}
		result = entity.PurchaseResult{
			Purchase:  &purchase,
			NewPoints: profile.Points,
			Item:      item,
		}
		return nil
	})
	if err != nil {
		ss.metrics.Purchase(purchaseOutcome(err))
		return nil, serviceError(err)
	}
	ss.metrics.Purchase("ok")
	ss.metrics.PointsDebited("shop", result.Purchase.PointsSpent)
	return &result, nil
}

func (ss *ShopService) ListPurchases(ctx context.Context, uid uuid.UUID) ([]*entity.UserPurchase, error) {
	purchases, err := ss.store.Repos().Shop.ListPurchases(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return purchases, nil
}

func purchaseOutcome(err error) string {
	switch {
	case errors.Is(err, errorvalues.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, errorvalues.ErrStockExhausted):
		return "out_of_stock"
	case errors.Is(err, errorvalues.ErrDuplicatePurchase):
		return "duplicate"
	case errors.Is(err, errorvalues.ErrNotFound):
		return "not_found"
	}
	return "error"
}
