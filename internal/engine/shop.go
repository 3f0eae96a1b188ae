package engine

import (
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

// IsUniqueType reports item types a user may own at most once.
func IsUniqueType(t entity.ItemType) bool {
	switch t {
	case entity.ItemTheme, entity.ItemFeature, entity.ItemBonus:
		return true
	}
	return false
}

// PurchaseState is what the caller read under lock before deciding.
type PurchaseState struct {
	Balance      int
	SoldCount    int
	AlreadyOwned bool
}

// CheckPurchase applies the shop preconditions in order: balance, stock, uniqueness.
func CheckPurchase(item *entity.ShopItem, st PurchaseState) error {
	if st.Balance < item.Price {
		return errorvalues.ErrInsufficientBalance
	}
	if item.IsLimited {
		stock := 0
		if item.Stock != nil {
			stock = *item.Stock
		}
		if st.SoldCount >= stock {
			return errorvalues.ErrStockExhausted
		}
	}
	if IsUniqueType(item.Type) && st.AlreadyOwned {
		return errorvalues.ErrDuplicatePurchase
	}
	return nil
}
