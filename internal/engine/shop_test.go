package engine_test

import (
	"testing"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCheckPurchase(t *testing.T) {
	one := 1
	testCases := []struct {
		Desc  string
		Item  entity.ShopItem
		State engine.PurchaseState
		Error error
	}{
		{
			Desc:  "ok consumable",
			Item:  entity.ShopItem{Type: entity.ItemConsumable, Price: 50},
			State: engine.PurchaseState{Balance: 50, AlreadyOwned: true},
		},
		{
			Desc:  "insufficient balance checked first",
			Item:  entity.ShopItem{Type: entity.ItemTheme, Price: 50, IsLimited: true, Stock: &one},
			State: engine.PurchaseState{Balance: 10, SoldCount: 1, AlreadyOwned: true},
			Error: errorvalues.ErrInsufficientBalance,
		},
		{
			Desc:  "stock exhausted",
			Item:  entity.ShopItem{Type: entity.ItemConsumable, Price: 50, IsLimited: true, Stock: &one},
			State: engine.PurchaseState{Balance: 1000, SoldCount: 1},
			Error: errorvalues.ErrStockExhausted,
		},
		{
			Desc:  "limited without stock value sells nothing",
			Item:  entity.ShopItem{Type: entity.ItemConsumable, Price: 5, IsLimited: true},
			State: engine.PurchaseState{Balance: 1000},
			Error: errorvalues.ErrStockExhausted,
		},
		{
			Desc:  "unique type owned twice",
			Item:  entity.ShopItem{Type: entity.ItemTheme, Price: 50},
			State: engine.PurchaseState{Balance: 1000, AlreadyOwned: true},
			Error: errorvalues.ErrDuplicatePurchase,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			err := engine.CheckPurchase(&tc.Item, tc.State)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDebitCredit(t *testing.T) {
	p := &entity.Profile{Points: 160, Level: 2}
	assert.ErrorIs(t, engine.Debit(p, 200), errorvalues.ErrInsufficientBalance)
	assert.Equal(t, 160, p.Points)

	assert.NoError(t, engine.Debit(p, 20))
	assert.Equal(t, 140, p.Points)
	assert.Equal(t, 1, p.Level)

	engine.Credit(p, 10)
	assert.Equal(t, 150, p.Points)
	assert.Equal(t, 2, p.Level)
}

func TestAIRewardCost(t *testing.T) {
	cost, err := engine.AIRewardCost(entity.AIRewardMilestone)
	assert.NoError(t, err)
	assert.Equal(t, 40, cost)
	_, err = engine.AIRewardCost("poem")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}
