package engine

import (
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/entity"
)

// Credit adds points and re-derives the level.
func Credit(p *entity.Profile, amount int) {
	p.Points += amount
	if p.Points < 0 {
		p.Points = 0
	}
	p.Level = CalculateLevel(p.Points)
}

// Debit removes points, refusing to go below zero.
func Debit(p *entity.Profile, amount int) error {
	if p.Points < amount {
		return errorvalues.ErrInsufficientBalance
	}
	p.Points -= amount
	p.Level = CalculateLevel(p.Points)
	return nil
}

var aiRewardCosts = map[entity.AIRewardType]int{
	entity.AIRewardTip:           20,
	entity.AIRewardActivity:      30,
	entity.AIRewardMilestone:     40,
	entity.AIRewardEncouragement: 10,
}

func AIRewardCost(t entity.AIRewardType) (int, error) {
	cost, ok := aiRewardCosts[t]
	if !ok {
		return 0, errorvalues.ErrUnknownReward
	}
	return cost, nil
}
