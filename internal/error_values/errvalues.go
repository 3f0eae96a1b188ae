package errorvalues

import (
	"errors"
	"fmt"
)

// Categories. Specific errors below wrap one of them, so callers may check either.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

var (
	ErrProfileNotFound  = fmt.Errorf("%w: profile doesn't exist", ErrNotFound)
	ErrItemNotFound     = fmt.Errorf("%w: shop item doesn't exist", ErrNotFound)
	ErrItemInactive     = fmt.Errorf("%w: shop item is not available", ErrNotFound)
	ErrMissionNotFound  = fmt.Errorf("%w: mission isn't assigned for today", ErrNotFound)
	ErrEventNotFound    = fmt.Errorf("%w: event doesn't exist", ErrNotFound)
	ErrUnknownAction    = fmt.Errorf("%w: unknown action", ErrValidation)
	ErrUnknownReward    = fmt.Errorf("%w: unknown reward type", ErrValidation)
	ErrUnknownChallenge = fmt.Errorf("%w: unknown challenge", ErrValidation)
	ErrInvalidProgress  = fmt.Errorf("%w: progress must be non-negative", ErrValidation)

	ErrInsufficientBalance = errors.New("not enough points")
	ErrStockExhausted      = fmt.Errorf("%w: item is out of stock", ErrConflict)
	ErrDuplicatePurchase   = fmt.Errorf("%w: item already purchased", ErrConflict)
	ErrRewardClaimed       = fmt.Errorf("%w: reward already claimed", ErrConflict)
	ErrChallengeIncomplete = fmt.Errorf("%w: challenge is not completed", ErrConflict)

	ErrNotParticipating = fmt.Errorf("%w: user hasn't joined the event", ErrForbidden)
	ErrEventClosed      = fmt.Errorf("%w: event is not running", ErrForbidden)

	ErrInvalidToken = errors.New("invalid token")
)
