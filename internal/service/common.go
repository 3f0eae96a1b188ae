package service

import (
	"errors"
	"time"

	errorvalues "github.com/limbo/nestling/internal/error_values"
)

// Clock supplies the current instant and the location calendar days are
// counted in.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{
		Location: loc,
		Now:      time.Now,
	}
}

func (c *Clock) now() time.Time {
	return c.Now().In(c.Location)
}

// serviceError lets domain errors through and hides the rest behind a generic wrapper.
func serviceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrNotFound),
		errors.Is(err, errorvalues.ErrConflict),
		errors.Is(err, errorvalues.ErrForbidden),
		errors.Is(err, errorvalues.ErrInsufficientBalance):
		return err
	}
	return errors.New("repository error: " + err.Error())
}
