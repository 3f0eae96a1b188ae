package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/nestling/internal/engine"
	"github.com/limbo/nestling/pkg/entity"
)

func TestEventOpen(t *testing.T) {
	start := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	ev := &entity.SpecialEvent{StartsAt: start, EndsAt: end, IsActive: true}

	assert.True(t, engine.EventOpen(ev, start))
	assert.True(t, engine.EventOpen(ev, end))
	assert.False(t, engine.EventOpen(ev, start.Add(-time.Second)))
	assert.False(t, engine.EventOpen(ev, end.Add(time.Second)))

	ev.IsActive = false
	assert.False(t, engine.EventOpen(ev, start.Add(time.Hour)))
}

func TestApplyEventProgress(t *testing.T) {
	now := time.Now()
	ch := entity.EventChallenge{ID: "snow-photos", Goal: 3, Points: 60}
	original := entity.UserEvent{Progress: map[string]int{"first-steps": 1}}

	ue, credit := engine.ApplyEventProgress(original, ch, 2, now)
	assert.Zero(t, credit)
	assert.Equal(t, map[string]int{"first-steps": 1, "snow-photos": 2}, ue.Progress)
	assert.Empty(t, ue.Completed)
	assert.NotContains(t, original.Progress, "snow-photos")

	ue, credit = engine.ApplyEventProgress(ue, ch, 3, now)
	assert.Equal(t, 60, credit)
	assert.Equal(t, []string{"snow-photos"}, ue.Completed)

	ue, credit = engine.ApplyEventProgress(ue, ch, 5, now)
	assert.Zero(t, credit)
	assert.Equal(t, 5, ue.Progress["snow-photos"])
	assert.Equal(t, []string{"snow-photos"}, ue.Completed)
}

func TestFindEventChallenge(t *testing.T) {
	ev := &entity.SpecialEvent{Challenges: []entity.EventChallenge{{ID: "snow-photos"}}}
	_, ok := engine.FindEventChallenge(ev, "snow-photos")
	assert.True(t, ok)
	_, ok = engine.FindEventChallenge(ev, "missing")
	assert.False(t, ok)
}
