package engine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/limbo/nestling/internal/engine"
	"github.com/limbo/nestling/pkg/entity"
)

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 10, 16, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, loc), engine.NextMidnight(now, loc))
}

func TestApplyMissionProgress(t *testing.T) {
	now := time.Now()
	m := entity.UserMission{
		MissionID: uuid.New(),
		Mission:   entity.MissionDefinition{Goal: 3, Points: 25},
	}
	m, credit := engine.ApplyMissionProgress(m, 1, now)
	assert.Equal(t, 1, m.Progress)
	assert.False(t, m.IsCompleted)
	assert.Zero(t, credit)

	m, credit = engine.ApplyMissionProgress(m, 5, now)
	assert.Equal(t, 3, m.Progress)
	assert.True(t, m.IsCompleted)
	assert.NotNil(t, m.CompletedAt)
	assert.Equal(t, 25, credit)

	m, credit = engine.ApplyMissionProgress(m, 9, now)
	assert.True(t, m.IsCompleted)
	assert.Zero(t, credit)
}
