package engine_test

import (
	"testing"
	"time"

	"github.com/limbo/nestling/internal/engine"
	"github.com/limbo/nestling/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindow(t *testing.T) {
	loc := time.UTC
	// Wednesday
	now := time.Date(2026, 10, 14, 15, 4, 5, 0, loc)
	start, end := engine.WeekWindow(now, loc)
	assert.Equal(t, time.Date(2026, 10, 11, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2026, 10, 17, 23, 59, 59, 999000000, loc), end)
	assert.Equal(t, time.Saturday, end.Weekday())

	// Sunday midnight opens a new week
	start, _ = engine.WeekWindow(time.Date(2026, 10, 18, 0, 0, 0, 0, loc), loc)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, loc), start)
}

func TestWeeklyChallenges(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	chs := engine.WeeklyChallenges(now, time.UTC)
	require.Len(t, chs, 3)
	assert.Equal(t, "sleep-2026-10-11", chs[0].ID)
	assert.Equal(t, 7, chs[0].Goal)
	assert.Equal(t, entity.ChallengeMemory, chs[1].Category)
	assert.Equal(t, 3, chs[1].Goal)
	assert.Equal(t, entity.ChallengeConsistency, chs[2].Category)
}

func TestChallengeProgressCapped(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	chs := engine.WeeklyChallenges(now, time.UTC)

	consistency := engine.ChallengeProgress(chs[2], 0, 45)
	assert.Equal(t, 7, consistency.Progress)
	assert.True(t, consistency.IsCompleted)

	memory := engine.ChallengeProgress(chs[1], 2, 45)
	assert.Equal(t, 2, memory.Progress)
	assert.False(t, memory.IsCompleted)

	sleep := engine.ChallengeProgress(chs[0], 11, 0)
	assert.Equal(t, 7, sleep.Progress)
	assert.True(t, sleep.IsCompleted)
}

func TestFindWeeklyChallenge(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	ch, tmpl, err := engine.FindWeeklyChallenge("memory-2026-10-11", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, entity.ChallengeMemory, ch.Category)
	assert.Equal(t, engine.KindPhotoMemory, tmpl.EventKind)

	_, _, err = engine.FindWeeklyChallenge("memory-2026-10-04", now, time.UTC)
	assert.Error(t, err)
}
