package engine_test

import (
	"testing"
	"time"

	"github.com/limbo/nestling/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestUpdateStreaksLogin(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	ptr := func(t time.Time) *time.Time { return &t }
	testCases := []struct {
		Desc     string
		Current  map[string]int
		Last     *time.Time
		Expected int
	}{
		{Desc: "first login", Current: nil, Last: nil, Expected: 1},
		{Desc: "same day keeps count", Current: map[string]int{"login": 4}, Last: ptr(now.Add(-8 * time.Hour)), Expected: 4},
		{Desc: "same day leaves missing count alone", Current: map[string]int{}, Last: ptr(now.Add(-2 * time.Hour)), Expected: 0},
		{Desc: "next day extends", Current: map[string]int{"login": 4}, Last: ptr(now.Add(-20 * time.Hour)), Expected: 5},
		{Desc: "gap resets", Current: map[string]int{"login": 12}, Last: ptr(now.AddDate(0, 0, -3)), Expected: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res := engine.UpdateStreaks(tc.Current, "login", tc.Last, now, loc)
			assert.Equal(t, tc.Expected, res["login"])
		})
	}
}

func TestUpdateStreaksOtherTypesIncrement(t *testing.T) {
	now := time.Now()
	current := map[string]int{"memory": 2}
	res := engine.UpdateStreaks(current, "memory", &now, now, time.UTC)
	res = engine.UpdateStreaks(res, "memory", &now, now, time.UTC)
	assert.Equal(t, 4, res["memory"])
	assert.Equal(t, 2, current["memory"], "input map must not be mutated")
}

func TestDaysBetweenUsesLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 22:30 UTC on the 1st is already the 2nd in UTC+3.
	a := time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, engine.DaysBetween(a, b, loc))
	assert.Equal(t, 0, engine.DaysBetween(a, b, time.UTC))
}
