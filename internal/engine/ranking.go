package engine

import (
	"bytes"
	"slices"
	"time"

	"github.com/limbo/nestling/pkg/entity"
)

func ISOWeekOf(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// RankEntries orders entries by points descending, breaking ties by the lower
// user id (byte order, the same order Postgres uses for uuid), and numbers them from 1.
func RankEntries(entries []entity.RankingEntry) []entity.RankingEntry {
	ranked := slices.Clone(entries)
	slices.SortFunc(ranked, func(a, b entity.RankingEntry) int {
		if a.Points != b.Points {
			if a.Points > b.Points {
				return -1
			}
			return 1
		}
		return bytes.Compare(a.UserID[:], b.UserID[:])
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
