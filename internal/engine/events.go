package engine

import (
	"slices"
	"time"

	"github.com/limbo/nestling/pkg/entity"
)

// EventOpen reports whether the event accepts joins and progress at now.
// Both window bounds are inclusive.
func EventOpen(ev *entity.SpecialEvent, now time.Time) bool {
	return ev.IsActive && !now.Before(ev.StartsAt) && !now.After(ev.EndsAt)
}

func FindEventChallenge(ev *entity.SpecialEvent, id string) (entity.EventChallenge, bool) {
	for _, ch := range ev.Challenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return entity.EventChallenge{}, false
}

// ApplyEventProgress stores progress for one sub-challenge. When it first reaches
// the goal the sub-challenge is marked completed and its points are returned for
// crediting; later updates return zero.
func ApplyEventProgress(ue entity.UserEvent, ch entity.EventChallenge, progress int, now time.Time) (entity.UserEvent, int) {
	next := make(map[string]int, len(ue.Progress)+1)
	for k, v := range ue.Progress {
		next[k] = v
	}
	next[ch.ID] = progress
	ue.Progress = next
	ue.UpdatedAt = now
	if progress < ch.Goal || slices.Contains(ue.Completed, ch.ID) {
		return ue, 0
	}
	ue.Completed = append(slices.Clone(ue.Completed), ch.ID)
	return ue, ch.Points
}
