package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/limbo/nestling/internal/metrics"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ActionApplied("memory_created")
	m.ActionApplied("memory_created")
	m.BadgesUnlocked([]string{"first-memory", "week-warrior"})
	m.PointsCredited("action", 10)
	m.PointsCredited("action", 0)
	m.PointsDebited("shop", 150)
	m.Purchase("ok")
	m.MissionCompleted()
	m.Notification("dropped")
	m.ObserveRequest("/api/v1/profile", http.MethodGet, http.StatusOK, 20*time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"nestling_actions_applied_total",
		"nestling_badges_unlocked_total",
		"nestling_points_credited_total",
		"nestling_points_debited_total",
		"nestling_purchases_total",
		"nestling_missions_completed_total",
		"nestling_notifications_total",
		"http_requests_total",
		"http_request_duration_seconds",
	)
	assert.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ActionApplied("memory_created")
		m.BadgesUnlocked([]string{"first-memory"})
		m.PointsCredited("action", 5)
		m.PointsDebited("shop", 5)
		m.Purchase("ok")
		m.MissionCompleted()
		m.Notification("sent")
		m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
	})
}
