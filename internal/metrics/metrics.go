// Package metrics holds the Prometheus collectors of the rewards service.
// A nil *Metrics is valid and records nothing, so components can run without it.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nestling"

type Metrics struct {
	actionsApplied    *prometheus.CounterVec
	badgesUnlocked    *prometheus.CounterVec
	pointsCredited    *prometheus.CounterVec
	pointsDebited     *prometheus.CounterVec
	purchases         *prometheus.CounterVec
	missionsCompleted prometheus.Counter
	notifications     *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actionsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_applied_total",
				Help:      "Number of point-granting actions applied",
			},
			[]string{"action"},
		),
		badgesUnlocked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "badges_unlocked_total",
				Help:      "Number of badges unlocked",
			},
			[]string{"badge"},
		),
		pointsCredited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "points_credited_total",
				Help:      "Points credited to profiles",
			},
			[]string{"source"},
		),
		pointsDebited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "points_debited_total",
				Help:      "Points spent by profiles",
			},
			[]string{"sink"},
		),
		purchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchases_total",
				Help:      "Shop purchase attempts by outcome",
			},
			[]string{"outcome"},
		),
		missionsCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "missions_completed_total",
				Help:      "Number of daily missions completed",
			},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Badge notifications by outcome",
			},
			[]string{"outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
	}
	reg.MustRegister(
		m.actionsApplied,
		m.badgesUnlocked,
		m.pointsCredited,
		m.pointsDebited,
		m.purchases,
		m.missionsCompleted,
		m.notifications,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) ActionApplied(action string) {
	if m == nil {
		return
	}
	m.actionsApplied.WithLabelValues(action).Inc()
}

func (m *Metrics) BadgesUnlocked(badges []string) {
	if m == nil {
		return
	}
	for _, b := range badges {
		m.badgesUnlocked.WithLabelValues(b).Inc()
	}
}

func (m *Metrics) PointsCredited(source string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.pointsCredited.WithLabelValues(source).Add(float64(amount))
}

func (m *Metrics) PointsDebited(sink string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.pointsDebited.WithLabelValues(sink).Add(float64(amount))
}

func (m *Metrics) Purchase(outcome string) {
	if m == nil {
		return
	}
	m.purchases.WithLabelValues(outcome).Inc()
}

func (m *Metrics) MissionCompleted() {
	if m == nil {
		return
	}
	m.missionsCompleted.Inc()
}

func (m *Metrics) Notification(outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one served request. path should be the route pattern,
// not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(path, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(path, method, http.StatusText(status)).Inc()
	m.httpDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}
