// Package notification delivers badge unlock pushes outside of the request path.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/pkg/entity"
)

const sendTimeout = 10 * time.Second

type Sender interface {
	SendBadges(ctx context.Context, uid uuid.UUID, badges []entity.BadgeID) error
}

type job struct {
	uid    uuid.UUID
	badges []entity.BadgeID
}

type DispatcherConfig struct {
	Workers   int
	QueueSize int
}

// Dispatcher runs a fixed pool of workers reading from a bounded queue.
type Dispatcher struct {
	sender  Sender
	logger  *slog.Logger
	metrics *metrics.Metrics
	queue   chan job
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
}

func NewDispatcher(sender Sender, cfg DispatcherConfig, logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		sender:  sender,
		logger:  logger,
		metrics: m,
		queue:   make(chan job, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Notify enqueues a push for newly unlocked badges. It never blocks: when the
// queue is full or the dispatcher is stopped the notification is dropped.
func (d *Dispatcher) Notify(uid uuid.UUID, badges []entity.BadgeID) {
	if len(badges) == 0 {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.drop(uid, "dispatcher stopped")
		return
	}
	select {
	case d.queue <- job{uid: uid, badges: badges}:
	default:
		d.drop(uid, "queue is full")
	}
}

func (d *Dispatcher) drop(uid uuid.UUID, reason string) {
	d.metrics.Notification("dropped")
	d.logger.Warn("badge notification dropped", slog.String("uid", uid.String()), slog.String("reason", reason))
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.queue {
		d.send(j)
	}
}

func (d *Dispatcher) send(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := d.sender.SendBadges(ctx, j.uid, j.badges); err != nil {
		d.metrics.Notification("failed")
		d.logger.Error("sending badge notification error", slog.String("uid", j.uid.String()), slog.String("error", err.Error()))
		return
	}
	d.metrics.Notification("sent")
}

// Stop refuses new notifications, drains the queue and waits for the workers.
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}
