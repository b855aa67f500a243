// Package notify delivers match notifications off the request path.
//
// Dispatcher is an in-process queue drained by a fixed pool of workers. Each
// worker hands notifications to a ports.NotificationSender. Delivery is best
// effort: failures are logged and never retried, and a full queue drops new
// notifications.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"luggage/internal/core/ports"
)

const (
	DefaultWorkers     = 4
	DefaultBufferSize  = 256
	DefaultSendTimeout = 10 * time.Second
)

type Dispatcher struct {
	sender  ports.NotificationSender
	queue   chan ports.Notification
	workers int
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

func NewDispatcher(sender ports.NotificationSender, workers, buffer int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Dispatcher{
		sender:  sender,
		queue:   make(chan ports.Notification, buffer),
		workers: workers,
		timeout: DefaultSendTimeout,
		logger:  logger.With("component", "notification_dispatcher"),
	}
}

// Enqueue never blocks. It returns false when the queue is full or the
// dispatcher has been stopped.
func (d *Dispatcher) Enqueue(n ports.Notification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false
	}

	select {
	case d.queue <- n:
		return true
	default:
		d.logger.Warn("notification queue is full", "to", n.To)
		return false
	}
}

// Start launches the workers. Calling it twice has no effect.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.closed {
		return
	}
	d.started = true

	for i := range d.workers {
		d.wg.Add(1)
		go d.work(ctx, i)
	}
	d.logger.InfoContext(ctx, "notification dispatcher started", "workers", d.workers)
}

// Stop closes the queue and waits for the workers to deliver what is left.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info("notification dispatcher stopped")
}

func (d *Dispatcher) work(ctx context.Context, id int) {
	defer d.wg.Done()

	for n := range d.queue {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		if !d.sender.Send(sendCtx, n.To, n.Message) {
			d.logger.WarnContext(ctx, "notification not delivered", "worker", id, "to", n.To)
		}
		cancel()
	}
}
