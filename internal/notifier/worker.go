package notifier

import (
	"context"
	"log/slog"

	"github.com/vldmrch/storefront-orders/internal/entities"
)

type OrderSender interface {
	Send(ctx context.Context, order entities.Order) bool
}

// Worker decouples notification delivery from the request cycle: the
// handler's response never waits on Telegram. Dispatch enqueues onto a
// bounded channel and drops when it is full.
type Worker struct {
	logger *slog.Logger
	sender OrderSender
	queue  chan entities.Order
	quit   chan struct{}
	done   chan struct{}
}

func NewWorker(logger *slog.Logger, sender OrderSender, queueSize int) *Worker {
	return &Worker{
		logger: logger.With(slog.String("service", "notifier")),
		sender: sender,
		queue:  make(chan entities.Order, queueSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Dispatch never blocks the caller. A full queue drops the
// notification; the order itself is already durable at this point.
func (w *Worker) Dispatch(order entities.Order) {
	select {
	case w.queue <- order:
	default:
		notificationsDropped.Inc()
		w.logger.Warn("notification queue full, dropping", slog.String("order_id", order.ID))
	}
}

func (w *Worker) Start(ctx context.Context) error {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.quit:
			return nil
		case order := <-w.queue:
			if !w.sender.Send(ctx, order) {
				notificationsFailed.Inc()
				w.logger.Warn("order notification failed", slog.String("order_id", order.ID))
			}
		}
	}
}

func (w *Worker) Close() error {
	close(w.quit)
	<-w.done
	return nil
}
