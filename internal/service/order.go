package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vldmrch/storefront-orders/internal/entities"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

// Dispatcher hands a persisted order to the notification channel.
// It must never block and its outcome must never reach the caller.
type Dispatcher interface {
	Dispatch(order entities.Order)
}

type orderService struct {
	logger     *slog.Logger
	repo       OrderRepo
	dispatcher Dispatcher
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, dispatcher Dispatcher) *orderService {
	return &orderService{
		logger:     logger.With(slog.String("service", "order")),
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// CreateOrder persists the order and enqueues the notification for the
// persisted copy. The notification is dispatched only after the write
// commits; if the write fails, nothing is dispatched.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	order.ID = uuid.NewString()

	saved, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.dispatcher.Dispatch(saved)

	s.logger.DebugContext(ctx, "order created", slog.String("order_id", saved.ID))
	return saved, nil
}
