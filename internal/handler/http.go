package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vldmrch/storefront-orders/internal/entities"
	"github.com/vldmrch/storefront-orders/internal/middleware"
	"github.com/vldmrch/storefront-orders/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderCreator
}

func NewHTTPHandler(logger *slog.Logger, svc OrderCreator) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.With(middleware.APIKey).Post("/orders", h.CreateOrder)
	})
}

// CreateOrder accepts a storefront submission, persists it and answers
// with the stored record. Unknown body fields are rejected rather than
// silently dropped. Only presence of name, email and phone is checked
// here; format validation is the client's job.
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		ordersRejected.Inc()
		utils.WriteJSON(w, Envelope{Success: false, Message: "Invalid request body"}, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		ordersRejected.Inc()
		utils.WriteJSON(w, Envelope{Success: false, Message: "Missing required fields"}, http.StatusBadRequest)
		return
	}

	order, err := h.svc.CreateOrder(ctx, RequestToEntity(req))
	if err != nil {
		ordersFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteJSON(w, Envelope{
			Success: false,
			Message: "Failed to submit order. Please try again.",
		}, http.StatusInternalServerError)
		return
	}

	ordersAccepted.Inc()
	utils.WriteJSON(w, Envelope{
		Success: true,
		Message: "Order submitted successfully!",
		Data:    OrderEntityToJSON(order),
	}, http.StatusCreated)
}

func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
