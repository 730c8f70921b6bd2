package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vldmrch/storefront-orders/internal/entities"
	"github.com/vldmrch/storefront-orders/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderCreator struct {
	createFn func(ctx context.Context, order entities.Order) (entities.Order, error)
	calls    int
}

func (s *stubOrderCreator) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	s.calls++
	return s.createFn(ctx, order)
}

func newRouter(svc handler.OrderCreator) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	persisted := func(ctx context.Context, order entities.Order) (entities.Order, error) {
		order.ID = "a1b2c3"
		order.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		order.UpdatedAt = order.CreatedAt
		return order, nil
	}

	testCases := []struct {
		name       string
		body       string
		apiKey     string
		createFn   func(ctx context.Context, order entities.Order) (entities.Order, error)
		wantStatus int
		wantBody   []string
		wantCalls  int
	}{
		{
			name:       "created",
			body:       `{"name":"Jane","email":"jane@x.co","phone":"+1 555 1234"}`,
			apiKey:     "anything",
			createFn:   persisted,
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"success":true`, `"_id":"a1b2c3"`, `"name":"Jane"`, "Order submitted successfully!"},
			wantCalls:  1,
		},
		{
			name:       "created with selected account",
			body:       `{"name":"Jane","email":"jane@x.co","phone":"+1 555 1234","contactMethod":"discord","username":"jane#1","country":"United Kingdom","verificationStatus":"Verified","selectedCard":"UK","selectedAccount":{"id":"uk-10k","title":"10K Followers","followers":"10,000","price":149,"verified":true}}`,
			apiKey:     "anything",
			createFn:   persisted,
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"selectedCard":"UK"`, `"id":"uk-10k"`},
			wantCalls:  1,
		},
		{
			name:       "missing email",
			body:       `{"name":"Jane","phone":"+1 555 1234"}`,
			apiKey:     "anything",
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"success":false`, "Missing required fields"},
		},
		{
			name:       "unknown field rejected",
			body:       `{"name":"Jane","email":"jane@x.co","phone":"1","creditCard":"4111"}`,
			apiKey:     "anything",
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"success":false`, "Invalid request body"},
		},
		{
			name:   "store failure",
			body:   `{"name":"Jane","email":"jane@x.co","phone":"+1 555 1234"}`,
			apiKey: "anything",
			createFn: func(ctx context.Context, order entities.Order) (entities.Order, error) {
				return entities.Order{}, errors.New("db down")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"success":false`, "Failed to submit order. Please try again."},
			wantCalls:  1,
		},
		{
			name:       "missing api key",
			body:       `{"name":"Jane","email":"jane@x.co","phone":"+1 555 1234"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   []string{`"success":false`, "API key is required"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubOrderCreator{createFn: tc.createFn}
			r := newRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.apiKey != "" {
				req.Header.Set("x-api-key", tc.apiKey)
			}

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			for _, want := range tc.wantBody {
				assert.Contains(t, string(body), want)
			}
			assert.Equal(t, tc.wantCalls, svc.calls)
		})
	}
}

func TestHTTPHandler_Health(t *testing.T) {
	r := newRouter(&stubOrderCreator{})

	// no api key required here
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
