// Package client is the Go rendition of the storefront's order form
// pipeline: sanitize, validate, then a single POST to the order API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// ErrSubmissionInFlight is returned when Submit is called while a
// previous submission has not finished. This mirrors the storefront's
// disabled submit button: an advisory guard, not an idempotency key.
var ErrSubmissionInFlight = errors.New("submission already in flight")

const defaultTimeout = 30 * time.Second

// SelectedAccount is the product tier attached to a submission.
type SelectedAccount struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Followers string  `json:"followers"`
	Price     float64 `json:"price"`
	Verified  bool    `json:"verified"`
}

// Selection is the auxiliary product metadata picked outside the form.
type Selection struct {
	SelectedCard string
	Account      *SelectedAccount
}

type orderPayload struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	ContactMethod      string           `json:"contactMethod"`
	Message            string           `json:"message"`
	Country            string           `json:"country"`
	Username           string           `json:"username"`
	VerificationStatus string           `json:"verificationStatus"`
	SelectedCard       string           `json:"selectedCard"`
	SelectedAccount    *SelectedAccount `json:"selectedAccount"`
}

// Order is the persisted record echoed back by the API.
type Order struct {
	ID                 string           `json:"_id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	ContactMethod      string           `json:"contactMethod"`
	Message            string           `json:"message"`
	Country            string           `json:"country"`
	Username           string           `json:"username"`
	VerificationStatus string           `json:"verificationStatus"`
	SelectedCard       string           `json:"selectedCard"`
	SelectedAccount    *SelectedAccount `json:"selectedAccount"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// Result is the API's response envelope. Success false means the order
// was not persisted; the caller shows the generic error confirmation.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   *Order `json:"data"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	busy       atomic.Bool
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Submit validates and sanitizes the form, then issues exactly one POST
// with the api-key header. No network call is made when validation
// fails, and nothing is retried on failure. Transport errors and
// unparseable bodies surface as errors, which callers treat the same as
// a success:false result.
func (c *Client) Submit(ctx context.Context, form OrderForm, sel Selection) (Result, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return Result{}, ErrSubmissionInFlight
	}
	defer c.busy.Store(false)

	if ferr := form.Validate(); ferr != nil {
		return Result{}, ferr
	}
	safe := form.Sanitized()

	body, err := json.Marshal(orderPayload{
		Name:               safe.Name,
		Email:              safe.Email,
		Phone:              safe.Phone,
		ContactMethod:      safe.ContactMethod,
		Message:            safe.Message,
		Country:            safe.Country,
		Username:           safe.Username,
		VerificationStatus: safe.VerificationStatus,
		SelectedCard:       sel.SelectedCard,
		SelectedAccount:    sel.Account,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to submit order: %w", err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
