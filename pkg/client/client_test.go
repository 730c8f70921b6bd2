package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vldmrch/storefront-orders/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Submit(t *testing.T) {
	form := validForm()
	form.Name = "  <b>Jane Doe</b>  "

	sel := client.Selection{
		SelectedCard: "UK",
		Account: &client.SelectedAccount{
			ID:        "uk-10k",
			Title:     "10K Followers",
			Followers: "10,000",
			Price:     149,
			Verified:  true,
		},
	}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/orders", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Jane Doe", payload["name"])
			assert.Equal(t, "UK", payload["selectedCard"])

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "Order submitted successfully!",
				"data":    map[string]any{"_id": "a1b2c3", "name": "Jane Doe"},
			})
		}))
		defer srv.Close()

		c := client.New(srv.URL, "test-key")
		result, err := c.Submit(context.Background(), form, sel)
		require.NoError(t, err)
		assert.True(t, result.Success)
		require.NotNil(t, result.Order)
		assert.Equal(t, "a1b2c3", result.Order.ID)
	})

	t.Run("failure envelope is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Missing required fields",
			})
		}))
		defer srv.Close()

		c := client.New(srv.URL, "test-key")
		result, err := c.Submit(context.Background(), form, sel)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Missing required fields", result.Message)
	})

	t.Run("unparseable body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := client.New(srv.URL, "test-key")
		_, err := c.Submit(context.Background(), form, sel)
		assert.Error(t, err)
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := client.New(srv.URL, "test-key")
		_, err := c.Submit(context.Background(), form, sel)
		assert.Error(t, err)
	})

	t.Run("invalid form never reaches the network", func(t *testing.T) {
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))
		defer srv.Close()

		bad := validForm()
		bad.Country = ""

		c := client.New(srv.URL, "test-key")
		_, err := c.Submit(context.Background(), bad, sel)

		var ferr *client.FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "country", ferr.Field)
		assert.Equal(t, int32(0), requests.Load())
	})
}

func TestClient_Submit_InFlightGuard(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := client.New(srv.URL, "test-key")

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), validForm(), client.Selection{})
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the server")
	}

	_, err := c.Submit(context.Background(), validForm(), client.Selection{})
	assert.True(t, errors.Is(err, client.ErrSubmissionInFlight))

	close(release)
	require.NoError(t, <-done)
}
