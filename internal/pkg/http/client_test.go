package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "secret-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "user-1"})
	}))
	defer server.Close()

	client := NewClient("identity-service", server.URL, "secret-key")

	var result map[string]string
	err := client.GetJSON(context.Background(), "/internal/users/user-1", &result)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", result["id"])
}

func TestGetJSONNotFound(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("event-service", server.URL, "secret-key")

	err := client.GetJSON(context.Background(), "/internal/events/ghost", nil)
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestPostJSON(t *testing.T) {
	type payload struct {
		UserIDs []string `json:"user_ids"`
	}

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req payload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.UserIDs)

		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client := NewClient("identity-service", server.URL, "secret-key")

	var result map[string]bool
	err := client.PostJSON(context.Background(), "/internal/users/batch", &payload{UserIDs: []string{"a", "b"}}, &result)
	assert.NoError(t, err)
	assert.True(t, result["ok"])
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("identity-service", server.URL, "")

	err := client.GetJSON(context.Background(), "/internal/users/user-1", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
