package feeds_test

import (
	"context"
	"disaster-map/services/feeds"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	var out payload
	err := feeds.GetJSON(context.Background(), feeds.NewHTTPClient(time.Second), server.URL, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
}

func TestGetJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, expected: feeds.ErrNetwork},
		{name: "not found", status: http.StatusNotFound, body: `{}`, expected: feeds.ErrNetwork},
		{name: "malformed body", status: http.StatusOK, body: `{"name":`, expected: feeds.ErrParse},
		{name: "html body", status: http.StatusOK, body: `<html></html>`, expected: feeds.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var out payload
			err := feeds.GetJSON(context.Background(), feeds.NewHTTPClient(time.Second), server.URL, &out)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestGetJSONUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	var out payload
	err := feeds.GetJSON(context.Background(), feeds.NewHTTPClient(time.Second), url, &out)
	assert.ErrorIs(t, err, feeds.ErrNetwork)
	assert.Equal(t, "network", feeds.Kind(err))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "parse", feeds.Kind(feeds.Parsef("bad shape %d", 1)))
	assert.Equal(t, "unknown", feeds.Kind(context.Canceled))
}
