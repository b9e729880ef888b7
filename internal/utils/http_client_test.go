package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	c := NewHTTPClient("http://localhost:8008", 5*time.Second)

	require.NotNil(t, c)
	require.NotNil(t, c.Client)
	assert.Equal(t, "http://localhost:8008", c.BaseURL)
	assert.Equal(t, 0, c.RetryCount)
	assert.Equal(t, "application/json", c.Header.Get("Accept"))
}

func TestNewHTTPClient_SingleAttemptOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	resp, err := c.R().Get("/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}
