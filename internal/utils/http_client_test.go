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

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	assert.Equal(t, 3*time.Second, NewHTTPClient(3*time.Second).GetClient().Timeout)
	assert.Zero(t, NewHTTPClient(0).GetClient().Timeout)
}

func TestNewHTTPClient_DoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(time.Second).R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}
