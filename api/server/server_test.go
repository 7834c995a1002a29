package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func TestServer_StartStop(t *testing.T) {
	hook := logTest.NewGlobal()

	router := mux.NewRouter()
	s, err := New(context.Background(),
		WithHTTPAddr("127.0.0.1:0"),
		WithRouter(router),
		WithRateLimit(10, 10),
	)
	require.NoError(t, err)

	s.Start()
	require.NoError(t, s.Stop())
	require.NoError(t, s.Status())
	assert.LogsContain(t, hook, "Starting HTTP server")
}

func TestServer_StatusReportsListenFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, taken.Close())
	}()

	s, err := New(context.Background(),
		WithHTTPAddr(taken.Addr().String()),
		WithRouter(mux.NewRouter()),
		WithRateLimit(10, 10),
	)
	require.NoError(t, err)
	s.Start()
	defer func() {
		require.NoError(t, s.Stop())
	}()

	deadline := time.Now().Add(5 * time.Second)
	for s.Status() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.ErrorContains(t, "address already in use", s.Status())
}

func TestServer_RequiresRouter(t *testing.T) {
	_, err := New(context.Background(), WithHTTPAddr("127.0.0.1:0"), WithRateLimit(1, 1))
	assert.ErrorContains(t, "router option not configured", err)
}

func TestServer_RejectsBadRateLimit(t *testing.T) {
	_, err := New(context.Background(), WithRouter(mux.NewRouter()), WithRateLimit(0, 1))
	assert.ErrorContains(t, "invalid rate limit", err)
}

func TestServer_HandlerWrapsRouter(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s, err := New(context.Background(), WithRouter(router), WithRateLimit(100, 100))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
