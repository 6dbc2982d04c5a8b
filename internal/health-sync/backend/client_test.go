package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchSnapshot(t *testing.T) {
	snapshotBody := `{
		"sources": {
			"gov-open-data": {"source_id": "gov-open-data", "status": "online", "uptime": 99.2}
		},
		"metrics": {"total_sources": 1, "online_sources": 1},
		"refresh_interval_seconds": 30
	}`

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/health/sources", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, snapshotBody)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)
		snapshot, err := client.FetchSnapshot(context.Background())

		require.NoError(t, err)
		assert.Len(t, snapshot.Sources, 1)
		assert.Equal(t, "online", snapshot.Sources["gov-open-data"].Status)
		require.NotNil(t, snapshot.Metrics)
		assert.Equal(t, 1, snapshot.Metrics.TotalSources)
		assert.Equal(t, 30, snapshot.RefreshIntervalSeconds)
	})

	t.Run("Server errors are retried until success", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, snapshotBody)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)
		snapshot, err := client.FetchSnapshot(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
		assert.Len(t, snapshot.Sources, 1)
	})

	t.Run("Client errors are not retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)
		_, err := client.FetchSnapshot(context.Background())

		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Retries exhausted returns last error", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)
		_, err := client.FetchSnapshot(context.Background())

		assert.Error(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
}

func TestClient_FetchMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health/metrics", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"metrics": {"total_sources": 3, "average_uptime": 97.3}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)
	metrics, err := client.FetchMetrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalSources)
	assert.InDelta(t, 97.3, metrics.AverageUptime, 0.001)
}

func TestClient_TriggerSourceTest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/health/sources/market-feed/test", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"test_id": "test-1", "source_id": "market-feed", "status": "online", "latency_ms": 420, "success": true}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)
	result, err := client.TriggerSourceTest(context.Background(), "market-feed")

	require.NoError(t, err)
	assert.Equal(t, "test-1", result.TestID)
	assert.Equal(t, int64(420), result.LatencyMs)
	assert.True(t, result.Success)
}

func TestClient_PauseAndResumeSource(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 3, time.Millisecond)

	require.NoError(t, client.PauseSource(context.Background(), "news-wire"))
	require.NoError(t, client.ResumeSource(context.Background(), "news-wire"))
	assert.Equal(t, []string{
		"/api/health/sources/news-wire/pause",
		"/api/health/sources/news-wire/resume",
	}, paths)
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, IsTimeout(fmt.Errorf("plain failure")))
	assert.False(t, IsTimeout(nil))
}

func TestClient_RequestTimeout(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client := NewClient(server.URL, 20*time.Millisecond, 1, time.Millisecond)
	_, err := client.FetchSnapshot(context.Background())

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}
