package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sseHandler(t *testing.T, frames []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()
		for _, frame := range frames {
			fmt.Fprint(w, frame)
			flusher.Flush()
		}
	}
}

func collectEvents(t *testing.T, sub *Subscription, expected int) []string {
	t.Helper()
	var types []string
	timeout := time.After(2 * time.Second)
	for len(types) < expected {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return types
			}
			types = append(types, event.Type)
		case <-timeout:
			t.Fatalf("timed out waiting for %d events, got %d", expected, len(types))
		}
	}
	return types
}

func TestStreamClient_Subscribe(t *testing.T) {
	frames := []string{
		"data: {\"type\": \"heartbeat\", \"timestamp\": \"2026-08-27T10:00:00Z\"}\n\n",
		": keepalive comment\n\n",
		"data: {\"type\": \"update\", \"payload\": {\"sources\": {\"gov-open-data\": {\"status\": \"online\"}}}}\n\n",
	}
	server := httptest.NewServer(sseHandler(t, frames))
	defer server.Close()

	client := NewStreamClient(server.URL, "/stream", zap.NewNop())
	sub, err := client.Subscribe(context.Background())
	require.NoError(t, err)
	defer sub.Close()

	types := collectEvents(t, sub, 2)
	assert.Equal(t, []string{"heartbeat", "update"}, types)
}

func TestStreamClient_MultiLineDataFrame(t *testing.T) {
	frames := []string{
		"data: {\"type\": \"metrics\",\n" +
			"data: \"payload\": {\"metrics\": {\"total_sources\": 2}}}\n\n",
	}
	server := httptest.NewServer(sseHandler(t, frames))
	defer server.Close()

	client := NewStreamClient(server.URL, "/stream", zap.NewNop())
	sub, err := client.Subscribe(context.Background())
	require.NoError(t, err)
	defer sub.Close()

	types := collectEvents(t, sub, 1)
	assert.Equal(t, []string{"metrics"}, types)
}

func TestStreamClient_DropsInvalidEvents(t *testing.T) {
	frames := []string{
		"data: {not valid json\n\n",
		"data: {\"type\": \"surprise\"}\n\n",
		"data: {\"type\": \"heartbeat\"}\n\n",
	}
	server := httptest.NewServer(sseHandler(t, frames))
	defer server.Close()

	client := NewStreamClient(server.URL, "/stream", zap.NewNop())
	sub, err := client.Subscribe(context.Background())
	require.NoError(t, err)
	defer sub.Close()

	// only the well-formed heartbeat makes it through
	types := collectEvents(t, sub, 1)
	assert.Equal(t, []string{"heartbeat"}, types)
}

func TestStreamClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStreamClient(server.URL, "/stream", zap.NewNop())
	sub, err := client.Subscribe(context.Background())

	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestStreamClient_ChannelClosesWhenStreamEnds(t *testing.T) {
	server := httptest.NewServer(sseHandler(t, []string{"data: {\"type\": \"heartbeat\"}\n\n"}))
	defer server.Close()

	client := NewStreamClient(server.URL, "/stream", zap.NewNop())
	sub, err := client.Subscribe(context.Background())
	require.NoError(t, err)

	types := collectEvents(t, sub, 1)
	assert.Equal(t, []string{"heartbeat"}, types)

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("stream channel did not close after the server finished")
	}
}
