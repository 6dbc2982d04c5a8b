package backend

import (
	"Source_Health_Sync/internal/health-sync/model"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// StreamClient opens the backend's server-sent-event channel delivering typed
// health events.
type StreamClient interface {
	Subscribe(ctx context.Context) (*Subscription, error)
}

// Subscription delivers validated stream events in arrival order. The events
// channel is closed when the stream drops; Err then holds the terminal error.
type Subscription struct {
	events chan model.StreamEvent
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

func (s *Subscription) Events() <-chan model.StreamEvent {
	return s.events
}

func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Subscription) Close() {
	s.cancel()
}

// NewSubscription wraps an event channel the producer owns. The producer
// closes the channel to signal a drop; cancel aborts the producer.
func NewSubscription(events chan model.StreamEvent, cancel context.CancelFunc) *Subscription {
	return &Subscription{
		events: events,
		cancel: cancel,
	}
}

type sseStreamClient struct {
	client    *http.Client
	streamURL string
	validate  *validator.Validate
	logger    *zap.Logger
}

func (c *sseStreamClient) Subscribe(ctx context.Context) (*Subscription, error) {
	streamCtx, cancel := context.WithCancel(ctx)
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, c.streamURL, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("StreamClient.Subscribe creating request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("StreamClient.Subscribe: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("StreamClient.Subscribe: stream endpoint returned status %d", resp.StatusCode)
	}

	events := make(chan model.StreamEvent, 16)
	sub := NewSubscription(events, cancel)
	go func() {
		defer resp.Body.Close()
		defer close(sub.events)
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		var data strings.Builder
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				if data.Len() > 0 {
					c.dispatch(streamCtx, sub, data.String())
					data.Reset()
				}
				continue
			}
			if rest, ok := strings.CutPrefix(line, "data:"); ok {
				data.WriteString(strings.TrimPrefix(rest, " "))
			}
			// "event:", "id:" and comment lines carry nothing the typed
			// payload does not already hold.
		}
		if err := scanner.Err(); err != nil && streamCtx.Err() == nil {
			sub.setErr(err)
		}
	}()
	return sub, nil
}

// dispatch decodes and validates one SSE data frame. Unknown or malformed
// events are logged and dropped, never forwarded.
func (c *sseStreamClient) dispatch(ctx context.Context, sub *Subscription, data string) {
	var event model.StreamEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		c.logger.Warn("dropping malformed stream event", zap.Error(err))
		return
	}
	if err := c.validate.Struct(event); err != nil {
		c.logger.Warn("dropping stream event with unknown or invalid shape",
			zap.String("type", event.Type), zap.Error(err))
		return
	}
	select {
	case sub.events <- event:
	case <-ctx.Done():
	}
}

func NewStreamClient(baseURL, streamPath string, logger *zap.Logger) StreamClient {
	return &sseStreamClient{
		// No client-level timeout: the stream request is expected to stay
		// open indefinitely. Lifetime is bound to the subscribe context.
		client:    &http.Client{},
		streamURL: baseURL + streamPath,
		validate:  validator.New(),
		logger:    logger,
	}
}
