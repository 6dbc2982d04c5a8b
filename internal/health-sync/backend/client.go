package backend

import (
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// HealthSnapshot is the full payload returned by the backend snapshot
// endpoint.
type HealthSnapshot struct {
	Sources                map[string]model.SourceHealthRecord `json:"sources"`
	Metrics                *model.AggregateMetrics             `json:"metrics"`
	LastUpdated            time.Time                           `json:"last_updated"`
	RefreshIntervalSeconds int                                 `json:"refresh_interval_seconds"`
}

type Client interface {
	FetchSnapshot(ctx context.Context) (HealthSnapshot, error)
	FetchMetrics(ctx context.Context) (model.AggregateMetrics, error)
	TriggerSourceTest(ctx context.Context, sourceID string) (model.SourceTestResult, error)
	PauseSource(ctx context.Context, sourceID string) error
	ResumeSource(ctx context.Context, sourceID string) error
}

type httpClient struct {
	client         *http.Client
	baseURL        string
	maxRetries     int
	initialBackoff time.Duration
}

// IsTimeout reports whether err represents a request timeout, for failure
// classification in the performance counters.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *httpClient) doJSON(ctx context.Context, method, path string, out any) error {
	requestURL := c.baseURL + path
	backoff := c.initialBackoff
	var err error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, method, requestURL, nil)
		if err != nil {
			return fmt.Errorf("Client.doJSON creating request: %w", err)
		}
		var resp *http.Response
		resp, err = c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			time.Sleep(backoff)
			backoff *= 2
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			err = fmt.Errorf("backend returned status %d", resp.StatusCode)
			if resp.StatusCode >= 500 {
				time.Sleep(backoff)
				backoff *= 2
				continue
			}
			break
		}
		if out != nil {
			err = json.NewDecoder(resp.Body).Decode(out)
		}
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("Client.doJSON decoding response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("Client.doJSON %s %s: %w", method, path, err)
}

func (c *httpClient) FetchSnapshot(ctx context.Context) (HealthSnapshot, error) {
	var snapshot HealthSnapshot
	if err := c.doJSON(ctx, http.MethodGet, "/api/health/sources", &snapshot); err != nil {
		return HealthSnapshot{}, fmt.Errorf("Client.FetchSnapshot: %w", err)
	}
	return snapshot, nil
}

func (c *httpClient) FetchMetrics(ctx context.Context) (model.AggregateMetrics, error) {
	var payload struct {
		Metrics model.AggregateMetrics `json:"metrics"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/health/metrics", &payload); err != nil {
		return model.AggregateMetrics{}, fmt.Errorf("Client.FetchMetrics: %w", err)
	}
	return payload.Metrics, nil
}

func (c *httpClient) TriggerSourceTest(ctx context.Context, sourceID string) (model.SourceTestResult, error) {
	var result model.SourceTestResult
	path := fmt.Sprintf("/api/health/sources/%s/test", sourceID)
	if err := c.doJSON(ctx, http.MethodPost, path, &result); err != nil {
		return model.SourceTestResult{}, fmt.Errorf("Client.TriggerSourceTest: %w", err)
	}
	return result, nil
}

func (c *httpClient) PauseSource(ctx context.Context, sourceID string) error {
	path := fmt.Sprintf("/api/health/sources/%s/pause", sourceID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil); err != nil {
		return fmt.Errorf("Client.PauseSource: %w", err)
	}
	return nil
}

func (c *httpClient) ResumeSource(ctx context.Context, sourceID string) error {
	path := fmt.Sprintf("/api/health/sources/%s/resume", sourceID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil); err != nil {
		return fmt.Errorf("Client.ResumeSource: %w", err)
	}
	return nil
}

func NewClient(baseURL string, requestTimeout time.Duration, maxRetries int, initialBackoff time.Duration) Client {
	return &httpClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:        baseURL,
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}
}
