package model

type PerformanceSnapshot struct {
	TotalRequests      int64   `json:"total_requests"`
	SuccessfulRequests int64   `json:"successful_requests"`
	FailedRequests     int64   `json:"failed_requests"`
	TimeoutCount       int64   `json:"timeout_count"`
	StreamEventCount   int64   `json:"stream_event_count"`
	StreamReconnects   int64   `json:"stream_reconnects"`
	AverageLatencyMs   float64 `json:"average_latency_ms"`
	P95LatencyMs       float64 `json:"p95_latency_ms"`
}
