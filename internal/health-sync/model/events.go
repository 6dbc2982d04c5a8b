package model

import (
	"encoding/json"
	"time"
)

const (
	StreamEventSnapshot  = "snapshot"
	StreamEventUpdate    = "update"
	StreamEventMetrics   = "metrics"
	StreamEventHeartbeat = "heartbeat"
	StreamEventError     = "error"
)

type StreamEvent struct {
	Type      string          `json:"type" validate:"required,oneof=snapshot update metrics heartbeat error"`
	Timestamp time.Time       `json:"timestamp"`
	Message   string          `json:"message"`
	Payload   json.RawMessage `json:"payload"`
}

// SnapshotPayload fully replaces the monitored source set.
type SnapshotPayload struct {
	Sources                map[string]SourceHealthRecord `json:"sources" validate:"required"`
	Metrics                *AggregateMetrics             `json:"metrics"`
	RefreshIntervalSeconds int                           `json:"refresh_interval_seconds"`
}

// UpdatePayload carries a partial update, merged by source id.
type UpdatePayload struct {
	Sources map[string]SourceHealthRecord `json:"sources" validate:"required,min=1"`
}

type MetricsPayload struct {
	Metrics AggregateMetrics `json:"metrics" validate:"required"`
}
