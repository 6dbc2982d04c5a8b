package model

import "time"

type AggregateMetrics struct {
	TotalSources          int       `json:"total_sources"`
	OnlineSources         int       `json:"online_sources"`
	DegradedSources       int       `json:"degraded_sources"`
	OfflineSources        int       `json:"offline_sources"`
	AverageUptime         float64   `json:"average_uptime"`
	AverageResponseTimeMs float64   `json:"average_response_time_ms"`
	AverageCredibility    float64   `json:"average_credibility"`
	LastUpdated           time.Time `json:"last_updated"`
}

// ComputeAggregateMetrics derives dashboard-level metrics from the current
// source set.
func ComputeAggregateMetrics(records []SourceHealthRecord, now time.Time) AggregateMetrics {
	m := AggregateMetrics{
		TotalSources: len(records),
		LastUpdated:  now,
	}
	if len(records) == 0 {
		return m
	}
	var uptimeSum, latencySum, credibilitySum float64
	for _, r := range records {
		switch r.Status {
		case SourceStatusOnline:
			m.OnlineSources++
		case SourceStatusDegraded:
			m.DegradedSources++
		case SourceStatusOffline:
			m.OfflineSources++
		}
		uptimeSum += r.Uptime
		latencySum += float64(r.ResponseTimeMs)
		credibilitySum += r.Credibility
	}
	n := float64(len(records))
	m.AverageUptime = uptimeSum / n
	m.AverageResponseTimeMs = latencySum / n
	m.AverageCredibility = credibilitySum / n
	return m
}
