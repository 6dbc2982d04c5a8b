package model

import "time"

const (
	SourceStatusOnline      = "online"
	SourceStatusDegraded    = "degraded"
	SourceStatusOffline     = "offline"
	SourceStatusMaintenance = "maintenance"
	SourceStatusSunset      = "sunset"
)

// MaxHealthHistorySamples bounds the trailing history kept per source for the
// trend sparkline.
const MaxHealthHistorySamples = 48

const (
	HealthTrendImproving = "improving"
	HealthTrendStable    = "stable"
	HealthTrendDegrading = "degrading"
)

type HealthSample struct {
	Timestamp      time.Time `json:"timestamp"`
	Uptime         float64   `json:"uptime"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	ErrorRate      float64   `json:"error_rate"`
}

type QuotaUsage struct {
	Remaining int64 `json:"remaining"`
	Limit     int64 `json:"limit"`
}

type SourceHealthRecord struct {
	SourceID       string         `json:"source_id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Status         string         `json:"status"`
	Uptime         float64        `json:"uptime"`           // percentage, 0-100
	ResponseTimeMs int64          `json:"response_time_ms"`
	ErrorRate      float64        `json:"error_rate"` // percentage, 0-100
	Credibility    float64        `json:"credibility"`
	LastUpdate     time.Time      `json:"last_update"`
	DataFreshness  time.Time      `json:"data_freshness"`
	Quota          QuotaUsage     `json:"quota"`
	HealthHistory  []HealthSample `json:"health_history"`
	HealthTrend    string         `json:"health_trend"`
}

// Normalize clamps percentage fields into their valid [0,100] range.
func (r *SourceHealthRecord) Normalize() {
	r.Uptime = clampPercentage(r.Uptime)
	r.ErrorRate = clampPercentage(r.ErrorRate)
}

// AppendHealthSample appends a sample keeping the series bounded and
// monotonic in time. Samples older than the latest kept sample are dropped.
func (r *SourceHealthRecord) AppendHealthSample(sample HealthSample) {
	if n := len(r.HealthHistory); n > 0 && !sample.Timestamp.After(r.HealthHistory[n-1].Timestamp) {
		return
	}
	r.HealthHistory = append(r.HealthHistory, sample)
	if len(r.HealthHistory) > MaxHealthHistorySamples {
		r.HealthHistory = r.HealthHistory[len(r.HealthHistory)-MaxHealthHistorySamples:]
	}
}

// ComputeHealthTrend derives the trend by comparing the average uptime of the
// older and newer halves of the trailing history.
func (r *SourceHealthRecord) ComputeHealthTrend() {
	if len(r.HealthHistory) < 4 {
		r.HealthTrend = HealthTrendStable
		return
	}
	mid := len(r.HealthHistory) / 2
	older := averageUptime(r.HealthHistory[:mid])
	newer := averageUptime(r.HealthHistory[mid:])
	switch {
	case newer-older > 1.0:
		r.HealthTrend = HealthTrendImproving
	case older-newer > 1.0:
		r.HealthTrend = HealthTrendDegrading
	default:
		r.HealthTrend = HealthTrendStable
	}
}

func averageUptime(samples []HealthSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.Uptime
	}
	return sum / float64(len(samples))
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
