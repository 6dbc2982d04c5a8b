package model

import "time"

// MockSourceHealth is the last-resort dataset served when neither the cache
// nor the backend yields any data, so reads always resolve.
func MockSourceHealth(now time.Time) []SourceHealthRecord {
	return []SourceHealthRecord{
		{
			SourceID:       "gov-open-data",
			Name:           "Government Open Data",
			Category:       "government",
			Status:         SourceStatusOnline,
			Uptime:         99.2,
			ResponseTimeMs: 320,
			ErrorRate:      0.4,
			Credibility:    0.95,
			LastUpdate:     now,
			DataFreshness:  now,
			Quota:          QuotaUsage{Remaining: 4800, Limit: 5000},
			HealthTrend:    HealthTrendStable,
		},
		{
			SourceID:       "market-feed",
			Name:           "Market Data Feed",
			Category:       "financial",
			Status:         SourceStatusDegraded,
			Uptime:         94.7,
			ResponseTimeMs: 1250,
			ErrorRate:      3.8,
			Credibility:    0.88,
			LastUpdate:     now,
			DataFreshness:  now.Add(-15 * time.Minute),
			Quota:          QuotaUsage{Remaining: 120, Limit: 1000},
			HealthTrend:    HealthTrendDegrading,
		},
		{
			SourceID:       "news-wire",
			Name:           "News Wire Aggregator",
			Category:       "media",
			Status:         SourceStatusOnline,
			Uptime:         98.1,
			ResponseTimeMs: 540,
			ErrorRate:      1.1,
			Credibility:    0.82,
			LastUpdate:     now,
			DataFreshness:  now.Add(-2 * time.Minute),
			Quota:          QuotaUsage{Remaining: 9500, Limit: 10000},
			HealthTrend:    HealthTrendImproving,
		},
	}
}
