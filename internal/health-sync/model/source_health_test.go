package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSourceHealthRecord_Normalize(t *testing.T) {
	testCases := []struct {
		name              string
		uptime            float64
		errorRate         float64
		expectedUptime    float64
		expectedErrorRate float64
	}{
		{
			name:              "Values in range are untouched",
			uptime:            99.5,
			errorRate:         0.4,
			expectedUptime:    99.5,
			expectedErrorRate: 0.4,
		},
		{
			name:              "Values above 100 are clamped down",
			uptime:            104.2,
			errorRate:         150,
			expectedUptime:    100,
			expectedErrorRate: 100,
		},
		{
			name:              "Negative values are clamped to zero",
			uptime:            -3,
			errorRate:         -0.1,
			expectedUptime:    0,
			expectedErrorRate: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := SourceHealthRecord{Uptime: tc.uptime, ErrorRate: tc.errorRate}
			record.Normalize()
			assert.Equal(t, tc.expectedUptime, record.Uptime)
			assert.Equal(t, tc.expectedErrorRate, record.ErrorRate)
		})
	}
}

func TestSourceHealthRecord_AppendHealthSample(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	t.Run("Samples older than the latest are dropped", func(t *testing.T) {
		record := SourceHealthRecord{}
		record.AppendHealthSample(HealthSample{Timestamp: base, Uptime: 99})
		record.AppendHealthSample(HealthSample{Timestamp: base.Add(-time.Minute), Uptime: 50})
		record.AppendHealthSample(HealthSample{Timestamp: base, Uptime: 50})

		assert.Len(t, record.HealthHistory, 1)
		assert.Equal(t, 99.0, record.HealthHistory[0].Uptime)
	})

	t.Run("History stays bounded keeping the newest samples", func(t *testing.T) {
		record := SourceHealthRecord{}
		for i := 0; i < MaxHealthHistorySamples+10; i++ {
			record.AppendHealthSample(HealthSample{
				Timestamp: base.Add(time.Duration(i) * time.Minute),
				Uptime:    float64(i),
			})
		}

		assert.Len(t, record.HealthHistory, MaxHealthHistorySamples)
		assert.Equal(t, float64(10), record.HealthHistory[0].Uptime)
		assert.Equal(t, float64(MaxHealthHistorySamples+9), record.HealthHistory[len(record.HealthHistory)-1].Uptime)
	})
}

func TestSourceHealthRecord_ComputeHealthTrend(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	buildHistory := func(uptimes ...float64) []HealthSample {
		samples := make([]HealthSample, 0, len(uptimes))
		for i, u := range uptimes {
			samples = append(samples, HealthSample{
				Timestamp: base.Add(time.Duration(i) * time.Minute),
				Uptime:    u,
			})
		}
		return samples
	}

	testCases := []struct {
		name          string
		history       []HealthSample
		expectedTrend string
	}{
		{
			name:          "Too few samples defaults to stable",
			history:       buildHistory(10, 90, 95),
			expectedTrend: HealthTrendStable,
		},
		{
			name:          "Newer half clearly above older half",
			history:       buildHistory(90, 91, 95, 96),
			expectedTrend: HealthTrendImproving,
		},
		{
			name:          "Newer half clearly below older half",
			history:       buildHistory(99, 99, 94, 93),
			expectedTrend: HealthTrendDegrading,
		},
		{
			name:          "Difference within one point is stable",
			history:       buildHistory(98, 98.5, 98.6, 99),
			expectedTrend: HealthTrendStable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := SourceHealthRecord{HealthHistory: tc.history}
			record.ComputeHealthTrend()
			assert.Equal(t, tc.expectedTrend, record.HealthTrend)
		})
	}
}
