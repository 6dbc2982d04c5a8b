package adapter

import (
	"Source_Health_Sync/internal/health-sync/cache"
	"Source_Health_Sync/internal/health-sync/controller"
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"fmt"
	"time"
)

// SourceView is a presentation-ready projection of one source.
type SourceView struct {
	model.SourceHealthRecord
	TrendIcon      string                `json:"trend_icon"`
	StatusBadge    string                `json:"status_badge"`
	StalenessLabel string                `json:"staleness_label"`
	Paused         bool                  `json:"paused"`
	Connection     model.ConnectionState `json:"connection"`
}

type Overview struct {
	Metrics              model.AggregateMetrics    `json:"metrics"`
	Connection           model.ConnectionState     `json:"connection"`
	Performance          model.PerformanceSnapshot `json:"performance"`
	UsingMockData        bool                      `json:"using_mock_data"`
	DataSource           string                    `json:"data_source"`
	LastUpdatedLabel     string                    `json:"last_updated_label"`
	ManualRefreshAllowed bool                      `json:"manual_refresh_allowed"`
	ManualRefreshWaitMs  int64                     `json:"manual_refresh_wait_ms"`
}

// HealthMonitorAdapter derives presentation data from the controller and
// forwards user intents to it verbatim. It owns no synchronization state, so
// it is swappable and testable in isolation.
type HealthMonitorAdapter interface {
	Sources() []SourceView
	Overview() Overview

	RefreshHealth(ctx context.Context) error
	RefreshSource(ctx context.Context, sourceID string) error
	TriggerSourceTest(ctx context.Context, sourceID string) (model.SourceTestResult, error)
	PauseMonitoring(ctx context.Context, sourceID string) error
	ResumeMonitoring(ctx context.Context, sourceID string) error

	CacheInfo(ctx context.Context) cache.StoreInfo
	ClearCache(ctx context.Context)
	Subscribe() (<-chan struct{}, func())
}

type healthMonitorAdapter struct {
	controller controller.HealthController
	staleAfter time.Duration
	nowFn      func() time.Time
}

func (a *healthMonitorAdapter) Sources() []SourceView {
	records := a.controller.SourceHealth()
	now := a.nowFn()
	views := make([]SourceView, 0, len(records))
	for _, record := range records {
		views = append(views, SourceView{
			SourceHealthRecord: record,
			TrendIcon:          TrendIcon(record.HealthTrend),
			StatusBadge:        StatusBadge(record.Status),
			StalenessLabel:     StalenessLabel(now, record.LastUpdate, a.staleAfter),
			Paused:             a.controller.IsPaused(record.SourceID),
			Connection:         a.controller.SourceConnectionState(record.SourceID),
		})
	}
	return views
}

func (a *healthMonitorAdapter) Overview() Overview {
	allowed, wait := a.controller.ManualRefreshAllowed()
	return Overview{
		Metrics:              a.controller.Metrics(),
		Connection:           a.controller.ConnectionState(),
		Performance:          a.controller.Performance(),
		UsingMockData:        a.controller.UsingMockData(),
		DataSource:           a.controller.DataSource(),
		LastUpdatedLabel:     StalenessLabel(a.nowFn(), a.controller.LastUpdatedAt(), a.staleAfter),
		ManualRefreshAllowed: allowed,
		ManualRefreshWaitMs:  wait.Milliseconds(),
	}
}

func (a *healthMonitorAdapter) RefreshHealth(ctx context.Context) error {
	return a.controller.RefreshAll(ctx)
}

func (a *healthMonitorAdapter) RefreshSource(ctx context.Context, sourceID string) error {
	return a.controller.RefreshSource(ctx, sourceID)
}

func (a *healthMonitorAdapter) TriggerSourceTest(ctx context.Context, sourceID string) (model.SourceTestResult, error) {
	return a.controller.TriggerSourceTest(ctx, sourceID)
}

func (a *healthMonitorAdapter) PauseMonitoring(ctx context.Context, sourceID string) error {
	return a.controller.PauseMonitoring(ctx, sourceID)
}

func (a *healthMonitorAdapter) ResumeMonitoring(ctx context.Context, sourceID string) error {
	return a.controller.ResumeMonitoring(ctx, sourceID)
}

func (a *healthMonitorAdapter) CacheInfo(ctx context.Context) cache.StoreInfo {
	return a.controller.CacheInfo(ctx)
}

func (a *healthMonitorAdapter) ClearCache(ctx context.Context) {
	a.controller.ClearCache(ctx)
}

func (a *healthMonitorAdapter) Subscribe() (<-chan struct{}, func()) {
	return a.controller.Subscribe()
}

// TrendIcon maps a health trend onto the dashboard icon name.
func TrendIcon(trend string) string {
	switch trend {
	case model.HealthTrendImproving:
		return "trending-up"
	case model.HealthTrendDegrading:
		return "trending-down"
	default:
		return "trending-flat"
	}
}

// StatusBadge maps an operational status onto a badge color.
func StatusBadge(status string) string {
	switch status {
	case model.SourceStatusOnline:
		return "green"
	case model.SourceStatusDegraded:
		return "amber"
	case model.SourceStatusOffline:
		return "red"
	case model.SourceStatusMaintenance:
		return "blue"
	case model.SourceStatusSunset:
		return "gray"
	default:
		return "gray"
	}
}

// StalenessLabel renders a human age label, marking data older than
// staleAfter as stale.
func StalenessLabel(now, lastUpdate time.Time, staleAfter time.Duration) string {
	if lastUpdate.IsZero() {
		return "never updated"
	}
	age := now.Sub(lastUpdate)
	var label string
	switch {
	case age < time.Minute:
		label = "just now"
	case age < time.Hour:
		label = fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		label = fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		label = fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
	if age > staleAfter {
		label += " (stale)"
	}
	return label
}

func NewHealthMonitorAdapter(ctrl controller.HealthController, staleAfter time.Duration) HealthMonitorAdapter {
	return &healthMonitorAdapter{
		controller: ctrl,
		staleAfter: staleAfter,
		nowFn:      time.Now,
	}
}
