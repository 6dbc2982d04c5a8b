package model

import "time"

const (
	DataSourceNetwork = "network"
	DataSourceStream  = "stream"
	DataSourceMock    = "mock"
	DataSourceRestore = "restore"
)

const (
	RefreshModeAuto   = "auto"
	RefreshModeManual = "manual"
)

type CacheMetadata struct {
	LastUpdated time.Time `json:"last_updated"`
	ExpiresAt   time.Time `json:"expires_at"`
	Version     string    `json:"version"`
	DataSource  string    `json:"data_source"`
	RefreshMode string    `json:"refresh_mode"`
}

// IsExpired is a pure function of now vs the stored expiry, recomputed per
// read instead of via background timers.
func (m CacheMetadata) IsExpired(now time.Time) bool {
	return now.After(m.ExpiresAt)
}
