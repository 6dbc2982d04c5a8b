package cache

import (
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"time"
)

type StoreOptions struct {
	DataSource  string
	TTL         time.Duration
	RefreshMode string
}

type CachedSnapshot struct {
	Records      []model.SourceHealthRecord
	Metrics      *model.AggregateMetrics
	Metadata     model.CacheMetadata
	IsExpired    bool
	AgeMs        int64
	ExpiredForMs int64
}

type StoreInfo struct {
	Available bool      `json:"available"`
	Backend   string    `json:"backend"`
	LastWrite time.Time `json:"last_write"`
	SizeBytes int64     `json:"size_bytes"`
	Expired   bool      `json:"expired"`
}

// Store is the persistence port for the synchronized health view. Storage is
// best-effort: every operation degrades to a no-op (logged, never an error to
// the caller) when the backing store is unavailable, so synchronization keeps
// working in memory only.
type Store interface {
	// Store writes records, metrics and derived metadata atomically. Returns
	// the written metadata, or nil when the store is unavailable.
	Store(ctx context.Context, records []model.SourceHealthRecord, metrics *model.AggregateMetrics, opts StoreOptions) *model.CacheMetadata
	// Read returns the cached snapshot with expiry computed against the
	// current clock, or nil on miss, version mismatch or unavailable store.
	Read(ctx context.Context) *CachedSnapshot
	// Clear removes all cached keys. Idempotent.
	Clear(ctx context.Context)
	Info(ctx context.Context) StoreInfo
}
