package cache

import (
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// memoryStore is the in-process fallback used when Redis is unreachable at
// startup, and the storage port used by tests. Entries are kept as marshaled
// bytes so readers get copies, matching the Redis implementation.
type memoryStore struct {
	logger  *zap.Logger
	version string
	nowFn   func() time.Time

	mu        sync.RWMutex
	records   []byte
	metrics   []byte
	metadata  *model.CacheMetadata
	lastWrite time.Time
}

func (m *memoryStore) Store(_ context.Context, records []model.SourceHealthRecord, metrics *model.AggregateMetrics, opts StoreOptions) *model.CacheMetadata {
	now := m.nowFn()
	metadata := model.CacheMetadata{
		LastUpdated: now,
		ExpiresAt:   now.Add(opts.TTL),
		Version:     m.version,
		DataSource:  opts.DataSource,
		RefreshMode: opts.RefreshMode,
	}
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		m.logger.Error("failed to marshal health records for cache", zap.Error(err))
		return nil
	}
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		m.logger.Error("failed to marshal metrics for cache", zap.Error(err))
		return nil
	}

	m.mu.Lock()
	m.records = recordsJSON
	m.metrics = metricsJSON
	m.metadata = &metadata
	m.lastWrite = now
	m.mu.Unlock()
	return &metadata
}

func (m *memoryStore) Read(_ context.Context) *CachedSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.records == nil || m.metadata == nil {
		return nil
	}
	if m.metadata.Version != m.version {
		return nil
	}
	var records []model.SourceHealthRecord
	if err := json.Unmarshal(m.records, &records); err != nil {
		m.logger.Warn("cached health records are malformed, treating as miss", zap.Error(err))
		return nil
	}
	var metrics *model.AggregateMetrics
	if m.metrics != nil {
		if err := json.Unmarshal(m.metrics, &metrics); err != nil {
			metrics = nil
		}
	}
	return buildSnapshot(records, metrics, *m.metadata, m.nowFn())
}

func (m *memoryStore) Clear(_ context.Context) {
	m.mu.Lock()
	m.records = nil
	m.metrics = nil
	m.metadata = nil
	m.lastWrite = time.Time{}
	m.mu.Unlock()
}

func (m *memoryStore) Info(_ context.Context) StoreInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info := StoreInfo{
		Available: true,
		Backend:   "memory",
		LastWrite: m.lastWrite,
		SizeBytes: int64(len(m.records) + len(m.metrics)),
	}
	if m.metadata != nil {
		info.Expired = m.metadata.IsExpired(m.nowFn())
	}
	return info
}

func NewMemoryStore(logger *zap.Logger, version string) Store {
	return &memoryStore{
		logger:  logger,
		version: version,
		nowFn:   time.Now,
	}
}
