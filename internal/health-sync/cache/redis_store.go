package cache

import (
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyHealthRecords   = "health-sync:health-records"
	keyHealthMetadata  = "health-sync:health-metadata"
	keyMetrics         = "health-sync:metrics"
	keyMetricsMetadata = "health-sync:metrics-metadata"
)

// cacheRetention is the physical key lifetime. Logical expiry lives in the
// metadata so an expired snapshot can still hydrate the view with a staleness
// flag.
const cacheRetention = 24 * time.Hour

type redisStore struct {
	redis   *redis.Client
	logger  *zap.Logger
	version string
	nowFn   func() time.Time

	mu        sync.Mutex
	lastWrite time.Time
}

func (r *redisStore) Store(ctx context.Context, records []model.SourceHealthRecord, metrics *model.AggregateMetrics, opts StoreOptions) *model.CacheMetadata {
	now := r.nowFn()
	metadata := model.CacheMetadata{
		LastUpdated: now,
		ExpiresAt:   now.Add(opts.TTL),
		Version:     r.version,
		DataSource:  opts.DataSource,
		RefreshMode: opts.RefreshMode,
	}
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		r.logger.Error("failed to marshal health records for cache", zap.Error(err))
		return nil
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		r.logger.Error("failed to marshal cache metadata", zap.Error(err))
		return nil
	}
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		r.logger.Error("failed to marshal metrics for cache", zap.Error(err))
		return nil
	}

	// Data and metadata commit together so a reader never observes a
	// mismatched pair.
	pipe := r.redis.TxPipeline()
	pipe.Set(ctx, keyHealthRecords, recordsJSON, cacheRetention)
	pipe.Set(ctx, keyHealthMetadata, metadataJSON, cacheRetention)
	pipe.Set(ctx, keyMetrics, metricsJSON, cacheRetention)
	pipe.Set(ctx, keyMetricsMetadata, metadataJSON, cacheRetention)
	if _, err = pipe.Exec(ctx); err != nil {
		r.logger.Warn("cache write failed, continuing without persistence", zap.Error(err))
		return nil
	}

	r.mu.Lock()
	r.lastWrite = now
	r.mu.Unlock()
	return &metadata
}

func (r *redisStore) Read(ctx context.Context) *CachedSnapshot {
	values, err := r.redis.MGet(ctx, keyHealthRecords, keyHealthMetadata, keyMetrics).Result()
	if err != nil {
		r.logger.Warn("cache read failed", zap.Error(err))
		return nil
	}
	if values[0] == nil || values[1] == nil {
		return nil
	}

	var metadata model.CacheMetadata
	if err = json.Unmarshal([]byte(values[1].(string)), &metadata); err != nil {
		r.logger.Warn("cache metadata is malformed, treating as miss", zap.Error(err))
		return nil
	}
	if metadata.Version != r.version {
		// Stale schema version is a miss, not corruption.
		r.logger.Info("cache version mismatch, treating as miss",
			zap.String("stored_version", metadata.Version),
			zap.String("expected_version", r.version))
		return nil
	}

	var records []model.SourceHealthRecord
	if err = json.Unmarshal([]byte(values[0].(string)), &records); err != nil {
		r.logger.Warn("cached health records are malformed, treating as miss", zap.Error(err))
		return nil
	}

	var metrics *model.AggregateMetrics
	if values[2] != nil {
		if err = json.Unmarshal([]byte(values[2].(string)), &metrics); err != nil {
			r.logger.Warn("cached metrics are malformed, dropping them", zap.Error(err))
			metrics = nil
		}
	}

	return buildSnapshot(records, metrics, metadata, r.nowFn())
}

func (r *redisStore) Clear(ctx context.Context) {
	err := r.redis.Del(ctx, keyHealthRecords, keyHealthMetadata, keyMetrics, keyMetricsMetadata).Err()
	if err != nil {
		r.logger.Warn("cache clear failed", zap.Error(err))
	}
	r.mu.Lock()
	r.lastWrite = time.Time{}
	r.mu.Unlock()
}

func (r *redisStore) Info(ctx context.Context) StoreInfo {
	r.mu.Lock()
	lastWrite := r.lastWrite
	r.mu.Unlock()
	info := StoreInfo{
		Backend:   "redis",
		LastWrite: lastWrite,
	}
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return info
	}
	info.Available = true
	values, err := r.redis.MGet(ctx, keyHealthRecords, keyHealthMetadata, keyMetrics).Result()
	if err != nil {
		return info
	}
	for _, v := range values {
		if v != nil {
			info.SizeBytes += int64(len(v.(string)))
		}
	}
	if values[1] != nil {
		var metadata model.CacheMetadata
		if json.Unmarshal([]byte(values[1].(string)), &metadata) == nil {
			info.Expired = metadata.IsExpired(r.nowFn())
		}
	}
	return info
}

func buildSnapshot(records []model.SourceHealthRecord, metrics *model.AggregateMetrics, metadata model.CacheMetadata, now time.Time) *CachedSnapshot {
	snapshot := &CachedSnapshot{
		Records:   records,
		Metrics:   metrics,
		Metadata:  metadata,
		IsExpired: metadata.IsExpired(now),
		AgeMs:     now.Sub(metadata.LastUpdated).Milliseconds(),
	}
	if snapshot.IsExpired {
		snapshot.ExpiredForMs = now.Sub(metadata.ExpiresAt).Milliseconds()
	}
	return snapshot
}

func NewRedisStore(redisClient *redis.Client, logger *zap.Logger, version string) Store {
	return &redisStore{
		redis:   redisClient,
		logger:  logger,
		version: version,
		nowFn:   time.Now,
	}
}
