package cache

import (
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMemoryStore(version string, now time.Time) *memoryStore {
	store := NewMemoryStore(zap.NewNop(), version).(*memoryStore)
	store.nowFn = func() time.Time { return now }
	return store
}

func TestMemoryStore_StoreAndRead(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	records := []model.SourceHealthRecord{
		{SourceID: "gov-open-data", Name: "Government Open Data", Status: model.SourceStatusOnline, Uptime: 99.2},
	}
	metrics := model.ComputeAggregateMetrics(records, now)

	store := newTestMemoryStore("3", now)
	metadata := store.Store(context.Background(), records, &metrics, StoreOptions{
		DataSource:  model.DataSourceNetwork,
		TTL:         5 * time.Minute,
		RefreshMode: model.RefreshModeAuto,
	})
	require.NotNil(t, metadata)
	assert.Equal(t, now, metadata.LastUpdated)
	assert.Equal(t, now.Add(5*time.Minute), metadata.ExpiresAt)
	assert.Equal(t, "3", metadata.Version)

	snapshot := store.Read(context.Background())
	require.NotNil(t, snapshot)
	assert.Equal(t, records, snapshot.Records)
	require.NotNil(t, snapshot.Metrics)
	assert.Equal(t, metrics, *snapshot.Metrics)
	assert.False(t, snapshot.IsExpired)
	assert.Equal(t, int64(0), snapshot.AgeMs)
	assert.Equal(t, int64(0), snapshot.ExpiredForMs)
}

func TestMemoryStore_ReadExpiredSnapshot(t *testing.T) {
	writeTime := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	records := []model.SourceHealthRecord{{SourceID: "market-feed"}}

	store := newTestMemoryStore("3", writeTime)
	require.NotNil(t, store.Store(context.Background(), records, nil, StoreOptions{
		DataSource:  model.DataSourceNetwork,
		TTL:         5 * time.Minute,
		RefreshMode: model.RefreshModeAuto,
	}))

	// read 15 minutes after the write, 10 minutes past the logical expiry
	store.nowFn = func() time.Time { return writeTime.Add(15 * time.Minute) }
	snapshot := store.Read(context.Background())
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.IsExpired)
	assert.Equal(t, int64(15*60*1000), snapshot.AgeMs)
	assert.Equal(t, int64(10*60*1000), snapshot.ExpiredForMs)
	assert.Equal(t, records, snapshot.Records)
}

func TestMemoryStore_VersionMismatchIsMiss(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	store := newTestMemoryStore("3", now)
	require.NotNil(t, store.Store(context.Background(), []model.SourceHealthRecord{{SourceID: "news-wire"}}, nil, StoreOptions{
		DataSource:  model.DataSourceStream,
		TTL:         5 * time.Minute,
		RefreshMode: model.RefreshModeAuto,
	}))

	store.version = "4"
	assert.Nil(t, store.Read(context.Background()))
}

func TestMemoryStore_ClearAndInfo(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	store := newTestMemoryStore("3", now)

	assert.Nil(t, store.Read(context.Background()))
	info := store.Info(context.Background())
	assert.True(t, info.Available)
	assert.Equal(t, "memory", info.Backend)
	assert.Equal(t, int64(0), info.SizeBytes)

	require.NotNil(t, store.Store(context.Background(), []model.SourceHealthRecord{{SourceID: "gov-open-data"}}, nil, StoreOptions{
		DataSource:  model.DataSourceNetwork,
		TTL:         5 * time.Minute,
		RefreshMode: model.RefreshModeManual,
	}))
	info = store.Info(context.Background())
	assert.Equal(t, now, info.LastWrite)
	assert.Greater(t, info.SizeBytes, int64(0))
	assert.False(t, info.Expired)

	store.Clear(context.Background())
	assert.Nil(t, store.Read(context.Background()))
	info = store.Info(context.Background())
	assert.Equal(t, int64(0), info.SizeBytes)
	assert.True(t, info.LastWrite.IsZero())
}
