package cache

import (
	"Source_Health_Sync/internal/health-sync/model"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedisStore(version string, now time.Time) (*redisStore, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, zap.NewNop(), version).(*redisStore)
	store.nowFn = func() time.Time { return now }
	return store, mock
}

func marshalCachePayload(t *testing.T, records []model.SourceHealthRecord, metrics *model.AggregateMetrics, metadata model.CacheMetadata) (recordsJSON, metadataJSON, metricsJSON []byte) {
	t.Helper()
	var err error
	recordsJSON, err = json.Marshal(records)
	require.NoError(t, err)
	metadataJSON, err = json.Marshal(metadata)
	require.NoError(t, err)
	metricsJSON, err = json.Marshal(metrics)
	require.NoError(t, err)
	return recordsJSON, metadataJSON, metricsJSON
}

func TestRedisStore_Store(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	records := []model.SourceHealthRecord{
		{SourceID: "gov-open-data", Status: model.SourceStatusOnline, Uptime: 99.2},
	}
	metrics := model.ComputeAggregateMetrics(records, now)
	metadata := model.CacheMetadata{
		LastUpdated: now,
		ExpiresAt:   now.Add(5 * time.Minute),
		Version:     "3",
		DataSource:  model.DataSourceNetwork,
		RefreshMode: model.RefreshModeAuto,
	}
	recordsJSON, metadataJSON, metricsJSON := marshalCachePayload(t, records, &metrics, metadata)

	testCases := []struct {
		name      string
		mockSetup func(mock redismock.ClientMock)
		expectNil bool
	}{
		{
			name: "Success All four keys committed in one transaction",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectTxPipeline()
				mock.ExpectSet(keyHealthRecords, recordsJSON, cacheRetention).SetVal("OK")
				mock.ExpectSet(keyHealthMetadata, metadataJSON, cacheRetention).SetVal("OK")
				mock.ExpectSet(keyMetrics, metricsJSON, cacheRetention).SetVal("OK")
				mock.ExpectSet(keyMetricsMetadata, metadataJSON, cacheRetention).SetVal("OK")
				mock.ExpectTxPipelineExec()
			},
			expectNil: false,
		},
		{
			name: "Error Redis write failure returns nil without erroring",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectTxPipeline()
				mock.ExpectSet(keyHealthRecords, recordsJSON, cacheRetention).SetVal("OK")
				mock.ExpectSet(keyHealthMetadata, metadataJSON, cacheRetention).SetVal("OK")
				mock.ExpectSet(keyMetrics, metricsJSON, cacheRetention).SetVal("OK")
				mock.ExpectSet(keyMetricsMetadata, metadataJSON, cacheRetention).SetErr(errors.New("redis connection error"))
			},
			expectNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock := newTestRedisStore("3", now)
			tc.mockSetup(mock)

			result := store.Store(context.Background(), records, &metrics, StoreOptions{
				DataSource:  model.DataSourceNetwork,
				TTL:         5 * time.Minute,
				RefreshMode: model.RefreshModeAuto,
			})

			if tc.expectNil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, metadata, *result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisStore_Read(t *testing.T) {
	writeTime := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	records := []model.SourceHealthRecord{
		{SourceID: "market-feed", Status: model.SourceStatusDegraded, Uptime: 94.7},
	}
	metrics := model.ComputeAggregateMetrics(records, writeTime)
	freshMetadata := model.CacheMetadata{
		LastUpdated: writeTime,
		ExpiresAt:   writeTime.Add(5 * time.Minute),
		Version:     "3",
		DataSource:  model.DataSourceStream,
		RefreshMode: model.RefreshModeAuto,
	}
	staleMetadata := freshMetadata
	staleMetadata.ExpiresAt = writeTime.Add(-10 * time.Minute)
	oldVersionMetadata := freshMetadata
	oldVersionMetadata.Version = "2"

	recordsJSON, freshMetadataJSON, metricsJSON := marshalCachePayload(t, records, &metrics, freshMetadata)
	staleMetadataJSON, err := json.Marshal(staleMetadata)
	require.NoError(t, err)
	oldVersionMetadataJSON, err := json.Marshal(oldVersionMetadata)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		now       time.Time
		mockSetup func(mock redismock.ClientMock)
		check     func(t *testing.T, snapshot *CachedSnapshot)
	}{
		{
			name: "Success Fresh snapshot",
			now:  writeTime.Add(time.Minute),
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetVal([]interface{}{string(recordsJSON), string(freshMetadataJSON), string(metricsJSON)})
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				require.NotNil(t, snapshot)
				assert.Equal(t, records, snapshot.Records)
				require.NotNil(t, snapshot.Metrics)
				assert.False(t, snapshot.IsExpired)
				assert.Equal(t, int64(60*1000), snapshot.AgeMs)
			},
		},
		{
			name: "Success Snapshot expired ten minutes ago still hydrates flagged stale",
			now:  writeTime,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetVal([]interface{}{string(recordsJSON), string(staleMetadataJSON), string(metricsJSON)})
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				require.NotNil(t, snapshot)
				assert.True(t, snapshot.IsExpired)
				assert.Equal(t, int64(10*60*1000), snapshot.ExpiredForMs)
				assert.Equal(t, records, snapshot.Records)
			},
		},
		{
			name: "Miss Version mismatch",
			now:  writeTime,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetVal([]interface{}{string(recordsJSON), string(oldVersionMetadataJSON), string(metricsJSON)})
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				assert.Nil(t, snapshot)
			},
		},
		{
			name: "Miss Keys absent",
			now:  writeTime,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetVal([]interface{}{nil, nil, nil})
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				assert.Nil(t, snapshot)
			},
		},
		{
			name: "Miss Malformed records payload",
			now:  writeTime,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetVal([]interface{}{"{not json", string(freshMetadataJSON), string(metricsJSON)})
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				assert.Nil(t, snapshot)
			},
		},
		{
			name: "Miss Redis read failure",
			now:  writeTime,
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetErr(errors.New("redis connection error"))
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				assert.Nil(t, snapshot)
			},
		},
		{
			name: "Success Malformed metrics are dropped, records kept",
			now:  writeTime.Add(time.Minute),
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
					SetVal([]interface{}{string(recordsJSON), string(freshMetadataJSON), "{not json"})
			},
			check: func(t *testing.T, snapshot *CachedSnapshot) {
				require.NotNil(t, snapshot)
				assert.Nil(t, snapshot.Metrics)
				assert.Equal(t, records, snapshot.Records)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock := newTestRedisStore("3", tc.now)
			tc.mockSetup(mock)

			snapshot := store.Read(context.Background())

			tc.check(t, snapshot)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisStore_Clear(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	store, mock := newTestRedisStore("3", now)
	mock.ExpectDel(keyHealthRecords, keyHealthMetadata, keyMetrics, keyMetricsMetadata).SetVal(4)

	store.Clear(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.True(t, store.lastWrite.IsZero())
}

func TestRedisStore_Info(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	records := []model.SourceHealthRecord{{SourceID: "news-wire"}}
	metadata := model.CacheMetadata{
		LastUpdated: now.Add(-time.Minute),
		ExpiresAt:   now.Add(4 * time.Minute),
		Version:     "3",
	}
	recordsJSON, metadataJSON, metricsJSON := marshalCachePayload(t, records, nil, metadata)

	t.Run("Success Reports size and expiry", func(t *testing.T) {
		store, mock := newTestRedisStore("3", now)
		mock.ExpectPing().SetVal("PONG")
		mock.ExpectMGet(keyHealthRecords, keyHealthMetadata, keyMetrics).
			SetVal([]interface{}{string(recordsJSON), string(metadataJSON), string(metricsJSON)})

		info := store.Info(context.Background())

		assert.True(t, info.Available)
		assert.Equal(t, "redis", info.Backend)
		assert.Equal(t, int64(len(recordsJSON)+len(metadataJSON)+len(metricsJSON)), info.SizeBytes)
		assert.False(t, info.Expired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error Ping failure marks store unavailable", func(t *testing.T) {
		store, mock := newTestRedisStore("3", now)
		mock.ExpectPing().SetErr(errors.New("redis connection error"))

		info := store.Info(context.Background())

		assert.False(t, info.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
