package controller

import (
	"Source_Health_Sync/internal/health-sync/backend"
	"Source_Health_Sync/internal/health-sync/cache"
	apperrors "Source_Health_Sync/internal/health-sync/errors"
	"Source_Health_Sync/internal/health-sync/model"
	"Source_Health_Sync/internal/health-sync/tracker"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HealthController keeps the in-memory source-health view consistent across
// the persistent cache, the live stream and fallback polling, and is the only
// component allowed to mutate it.
type HealthController interface {
	Start(ctx context.Context)
	Stop()

	RefreshAll(ctx context.Context) error
	RefreshSource(ctx context.Context, sourceID string) error
	TriggerSourceTest(ctx context.Context, sourceID string) (model.SourceTestResult, error)
	PauseMonitoring(ctx context.Context, sourceID string) error
	ResumeMonitoring(ctx context.Context, sourceID string) error

	SourceHealth() []model.SourceHealthRecord
	Metrics() model.AggregateMetrics
	ConnectionState() model.ConnectionState
	SourceConnectionState(sourceID string) model.ConnectionState
	Performance() model.PerformanceSnapshot
	LastUpdatedAt() time.Time
	UsingMockData() bool
	DataSource() string
	IsPaused(sourceID string) bool
	ManualRefreshAllowed() (bool, time.Duration)

	CacheInfo(ctx context.Context) cache.StoreInfo
	ClearCache(ctx context.Context)

	// Subscribe returns a channel signalled after every accepted mutation,
	// plus a cancel func. Used by the websocket hub.
	Subscribe() (<-chan struct{}, func())
}

// DegradationNotifier is invoked when the global connection state enters
// degraded or offline. Implementations must not block.
type DegradationNotifier interface {
	NotifyDegradation(state model.ConnectionState, metrics model.AggregateMetrics)
}

type Options struct {
	CacheTTL              time.Duration
	PollInterval          time.Duration
	ManualRefreshInterval time.Duration
}

type healthController struct {
	logger   *zap.Logger
	store    cache.Store
	tracker  *tracker.Tracker
	perf     *tracker.PerformanceRecorder
	client   backend.Client
	stream   backend.StreamClient
	notifier DegradationNotifier
	opts     Options
	validate *validator.Validate
	nowFn    func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu                 sync.RWMutex
	sources            map[string]model.SourceHealthRecord
	metrics            model.AggregateMetrics
	paused             map[string]bool
	lastUpdated        time.Time
	usingMock          bool
	dataSource         string
	lastManualRefresh  time.Time
	pollInterval       time.Duration
	lastNotifiedStatus string
	subscribers        map[int]chan struct{}
	nextSubscriberID   int
}

func NewHealthController(
	logger *zap.Logger,
	store cache.Store,
	connTracker *tracker.Tracker,
	perf *tracker.PerformanceRecorder,
	client backend.Client,
	stream backend.StreamClient,
	notifier DegradationNotifier,
	opts Options,
) HealthController {
	return &healthController{
		logger:       logger,
		store:        store,
		tracker:      connTracker,
		perf:         perf,
		client:       client,
		stream:       stream,
		notifier:     notifier,
		opts:         opts,
		validate:     validator.New(),
		nowFn:        time.Now,
		sources:      make(map[string]model.SourceHealthRecord),
		paused:       make(map[string]bool),
		pollInterval: opts.PollInterval,
		subscribers:  make(map[int]chan struct{}),
	}
}

func (h *healthController) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.hydrate(runCtx)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.run(runCtx)
	}()
}

func (h *healthController) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
	h.wg.Wait()
}

// hydrate populates the view from the persistent cache before any network
// traffic so the dashboard shows data with zero latency. An expired snapshot
// still hydrates, flagged stale, followed by an immediate refresh.
func (h *healthController) hydrate(ctx context.Context) {
	cached := h.store.Read(ctx)
	if cached == nil {
		h.logger.Info("no usable cached snapshot, starting cold")
		if err := h.refresh(ctx, model.RefreshModeAuto); err != nil {
			h.logger.Warn("initial refresh failed", zap.Error(err))
		}
		return
	}

	h.mu.Lock()
	h.sources = make(map[string]model.SourceHealthRecord, len(cached.Records))
	for _, record := range cached.Records {
		h.sources[record.SourceID] = record
	}
	if cached.Metrics != nil {
		h.metrics = *cached.Metrics
	} else {
		h.metrics = model.ComputeAggregateMetrics(cached.Records, cached.Metadata.LastUpdated)
	}
	h.lastUpdated = cached.Metadata.LastUpdated
	h.usingMock = false
	h.dataSource = model.DataSourceRestore
	h.mu.Unlock()
	h.tracker.SetUsingMockData(false)
	h.notifyStateChange()

	h.logger.Info("hydrated from cache",
		zap.Int("sources", len(cached.Records)),
		zap.Bool("expired", cached.IsExpired),
		zap.Int64("age_ms", cached.AgeMs),
		zap.Int64("expired_for_ms", cached.ExpiredForMs),
		zap.String("data_source", cached.Metadata.DataSource))

	if cached.IsExpired {
		if err := h.refresh(ctx, model.RefreshModeAuto); err != nil {
			h.logger.Warn("refresh after stale hydration failed", zap.Error(err))
		}
	}
}

// run owns the stream lifecycle: subscribe, consume until drop, back off with
// fallback polling while disconnected, repeat.
func (h *healthController) run(ctx context.Context) {
	connectedBefore := false
	for {
		if ctx.Err() != nil {
			return
		}
		h.tracker.MarkConnecting()
		h.notifyStateChange()
		sub, err := h.stream.Subscribe(ctx)
		if err != nil {
			h.perf.RecordRequest(0, false, backend.IsTimeout(err))
			if !h.handleDisconnect(ctx, err) {
				return
			}
			continue
		}
		h.tracker.MarkConnected()
		// the first successful subscribe is a plain connect, not a reconnect
		if connectedBefore {
			h.perf.RecordStreamReconnect()
		}
		connectedBefore = true
		h.notifyStateChange()

		h.consume(ctx, sub)
		if ctx.Err() != nil {
			return
		}
		dropErr := sub.Err()
		if dropErr == nil {
			dropErr = apperrors.ErrStreamDisconnected
		}
		if !h.handleDisconnect(ctx, dropErr) {
			return
		}
	}
}

func (h *healthController) consume(ctx context.Context, sub *backend.Subscription) {
	for {
		select {
		case <-ctx.Done():
			sub.Close()
			// drain so the reader goroutine can exit
			for range sub.Events() {
			}
			return
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			h.perf.RecordStreamEvent()
			h.handleEvent(ctx, event)
		}
	}
}

// handleDisconnect records the failure, then waits out the reconnect backoff
// while running fallback polls. Returns false when the context is done. The
// poll timer lives inside the wait, so a successful reconnect implicitly
// cancels pending fallback polling.
func (h *healthController) handleDisconnect(ctx context.Context, cause error) bool {
	status, retryIn := h.tracker.RecordFailure(cause)
	h.installMockDataIfEmpty()
	h.maybeNotifyDegradation(status)
	h.notifyStateChange()
	if retryIn <= 0 {
		// offline: no scheduled reconnect, keep probing lazily
		retryIn = 2 * h.currentPollInterval()
	}

	retryTimer := time.NewTimer(retryIn)
	defer retryTimer.Stop()
	pollTicker := time.NewTicker(h.currentPollInterval())
	defer pollTicker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-retryTimer.C:
			return true
		case <-pollTicker.C:
			if err := h.refresh(ctx, model.RefreshModeAuto); err != nil {
				h.logger.Warn("fallback poll failed", zap.Error(err))
			}
		}
	}
}

func (h *healthController) handleEvent(ctx context.Context, event model.StreamEvent) {
	switch event.Type {
	case model.StreamEventSnapshot:
		var payload model.SnapshotPayload
		if !h.decodePayload(event, &payload) {
			return
		}
		h.applySnapshot(payload.Sources, payload.Metrics, payload.RefreshIntervalSeconds, model.DataSourceStream)
		h.writeThrough(ctx, model.DataSourceStream, model.RefreshModeAuto)
		h.notifyStateChange()
	case model.StreamEventUpdate:
		var payload model.UpdatePayload
		if !h.decodePayload(event, &payload) {
			return
		}
		h.applyUpdate(payload.Sources, model.DataSourceStream)
		h.writeThrough(ctx, model.DataSourceStream, model.RefreshModeAuto)
		h.notifyStateChange()
	case model.StreamEventMetrics:
		var payload model.MetricsPayload
		if !h.decodePayload(event, &payload) {
			return
		}
		h.mu.Lock()
		h.metrics = payload.Metrics
		h.lastUpdated = h.nowFn()
		h.dataSource = model.DataSourceStream
		h.mu.Unlock()
		h.writeThrough(ctx, model.DataSourceStream, model.RefreshModeAuto)
		h.notifyStateChange()
	case model.StreamEventHeartbeat:
		h.tracker.Heartbeat()
	case model.StreamEventError:
		status, _ := h.tracker.RecordFailure(fmt.Errorf("backend reported: %s", event.Message))
		h.maybeNotifyDegradation(status)
		h.notifyStateChange()
	default:
		// validation upstream should have rejected this already
		h.logger.Warn("ignoring stream event of unknown type", zap.String("type", event.Type))
	}
}

func (h *healthController) decodePayload(event model.StreamEvent, out any) bool {
	if err := json.Unmarshal(event.Payload, out); err != nil {
		h.logger.Warn("dropping stream event with undecodable payload",
			zap.String("type", event.Type), zap.Error(err))
		return false
	}
	if err := h.validate.Struct(out); err != nil {
		h.logger.Warn("dropping stream event with invalid payload",
			zap.String("type", event.Type), zap.Error(err))
		return false
	}
	return true
}

// applySnapshot fully replaces the source set. Bounded health history carries
// over from the previous record when the incoming one has none, then the new
// observation is appended.
func (h *healthController) applySnapshot(incoming map[string]model.SourceHealthRecord, metrics *model.AggregateMetrics, refreshIntervalSeconds int, dataSource string) {
	now := h.nowFn()
	h.mu.Lock()
	next := make(map[string]model.SourceHealthRecord, len(incoming))
	for id, record := range incoming {
		record.SourceID = id
		h.integrateRecordLocked(&record, now)
		next[id] = record
	}
	h.sources = next
	if metrics != nil {
		h.metrics = *metrics
	} else {
		h.metrics = model.ComputeAggregateMetrics(recordsLocked(next), now)
	}
	h.lastUpdated = now
	h.usingMock = false
	h.dataSource = dataSource
	if refreshIntervalSeconds > 0 {
		h.pollInterval = time.Duration(refreshIntervalSeconds) * time.Second
	}
	h.mu.Unlock()
	h.tracker.SetUsingMockData(false)
}

// applyUpdate merges a partial payload by source id; sources not mentioned
// are left untouched.
func (h *healthController) applyUpdate(incoming map[string]model.SourceHealthRecord, dataSource string) {
	now := h.nowFn()
	h.mu.Lock()
	for id, record := range incoming {
		record.SourceID = id
		h.integrateRecordLocked(&record, now)
		h.sources[id] = record
	}
	h.metrics = model.ComputeAggregateMetrics(recordsLocked(h.sources), now)
	h.lastUpdated = now
	h.usingMock = false
	h.dataSource = dataSource
	h.mu.Unlock()
	h.tracker.SetUsingMockData(false)
}

func (h *healthController) integrateRecordLocked(record *model.SourceHealthRecord, now time.Time) {
	record.Normalize()
	if previous, ok := h.sources[record.SourceID]; ok && len(record.HealthHistory) == 0 {
		record.HealthHistory = previous.HealthHistory
	}
	sampleTime := record.LastUpdate
	if sampleTime.IsZero() {
		sampleTime = now
		record.LastUpdate = now
	}
	record.AppendHealthSample(model.HealthSample{
		Timestamp:      sampleTime,
		Uptime:         record.Uptime,
		ResponseTimeMs: record.ResponseTimeMs,
		ErrorRate:      record.ErrorRate,
	})
	record.ComputeHealthTrend()
}

// refresh fetches a full snapshot over plain HTTP. Used for cold start,
// stale-cache recovery, fallback polling and manual refresh.
func (h *healthController) refresh(ctx context.Context, refreshMode string) error {
	start := h.nowFn()
	snapshot, err := h.client.FetchSnapshot(ctx)
	latency := time.Since(start)
	if err != nil {
		h.perf.RecordRequest(latency, false, backend.IsTimeout(err))
		h.tracker.RecordFailure(err)
		h.installMockDataIfEmpty()
		h.notifyStateChange()
		return fmt.Errorf("HealthController.refresh: %w", err)
	}
	h.perf.RecordRequest(latency, true, false)
	h.tracker.RecordPollSuccess()
	h.applySnapshot(snapshot.Sources, snapshot.Metrics, snapshot.RefreshIntervalSeconds, model.DataSourceNetwork)
	h.writeThrough(ctx, model.DataSourceNetwork, refreshMode)
	h.notifyStateChange()
	return nil
}

// installMockDataIfEmpty serves the built-in dataset when there is nothing
// else to show, so reads always resolve.
func (h *healthController) installMockDataIfEmpty() {
	h.mu.Lock()
	if len(h.sources) > 0 {
		h.mu.Unlock()
		return
	}
	now := h.nowFn()
	mock := model.MockSourceHealth(now)
	h.sources = make(map[string]model.SourceHealthRecord, len(mock))
	for _, record := range mock {
		h.sources[record.SourceID] = record
	}
	h.metrics = model.ComputeAggregateMetrics(mock, now)
	h.lastUpdated = now
	h.usingMock = true
	h.dataSource = model.DataSourceMock
	h.mu.Unlock()
	h.tracker.SetUsingMockData(true)
	h.logger.Warn("no cached or fetched data available, serving mock dataset")
}

func (h *healthController) writeThrough(ctx context.Context, dataSource, refreshMode string) {
	h.mu.RLock()
	records := recordsLocked(h.sources)
	metrics := h.metrics
	h.mu.RUnlock()
	metadata := h.store.Store(ctx, records, &metrics, cache.StoreOptions{
		DataSource:  dataSource,
		TTL:         h.opts.CacheTTL,
		RefreshMode: refreshMode,
	})
	if metadata == nil {
		h.logger.Debug("write-through skipped, cache unavailable")
	}
}

func (h *healthController) RefreshAll(ctx context.Context) error {
	h.mu.Lock()
	now := h.nowFn()
	if elapsed := now.Sub(h.lastManualRefresh); elapsed < h.opts.ManualRefreshInterval {
		remaining := h.opts.ManualRefreshInterval - elapsed
		h.mu.Unlock()
		return apperrors.NewThrottledError(remaining)
	}
	h.lastManualRefresh = now
	h.mu.Unlock()

	if err := h.refresh(ctx, model.RefreshModeManual); err != nil {
		// the view still holds best-available data; surface the failure
		return fmt.Errorf("HealthController.RefreshAll: %w", err)
	}
	return nil
}

func (h *healthController) RefreshSource(ctx context.Context, sourceID string) error {
	h.mu.Lock()
	if h.paused[sourceID] {
		h.mu.Unlock()
		return fmt.Errorf("HealthController.RefreshSource: %w", apperrors.ErrMonitoringPaused)
	}
	if _, ok := h.sources[sourceID]; !ok {
		h.mu.Unlock()
		return fmt.Errorf("HealthController.RefreshSource: %w", apperrors.ErrSourceNotFound)
	}
	now := h.nowFn()
	if elapsed := now.Sub(h.lastManualRefresh); elapsed < h.opts.ManualRefreshInterval {
		remaining := h.opts.ManualRefreshInterval - elapsed
		h.mu.Unlock()
		return apperrors.NewThrottledError(remaining)
	}
	h.lastManualRefresh = now
	h.mu.Unlock()

	start := h.nowFn()
	snapshot, err := h.client.FetchSnapshot(ctx)
	latency := time.Since(start)
	if err != nil {
		h.perf.RecordRequest(latency, false, backend.IsTimeout(err))
		h.tracker.RecordSourceFailure(sourceID, err)
		h.notifyStateChange()
		return fmt.Errorf("HealthController.RefreshSource: %w", err)
	}
	h.perf.RecordRequest(latency, true, false)
	record, ok := snapshot.Sources[sourceID]
	if !ok {
		h.tracker.RecordSourceFailure(sourceID, apperrors.ErrSourceNotFound)
		return fmt.Errorf("HealthController.RefreshSource: %w", apperrors.ErrSourceNotFound)
	}
	h.tracker.RecordSourceSuccess(sourceID)
	h.applyUpdate(map[string]model.SourceHealthRecord{sourceID: record}, model.DataSourceNetwork)
	h.writeThrough(ctx, model.DataSourceNetwork, model.RefreshModeManual)
	h.notifyStateChange()
	return nil
}

// TriggerSourceTest runs an out-of-band probe. The result feeds the health
// record and the performance counters but not the connection state machine:
// a failed diagnostic is informational, not a connectivity failure.
func (h *healthController) TriggerSourceTest(ctx context.Context, sourceID string) (model.SourceTestResult, error) {
	h.mu.RLock()
	paused := h.paused[sourceID]
	h.mu.RUnlock()
	if paused {
		return model.SourceTestResult{}, fmt.Errorf("HealthController.TriggerSourceTest: %w", apperrors.ErrMonitoringPaused)
	}

	start := h.nowFn()
	result, err := h.client.TriggerSourceTest(ctx, sourceID)
	latency := time.Since(start)
	if err != nil {
		h.perf.RecordRequest(latency, false, backend.IsTimeout(err))
		return model.SourceTestResult{}, fmt.Errorf("HealthController.TriggerSourceTest: %w", err)
	}
	h.perf.RecordRequest(latency, true, false)
	if result.TestID == "" {
		result.TestID = uuid.NewString()
	}
	result.SourceID = sourceID
	if result.TestedAt.IsZero() {
		result.TestedAt = h.nowFn()
	}

	h.mu.Lock()
	if record, ok := h.sources[sourceID]; ok {
		record.ResponseTimeMs = result.LatencyMs
		record.LastUpdate = result.TestedAt
		h.sources[sourceID] = record
	}
	h.mu.Unlock()
	h.notifyStateChange()
	return result, nil
}

// PauseMonitoring suppresses outgoing refresh/diagnostic calls for the
// source. Passive stream updates still apply, so resume needs no replay.
func (h *healthController) PauseMonitoring(ctx context.Context, sourceID string) error {
	h.mu.Lock()
	if _, ok := h.sources[sourceID]; !ok {
		h.mu.Unlock()
		return fmt.Errorf("HealthController.PauseMonitoring: %w", apperrors.ErrSourceNotFound)
	}
	h.paused[sourceID] = true
	h.mu.Unlock()
	if err := h.client.PauseSource(ctx, sourceID); err != nil {
		// backend-side probing halt is best-effort
		h.logger.Warn("failed to pause monitoring on backend",
			zap.String("source_id", sourceID), zap.Error(err))
	}
	h.notifyStateChange()
	return nil
}

func (h *healthController) ResumeMonitoring(ctx context.Context, sourceID string) error {
	h.mu.Lock()
	delete(h.paused, sourceID)
	h.mu.Unlock()
	if err := h.client.ResumeSource(ctx, sourceID); err != nil {
		h.logger.Warn("failed to resume monitoring on backend",
			zap.String("source_id", sourceID), zap.Error(err))
	}
	h.notifyStateChange()
	return nil
}

func (h *healthController) SourceHealth() []model.SourceHealthRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return recordsLocked(h.sources)
}

func (h *healthController) Metrics() model.AggregateMetrics {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.metrics
}

func (h *healthController) ConnectionState() model.ConnectionState {
	return h.tracker.State()
}

func (h *healthController) SourceConnectionState(sourceID string) model.ConnectionState {
	return h.tracker.SourceState(sourceID)
}

func (h *healthController) Performance() model.PerformanceSnapshot {
	return h.perf.Snapshot()
}

func (h *healthController) LastUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastUpdated
}

func (h *healthController) UsingMockData() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.usingMock
}

// DataSource reports where the current view came from: network, stream, mock
// or a cache restore.
func (h *healthController) DataSource() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dataSource
}

func (h *healthController) IsPaused(sourceID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.paused[sourceID]
}

func (h *healthController) ManualRefreshAllowed() (bool, time.Duration) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	elapsed := h.nowFn().Sub(h.lastManualRefresh)
	if elapsed >= h.opts.ManualRefreshInterval {
		return true, 0
	}
	return false, h.opts.ManualRefreshInterval - elapsed
}

func (h *healthController) CacheInfo(ctx context.Context) cache.StoreInfo {
	return h.store.Info(ctx)
}

// ClearCache destroys the persisted snapshot and resets performance
// counters; the in-memory view keeps serving until superseded.
func (h *healthController) ClearCache(ctx context.Context) {
	h.store.Clear(ctx)
	h.perf.Reset()
	h.notifyStateChange()
}

func (h *healthController) Subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	id := h.nextSubscriberID
	h.nextSubscriberID++
	ch := make(chan struct{}, 1)
	h.subscribers[id] = ch
	h.mu.Unlock()
	return ch, func() {
		h.mu.Lock()
		delete(h.subscribers, id)
		h.mu.Unlock()
	}
}

func (h *healthController) notifyStateChange() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *healthController) maybeNotifyDegradation(status string) {
	if h.notifier == nil {
		return
	}
	if status != model.ConnectionStatusDegraded && status != model.ConnectionStatusOffline {
		h.mu.Lock()
		h.lastNotifiedStatus = ""
		h.mu.Unlock()
		return
	}
	h.mu.Lock()
	alreadyNotified := h.lastNotifiedStatus == status
	if !alreadyNotified {
		h.lastNotifiedStatus = status
	}
	metrics := h.metrics
	h.mu.Unlock()
	if alreadyNotified {
		return
	}
	h.notifier.NotifyDegradation(h.tracker.State(), metrics)
}

func (h *healthController) currentPollInterval() time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pollInterval
}

func recordsLocked(sources map[string]model.SourceHealthRecord) []model.SourceHealthRecord {
	records := make([]model.SourceHealthRecord, 0, len(sources))
	for _, record := range sources {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].SourceID < records[j].SourceID })
	return records
}
