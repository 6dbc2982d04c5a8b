package tracker

import (
	"Source_Health_Sync/internal/health-sync/model"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	DegradedThreshold int
	OfflineThreshold  int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
}

// Tracker owns the connection state machine: one global aggregate plus one
// state per monitored source. Transitions:
//
//	initializing -> connecting -> connected
//	connected    -> reconnecting        on stream drop / failed request
//	reconnecting -> connected           on resubscribe success
//	reconnecting -> degraded            after DegradedThreshold consecutive failures
//	degraded     -> offline             after OfflineThreshold, or explicit backend signal
//	any          -> connecting          on manual retry
type Tracker struct {
	mu      sync.Mutex
	cfg     Config
	logger  *zap.Logger
	nowFn   func() time.Time
	backoff Backoff
	global  model.ConnectionState
	sources map[string]*model.ConnectionState
}

func NewTracker(cfg Config, logger *zap.Logger) *Tracker {
	return &Tracker{
		cfg:    cfg,
		logger: logger,
		nowFn:  time.Now,
		backoff: Backoff{
			Initial: cfg.InitialBackoff,
			Max:     cfg.MaxBackoff,
		},
		global:  model.ConnectionState{Status: model.ConnectionStatusInitializing},
		sources: make(map[string]*model.ConnectionState),
	}
}

func (t *Tracker) MarkConnecting() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global.Status = model.ConnectionStatusConnecting
}

// MarkConnected records a successful (re)subscription. Consecutive failures
// reset to zero on any success.
func (t *Tracker) MarkConnected() {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.nowFn()
	prev := t.global.Status
	t.global.Status = model.ConnectionStatusConnected
	t.global.ConsecutiveFailures = 0
	t.global.ReconnectAttempts = 0
	t.global.ReconnectScheduledAt = time.Time{}
	t.global.LastError = ""
	t.global.LastSuccessAt = now
	if prev != model.ConnectionStatusConnected {
		t.logger.Info("connection established", zap.String("previous_status", prev))
	}
}

// RecordFailure advances the machine on a failed request or stream drop and
// returns the new status plus the delay before the next scheduled reconnect.
func (t *Tracker) RecordFailure(err error) (status string, retryIn time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.nowFn()
	t.global.ConsecutiveFailures++
	t.global.LastFailureAt = now
	if err != nil {
		t.global.LastError = err.Error()
	}

	switch {
	case t.global.ConsecutiveFailures >= t.cfg.OfflineThreshold:
		t.global.Status = model.ConnectionStatusOffline
	case t.global.ConsecutiveFailures >= t.cfg.DegradedThreshold:
		t.global.Status = model.ConnectionStatusDegraded
	default:
		t.global.Status = model.ConnectionStatusReconnecting
	}

	if t.global.Status != model.ConnectionStatusOffline {
		t.global.ReconnectAttempts++
		retryIn = t.backoff.Delay(t.global.ReconnectAttempts)
		t.global.ReconnectScheduledAt = now.Add(retryIn)
	} else {
		t.global.ReconnectScheduledAt = time.Time{}
	}
	t.logger.Warn("connection failure recorded",
		zap.Error(err),
		zap.String("status", t.global.Status),
		zap.Int("consecutive_failures", t.global.ConsecutiveFailures),
		zap.Duration("retry_in", retryIn))
	return t.global.Status, retryIn
}

// RecordPollSuccess notes a successful fallback fetch. Failures reset on any
// success, but the stream-facing status only softens from offline back to
// reconnecting since the subscription itself is still down.
func (t *Tracker) RecordPollSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global.ConsecutiveFailures = 0
	t.global.LastError = ""
	t.global.LastSuccessAt = t.nowFn()
	if t.global.Status == model.ConnectionStatusOffline {
		t.global.Status = model.ConnectionStatusReconnecting
	}
}

// ForceOffline applies an explicit backend offline signal.
func (t *Tracker) ForceOffline(reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global.Status = model.ConnectionStatusOffline
	t.global.LastError = reason
	t.global.LastFailureAt = t.nowFn()
	t.global.ReconnectScheduledAt = time.Time{}
}

// ManualRetry moves the machine back to connecting from any state.
func (t *Tracker) ManualRetry() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global.Status = model.ConnectionStatusConnecting
	t.global.ReconnectAttempts = 0
	t.global.ReconnectScheduledAt = time.Time{}
}

func (t *Tracker) Heartbeat() {
	t.mu.Lock()
	t.global.LastHeartbeatAt = t.nowFn()
	t.mu.Unlock()
}

func (t *Tracker) SetUsingMockData(usingMock bool) {
	t.mu.Lock()
	t.global.UsingMockData = usingMock
	t.mu.Unlock()
}

func (t *Tracker) State() model.ConnectionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.global
}

func (t *Tracker) sourceStateLocked(sourceID string) *model.ConnectionState {
	state, ok := t.sources[sourceID]
	if !ok {
		state = &model.ConnectionState{Status: model.ConnectionStatusInitializing}
		t.sources[sourceID] = state
	}
	return state
}

func (t *Tracker) RecordSourceSuccess(sourceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state := t.sourceStateLocked(sourceID)
	state.Status = model.ConnectionStatusConnected
	state.ConsecutiveFailures = 0
	state.LastError = ""
	state.LastSuccessAt = t.nowFn()
}

func (t *Tracker) RecordSourceFailure(sourceID string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state := t.sourceStateLocked(sourceID)
	state.ConsecutiveFailures++
	state.LastFailureAt = t.nowFn()
	if err != nil {
		state.LastError = err.Error()
	}
	switch {
	case state.ConsecutiveFailures >= t.cfg.OfflineThreshold:
		state.Status = model.ConnectionStatusOffline
	case state.ConsecutiveFailures >= t.cfg.DegradedThreshold:
		state.Status = model.ConnectionStatusDegraded
	default:
		state.Status = model.ConnectionStatusReconnecting
	}
}

func (t *Tracker) SourceState(sourceID string) model.ConnectionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return *t.sourceStateLocked(sourceID)
}
