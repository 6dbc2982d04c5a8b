package tracker

import (
	"Source_Health_Sync/internal/health-sync/model"
	"sort"
	"sync"
	"time"
)

const maxLatencySamples = 256

// PerformanceRecorder keeps session-level request counters and a bounded
// latency window for derived stats. Counters only move forward; Reset is
// reserved for an explicit cache clear.
type PerformanceRecorder struct {
	mu               sync.Mutex
	totalRequests    int64
	successful       int64
	failed           int64
	timeouts         int64
	streamEvents     int64
	streamReconnects int64
	latencies        []time.Duration
}

func (p *PerformanceRecorder) RecordRequest(latency time.Duration, success bool, timeout bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalRequests++
	if success {
		p.successful++
		p.latencies = append(p.latencies, latency)
		if len(p.latencies) > maxLatencySamples {
			p.latencies = p.latencies[len(p.latencies)-maxLatencySamples:]
		}
		return
	}
	p.failed++
	if timeout {
		p.timeouts++
	}
}

func (p *PerformanceRecorder) RecordStreamEvent() {
	p.mu.Lock()
	p.streamEvents++
	p.mu.Unlock()
}

func (p *PerformanceRecorder) RecordStreamReconnect() {
	p.mu.Lock()
	p.streamReconnects++
	p.mu.Unlock()
}

func (p *PerformanceRecorder) Snapshot() model.PerformanceSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snapshot := model.PerformanceSnapshot{
		TotalRequests:      p.totalRequests,
		SuccessfulRequests: p.successful,
		FailedRequests:     p.failed,
		TimeoutCount:       p.timeouts,
		StreamEventCount:   p.streamEvents,
		StreamReconnects:   p.streamReconnects,
	}
	if len(p.latencies) == 0 {
		return snapshot
	}
	sorted := make([]time.Duration, len(p.latencies))
	copy(sorted, p.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}
	snapshot.AverageLatencyMs = float64(sum.Milliseconds()) / float64(len(sorted))
	p95Index := (len(sorted) * 95) / 100
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	snapshot.P95LatencyMs = float64(sorted[p95Index].Milliseconds())
	return snapshot
}

func (p *PerformanceRecorder) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalRequests = 0
	p.successful = 0
	p.failed = 0
	p.timeouts = 0
	p.streamEvents = 0
	p.streamReconnects = 0
	p.latencies = nil
}

func NewPerformanceRecorder() *PerformanceRecorder {
	return &PerformanceRecorder{}
}
