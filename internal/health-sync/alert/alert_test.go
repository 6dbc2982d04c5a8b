package alert

import (
	"Source_Health_Sync/internal/health-sync/model"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedMail struct {
	to       []string
	subject  string
	htmlBody string
	textBody string
}

type fakeSender struct {
	mu    sync.Mutex
	err   error
	mails []capturedMail
}

func (f *fakeSender) SendMail(to []string, subject, htmlBody, textBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.mails = append(f.mails, capturedMail{to: to, subject: subject, htmlBody: htmlBody, textBody: textBody})
	return nil
}

func (f *fakeSender) sent() []capturedMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedMail(nil), f.mails...)
}

func TestNotifier_NotifyDegradation(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifier(zap.NewNop(), sender, []string{"admin@example.com"})

	notifier.NotifyDegradation(model.ConnectionState{
		Status:              model.ConnectionStatusDegraded,
		ConsecutiveFailures: 3,
		LastError:           "stream dropped",
	}, model.AggregateMetrics{TotalSources: 3, OnlineSources: 2})

	assert.Eventually(t, func() bool {
		return len(sender.sent()) == 1
	}, time.Second, 5*time.Millisecond)

	sent := sender.sent()[0]
	assert.Equal(t, []string{"admin@example.com"}, sent.to)
	assert.Equal(t, "Source health sync degraded", sent.subject)
	assert.Contains(t, sent.textBody, "Consecutive failures: 3")
	assert.Contains(t, sent.textBody, "stream dropped")
	assert.Contains(t, sent.textBody, "Sources online: 2/3")
}

func TestNotifier_SendDailySummary(t *testing.T) {
	metrics := model.AggregateMetrics{
		TotalSources:          3,
		OnlineSources:         2,
		DegradedSources:       1,
		AverageUptime:         97.33,
		AverageResponseTimeMs: 703,
	}
	records := []model.SourceHealthRecord{
		{Name: "Government Open Data", Status: model.SourceStatusOnline, Uptime: 99.2, ResponseTimeMs: 320},
		{Name: "Market Data Feed", Status: model.SourceStatusDegraded, Uptime: 94.7, ResponseTimeMs: 1250},
	}

	t.Run("Success", func(t *testing.T) {
		sender := &fakeSender{}
		notifier := NewNotifier(zap.NewNop(), sender, []string{"admin@example.com"})

		require.NoError(t, notifier.SendDailySummary(metrics, records))

		require.Len(t, sender.sent(), 1)
		sent := sender.sent()[0]
		assert.Contains(t, sent.subject, "Daily source health summary")
		assert.Contains(t, sent.textBody, "Total Sources: 3")
		assert.Contains(t, sent.textBody, "Average Uptime Across All Sources: 97.33%")
		assert.Contains(t, sent.htmlBody, "Government Open Data")
		assert.Contains(t, sent.htmlBody, "1250ms")
	})

	t.Run("Error Mail delivery failure is surfaced", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("smtp unreachable")}
		notifier := NewNotifier(zap.NewNop(), sender, []string{"admin@example.com"})

		assert.Error(t, notifier.SendDailySummary(metrics, records))
	})
}
