package alert

import (
	"Source_Health_Sync/internal/health-sync/model"
	"Source_Health_Sync/pkg/mail"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Notifier mails the dashboard admin when the synchronization layer degrades,
// and produces the daily health summary report.
type Notifier struct {
	logger      *zap.Logger
	sender      mail.Sender
	adminEmails []string
}

func NewNotifier(logger *zap.Logger, sender mail.Sender, adminEmails []string) *Notifier {
	return &Notifier{
		logger:      logger,
		sender:      sender,
		adminEmails: adminEmails,
	}
}

// NotifyDegradation sends a degraded/offline alert. Fire-and-forget: mail
// delivery must never slow down the sync loop.
func (n *Notifier) NotifyDegradation(state model.ConnectionState, metrics model.AggregateMetrics) {
	go func() {
		subject := fmt.Sprintf("Source health sync %s", state.Status)
		textBody := fmt.Sprintf(
			"Connection status: %s\n"+
				"Consecutive failures: %d\n"+
				"Last error: %s\n"+
				"Last successful update: %s\n\n"+
				"Sources online: %d/%d",
			state.Status,
			state.ConsecutiveFailures,
			state.LastError,
			state.LastSuccessAt.Format(time.RFC3339),
			metrics.OnlineSources,
			metrics.TotalSources,
		)
		if err := n.sender.SendMail(n.adminEmails, subject, "", textBody); err != nil {
			n.logger.Error("failed to send degradation alert", zap.Error(err))
		}
	}()
}

// SendDailySummary mails the aggregate health report for the trailing day.
func (n *Notifier) SendDailySummary(metrics model.AggregateMetrics, records []model.SourceHealthRecord) error {
	subject := fmt.Sprintf("Daily source health summary %s", time.Now().Format("2006-01-02"))
	textBody := generateTextSummary(metrics)
	htmlBody := generateHTMLSummary(metrics, records)
	if err := n.sender.SendMail(n.adminEmails, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("Notifier.SendDailySummary: %w", err)
	}
	return nil
}

func generateTextSummary(metrics model.AggregateMetrics) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Sources: %d\n"+
			"Online: %d\n"+
			"Degraded: %d\n"+
			"Offline: %d\n\n"+
			"Average Uptime Across All Sources: %.2f%%\n"+
			"Average Response Time: %.0fms",
		metrics.TotalSources,
		metrics.OnlineSources,
		metrics.DegradedSources,
		metrics.OfflineSources,
		metrics.AverageUptime,
		metrics.AverageResponseTimeMs,
	)
}

func generateHTMLSummary(metrics model.AggregateMetrics, records []model.SourceHealthRecord) string {
	rows := ""
	for _, r := range records {
		rows += fmt.Sprintf(`
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%dms</td>
        </tr>`, r.Name, r.Status, r.Uptime, r.ResponseTimeMs)
	}
	return fmt.Sprintf(`
<body>
    <p>Total Sources: %d &mdash; Online: %d, Degraded: %d, Offline: %d</p>
    <p>Average Uptime: %.2f%%</p>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <th style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Source</th>
            <th style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Status</th>
            <th style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Uptime</th>
            <th style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Response Time</th>
        </tr>%s
    </table>
</body>`,
		metrics.TotalSources,
		metrics.OnlineSources,
		metrics.DegradedSources,
		metrics.OfflineSources,
		metrics.AverageUptime,
		rows,
	)
}
