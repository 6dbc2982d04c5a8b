package model

import "time"

const (
	ConnectionStatusInitializing = "initializing"
	ConnectionStatusConnecting   = "connecting"
	ConnectionStatusConnected    = "connected"
	ConnectionStatusReconnecting = "reconnecting"
	ConnectionStatusDegraded     = "degraded"
	ConnectionStatusOffline      = "offline"
)

type ConnectionState struct {
	Status               string    `json:"status"`
	UsingMockData        bool      `json:"using_mock_data"`
	ConsecutiveFailures  int       `json:"consecutive_failures"`
	LastSuccessAt        time.Time `json:"last_success_at"`
	LastFailureAt        time.Time `json:"last_failure_at"`
	LastError            string    `json:"last_error"`
	ReconnectAttempts    int       `json:"reconnect_attempts"`
	ReconnectScheduledAt time.Time `json:"reconnect_scheduled_at"`
	LastHeartbeatAt      time.Time `json:"last_heartbeat_at"`
}
