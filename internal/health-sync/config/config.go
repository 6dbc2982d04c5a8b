package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Sync    SyncConfig
	Mail    MailConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" default:"8085"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	StreamPath     string        `envconfig:"BACKEND_STREAM_PATH" default:"/api/health/stream"`
	RequestTimeout time.Duration `envconfig:"BACKEND_REQUEST_TIMEOUT" default:"10s"`
	MaxRetries     int           `envconfig:"BACKEND_MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration `envconfig:"BACKEND_INITIAL_BACKOFF" default:"500ms"`
}

type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

type SyncConfig struct {
	CacheTTL                time.Duration `envconfig:"SYNC_CACHE_TTL" default:"5m"`
	CacheVersion            string        `envconfig:"SYNC_CACHE_VERSION" default:"3"`
	PollInterval            time.Duration `envconfig:"SYNC_POLL_INTERVAL" default:"30s"`
	ManualRefreshInterval   time.Duration `envconfig:"SYNC_MANUAL_REFRESH_INTERVAL" default:"10s"`
	DegradedThreshold       int           `envconfig:"SYNC_DEGRADED_THRESHOLD" default:"3"`
	OfflineThreshold        int           `envconfig:"SYNC_OFFLINE_THRESHOLD" default:"5"`
	ReconnectInitialBackoff time.Duration `envconfig:"SYNC_RECONNECT_INITIAL_BACKOFF" default:"1s"`
	ReconnectMaxBackoff     time.Duration `envconfig:"SYNC_RECONNECT_MAX_BACKOFF" default:"30s"`
}

type MailConfig struct {
	AlertsEnabled    bool   `envconfig:"MAIL_ALERTS_ENABLED" default:"false"`
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_ADDRESS"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
