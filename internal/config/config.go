// Package config loads the costtracker configuration from YAML, fills in
// defaults, applies COSTTRACKER_* environment overrides and validates the
// result.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Forecast      ForecastConfig      `yaml:"forecast"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	Log           LogConfig           `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	ListenAddress   string        `yaml:"listen_address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig configures bearer token signing.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// Notification delivery modes.
const (
	// DeliveryDirect sends alerts inline with the cost write.
	DeliveryDirect = "direct"
	// DeliveryOutbox queues alerts and sends them from the scheduler.
	DeliveryOutbox = "outbox"
)

// Mail transports.
const (
	MailerLog = "log"
	MailerSES = "ses"
)

// NotificationsConfig configures limit alert delivery.
type NotificationsConfig struct {
	Delivery    string `yaml:"delivery"`
	Mailer      string `yaml:"mailer"`
	From        string `yaml:"from"`
	SESRegion   string `yaml:"ses_region"`
	Schedule    string `yaml:"schedule"`
	MaxAttempts int    `yaml:"max_attempts"`
	BatchSize   int    `yaml:"batch_size"`
}

// ForecastConfig sizes the regression history and projection.
type ForecastConfig struct {
	LookbackDays int `yaml:"lookback_days"`
	HorizonDays  int `yaml:"horizon_days"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   *bool  `yaml:"enabled"`
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
}

// IsEnabled reports whether the metrics endpoint is served.
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}
