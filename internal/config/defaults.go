package config

import "time"

// Default values for configuration fields.
const (
	DefaultListenAddress   = ":8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultDatabasePath = "./data/costtracker.db"

	DefaultTokenTTL = 24 * time.Hour

	DefaultDelivery    = DeliveryOutbox
	DefaultMailer      = MailerLog
	DefaultFrom        = "alerts@costtracker.local"
	DefaultSchedule    = "@every 30s"
	DefaultMaxAttempts = 5
	DefaultBatchSize   = 100

	DefaultLookbackDays = 31
	DefaultHorizonDays  = 31

	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "costtracker"

	DefaultLogLevel = "info"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero field of cfg with its default.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
	}

	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = DefaultTokenTTL
	}

	n := &cfg.Notifications
	if n.Delivery == "" {
		n.Delivery = DefaultDelivery
	}
	if n.Mailer == "" {
		n.Mailer = DefaultMailer
	}
	if n.From == "" {
		n.From = DefaultFrom
	}
	if n.Schedule == "" {
		n.Schedule = DefaultSchedule
	}
	if n.MaxAttempts == 0 {
		n.MaxAttempts = DefaultMaxAttempts
	}
	if n.BatchSize == 0 {
		n.BatchSize = DefaultBatchSize
	}

	if cfg.Forecast.LookbackDays == 0 {
		cfg.Forecast.LookbackDays = DefaultLookbackDays
	}
	if cfg.Forecast.HorizonDays == 0 {
		cfg.Forecast.HorizonDays = DefaultHorizonDays
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
