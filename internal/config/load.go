package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies defaults and environment
// overrides, and validates the result. An empty path starts from defaults.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format COSTTRACKER_SECTION_FIELD. Values that
// fail to parse are ignored.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.ListenAddress, "COSTTRACKER_SERVER_LISTEN_ADDRESS")
	setDuration(&cfg.Server.ReadTimeout, "COSTTRACKER_SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "COSTTRACKER_SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.ShutdownTimeout, "COSTTRACKER_SERVER_SHUTDOWN_TIMEOUT")

	setString(&cfg.Database.Path, "COSTTRACKER_DATABASE_PATH")

	setString(&cfg.Auth.JWTSecret, "COSTTRACKER_AUTH_JWT_SECRET")
	setDuration(&cfg.Auth.TokenTTL, "COSTTRACKER_AUTH_TOKEN_TTL")

	setString(&cfg.Notifications.Delivery, "COSTTRACKER_NOTIFICATIONS_DELIVERY")
	setString(&cfg.Notifications.Mailer, "COSTTRACKER_NOTIFICATIONS_MAILER")
	setString(&cfg.Notifications.From, "COSTTRACKER_NOTIFICATIONS_FROM")
	setString(&cfg.Notifications.SESRegion, "COSTTRACKER_NOTIFICATIONS_SES_REGION")
	setString(&cfg.Notifications.Schedule, "COSTTRACKER_NOTIFICATIONS_SCHEDULE")
	setInt(&cfg.Notifications.MaxAttempts, "COSTTRACKER_NOTIFICATIONS_MAX_ATTEMPTS")
	setInt(&cfg.Notifications.BatchSize, "COSTTRACKER_NOTIFICATIONS_BATCH_SIZE")

	setInt(&cfg.Forecast.LookbackDays, "COSTTRACKER_FORECAST_LOOKBACK_DAYS")
	setInt(&cfg.Forecast.HorizonDays, "COSTTRACKER_FORECAST_HORIZON_DAYS")

	if val := os.Getenv("COSTTRACKER_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = &b
		}
	}
	setString(&cfg.Metrics.Path, "COSTTRACKER_METRICS_PATH")

	setString(&cfg.Log.Level, "COSTTRACKER_LOG_LEVEL")
}

func setString(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func setDuration(dst *time.Duration, key string) {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, key string) {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}
