package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_address: "127.0.0.1:9090"
  read_timeout: "5s"
database:
  path: "/tmp/costs.db"
auth:
  jwt_secret: "s3cret"
  token_ttl: "2h"
notifications:
  delivery: direct
  mailer: ses
  from: "alerts@example.com"
  ses_region: "eu-west-1"
forecast:
  lookback_days: 60
metrics:
  enabled: false
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.ListenAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, "/tmp/costs.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, DeliveryDirect, cfg.Notifications.Delivery)
	assert.Equal(t, MailerSES, cfg.Notifications.Mailer)
	assert.Equal(t, 60, cfg.Forecast.LookbackDays)
	assert.Equal(t, DefaultHorizonDays, cfg.Forecast.HorizonDays)
	assert.False(t, cfg.Metrics.IsEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COSTTRACKER_AUTH_JWT_SECRET", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddress, cfg.Server.ListenAddress)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DeliveryOutbox, cfg.Notifications.Delivery)
	assert.Equal(t, DefaultSchedule, cfg.Notifications.Schedule)
	assert.Equal(t, DefaultLookbackDays, cfg.Forecast.LookbackDays)
	assert.True(t, cfg.Metrics.IsEnabled())
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: "file"
database:
  path: "/from/file.db"
`)
	t.Setenv("COSTTRACKER_DATABASE_PATH", "/from/env.db")
	t.Setenv("COSTTRACKER_FORECAST_HORIZON_DAYS", "7")
	t.Setenv("COSTTRACKER_NOTIFICATIONS_MAX_ATTEMPTS", "not-a-number")
	t.Setenv("COSTTRACKER_METRICS_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.Database.Path)
	assert.Equal(t, 7, cfg.Forecast.HorizonDays)
	assert.Equal(t, DefaultMaxAttempts, cfg.Notifications.MaxAttempts)
	assert.False(t, cfg.Metrics.IsEnabled())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [unclosed"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, "auth.jwt_secret"},
		{"unknown delivery", func(c *Config) { c.Notifications.Delivery = "pigeon" }, "notifications.delivery"},
		{"unknown mailer", func(c *Config) { c.Notifications.Mailer = "smtp" }, "notifications.mailer"},
		{"ses without region", func(c *Config) { c.Notifications.Mailer = MailerSES }, "notifications.ses_region"},
		{"bad schedule", func(c *Config) { c.Notifications.Schedule = "every now and then" }, "notifications.schedule"},
		{"zero attempts", func(c *Config) { c.Notifications.MaxAttempts = 0 }, "notifications.max_attempts"},
		{"zero lookback", func(c *Config) { c.Forecast.LookbackDays = 0 }, "forecast.lookback_days"},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			var verr ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			fields := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}
