package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "auth.jwt_secret").
	Field string

	// Message is a human-readable error message.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks cfg and returns a ValidationError listing every problem,
// or nil.
func Validate(cfg *Config) error {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.Server.ListenAddress == "" {
		add("server.listen_address", "is required")
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		add("server", "timeouts must not be negative")
	}

	if cfg.Database.Path == "" {
		add("database.path", "is required")
	}

	if cfg.Auth.JWTSecret == "" {
		add("auth.jwt_secret", "is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		add("auth.token_ttl", "must be positive")
	}

	n := cfg.Notifications
	switch n.Delivery {
	case DeliveryDirect, DeliveryOutbox:
	default:
		add("notifications.delivery", "must be %q or %q, got %q", DeliveryDirect, DeliveryOutbox, n.Delivery)
	}
	switch n.Mailer {
	case MailerLog:
	case MailerSES:
		if n.SESRegion == "" {
			add("notifications.ses_region", "is required for the ses mailer")
		}
		if n.From == "" {
			add("notifications.from", "is required for the ses mailer")
		}
	default:
		add("notifications.mailer", "must be %q or %q, got %q", MailerLog, MailerSES, n.Mailer)
	}
	if n.Delivery == DeliveryOutbox {
		if _, err := cron.ParseStandard(n.Schedule); err != nil {
			add("notifications.schedule", "invalid cron schedule %q: %v", n.Schedule, err)
		}
	}
	if n.MaxAttempts < 1 {
		add("notifications.max_attempts", "must be at least 1")
	}
	if n.BatchSize < 1 {
		add("notifications.batch_size", "must be at least 1")
	}

	if cfg.Forecast.LookbackDays < 1 {
		add("forecast.lookback_days", "must be at least 1")
	}
	if cfg.Forecast.HorizonDays < 1 {
		add("forecast.horizon_days", "must be at least 1")
	}

	if cfg.Metrics.IsEnabled() && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		add("metrics.path", "must start with /")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", "must be one of debug, info, warn, error")
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
