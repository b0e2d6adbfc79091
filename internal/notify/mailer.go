// Package notify delivers cost limit alerts to their owners.
//
// Alerts are rendered into a Message and handed to a Mailer. A Dispatcher
// sends inline; an Outbox persists messages and a Worker drains them later,
// retrying failed sends up to a configured number of attempts.
package notify

import (
	"context"
	"log/slog"
)

// Message is one rendered email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer. A nil logger uses slog.Default().
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger.With("component", "notify.log_mailer")}
}

// Send logs msg and always succeeds.
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.InfoContext(ctx, "Sending email",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
