package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ErrNotConfigured is returned when delivery is attempted without Resend
// credentials. The reset flow surfaces it as a delivery failure.
var ErrNotConfigured = errors.New("email sender is not configured")

type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// LogSender logs emails instead of sending them — used in ENV=local.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) Send(_ context.Context, to, subject, html string) error {
	s.logger.Info("password reset email (local dev)", "to", to, "subject", subject, "body", html)
	return nil
}

// disabledSender fails every send; used when Resend credentials are absent
// outside local. Reset requests for real users then fail at delivery.
type disabledSender struct{}

func (disabledSender) Send(context.Context, string, string, string) error {
	return ErrNotConfigured
}

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// NewSender returns a LogSender for ENV=local, a ResendSender when
// credentials are present, and a sender that always fails otherwise.
func NewSender(env, apiKey, from string, logger *slog.Logger) Sender {
	if env == "local" {
		return &LogSender{logger: logger}
	}
	if apiKey == "" || from == "" {
		return disabledSender{}
	}
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}
